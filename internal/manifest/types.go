package manifest

import (
	"github.com/alexisbeaulieu97/inkwell/internal/command"
	"github.com/alexisbeaulieu97/inkwell/internal/component"
	"github.com/alexisbeaulieu97/inkwell/internal/style"
)

// Manifest is a theme document: the command library and component registry
// a kiosk deployment boots with. Both sections are immutable after load.
type Manifest struct {
	Version    string           `yaml:"version" validate:"required,semver"`
	Name       string           `yaml:"name" validate:"required,min=1,max=100"`
	Commands   []CommandEntry   `yaml:"commands" validate:"required,min=1,dive"`
	Components []ComponentEntry `yaml:"components,omitempty" validate:"omitempty,dive"`
}

// CommandEntry declares one named reusable style fragment.
type CommandEntry struct {
	Name        string         `yaml:"name" validate:"required,command_name"`
	Description string         `yaml:"description,omitempty"`
	Style       style.Fragment `yaml:"style" validate:"required"`
}

// ComponentEntry declares one renderable region and its default commands.
type ComponentEntry struct {
	Key         string         `yaml:"key" validate:"required,component_key"`
	Description string         `yaml:"description,omitempty"`
	Base        style.Fragment `yaml:"base,omitempty"`
	Commands    []string       `yaml:"commands,omitempty"`
}

// Library builds the command library declared by the manifest.
func (m *Manifest) Library() *command.Library {
	commands := make([]command.Command, 0, len(m.Commands))
	for _, entry := range m.Commands {
		commands = append(commands, command.Command{
			Name:     entry.Name,
			Fragment: entry.Style,
		})
	}
	return command.NewLibrary(commands)
}

// Registry builds the component registry declared by the manifest.
func (m *Manifest) Registry() *component.Registry {
	entries := make([]component.Entry, 0, len(m.Components))
	for _, entry := range m.Components {
		entries = append(entries, component.Entry{
			Key:         entry.Key,
			Description: entry.Description,
			Base:        entry.Base,
			Commands:    entry.Commands,
		})
	}
	return component.NewRegistry(entries)
}
