package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inkwell/pkg/styles"
)

// Model contains the Bubbletea state for the style preview panel. It stands
// in for the kiosk's chat front end: pick a component key, type free text,
// watch the resolved fragment change.
type Model struct {
	engine   *styles.Engine
	keys     []string
	selected int
	input    textinput.Model
	status   string
	quitting bool
}

// NewModel constructs a preview model over the given engine.
func NewModel(engine *styles.Engine) Model {
	input := textinput.New()
	input.Placeholder = `try "make it a rounded glass panel"`
	input.CharLimit = 120
	input.Focus()

	return Model{
		engine: engine,
		keys:   engine.Registry().Keys(),
		input:  input,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SelectedKey returns the component key the cursor is on.
func (m Model) SelectedKey() string {
	if len(m.keys) == 0 {
		return ""
	}
	return m.keys[m.selected]
}

// Resolved returns the current resolution for the selected key.
func (m Model) Resolved() styles.Fragment {
	key := m.SelectedKey()
	if key == "" {
		return styles.Fragment{}
	}
	return m.engine.GetComponentStyle(key, styles.Options{})
}
