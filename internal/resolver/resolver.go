package resolver

import (
	"github.com/alexisbeaulieu97/inkwell/internal/command"
	"github.com/alexisbeaulieu97/inkwell/internal/component"
	"github.com/alexisbeaulieu97/inkwell/internal/logger"
	"github.com/alexisbeaulieu97/inkwell/internal/override"
	"github.com/alexisbeaulieu97/inkwell/internal/style"
)

// Options scope extra layers to a single resolution call; nothing in here is
// ever persisted.
type Options struct {
	// Commands is an explicit ordered command list merged after the
	// override store's command list.
	Commands []string `json:"commands,omitempty"`
	// Overrides is the highest-precedence fragment in the chain.
	Overrides style.Fragment `json:"overrides,omitempty"`
}

// Resolver composes registry defaults, command lookups, override-store state
// and call-site options into one final fragment. Given a consistent store
// snapshot it is read-only and reentrant.
type Resolver struct {
	library  *command.Library
	registry *component.Registry
	store    *override.Store
	log      *logger.Logger
}

// New constructs a resolver over the given collaborators. The logger may be
// nil.
func New(library *command.Library, registry *component.Registry, store *override.Store, log *logger.Logger) *Resolver {
	return &Resolver{
		library:  library,
		registry: registry,
		store:    store,
		log:      log,
	}
}

// Store exposes the override store the resolver reads from.
func (r *Resolver) Store() *override.Store {
	return r.store
}

// Registry exposes the component registry the resolver reads from.
func (r *Resolver) Registry() *component.Registry {
	return r.registry
}

// Library exposes the command library the resolver reads from.
func (r *Resolver) Library() *command.Library {
	return r.library
}

// Resolve merges, lowest to highest precedence: the registry entry's base
// fragment, its default command list, the override store's command list for
// key, opts.Commands, the store's manual-override fragment, and
// opts.Overrides. Unknown component keys and unknown command names degrade
// to empty fragments and never interrupt resolution.
func (r *Resolver) Resolve(key string, opts Options) style.Fragment {
	entry := r.registry.Lookup(key)
	snap := r.store.Get(key)

	out := entry.Base.Clone()
	out = r.mergeCommands(out, entry.Commands)
	out = r.mergeCommands(out, snap.Commands)
	out = r.mergeCommands(out, opts.Commands)
	out = style.Merge(out, snap.Manual)
	out = style.Merge(out, opts.Overrides)
	return out
}

func (r *Resolver) mergeCommands(base style.Fragment, names []string) style.Fragment {
	out := base
	for _, name := range names {
		fragment := r.library.Lookup(name)
		if fragment == nil {
			r.log.WithFields(map[string]any{"command": name}).Debug("unknown style command skipped")
			continue
		}
		out = style.Merge(out, fragment)
	}
	return out
}
