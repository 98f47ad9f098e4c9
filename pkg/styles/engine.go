// Package styles is the in-process surface of the style command resolution
// engine. A rendering layer asks it for the concrete presentational style of
// a logical component key; chat or voice front ends feed it free-text style
// commands; nothing in it performs I/O or signals failure. The only
// observable "failure" anywhere in this package is the absence of an
// expected style change.
package styles

import (
	"github.com/alexisbeaulieu97/inkwell/internal/command"
	"github.com/alexisbeaulieu97/inkwell/internal/component"
	"github.com/alexisbeaulieu97/inkwell/internal/logger"
	"github.com/alexisbeaulieu97/inkwell/internal/override"
	"github.com/alexisbeaulieu97/inkwell/internal/resolver"
	"github.com/alexisbeaulieu97/inkwell/internal/style"
)

// Fragment is re-exported so consumers need not import internal packages.
type Fragment = style.Fragment

// Options re-exports the resolver's call-site options.
type Options = resolver.Options

// Engine owns one independent set of style state: a command library and
// component registry fixed at construction, a mutable override store, and a
// memoized resolver over all three. Multiple engines can coexist; nothing is
// shared through package state.
type Engine struct {
	library  *command.Library
	registry *component.Registry
	store    *override.Store
	memo     *resolver.Memo
	resolver *resolver.Resolver
}

// Config carries optional collaborators for New. Zero values fall back to
// the built-in library and registry and a discarded log.
type Config struct {
	Library  *command.Library
	Registry *component.Registry
	Logger   *logger.Logger
}

// New constructs an engine. With a zero Config it serves the built-in kiosk
// theme.
func New(cfg Config) *Engine {
	library := cfg.Library
	if library == nil {
		library = command.Builtin()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = component.Builtin()
	}

	store := override.NewStore(library, cfg.Logger)
	res := resolver.New(library, registry, store, cfg.Logger)

	return &Engine{
		library:  library,
		registry: registry,
		store:    store,
		memo:     resolver.NewMemo(res),
		resolver: res,
	}
}

// GetComponentStyle resolves the final style fragment for key, layering
// registry defaults, accumulated overrides and call-site options. It is the
// primary read path for the rendering layer and goes through the memoized
// accessor; repeated calls under unchanged state return structurally
// identical fragments.
func (e *Engine) GetComponentStyle(key string, opts Options) Fragment {
	return e.memo.Resolve(key, opts)
}

// ApplyEnglishStyleCommand interprets freeText against the command library
// and appends every match to key's override list. Text that matches nothing
// is silently ignored.
func (e *Engine) ApplyEnglishStyleCommand(key, freeText string) {
	e.store.ApplyCommand(key, freeText)
}

// UpdateComponentStyle merges fragment into key's manual override. The
// override is cumulative across calls until the key is reset.
func (e *Engine) UpdateComponentStyle(key string, fragment Fragment) {
	e.store.SetManualOverride(key, fragment)
}

// ResetComponentOverride clears all accumulated override state for key,
// returning it to its registry defaults.
func (e *Engine) ResetComponentOverride(key string) {
	e.store.Reset(key)
}

// Library returns the engine's command library.
func (e *Engine) Library() *command.Library {
	return e.library
}

// Registry returns the engine's component registry.
func (e *Engine) Registry() *component.Registry {
	return e.registry
}

// Resolver returns the unmemoized resolver for callers that need to bypass
// the cache.
func (e *Engine) Resolver() *resolver.Resolver {
	return e.resolver
}

// Store returns the engine's override store for callers that need snapshot
// or generation access.
func (e *Engine) Store() *override.Store {
	return e.store
}
