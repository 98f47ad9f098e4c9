package component

import (
	"github.com/alexisbeaulieu97/inkwell/internal/style"
)

// Entry declares a renderable region: a dot-namespaced key, a description
// for operators, an optional base fragment and an ordered list of default
// command names applied before any override.
type Entry struct {
	Key         string
	Description string
	Base        style.Fragment
	Commands    []string
}

// Registry is a fixed mapping from component key to entry, immutable after
// construction.
type Registry struct {
	order   []string
	entries map[string]Entry
}

// NewRegistry builds a registry from entries in declaration order. A
// repeated key overwrites the earlier entry.
func NewRegistry(entries []Entry) *Registry {
	r := &Registry{
		order:   make([]string, 0, len(entries)),
		entries: make(map[string]Entry, len(entries)),
	}
	for _, entry := range entries {
		if entry.Key == "" {
			continue
		}
		if _, exists := r.entries[entry.Key]; !exists {
			r.order = append(r.order, entry.Key)
		}
		r.entries[entry.Key] = Entry{
			Key:         entry.Key,
			Description: entry.Description,
			Base:        entry.Base.Clone(),
			Commands:    append([]string(nil), entry.Commands...),
		}
	}
	return r
}

// Lookup returns the entry for key. Unknown keys yield a permissive empty
// entry (empty base, no default commands), never a failure.
func (r *Registry) Lookup(key string) Entry {
	entry, ok := r.entries[key]
	if !ok {
		return Entry{Key: key, Base: style.Fragment{}}
	}
	return Entry{
		Key:         entry.Key,
		Description: entry.Description,
		Base:        entry.Base.Clone(),
		Commands:    append([]string(nil), entry.Commands...),
	}
}

// Has reports whether key is declared.
func (r *Registry) Has(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// Keys returns the declared component keys in declaration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
