package command

import (
	"strings"

	"github.com/alexisbeaulieu97/inkwell/internal/style"
)

// Command pairs a reusable style fragment with the name that free text is
// matched against.
type Command struct {
	Name     string
	Fragment style.Fragment
}

// Library is a fixed mapping from command name to style fragment. It is
// immutable after construction; Interpret walks names in registration order.
type Library struct {
	names     []string
	fragments map[string]style.Fragment
}

// NewLibrary builds a library from commands in registration order. Names are
// normalised to lowercase; a repeated name overwrites the earlier fragment
// without changing its position in the order.
func NewLibrary(commands []Command) *Library {
	l := &Library{
		names:     make([]string, 0, len(commands)),
		fragments: make(map[string]style.Fragment, len(commands)),
	}
	for _, cmd := range commands {
		name := strings.ToLower(strings.TrimSpace(cmd.Name))
		if name == "" {
			continue
		}
		if _, exists := l.fragments[name]; !exists {
			l.names = append(l.names, name)
		}
		l.fragments[name] = cmd.Fragment.Clone()
	}
	return l
}

// Lookup returns the fragment registered under name, or nil when the name is
// unknown. Unknown names are not an error anywhere in the resolution chain.
func (l *Library) Lookup(name string) style.Fragment {
	fragment, ok := l.fragments[strings.ToLower(name)]
	if !ok {
		return nil
	}
	return fragment.Clone()
}

// Has reports whether name is registered.
func (l *Library) Has(name string) bool {
	_, ok := l.fragments[strings.ToLower(name)]
	return ok
}

// Names returns the command names in registration order.
func (l *Library) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Interpret lowercases text and returns every registered command name that
// occurs as a literal substring of it, in registration order rather than
// position-of-match order. This is deliberately a containment test, not a
// tokenizer: a name can match inside an unrelated word.
func (l *Library) Interpret(text string) []string {
	normalized := strings.ToLower(text)
	var matches []string
	for _, name := range l.names {
		if strings.Contains(normalized, name) {
			matches = append(matches, name)
		}
	}
	return matches
}
