package override

import (
	"sync"

	"github.com/alexisbeaulieu97/inkwell/internal/command"
	"github.com/alexisbeaulieu97/inkwell/internal/logger"
	"github.com/alexisbeaulieu97/inkwell/internal/style"
)

// Store accumulates per-component override state: an append-only list of
// extra command names and a cumulative manual-override fragment. It is an
// explicitly owned instance rather than package-level state so tests and
// embedders can run independent stores side by side.
//
// Every mutation bumps the key's generation counter. Reset clears the
// accumulated state but keeps the counter monotonic, so a memoized result
// computed under an earlier generation can never be served again.
type Store struct {
	mu      sync.RWMutex
	library *command.Library
	states  map[string]*state
	log     *logger.Logger
}

type state struct {
	commands   []string
	manual     style.Fragment
	generation uint64
}

// Snapshot is a consistent read of one key's override state.
type Snapshot struct {
	Commands   []string
	Manual     style.Fragment
	Generation uint64
}

// NewStore creates an empty store interpreting free text against library.
// The logger may be nil.
func NewStore(library *command.Library, log *logger.Logger) *Store {
	return &Store{
		library: library,
		states:  make(map[string]*state),
		log:     log,
	}
}

// ApplyCommand interprets freeText and appends every matched command name to
// key's override list. Zero matches is a silent no-op; duplicates are
// permitted and preserved (reapplying an identical command has no further
// observable effect because leaf overwrite is idempotent).
func (s *Store) ApplyCommand(key, freeText string) {
	matches := s.library.Interpret(freeText)
	if len(matches) == 0 {
		s.log.WithComponent(key).Debug("free text matched no style commands")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.ensureLocked(key)
	st.commands = append(st.commands, matches...)
	st.generation++

	s.log.WithComponent(key).WithFields(map[string]any{
		"matched": matches,
	}).Debug("applied style commands from free text")
}

// SetManualOverride merges fragment into key's manual-override fragment.
// The override is cumulative, not a replacement.
func (s *Store) SetManualOverride(key string, fragment style.Fragment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.ensureLocked(key)
	st.manual = style.Merge(st.manual, fragment)
	st.generation++

	s.log.WithComponent(key).Debug("merged manual style override")
}

// Reset clears both the override-command list and the manual-override
// fragment for key. The generation counter survives the reset.
func (s *Store) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[key]
	if !ok {
		return
	}
	st.commands = nil
	st.manual = style.Fragment{}
	st.generation++

	s.log.WithComponent(key).Debug("reset style overrides")
}

// Get returns a consistent snapshot of key's override state. Keys that were
// never touched yield an empty snapshot at generation zero.
func (s *Store) Get(key string) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.states[key]
	if !ok {
		return Snapshot{Manual: style.Fragment{}}
	}
	return Snapshot{
		Commands:   append([]string(nil), st.commands...),
		Manual:     st.manual.Clone(),
		Generation: st.generation,
	}
}

// Generation returns the current generation counter for key.
func (s *Store) Generation(key string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st, ok := s.states[key]; ok {
		return st.generation
	}
	return 0
}

func (s *Store) ensureLocked(key string) *state {
	st, ok := s.states[key]
	if !ok {
		st = &state{manual: style.Fragment{}}
		s.states[key] = st
	}
	return st
}
