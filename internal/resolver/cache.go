package resolver

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/inkwell/internal/style"
)

// Memo caches resolution results so render passes do not recompute styles on
// every frame. The cache key folds in the override store's per-component
// generation counter, so any ApplyCommand/SetManualOverride/Reset for a key
// makes earlier entries unreachable rather than stale. Correctness over hit
// rate: a hit that ignores an intervening store mutation would be a defect.
type Memo struct {
	mu       sync.RWMutex
	resolver *Resolver
	entries  map[string]style.Fragment
}

// NewMemo wraps resolver with an empty cache.
func NewMemo(resolver *Resolver) *Memo {
	return &Memo{
		resolver: resolver,
		entries:  make(map[string]style.Fragment),
	}
}

// Resolve returns the memoized result for (key, opts) under the store's
// current generation, computing and caching it on a miss. The returned
// fragment is a deep copy; callers may mutate it freely.
func (m *Memo) Resolve(key string, opts Options) style.Fragment {
	cacheKey := m.cacheKey(key, opts)

	m.mu.RLock()
	cached, ok := m.entries[cacheKey]
	m.mu.RUnlock()
	if ok {
		return cached.Clone()
	}

	resolved := m.resolver.Resolve(key, opts)

	m.mu.Lock()
	m.entries[cacheKey] = resolved.Clone()
	m.mu.Unlock()

	return resolved
}

// Len returns the number of cached entries.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Purge drops every cached entry. Correctness never requires calling it; it
// only bounds memory across long sessions.
func (m *Memo) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]style.Fragment)
}

// cacheKey serializes (key, generation, options) deterministically.
// encoding/json sorts map keys, so structurally equal option fragments
// always produce the same key.
func (m *Memo) cacheKey(key string, opts Options) string {
	generation := m.resolver.store.Generation(key)
	serialized, err := json.Marshal(opts)
	if err != nil {
		// Fragments hold only strings, numbers, booleans and nested
		// mappings, none of which can fail to marshal. Fall back to an
		// uncacheable-looking key rather than panic.
		serialized = []byte(fmt.Sprintf("%#v", opts))
	}
	return fmt.Sprintf("%s\x00%d\x00%s", key, generation, serialized)
}
