package dictionary

import (
	"fmt"
	"sync"

	"codeberg.org/snonux/ipatrans/internal/registry"
)

// Store hands out loaded dictionaries. Dictionaries are read through from
// the configured source on first access and cached forever after; entries
// never expire because the backing data is static reference data.
type Store struct {
	registry *registry.Registry
	source   Source

	mu    sync.RWMutex
	cache map[string]Dict
}

// NewStore creates a store for the given language registry and data source.
func NewStore(reg *registry.Registry, source Source) *Store {
	return &Store{
		registry: reg,
		source:   source,
		cache:    make(map[string]Dict),
	}
}

// Load returns the dictionary for a language code. The code is validated
// against the registry before any data access. Concurrent first loads of
// the same code may read the source twice; the first result to be stored
// wins, which is harmless since dictionary contents are invariant per code.
func (s *Store) Load(code string) (Dict, error) {
	lang, ok := s.registry.Lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}

	s.mu.RLock()
	dict, ok := s.cache[code]
	s.mu.RUnlock()
	if ok {
		return dict, nil
	}

	dict, err := s.source.Load(lang)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cached, ok := s.cache[code]; ok {
		return cached, nil
	}
	s.cache[code] = dict
	return dict, nil
}
