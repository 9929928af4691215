package testutil

import (
	"codeberg.org/snonux/ipatrans/internal/dictionary"
	"codeberg.org/snonux/ipatrans/internal/registry"
)

// MockSource is an in-memory dictionary source for testing
type MockSource struct {
	Dicts map[string]dictionary.Dict // keyed by language code
	Errs  map[string]error           // per-code load failures
	Calls []string                   // codes in load order
}

// NewMockSource creates an empty mock source
func NewMockSource() *MockSource {
	return &MockSource{
		Dicts: make(map[string]dictionary.Dict),
		Errs:  make(map[string]error),
	}
}

// Load returns the configured dictionary or error for the language code
func (m *MockSource) Load(lang registry.Language) (dictionary.Dict, error) {
	m.Calls = append(m.Calls, lang.Code)

	if err, ok := m.Errs[lang.Code]; ok {
		return nil, err
	}
	if dict, ok := m.Dicts[lang.Code]; ok {
		return dict, nil
	}
	return nil, dictionary.ErrUnavailable
}
