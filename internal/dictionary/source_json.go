package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/ipatrans/internal/registry"
)

// DirSource reads dictionaries from a directory of per-language JSON files.
// Each file is a single flat JSON object mapping tokens to IPA strings,
// named after the language's Source field (e.g. en_US.json).
type DirSource struct {
	dir string
}

// NewDirSource creates a source backed by the given data directory.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Load reads and parses the JSON dictionary file for a language.
func (s *DirSource) Load(lang registry.Language) (Dict, error) {
	path := filepath.Join(s.dir, lang.Source)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrUnavailable, path, err)
	}

	var dict Dict
	if err := json.Unmarshal(content, &dict); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrUnavailable, path, err)
	}

	return dict, nil
}
