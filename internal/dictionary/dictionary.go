package dictionary

import (
	"errors"

	"codeberg.org/snonux/ipatrans/internal/registry"
)

// Dict maps a token (word or character span) to its IPA transcription.
// Keys are case-sensitive as stored.
type Dict map[string]string

// Lookup returns the IPA transcription for a token.
func (d Dict) Lookup(token string) (string, bool) {
	ipa, ok := d[token]
	return ipa, ok
}

// Sentinel errors reported by the store. Both are terminal: the language
// set and the dictionary data are static, so retrying does not help.
var (
	// ErrUnsupportedLanguage means the requested code is not in the registry.
	ErrUnsupportedLanguage = errors.New("unsupported language code")
	// ErrUnavailable means the backing dictionary data is missing or malformed.
	ErrUnavailable = errors.New("dictionary unavailable")
)

// Source reads the backing data of one language's dictionary.
type Source interface {
	Load(lang registry.Language) (Dict, error)
}
