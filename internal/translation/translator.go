package translation

import (
	"fmt"

	"codeberg.org/snonux/ipatrans/internal/dictionary"
	"codeberg.org/snonux/ipatrans/internal/format"
	"codeberg.org/snonux/ipatrans/internal/registry"
	"codeberg.org/snonux/ipatrans/internal/segment"
)

// Request describes one transcription call. It is a plain value object
// created per call.
type Request struct {
	Text          string
	Language      string // language code, must be in the registry
	ShowTokenForm bool   // prefix each IPA hit with the matched token
	Format        format.Format
}

// Translator turns text into its IPA transcription using per-language
// dictionaries. It is stateless apart from the store's read-through cache
// and safe for concurrent use.
type Translator struct {
	registry *registry.Registry
	store    *dictionary.Store
}

// NewTranslator creates a translator over the given registry and store.
func NewTranslator(reg *registry.Registry, store *dictionary.Store) *Translator {
	return &Translator{
		registry: reg,
		store:    store,
	}
}

// Translate transcribes the request's text. Word-based languages are split
// on whitespace and joined with spaces; character-based languages are
// scanned with greedy longest match and then tone-formatted. The request
// format is accepted but ignored for word-based languages, whose output
// carries no tone letters to rewrite. Fails with ErrUnsupportedLanguage
// before any dictionary access when the code is unknown; dictionary load
// failures propagate unchanged.
func (t *Translator) Translate(req Request) (string, error) {
	lang, ok := t.registry.Lookup(req.Language)
	if !ok {
		return "", fmt.Errorf("%w: %q", dictionary.ErrUnsupportedLanguage, req.Language)
	}

	dict, err := t.store.Load(req.Language)
	if err != nil {
		return "", err
	}

	if lang.Family == registry.FamilyCharacter {
		raw := segment.Characters(dict, req.Text, req.ShowTokenForm)
		return format.Apply(req.Format, raw), nil
	}

	return segment.Words(dict, req.Text, req.ShowTokenForm), nil
}

// Languages returns the supported language codes in registry order.
func (t *Translator) Languages() []string {
	return t.registry.Codes()
}

// LanguageName returns the display name of a language code.
func (t *Translator) LanguageName(code string) (string, bool) {
	lang, ok := t.registry.Lookup(code)
	return lang.Name, ok
}

// Formats returns the names of the supported output formats.
func (t *Translator) Formats() []string {
	return format.Names()
}
