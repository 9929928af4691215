package registry

// Family identifies the writing-system family of a language. It decides
// which segmentation strategy the translator uses.
type Family int

const (
	// FamilyWord is for space-delimited languages (English, French, ...).
	FamilyWord Family = iota
	// FamilyCharacter is for languages without word boundaries
	// (Cantonese, Mandarin).
	FamilyCharacter
)

// Language describes one supported language.
type Language struct {
	Code   string // language code, e.g. "en_US"
	Name   string // human-readable name
	Source string // dictionary resource name, e.g. "en_US.json"
	Family Family
}

// Registry is an immutable set of supported languages. It is built once at
// startup and shared read-only by the dictionary store and the translator.
type Registry struct {
	languages map[string]Language
	codes     []string
}

// New creates a registry from the given languages. Registration order is
// preserved by Codes.
func New(languages []Language) *Registry {
	r := &Registry{
		languages: make(map[string]Language, len(languages)),
		codes:     make([]string, 0, len(languages)),
	}
	for _, lang := range languages {
		if _, exists := r.languages[lang.Code]; exists {
			continue
		}
		r.languages[lang.Code] = lang
		r.codes = append(r.codes, lang.Code)
	}
	return r
}

// Default returns the registry of the stock language set.
func Default() *Registry {
	return New([]Language{
		{Code: "yue", Name: "Cantonese", Source: "yue.json", Family: FamilyCharacter},
		{Code: "en_UK", Name: "English (UK)", Source: "en_UK.json", Family: FamilyWord},
		{Code: "en_US", Name: "English (US)", Source: "en_US.json", Family: FamilyWord},
		{Code: "eo", Name: "Esperanto", Source: "eo.json", Family: FamilyWord},
		{Code: "fr_FR", Name: "French (FR)", Source: "fr_FR.json", Family: FamilyWord},
		{Code: "fr_QC", Name: "French (QC)", Source: "fr_QC.json", Family: FamilyWord},
		{Code: "ja", Name: "Japanese", Source: "ja.json", Family: FamilyWord},
		{Code: "zh_hans", Name: "Mandarin (Hans)", Source: "zh_hans.json", Family: FamilyCharacter},
		{Code: "zh_hant", Name: "Mandarin (Hant)", Source: "zh_hant.json", Family: FamilyCharacter},
		{Code: "fa", Name: "Persian", Source: "fa.json", Family: FamilyWord},
		{Code: "es_ES", Name: "Spanish (ES)", Source: "es_ES.json", Family: FamilyWord},
		{Code: "es_MX", Name: "Spanish (MX)", Source: "es_MX.json", Family: FamilyWord},
	})
}

// Lookup returns the language for the given code.
func (r *Registry) Lookup(code string) (Language, bool) {
	lang, ok := r.languages[code]
	return lang, ok
}

// Contains reports whether the code is a supported language.
func (r *Registry) Contains(code string) bool {
	_, ok := r.languages[code]
	return ok
}

// Codes returns all supported language codes in registration order.
func (r *Registry) Codes() []string {
	codes := make([]string, len(r.codes))
	copy(codes, r.codes)
	return codes
}
