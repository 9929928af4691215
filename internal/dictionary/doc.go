// Package dictionary loads and caches per-language IPA dictionaries.
// A dictionary is a flat token-to-IPA mapping backed by static data
// (JSON files or SQLite databases); once loaded it is immutable and
// cached for the life of the process.
package dictionary
