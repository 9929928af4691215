// Package translation orchestrates text-to-IPA transcription. It picks the
// segmentation strategy from the language's writing-system family, feeds it
// dictionary lookups, and applies the requested tone formatting. This package
// serves as the main coordinator between all other components.
package translation
