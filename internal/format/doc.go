// Package format rewrites the tone notation of a character-based
// transcription. Three formats exist: the original IPA tone letters, a
// numeric rendering, and Jyutping tone digits for Cantonese.
package format
