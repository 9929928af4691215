package segment

import "strings"

// Dict is the lookup the segmenter needs from a loaded dictionary.
type Dict interface {
	Lookup(token string) (string, bool)
}

// maxSpan caps the longest-match window of the character scan. The
// dictionary data carries no entries longer than six characters.
const maxSpan = 6

// Words transcribes space-delimited text. Each word is normalized and
// looked up; hits are emitted as slash-delimited IPA, misses keep the
// original token unchanged. The pieces are joined with single spaces.
func Words(dict Dict, text string, showForm bool) string {
	var parts []string

	for _, word := range strings.Fields(text) {
		normalized := NormalizeWord(word)
		if ipa, ok := dict.Lookup(normalized); ok {
			parts = append(parts, emit(normalized, ipa, showForm))
		} else {
			parts = append(parts, word)
		}
	}

	return strings.Join(parts, " ")
}

// Characters transcribes text without word boundaries. A cursor walks the
// input character by character: a direct single-character hit is emitted
// right away, otherwise the longest dictionary-matching span of up to
// maxSpan characters starting at the cursor wins. Characters that match
// nothing are copied through verbatim. The output carries no separators.
func Characters(dict Dict, text string, showForm bool) string {
	runes := []rune(text)
	var out strings.Builder

	i := 0
	for i < len(runes) {
		ch := string(runes[i])

		if ipa, ok := dict.Lookup(ch); ok {
			out.WriteString(emit(ch, ipa, showForm))
			i++
			continue
		}

		max := maxSpan
		if remaining := len(runes) - i; remaining < max {
			max = remaining
		}

		matched := false
		for length := max; length >= 1; length-- {
			span := string(runes[i : i+length])
			if ipa, ok := dict.Lookup(span); ok {
				out.WriteString(emit(span, ipa, showForm))
				i += length
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		out.WriteString(ch)
		i++
	}

	return out.String()
}

// emit renders one dictionary hit, optionally prefixed with the matched token.
func emit(token, ipa string, showForm bool) string {
	if showForm {
		return token + "/" + ipa + "/"
	}
	return "/" + ipa + "/"
}
