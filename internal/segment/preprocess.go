package segment

import "strings"

var punctuation = strings.NewReplacer(".", "", ",", "", "\n", "")

// NormalizeWord prepares a word token for dictionary lookup: Latin capitals
// A-Z are folded to lowercase and the literal characters period, comma and
// line break are removed. Everything else is left untouched.
func NormalizeWord(token string) string {
	lowered := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, token)

	return punctuation.Replace(lowered)
}
