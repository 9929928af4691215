package format

import (
	"fmt"
	"strings"
)

// Format selects the tone notation of a character-based transcription.
type Format int

const (
	// Original leaves the IPA tone letters untouched.
	Original Format = iota
	// Numeric replaces each tone letter with a single digit.
	Numeric
	// Jyutping rewrites Cantonese tone contours as Jyutping tone digits.
	Jyutping
)

// String returns the format's canonical short name.
func (f Format) String() string {
	switch f {
	case Numeric:
		return "num"
	case Jyutping:
		return "jyutping"
	default:
		return "org"
	}
}

// Names returns the canonical names of all supported formats.
func Names() []string {
	return []string{Original.String(), Numeric.String(), Jyutping.String()}
}

// Parse maps a format name to its Format. Matching is case-insensitive and
// accepts both the canonical short names and their long aliases. The empty
// string means Original.
func Parse(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "org", "original":
		return Original, nil
	case "num", "numeric":
		return Numeric, nil
	case "jyutping":
		return Jyutping, nil
	}
	return Original, fmt.Errorf("unknown output format %q (available: %s)",
		name, strings.Join(Names(), ", "))
}

// numeric maps each level-tone letter to a digit and strips length colons.
// The four letter rules are independent, so a single replacer pass is
// equivalent to applying them one after another.
var numeric = strings.NewReplacer(
	"˥", "5",
	"˧", "3",
	"˨", "2",
	"˩", "1",
	":", "",
)

// jyutpingRules is applied sequentially over the whole string. Order is
// significant: contour digraphs and stop-tone pairs must fire before the
// single tone letters they contain, and the colon strip comes last.
var jyutpingRules = []struct {
	old, new string
}{
	{"˥˧", "1"}, {"˥˥", "1"},
	{"˧˥", "2"},
	{"˧˧", "3"},
	{"˨˩", "4"}, {"˩˩", "4"},
	{"˩˧", "5"}, {"˨˧", "5"},
	{"˨˨", "6"},
	{"k˥", "k7"}, {"k˧", "k8"}, {"k˨", "k9"},
	{"t˥", "t7"}, {"t˧", "t8"}, {"t˨", "t9"},
	{"p˥", "p7"}, {"p˧", "p8"}, {"p˨", "p9"},
	{"˥", "1"}, {"˧", "3"}, {"˨", "6"},
	{":", ""},
}

// Apply formats a transcription. All formats are total; unknown Format
// values behave like Original.
func Apply(f Format, s string) string {
	switch f {
	case Numeric:
		return numeric.Replace(s)
	case Jyutping:
		for _, rule := range jyutpingRules {
			s = strings.ReplaceAll(s, rule.old, rule.new)
		}
		return s
	default:
		return s
	}
}
