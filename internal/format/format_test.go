package format

import "testing"

func TestOriginalIsIdentity(t *testing.T) {
	inputs := []string{
		"",
		"t˥a˧:",
		"/tsʊŋ˥//mɐn˨˩/",
		"plain text, no tones",
	}

	for _, s := range inputs {
		if got := Apply(Original, s); got != s {
			t.Errorf("Apply(Original, %q) = %q, want input unchanged", s, got)
		}
	}
}

func TestNumeric(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"t˥a˧:", "t5a3"},
		{"˥˧˨˩", "5321"},
		{"mɐn˨˩", "mɐn21"},
		{"no tones here", "no tones here"},
		{"a:b:c", "abc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Apply(Numeric, tt.input); got != tt.want {
			t.Errorf("Apply(Numeric, %q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestJyutping(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"high level contour", "si˥˧", "si1"},
		{"high level", "si˥˥", "si1"},
		{"rising", "si˧˥", "si2"},
		{"mid level", "si˧˧", "si3"},
		{"low falling", "si˨˩", "si4"},
		{"low falling variant", "si˩˩", "si4"},
		{"low rising", "si˩˧", "si5"},
		{"low rising variant", "si˨˧", "si5"},
		{"low level", "si˨˨", "si6"},
		{"stop tone k", "sɪk˥", "sɪk7"},
		{"stop tone t", "sɐt˨", "sɐt9"},
		{"stop tone p", "sɐp˧", "sɐp8"},
		{"single high", "si˥", "si1"},
		{"single mid", "si˧", "si3"},
		{"single low", "si˨", "si6"},
		{"colon stripped", "si:˧˧", "si3"},
		{"untouched text", "hello", "hello"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(Jyutping, tt.input); got != tt.want {
				t.Errorf("Apply(Jyutping, %q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestJyutpingRuleOrder(t *testing.T) {
	// The contour digraph must win over the stop-tone pair that shares its
	// first letter: rules run in list order over the whole string.
	if got := Apply(Jyutping, "k˥˧"); got != "k1" {
		t.Errorf("Apply(Jyutping, k˥˧) = %q, want k1", got)
	}

	// But a bare k˥ with no following tone letter is a stop tone.
	if got := Apply(Jyutping, "k˥"); got != "k7" {
		t.Errorf("Apply(Jyutping, k˥) = %q, want k7", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"org", Original, false},
		{"original", Original, false},
		{"", Original, false},
		{"num", Numeric, false},
		{"numeric", Numeric, false},
		{"jyutping", Jyutping, false},
		{"Jyutping", Jyutping, false},
		{"NUM", Numeric, false},
		{"bogus", Original, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"org", "num", "jyutping"}

	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
