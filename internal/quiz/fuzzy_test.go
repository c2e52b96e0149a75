package quiz

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"hola", "ola", 1},
		{"año", "ano", 1},
	}

	for _, tt := range tests {
		got := Levenshtein(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Café", "cafe"},
		{"  ¡Hola!  ", "hola"},
		{"¿Qué tal?", "que tal"},
		{"FERROCARRIL", "ferrocarril"},
		{"...", ""},
	}

	for _, tt := range tests {
		got := Normalize(tt.in)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsSimilar(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"hola", "hola", true},
		{"café", "cafe", true},         // diacritic-insensitive
		{"Hola!", "hola", true},        // punctuation stripped
		{"hola", "zzzz", false},        // unrelated
		{"ferrocarril", "ferocarril", true}, // one dropped letter
		{"", "", true},                 // empty vs empty
		{"...", "!!!", true},           // both normalize to empty
		{"sí", "si", true},
	}

	for _, tt := range tests {
		got := IsSimilar(tt.a, tt.b, DefaultSimilarityThreshold)
		if got != tt.want {
			t.Errorf("IsSimilar(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsSimilarThreshold(t *testing.T) {
	// "abcd" vs "abcx": distance 1, maxLen 4, ratio 0.25 — right at the
	// default threshold, so it matches.
	if !IsSimilar("abcd", "abcx", DefaultSimilarityThreshold) {
		t.Error("ratio exactly at threshold should match")
	}
	// Tighter threshold rejects the same pair.
	if IsSimilar("abcd", "abcx", 0.1) {
		t.Error("ratio above threshold should not match")
	}
}

func TestIsSimilarSelfIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "hola", "¿Dónde está el baño?", "1234"} {
		if !IsSimilar(s, s, DefaultSimilarityThreshold) {
			t.Errorf("IsSimilar(%q, %q) should always be true", s, s)
		}
	}
}
