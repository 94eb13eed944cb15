package search

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"sculpture", "scuplture", 2}, // transposition costs two single-char edits
		{"sound", "sound", 0},
		{"þyrlulending", "thyrlulending", 2}, // þ vs t,h on unfolded strings
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	// Both operands empty: fully similar by convention.
	if got := similarity("", ""); got != 1.0 {
		t.Errorf("similarity of two empty strings = %v, want 1.0", got)
	}
	if got := similarity("sound", "sound"); got != 1.0 {
		t.Errorf("similarity of equal strings = %v, want 1.0", got)
	}
	if got := similarity("abc", "xyz"); got != 0.0 {
		t.Errorf("similarity of disjoint strings = %v, want 0.0", got)
	}

	// One edit over nine characters.
	got := similarity("sculpture", "sculptura")
	want := 1.0 - 1.0/9.0
	if got < want-1e-9 || got > want+1e-9 {
		t.Errorf("similarity = %v, want %v", got, want)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	if similarity("landing", "lending") != similarity("lending", "landing") {
		t.Error("similarity is not symmetric")
	}
}
