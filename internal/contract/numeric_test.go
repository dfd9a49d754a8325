package contract

import "testing"

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		score int
		ok    bool
	}{
		{"bare digits", "7", 7, true},
		{"digits in prose", "The final score is 9.", 9, true},
		{"labeled", "Score: 7 (borderline)", 7, true},
		{"first run wins", "8 or maybe 10", 8, true},
		{"zero", "0", 0, true},
		{"upper bound", "15", 15, true},
		{"above range", "16", 0, false},
		{"way above range", "100", 0, false},
		{"no digits", "high severity", 0, false},
		{"empty", "", 0, false},
		{"whitespace", "   ", 0, false},
		{"none literal", "None", 0, false},
		{"null literal", "null", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := ExtractScore(tt.text)
			if ok != tt.ok || score != tt.score {
				t.Errorf("ExtractScore(%q) = (%d, %v), want (%d, %v)", tt.text, score, ok, tt.score, tt.ok)
			}
		})
	}
}
