package transcript

import "testing"

func TestNormalizeSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t\n  ", ""},
		{"adds period and trailing space", "Hello world", "Hello world. "},
		{"keeps existing period", "Hello world.", "Hello world. "},
		{"keeps exclamation", "Stop right there!", "Stop right there! "},
		{"keeps question mark", "Are you sure?", "Are you sure? "},
		{"splits multiple sentences", "one. two! three?", "one. two! three? "},
		{"collapses internal whitespace", "too   many \t spaces", "too many spaces. "},
		{"collapses newlines", "line one\nline two", "line one line two. "},
		{"trims around punctuation", "  first .  second  ", "first. second. "},
		{"drops empty sentences", "...", ""},
		{"preserves case as spoken", "hello world", "hello world. "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSentences(tt.in); got != tt.want {
				t.Errorf("NormalizeSentences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
