package security

import (
	"strings"
	"testing"
)

func TestSanitizeCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Trims whitespace", input: "  Paris  ", want: "Paris"},
		{name: "Drops null bytes", input: "Pa\x00ris", want: "Paris"},
		{name: "Plain text untouched", input: "Москва", want: "Москва"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeCell(tt.input); got != tt.want {
				t.Errorf("SanitizeCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeCell_CapsLength(t *testing.T) {
	input := strings.Repeat("a", 2000)
	if got := SanitizeCell(input); len(got) != 1000 {
		t.Errorf("len(SanitizeCell(long)) = %d, want 1000", len(got))
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Removes tags", input: "<b>Paris</b>", want: "Paris"},
		{name: "Keeps entities as plain text", input: "Tom & Jerry", want: "Tom & Jerry"},
		{name: "Removes script", input: "<script>alert(1)</script>42", want: "42"},
		{name: "Plain text untouched", input: "Правильный ответ", want: "Правильный ответ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.input); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
