package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

// SanitizeCell cleans a spreadsheet cell before it becomes question data:
// trims whitespace, drops null bytes and caps the length.
func SanitizeCell(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")

	if len(input) > 1000 {
		input = input[:1000]
	}

	return input
}

// StripHTML removes all HTML markup, returning plain text. Question banks
// come from third-party files, so their text is stripped before it is ever
// sent to a chat. The sanitizer entity-escapes its output, which plain-text
// messages must not carry, hence the unescape.
func StripHTML(input string) string {
	return html.UnescapeString(htmlPolicy.Sanitize(input))
}
