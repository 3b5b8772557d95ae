package text

import "strings"

// Markdown fences and inline code use backticks but Go raw strings cannot contain them.
// Tests write ” (or ‛) instead and convert the content before use.
var testContentReplacer = strings.NewReplacer(
	"”", "`",
	"‛", "`",
)

// UnescapeTestContent converts the backtick placeholders used in test fixtures.
//
// Example: ”””go becomes ```go
func UnescapeTestContent(content string) string {
	return testContentReplacer.Replace(content)
}

// JoinLines joins lines with a newline (no trailing newline).
// Convenient to write multi-line fixtures with explicit line numbers.
func JoinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}
