package markdown

import (
	"regexp"
	"strings"
)

// Order matters: bold must be handled before italic.
var regexDecorations = []*regexp.Regexp{
	regexp.MustCompile(`\*\*(.+?)\*\*`), // bold
	regexp.MustCompile(`__(.+?)__`),     // bold
	regexp.MustCompile(`\*(.+?)\*`),     // italic
	regexp.MustCompile(`_(.+?)_`),       // italic
	regexp.MustCompile(`~~(.+?)~~`),     // strikethrough
	regexp.MustCompile(`==(.+?)==`),     // highlight
}

// StripDecoration removes emphasis markers, line by line.
// Markers spanning multiple lines are left untouched.
func StripDecoration(md string) string {
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		for _, re := range regexDecorations {
			line = re.ReplaceAllString(line, "$1")
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
