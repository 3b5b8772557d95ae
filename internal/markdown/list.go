package markdown

import (
	"regexp"
	"strings"
)

// Leading whitespace (ideographic space included), a bullet, and an optional checkbox.
var regexListPrefix = regexp.MustCompile(`^([ \t　]*[-*] +(?:\[.\](?: +|$))?)(.*)$`)

// ListPrefix splits a list item between its markup and its content.
type ListPrefix struct {
	Prefix  string
	Content string
}

// ParseListPrefix returns the list markup of a line.
// Lines that are not list items have an empty prefix.
func ParseListPrefix(line string) ListPrefix {
	match := regexListPrefix.FindStringSubmatch(line)
	if match == nil {
		return ListPrefix{Content: line}
	}
	return ListPrefix{
		Prefix:  match[1],
		Content: match[2],
	}
}

// ParseTags returns the names of the #tags present on a line (without the leading #).
// The tag name charset is not validated and a bare # gives an empty name.
func ParseTags(line string) []string {
	var tags []string
	for _, token := range strings.Split(line, " ") {
		if !strings.HasPrefix(token, "#") {
			continue
		}
		tags = append(tags, strings.TrimPrefix(token, "#"))
	}
	return tags
}
