package core

import (
	"fmt"
	"regexp"
	"strings"
)

// Legacy footer storing dates in the body. Ex: *Created: 2023-01-31*
var regexV1DateFooter = regexp.MustCompile(`(?i)^\*(created|updated)[:：]?\s*(\d{4})[-/](\d{2})[-/](\d{2})\*$`)

// DateFooter is a legacy date found in the body of a note.
type DateFooter struct {
	Property string // created or updated
	Date     string // YYYY-MM-DD
}

// ParseDateFooter returns the legacy date defined on a line, if any.
func ParseDateFooter(line string) (DateFooter, bool) {
	match := regexV1DateFooter.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return DateFooter{}, false
	}
	return DateFooter{
		Property: strings.ToLower(match[1]),
		Date:     fmt.Sprintf("%s-%s-%s", match[2], match[3], match[4]),
	}, true
}
