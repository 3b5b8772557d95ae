package markdown

import (
	"regexp"
	"strings"
)

var (
	regexWikiLinkWithAlias = regexp.MustCompile(`\[\[[^\[\]|]*\|([^\[\]]*?)\]\]`)
	regexWikiLinkNoAlias   = regexp.MustCompile(`\[\[([^\[\]|]*?)\]\]`)
	regexInlineLink        = regexp.MustCompile(`\[([^\[\]]+?)\]\([^()]*\)`)
	// Labels of a single character are kept to preserve [x] and [ ] checkboxes.
	regexBareLink = regexp.MustCompile(`\[([^\[\]]{2,})\]`)
)

// StripLinks replaces links by their visible text, line by line.
func StripLinks(md string) string {
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		line = regexWikiLinkWithAlias.ReplaceAllString(line, "$1")
		line = regexWikiLinkNoAlias.ReplaceAllString(line, "$1")
		line = regexInlineLink.ReplaceAllString(line, "$1")
		lines[i] = stripBareLinks(line)
	}
	return strings.Join(lines, "\n")
}

// stripBareLinks removes the brackets around [text] unless they follow a list bullet.
func stripBareLinks(line string) string {
	var sb strings.Builder
	last := 0
	for _, loc := range regexBareLink.FindAllStringSubmatchIndex(line, -1) {
		if loc[0] >= 2 {
			before := line[loc[0]-2 : loc[0]]
			if before == "- " || before == "* " {
				continue
			}
		}
		sb.WriteString(line[last:loc[0]])
		sb.WriteString(line[loc[2]:loc[3]])
		last = loc[1]
	}
	sb.WriteString(line[last:])
	return sb.String()
}
