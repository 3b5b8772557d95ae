package markdown

import (
	"fmt"
	"strings"
)

// Section is a heading with the lines following it until the next heading of the same or upper level.
type Section struct {
	HeadingText  string
	HeadingLevel int
	Line         int // 1-based line of the heading
	EndLine      int // 1-based, inclusive
	Content      Document
}

func (s Section) String() string {
	return fmt.Sprintf("%s %s", strings.Repeat("#", s.HeadingLevel), s.HeadingText)
}

// Sections returns every section of the document in order of appearance.
// Headings inside fenced code blocks are ignored.
func (m Document) Sections() []*Section {
	var sections []*Section
	var open []*Section

	lines := m.Lines()
	closeUntil := func(level int, lastLine int) {
		remaining := open[:0]
		for _, section := range open {
			if section.HeadingLevel >= level {
				section.EndLine = lastLine
				section.Content = Document(strings.Join(lines[section.Line:lastLine], "\n"))
				continue
			}
			remaining = append(remaining, section)
		}
		open = remaining
	}

	var tracker FenceTracker
	for i, line := range lines {
		if tracker.Feed(line).InFence() {
			continue
		}
		ok, headingText, headingLevel := IsHeading(line)
		if !ok {
			continue
		}
		closeUntil(headingLevel, i)
		section := &Section{
			HeadingText:  strings.TrimSpace(headingText),
			HeadingLevel: headingLevel,
			Line:         i + 1,
		}
		sections = append(sections, section)
		open = append(open, section)
	}
	closeUntil(1, len(lines))

	return sections
}

// FindSection returns the first section with the given heading, or nil.
func (m Document) FindSection(level int, headingText string) *Section {
	for _, section := range m.Sections() {
		if section.HeadingLevel == level && section.HeadingText == headingText {
			return section
		}
	}
	return nil
}
