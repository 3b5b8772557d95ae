package markdown

import (
	"strings"
)

// Paragraph is a run of consecutive non-blank lines.
type Paragraph struct {
	StartLine int // 0-based
	EndLine   int // 0-based, inclusive
	Text      string
}

// FindParagraphAtLine returns the paragraph containing the given 0-based line,
// or nil when the line is blank or out of range.
func FindParagraphAtLine(md string, lineNo int) *Paragraph {
	iterator := Document(md).Iterator()
	line := iterator.At(lineNo)
	if line.Index() < 0 || line.IsBlank() {
		return nil
	}

	start := line
	for !start.IsFirst() && !start.Prev().IsBlank() {
		start = start.Prev()
	}
	end := line
	for !end.IsLast() && !end.Next().IsBlank() {
		end = end.Next()
	}

	lines := strings.Split(md, "\n")
	return &Paragraph{
		StartLine: start.Index(),
		EndLine:   end.Index(),
		Text:      strings.Join(lines[start.Index():end.Index()+1], "\n"),
	}
}
