package text

import (
	"strings"
)

type Line struct {
	Text   string
	Number int // 1-based
	next   *Line
	prev   *Line
}

// Null Object pattern.
// Useful to check l.Next().Next().IsBlank() => true even if l is the last line
var MissingLine = Line{
	Text:   "",
	Number: -1,
}

func (l Line) IsBlank() bool {
	return IsBlank(l.Text)
}

// Index returns the 0-based position of the line (-1 for the missing line).
func (l Line) Index() int {
	if l.Number < 0 {
		return -1
	}
	return l.Number - 1
}

func (l Line) Next() Line {
	if l.next == nil {
		return MissingLine
	}
	return *l.next
}

func (l Line) Prev() Line {
	if l.prev == nil {
		return MissingLine
	}
	return *l.prev
}

func (l Line) IsFirst() bool {
	return l.prev == nil
}

func (l Line) IsLast() bool {
	return l.next == nil
}

// LineIterator implements the Iterator pattern to iterate over text lines.
type LineIterator struct {
	index int
	lines []*Line
}

func (l *LineIterator) HasNext() bool {
	return l.index < len(l.lines)
}

// Same as Next but does not move the iterator
func (l *LineIterator) Peek() Line {
	if l.HasNext() {
		return *l.lines[l.index]
	}
	return MissingLine
}

func (l *LineIterator) Next() Line {
	if l.HasNext() {
		line := l.lines[l.index]
		l.index++
		return *line
	}
	return MissingLine
}

// At returns the line at the given 0-based index (or the null line when out of bounds).
func (l *LineIterator) At(index int) Line {
	if index < 0 || index >= len(l.lines) {
		return MissingLine
	}
	return *l.lines[index]
}

// Len returns the total number of lines.
func (l *LineIterator) Len() int {
	return len(l.lines)
}

// SkipBlankLines moves the iterator to the next non-blank line and returns how many lines were skipped.
func (l *LineIterator) SkipBlankLines() int {
	skipped := 0
	for l.HasNext() && l.Peek().IsBlank() {
		l.Next()
		skipped++
	}
	return skipped
}

func NewLineIteratorFromText(text string) *LineIterator {
	rawLines := strings.Split(text, "\n")

	lines := make([]*Line, 0, len(rawLines))
	for i, line := range rawLines {
		lines = append(lines, &Line{
			Number: i + 1,
			Text:   line,
		})
	}

	for i, line := range lines {
		if i > 0 {
			line.prev = lines[i-1]
		}
		if i < len(lines)-1 {
			line.next = lines[i+1]
		}
	}

	return &LineIterator{
		index: 0,
		lines: lines,
	}
}
