package markdown

import (
	"regexp"
	"sort"
	"strings"

	"github.com/julien-sobczak/the-notelinter/pkg/text"
)

// Unlike FenceTracker, any fence line toggles the state.
var regexFenceToggle = regexp.MustCompile("^[`~]{3,}")

// Position locates a character in a document. Both fields are 0-based.
type Position struct {
	Line int
	Ch   int
}

// TextReplacement replaces the text between From (included) and To (excluded).
type TextReplacement struct {
	From Position
	To   Position
	Text string
}

// FormatLineBreaks computes the edits normalizing blank lines before the next content line:
// two blank lines before a level 1 heading, one before a level 2 heading, none otherwise.
// Runs of blank lines inside fenced code blocks or at the end of the document are ignored.
// Runs already in the expected shape still produce a (no-op) replacement.
func FormatLineBreaks(md string) []TextReplacement {
	var replacements []TextReplacement

	insideFence := false
	iterator := Document(md).Iterator()
	for iterator.HasNext() {
		line := iterator.Peek()

		if regexFenceToggle.MatchString(line.Text) {
			insideFence = !insideFence
			iterator.Next()
			continue
		}
		if insideFence || !line.IsBlank() {
			iterator.Next()
			continue
		}

		iterator.SkipBlankLines()
		if !iterator.HasNext() {
			// Trailing blank lines
			break
		}
		next := iterator.Peek()

		replacements = append(replacements, TextReplacement{
			From: Position{Line: line.Index(), Ch: 0},
			To:   Position{Line: next.Index() - 1, Ch: 0},
			Text: lineBreaksBefore(next.Text),
		})
	}

	return replacements
}

func lineBreaksBefore(line string) string {
	switch {
	case strings.HasPrefix(line, "# "):
		return "\n\n"
	case strings.HasPrefix(line, "## "):
		return "\n"
	default:
		return ""
	}
}

// ApplyReplacements applies the edits on the document.
// Edits are applied from the last to the first so that positions stay valid.
func ApplyReplacements(md string, replacements []TextReplacement) string {
	sorted := make([]TextReplacement, len(replacements))
	copy(sorted, replacements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return offsetOf(md, sorted[i].From) > offsetOf(md, sorted[j].From)
	})

	for _, replacement := range sorted {
		from := offsetOf(md, replacement.From)
		to := offsetOf(md, replacement.To)
		md = text.ReplaceAt(md, text.Range{Start: from, End: to - 1}, replacement.Text)
	}
	return md
}

func offsetOf(md string, position Position) int {
	offsets := text.LineOffsets(md)
	if position.Line >= len(offsets) {
		return len(md)
	}
	return min(offsets[position.Line]+position.Ch, len(md))
}
