package text

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Range locates a substring inside a text.
// Both offsets are byte offsets and End is inclusive (the last matched byte).
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Match is a located regex match.
type Match struct {
	Text  string
	Range Range
}

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// TrimExtension removes the extension from a file name or file path.
func TrimExtension(path string) string {
	path = strings.TrimSuffix(path, string(filepath.Separator))
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// MatchAllLiteral returns the full text of every non-overlapping match, in order of occurrence.
func MatchAllLiteral(text string, re *regexp.Regexp) []string {
	return re.FindAllString(text, -1)
}

// MatchAllCapture returns the first capture group of every match.
// The pattern must define exactly one capturing group.
func MatchAllCapture(text string, re *regexp.Regexp) []string {
	var results []string
	for _, match := range re.FindAllStringSubmatch(text, -1) {
		if len(match) < 2 {
			continue
		}
		results = append(results, match[1])
	}
	return results
}

// MatchAllWithLocation is similar to MatchAllCapture but also returns where every match is located.
// The range covers the full match (not only the group) and its end is inclusive.
// When the pattern has no capturing group, the full match is returned as text.
func MatchAllWithLocation(text string, re *regexp.Regexp) []Match {
	var results []Match
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		value := text[loc[0]:loc[1]]
		if len(loc) >= 4 && loc[2] != -1 {
			value = text[loc[2]:loc[3]]
		}
		results = append(results, Match{
			Text: value,
			Range: Range{
				Start: loc[0],
				End:   loc[1] - 1,
			},
		})
	}
	return results
}

// ReplaceAt replaces the bytes between r.Start and r.End (both included) by replacement.
// Offsets outside the text are clamped.
func ReplaceAt(base string, r Range, replacement string) string {
	start := max(r.Start, 0)
	end := min(r.End+1, len(base))
	if start > len(base) {
		start = len(base)
	}
	if end < start {
		end = start
	}
	return base[:start] + replacement + base[end:]
}

// CharWidth returns an approximate display width of a text.
//
// Every UTF-16 code unit counts for 1 when its code point is ASCII and for 2 otherwise.
// It is not a grapheme-aware width but good enough to align CJK tables.
func CharWidth(text string) int {
	width := 0
	for _, r := range text {
		switch {
		case r <= 0x7F:
			width++
		case r > 0xFFFF:
			// Surrogate pair = two code units
			width += 4
		default:
			width += 2
		}
	}
	return width
}

// Pad centers a text using the given character until the display width reaches length.
// When the padding is odd, the extra character goes to the end.
func Pad(text string, length int, char rune) string {
	missing := length - CharWidth(text)
	if missing <= 0 {
		return text
	}
	fill := string(char)
	left := missing / 2
	right := missing - left
	return strings.Repeat(fill, left) + text + strings.Repeat(fill, right)
}

// PadEnd appends the given character until the display width reaches length.
func PadEnd(text string, length int, char rune) string {
	missing := length - CharWidth(text)
	if missing <= 0 {
		return text
	}
	return text + strings.Repeat(string(char), missing)
}

// LineOffsets returns the byte offset where every line starts.
func LineOffsets(text string) []int {
	offsets := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// LineAt returns the 1-based line number containing the given byte offset.
func LineAt(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	return strings.Count(text[:offset], "\n") + 1
}
