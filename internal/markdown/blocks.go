package markdown

import (
	"bytes"
	"regexp"
	"strings"
)

// A fence line, optionally nested in a blockquote.
var regexFence = regexp.MustCompile("^(\\s{0,3}>\\s*)?([`~]{3,})")

var (
	regexOpeningTag = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9-]*)(?:\s[^<>]*)?>`)
	regexBareTag    = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9-]*(?:\s[^<>]*)?/?>`)
	regexInlineCode = regexp.MustCompile("`[^`\n]+`")
)

// FenceState describes the position of a line relatively to fenced code blocks.
type FenceState int

const (
	Outside FenceState = iota
	Opening
	Inside
	Closing
)

// InFence returns true for the fence lines and the lines between them.
func (s FenceState) InFence() bool {
	return s != Outside
}

// FenceTracker follows fenced code blocks line after line.
// Only one fence is tracked at a time: a fence closes with the same
// character repeated at least as many times as the opening fence.
type FenceTracker struct {
	marker   string // empty when outside a fence
	language string
}

// Feed consumes the next line.
func (f *FenceTracker) Feed(line string) FenceState {
	match := regexFence.FindStringSubmatch(line)
	if f.marker == "" {
		if match == nil {
			return Outside
		}
		f.marker = match[2]
		f.language = ""
		if info := strings.Fields(line[len(match[0]):]); len(info) > 0 {
			f.language = info[0]
		}
		return Opening
	}
	if match != nil && closesFence(f.marker, match[2]) {
		f.marker = ""
		return Closing
	}
	return Inside
}

// Inside returns true when the last consumed line left a fence open.
func (f *FenceTracker) Inside() bool {
	return f.marker != ""
}

// Language returns the info string of the currently opened fence.
func (f *FenceTracker) Language() string {
	return f.language
}

func closesFence(opening, candidate string) bool {
	if len(candidate) < len(opening) {
		return false
	}
	return strings.Trim(candidate, opening[:1]) == ""
}

// StripCodeAndHTMLBlocks removes fenced code blocks (fences included),
// HTML elements with their content, remaining bare tags, and inline code spans.
// An unclosed fence strips everything until the end of the text.
func StripCodeAndHTMLBlocks(md string) string {
	var kept []string
	var tracker FenceTracker
	for _, line := range strings.Split(md, "\n") {
		if tracker.Feed(line).InFence() {
			continue
		}
		kept = append(kept, line)
	}

	result := stripHTMLElements(strings.Join(kept, "\n"))
	result = regexBareTag.ReplaceAllString(result, "")
	result = regexInlineCode.ReplaceAllString(result, "")
	return result
}

// MaskCodeBlocks blanks lines inside fenced code blocks and inline code spans
// without moving the remaining text (line numbers and byte offsets are preserved).
func MaskCodeBlocks(md string) string {
	lines := strings.Split(md, "\n")
	var tracker FenceTracker
	for i, line := range lines {
		if tracker.Feed(line).InFence() {
			lines[i] = strings.Repeat(" ", len(line))
			continue
		}
		lines[i] = regexInlineCode.ReplaceAllStringFunc(line, func(span string) string {
			return strings.Repeat(" ", len(span))
		})
	}
	return strings.Join(lines, "\n")
}

// stripHTMLElements removes elements from their opening tag to the last
// matching closing tag until no element remains.
func stripHTMLElements(md string) string {
	for {
		next, changed := stripFirstHTMLElement(md)
		if !changed {
			return md
		}
		md = next
	}
}

func stripFirstHTMLElement(md string) (string, bool) {
	for _, loc := range regexOpeningTag.FindAllStringSubmatchIndex(md, -1) {
		if strings.HasSuffix(md[loc[0]:loc[1]], "/>") {
			continue
		}
		closing := "</" + md[loc[2]:loc[3]] + ">"
		end := strings.LastIndex(md[loc[1]:], closing)
		if end == -1 {
			continue
		}
		end += loc[1] + len(closing)
		return md[:loc[0]] + md[end:], true
	}
	return md, false
}

// CodeBlock represents a code block inside a Markdown document
type CodeBlock struct {
	Line     int // 1-based line of the opening fence
	EndLine  int // 1-based line of the closing fence
	Language string
	Source   string
}

// ExtractCodeBlocks extracts all closed code blocks present in a Markdown document
func (m Document) ExtractCodeBlocks() []*CodeBlock {
	var results []*CodeBlock

	var tracker FenceTracker
	var current *CodeBlock
	var source bytes.Buffer

	for i, line := range m.Lines() {
		switch tracker.Feed(line) {
		case Opening:
			current = &CodeBlock{
				Line:     i + 1,
				Language: tracker.Language(),
			}
			source.Reset()
		case Inside:
			source.WriteString(line)
			source.WriteRune('\n')
		case Closing:
			current.EndLine = i + 1
			current.Source = source.String()
			results = append(results, current)
			current = nil
		}
	}

	return results
}
