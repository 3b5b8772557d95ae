package core

import (
	"strings"

	"github.com/julien-sobczak/the-notelinter/internal/markdown"
	"github.com/julien-sobczak/the-notelinter/pkg/text"
)

// lintedNote caches the parsing shared by the rules of a lint pass.
type lintedNote struct {
	args     LintArgs
	noteType *NoteType
	file     *markdown.File
	// Byte offset of the body inside the content
	bodyOffset int
	// Body with code blocks and inline code blanked
	masked      string
	maskedLines []string
	lineOffsets []int
}

func newLintedNote(args LintArgs, noteType *NoteType) *lintedNote {
	file := markdown.ParseContent(args.Path, args.Content)
	masked := markdown.MaskCodeBlocks(string(file.Body))
	return &lintedNote{
		args:        args,
		noteType:    noteType,
		file:        file,
		bodyOffset:  len(args.Content) - len(file.Body),
		masked:      masked,
		maskedLines: strings.Split(masked, "\n"),
		lineOffsets: text.LineOffsets(masked),
	}
}

// lineNo converts a 0-based line index in the body to a 1-based line number in the content.
func (n *lintedNote) lineNo(bodyIndex int) *int {
	return intPointer(n.file.BodyLine + bodyIndex)
}

// offset converts a byte offset in the body to a byte offset in the content.
func (n *lintedNote) offset(bodyOffset int) *int {
	return intPointer(n.bodyOffset + bodyOffset)
}

// lineAt returns the 1-based line number in the content of a body offset.
func (n *lintedNote) lineAt(bodyOffset int) *int {
	return n.lineNo(text.LineAt(n.masked, bodyOffset) - 1)
}

// startOfLine returns the content offset of the given 0-based body line.
func (n *lintedNote) startOfLine(bodyIndex int) *int {
	return n.offset(n.lineOffsets[bodyIndex])
}
