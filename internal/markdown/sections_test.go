package markdown_test

import (
	"testing"

	"github.com/julien-sobczak/the-notelinter/internal/markdown"
	"github.com/julien-sobczak/the-notelinter/pkg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections(t *testing.T) {
	doc := markdown.Document(text.UnescapeTestContent(text.JoinLines(
		"# Title",       // 1
		"intro",         // 2
		"## MOC",        // 3
		"- a",           // 4
		"”””",           // 5
		"# not heading", // 6
		"”””",           // 7
		"## Other",      // 8
		"text",          // 9
		"### Sub",       // 10
		"x",             // 11
	)))

	sections := doc.Sections()
	require.Len(t, sections, 4)

	assert.Equal(t, "# Title", sections[0].String())
	assert.Equal(t, 1, sections[0].Line)
	assert.Equal(t, 11, sections[0].EndLine)

	assert.Equal(t, "MOC", sections[1].HeadingText)
	assert.Equal(t, 3, sections[1].Line)
	assert.Equal(t, 7, sections[1].EndLine)
	assert.Equal(t, markdown.Document(text.UnescapeTestContent("- a\n”””\n# not heading\n”””")), sections[1].Content)

	assert.Equal(t, "Other", sections[2].HeadingText)
	assert.Equal(t, markdown.Document("text\n### Sub\nx"), sections[2].Content)

	assert.Equal(t, 3, sections[3].HeadingLevel)
	assert.Equal(t, markdown.Document("x"), sections[3].Content)

	moc := doc.FindSection(2, "MOC")
	require.NotNil(t, moc)
	assert.Equal(t, 3, moc.Line)
	assert.Nil(t, doc.FindSection(1, "MOC"))
}
