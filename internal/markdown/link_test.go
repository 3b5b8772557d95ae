package markdown_test

import (
	"testing"

	"github.com/julien-sobczak/the-notelinter/internal/markdown"
	"github.com/julien-sobczak/the-notelinter/pkg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink(t *testing.T) {
	link := markdown.Link{Text: "External URL", URL: "https://www.google.com"}
	assert.False(t, link.Internal())
	assert.Equal(t, "[External URL](https://www.google.com)", link.String())

	link = markdown.Link{Text: "Local file", URL: "file.md", Title: "Title"}
	assert.True(t, link.Internal())
	assert.Equal(t, `[Local file](file.md "Title")`, link.String())

	link = markdown.Link{Text: "File protocol", URL: "file:///home/me/file.md"}
	assert.True(t, link.Internal())
}

func TestLinks(t *testing.T) {

	t.Run("Syntaxes", func(t *testing.T) {
		doc := markdown.Document(`
[text](https://github.com)
[some text](./some-file.txt)
[text](file.md "Title")
[text](https://github.com#anchor "A long title")
			`)

		actual := doc.Links()
		expected := []markdown.Link{
			{Text: "text", URL: "https://github.com", Line: 2},
			{Text: "some text", URL: "./some-file.txt", Line: 3},
			{Text: "text", URL: "file.md", Title: "Title", Line: 4},
			{Text: "text", URL: "https://github.com#anchor", Title: "A long title", Line: 5},
		}
		assert.Equal(t, expected, actual)
	})

	t.Run("Parentheses", func(t *testing.T) {
		doc := markdown.Document("See [Go](https://en.wikipedia.org/wiki/Go_(programming_language)) now")
		actual := doc.Links()
		require.Len(t, actual, 1)
		assert.Equal(t, "https://en.wikipedia.org/wiki/Go_(programming_language)", actual[0].URL)
	})

	t.Run("Code and embeds", func(t *testing.T) {
		doc := markdown.Document(text.UnescapeTestContent(text.JoinLines(
			"”””",
			"[ignored](http://a)",
			"”””",
			"‛[ignored](http://b)‛ ![image](cat.png) [kept](http://c)",
		)))
		actual := doc.Links()
		require.Len(t, actual, 1)
		assert.Equal(t, markdown.Link{Text: "kept", URL: "http://c", Line: 4}, actual[0])

		embedded := doc.EmbeddedLinks()
		require.Len(t, embedded, 1)
		assert.Equal(t, "cat.png", embedded[0].URL)
	})
}
