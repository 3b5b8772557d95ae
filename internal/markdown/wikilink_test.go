package markdown_test

import (
	"strings"
	"testing"

	"github.com/julien-sobczak/the-notelinter/internal/markdown"
	"github.com/julien-sobczak/the-notelinter/pkg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWikiLinks(t *testing.T) {
	input := "[[Obsidian|OBS]] and [[Vault]]"
	actual := markdown.GetWikiLinks(input)
	expected := []markdown.WikiLink{
		{Title: "Obsidian", Alias: "OBS", Range: text.Range{Start: 0, End: 15}},
		{Title: "Vault", Alias: "", Range: text.Range{Start: 21, End: 29}},
	}
	assert.Equal(t, expected, actual)

	// The range covers the whole token
	for _, link := range actual {
		assert.Equal(t, link.String(), input[link.Range.Start:link.Range.End+1])
	}

	t.Run("Edge cases", func(t *testing.T) {
		actual := markdown.GetWikiLinks("![[image.png]] [[a|b|c]] [[x\ny]]")
		require.Len(t, actual, 2)
		assert.Equal(t, "image.png", actual[0].Title)
		// Only the first pipe separates the alias
		assert.Equal(t, "a", actual[1].Title)
		assert.Equal(t, "b|c", actual[1].Alias)
	})

	t.Run("No match", func(t *testing.T) {
		assert.Empty(t, markdown.GetWikiLinks("no [link] here"))
	})
}

func TestWikiLink(t *testing.T) {
	w := markdown.WikiLink{
		Title: "path/to/file#A section",
	}
	assert.Equal(t, "path/to/file", w.Path())
	assert.Equal(t, "A section", w.Section())
	assert.False(t, w.Anchored())
	assert.False(t, w.Piped())
	assert.Equal(t, "path/to/file#A section", w.Text())

	w = markdown.WikiLink{
		Title: "#^block",
		Alias: "A Block",
	}
	assert.Equal(t, "", w.Path())
	assert.Equal(t, "^block", w.Section())
	assert.True(t, w.Anchored())
	assert.True(t, w.Piped())
	assert.Equal(t, "A Block", w.Text())
	assert.Equal(t, "[[#^block|A Block]]", w.String())
}

func TestReplaceWikiLinks(t *testing.T) {
	actual := markdown.ReplaceWikiLinks("See [[Go|golang]] or [[Rust]].", func(link markdown.WikiLink) string {
		return "*" + strings.ToUpper(link.Text()) + "*"
	})
	assert.Equal(t, "See *GOLANG* or *RUST*.", actual)
}
