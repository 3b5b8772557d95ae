package markdown

import (
	"regexp"
	"strings"

	gomarkdown "github.com/gomarkdown/markdown"
)

var regexBold = regexp.MustCompile(`\*\*(.+?)\*\*`)

// Transformer applies changes on a Markdown document
type Transformer func(document Document) (Document, error)

// Transform applies transformers successively to create a new Markdown document
func (m Document) Transform(transformers ...Transformer) (Document, error) {
	result := m
	for _, transformer := range transformers {
		resultTransformed, err := transformer(result)
		if err != nil {
			return m, err
		}
		result = resultTransformed
	}
	return result, nil
}

// MustTransform is similar to Transform but does not expect an error
func (m Document) MustTransform(transformers ...Transformer) Document {
	result, err := m.Transform(transformers...)
	if err != nil {
		panic(err)
	}
	return result
}

// Lift turns a plain text function into a Transformer.
func Lift(fn func(string) string) Transformer {
	return func(document Document) (Document, error) {
		return Document(fn(string(document))), nil
	}
}

// ToPlainText removes every markup supported by the parsers of this package.
func (m Document) ToPlainText() Document {
	return m.MustTransform(
		Lift(StripCodeAndHTMLBlocks),
		Lift(StripLinks),
		Lift(StripDecoration),
	)
}

// ToSlack converts a document to Slack mrkdwn.
// Wikilinks are replaced by their text and bold markers use a single asterisk.
func (m Document) ToSlack() Document {
	return m.MustTransform(
		Lift(func(md string) string {
			return ReplaceWikiLinks(md, func(link WikiLink) string {
				return link.Text()
			})
		}),
		Lift(func(md string) string {
			return regexBold.ReplaceAllString(md, "*$1*")
		}),
	)
}

// ToHTML renders the document. Wikilinks are rendered as their text.
func (m Document) ToHTML() string {
	md := ReplaceWikiLinks(string(m), func(link WikiLink) string {
		return link.Text()
	})
	html := gomarkdown.ToHTML([]byte(md), nil, nil)
	return strings.TrimSpace(string(html))
}
