package core

import (
	"context"
	"testing"

	"github.com/julien-sobczak/the-notelinter/pkg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentLinter(t *testing.T) {
	var tests = []struct {
		name     string
		path     string
		content  string
		expected []*Inspection // Fix is ignored
	}{
		{
			name:     "Untyped note",
			path:     "README.md",
			content:  "FIXME\n",
			expected: nil,
		},
		{
			name: "Link card in glossary",
			path: "Notes/📘Go.md",
			content: text.UnescapeTestContent(`
# 📘Go

<div class="link-card">
  <div class="link-card-title">Go</div>
</div>
`),
			expected: []*Inspection{
				{Code: DisallowedLinkCard, Level: Error, LineNo: intPointer(4), Offset: intPointer(11)},
				{Code: V1LinkCard, Level: Error, LineNo: intPointer(4), Offset: intPointer(11)},
			},
		},
		{
			name: "Link card with comment",
			path: "Articles/Go.md",
			content: text.UnescapeTestContent(`
<div class="link-card-v2">
</div>

> The official website
`),
			expected: nil,
		},
		{
			name: "Link card without comment",
			path: "Notes/📰Q1.md",
			content: text.UnescapeTestContent(`
<div class="link-card-v2">
</div>

A paragraph.
`),
			expected: []*Inspection{
				{Code: NoLinkComment, Level: Info, LineNo: intPointer(2), Offset: intPointer(1)},
			},
		},
		{
			name: "Valid MOC",
			path: "Notes/📒Go.md",
			content: text.UnescapeTestContent(`
# 📒Go

## MOC

- 📒**Related**
  - [[📒Rust]]
- 📜**Activities**
- 📝**Troubleshooting**

## Notes
`),
			expected: nil,
		},
		{
			name: "Invalid MOC",
			path: "Notes/📒Go.md",
			content: text.UnescapeTestContent(`
# 📒Go

## MOC

- 📜**Activities**
- 📒**Related**
`),
			expected: []*Inspection{
				{Code: InvalidMOC, Level: Error, LineNo: intPointer(4), Offset: intPointer(11)},
			},
		},
		{
			name: "Date footer",
			path: "Notes/Go.md",
			content: text.UnescapeTestContent(`
# Go

*Created: 2023-01-31*
*Updated: 2023-02-01*
`),
			expected: []*Inspection{
				{Code: V1DateFooter, Level: Warn, LineNo: intPointer(4), Offset: intPointer(7)},
			},
		},
		{
			name: "Date footer in daily note",
			path: "Daily/2023-01-31.md",
			content: text.UnescapeTestContent(`
*Created: 2023-01-31*
`),
			expected: nil,
		},
		{
			name: "Link ending with parenthesis",
			path: "Daily/2023-01-31.md",
			content: text.UnescapeTestContent(`
Read [Go](https://en.wikipedia.org/wiki/Go_(programming_language)) and [Rust](https://www.rust-lang.org).
`),
			expected: []*Inspection{
				{Code: LinkEndsWithParenthesis, Level: Warn, LineNo: intPointer(2), Offset: intPointer(1)},
			},
		},
		{
			name: "Image ending with parenthesis",
			path: "Articles/Go.md",
			content: text.UnescapeTestContent(`
![Gopher](https://commons.wikimedia.org/wiki/Gopher_(mascot))

See [Go](https://en.wikipedia.org/wiki/Go_(programming_language)).
![Logo](https://go.dev/logo.png)
`),
			expected: []*Inspection{
				{Code: LinkEndsWithParenthesis, Level: Warn, LineNo: intPointer(2), Offset: intPointer(1)},
				{Code: LinkEndsWithParenthesis, Level: Warn, LineNo: intPointer(4), Offset: intPointer(64)},
			},
		},
		{
			name: "FIXME outside code",
			path: "Notes/sub/Go.md",
			content: text.UnescapeTestContent(`
FIXME: complete
‛FIXME‛ in code

”””
FIXME
”””
`),
			expected: []*Inspection{
				{Code: DisallowedFixme, Level: Info, LineNo: intPointer(2), Offset: intPointer(1)},
			},
		},
		{
			name:     "FIXME in daily note",
			path:     "Daily/2023-01-31.md",
			content:  "FIXME\n",
			expected: nil,
		},
		{
			name:    "Front Matter shifts lines",
			path:    "Notes/📜Running.md",
			content: "---\nstatus: active\n---\nFIXME\n",
			expected: []*Inspection{
				{Code: DisallowedFixme, Level: Warn, LineNo: intPointer(4), Offset: intPointer(23)},
			},
		},
	}
	linter := NewContentLinter(DefaultCatalog(), nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := linter.Lint(LintArgs{
				Path:    tt.path,
				Content: tt.content,
			})
			assertInspections(t, tt.expected, actual)
		})
	}
}

func TestContentLinterUnresolvedLink(t *testing.T) {
	content := "# Go\n\nSee [[Known]], [[Unknown|alias]], [[#Heading]], [[Known#Heading]] and `[[InCode]]`.\n"
	resolver := resolverStub{"Known": true}

	t.Run("Without resolver", func(t *testing.T) {
		linter := NewContentLinter(DefaultCatalog(), nil, nil)
		actual := linter.Lint(LintArgs{Path: "Articles/Go.md", Content: content})
		assert.Empty(t, actual)
	})

	t.Run("Article", func(t *testing.T) {
		linter := NewContentLinter(DefaultCatalog(), resolver, nil)
		actual := linter.Lint(LintArgs{Path: "Articles/Go.md", Content: content})
		assertInspections(t, []*Inspection{
			{Code: UnresolvedLink, Level: Error, LineNo: intPointer(3), Offset: intPointer(21)},
		}, actual)
		assert.Equal(t, "[[Unknown|alias]]", content[*actual[0].Offset:*actual[0].Offset+17])
	})

	t.Run("Daily note", func(t *testing.T) {
		linter := NewContentLinter(DefaultCatalog(), resolver, nil)
		actual := linter.Lint(LintArgs{Path: "Daily/2023-01-31.md", Content: content})
		assert.Empty(t, actual)
	})
}

func TestContentLinterDateFooterFix(t *testing.T) {
	content := "# Go\n\n*Created: 2023-01-31*\n"

	t.Run("Without command runner", func(t *testing.T) {
		linter := NewContentLinter(DefaultCatalog(), nil, nil)
		actual := linter.Lint(LintArgs{Path: "Notes/Go.md", Content: content})
		require.Len(t, actual, 1)
		assert.False(t, actual[0].Fixable())
	})

	t.Run("With command runner", func(t *testing.T) {
		commands := &commandRecorder{}
		linter := NewContentLinter(DefaultCatalog(), nil, commands)
		actual := linter.Lint(LintArgs{Path: "Notes/Go.md", Content: content})
		require.Len(t, actual, 1)
		require.True(t, actual[0].Fixable())
		assert.Empty(t, commands.calls) // not until fixed

		require.NoError(t, actual[0].Fix(context.Background()))
		assert.Equal(t, []string{"migrate-date-footer Notes/Go.md"}, commands.calls)
	})
}

func TestContentLinterWithoutRules(t *testing.T) {
	content := "<div class=\"link-card\">\n</div>\n\nFIXME\n"

	linter := NewContentLinter(DefaultCatalog(), nil, nil)
	actual := linter.Lint(LintArgs{Path: "Notes/📘Go.md", Content: content})
	assert.Equal(t, []RuleCode{DisallowedLinkCard, V1LinkCard, DisallowedFixme}, codesOf(actual))

	linter = NewContentLinter(DefaultCatalog(), nil, nil, WithoutRules(DisallowedFixme, V1LinkCard))
	actual = linter.Lint(LintArgs{Path: "Notes/📘Go.md", Content: content})
	assert.Equal(t, []RuleCode{DisallowedLinkCard}, codesOf(actual))
}

func TestParseDateFooter(t *testing.T) {
	var tests = []struct {
		line     string
		expected *DateFooter
	}{
		{"*Created: 2023-01-31*", &DateFooter{Property: "created", Date: "2023-01-31"}},
		{"*updated 2023/02/01*", &DateFooter{Property: "updated", Date: "2023-02-01"}},
		{"  *Created：2023-01-31*  ", &DateFooter{Property: "created", Date: "2023-01-31"}},
		{"Created: 2023-01-31", nil},
		{"*Created: 31/01/2023*", nil},
		{"*Published: 2023-01-31*", nil},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			actual, ok := ParseDateFooter(tt.line)
			if tt.expected == nil {
				assert.False(t, ok)
				return
			}
			assert.True(t, ok)
			assert.Equal(t, *tt.expected, actual)
		})
	}
}

/* Test Helpers */

type resolverStub map[string]bool

func (r resolverStub) Resolve(title string, sourcePath string) bool {
	return r[title]
}

type commandRecorder struct {
	calls []string
	err   error
}

func (c *commandRecorder) RunCommand(ctx context.Context, commandID string, path string) error {
	c.calls = append(c.calls, commandID+" "+path)
	return c.err
}

type propertyRecorder struct {
	calls []string
	err   error
}

func (p *propertyRecorder) SetProperty(ctx context.Context, path string, key string, value any) error {
	p.calls = append(p.calls, "set "+path+" "+key)
	return p.err
}

func (p *propertyRecorder) RemoveProperty(ctx context.Context, path string, key string) error {
	p.calls = append(p.calls, "remove "+path+" "+key)
	return p.err
}

func codesOf(inspections []*Inspection) []RuleCode {
	var codes []RuleCode
	for _, inspection := range inspections {
		codes = append(codes, inspection.Code)
	}
	return codes
}

// assertInspections compares inspections without their message and fix.
func assertInspections(t *testing.T, expected []*Inspection, actual []*Inspection) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.Equal(t, expected[i].Code, actual[i].Code)
		assert.Equal(t, expected[i].Level, actual[i].Level)
		assert.Equal(t, expected[i].LineNo, actual[i].LineNo)
		assert.Equal(t, expected[i].Offset, actual[i].Offset)
		assert.NotEmpty(t, actual[i].Message)
	}
}
