package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyLinter(t *testing.T) {
	var tests = []struct {
		name       string
		path       string
		content    string
		properties map[string]any
		expected   []RuleCode
	}{
		{
			name:     "Untyped note",
			path:     "README.md",
			content:  "# README\n",
			expected: nil,
		},
		{
			name:     "Properties from Front Matter",
			path:     "Notes/📝Broken build.md",
			content:  "---\ndescription: The CI is red\n---\n# 📝Broken build\n",
			expected: []RuleCode{NoCover, NoStatus},
		},
		{
			name:     "Invalid Front Matter",
			path:     "Notes/📘Go.md",
			content:  "---\n[unclosed\n---\n# 📘Go\n",
			expected: []RuleCode{NoDescription, NoCover, NoURL},
		},
		{
			name:    "Explicit properties",
			path:    "Notes/📘Go.md",
			content: "# 📘Go\n",
			properties: map[string]any{
				"description": "A programming language",
				"cover":       "Notes/attachments/glossary.webp",
				"url":         "https://go.dev",
			},
			expected: nil,
		},
		{
			name:    "Empty values",
			path:    "Notes/📘Go.md",
			content: "---\ndescription: A programming language\n---\n",
			properties: map[string]any{
				"description": "  ",
				"cover":       nil,
				"url":         []any{},
			},
			expected: []RuleCode{NoDescription, NoCover, NoURL},
		},
		{
			name:     "Titled note",
			path:     "Notes/Go.md",
			content:  "# Go\n",
			expected: []RuleCode{NoDescription},
		},
		{
			name:     "Daily note",
			path:     "Daily/2023-01-31.md",
			content:  "# 2023-01-31\n",
			expected: nil,
		},
	}
	linter := NewPropertyLinter(DefaultCatalog(), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := linter.Lint(LintArgs{
				Path:       tt.path,
				Content:    tt.content,
				Properties: tt.properties,
			})
			assert.Equal(t, tt.expected, codesOf(actual))
			for _, inspection := range actual {
				assert.Nil(t, inspection.LineNo)
				assert.Equal(t, Severity(inspection.Code, DefaultCatalog().Classify(tt.path).Name), inspection.Level)
			}
		})
	}
}

func TestPropertyLinterCoverFix(t *testing.T) {
	mutator := &propertyRecorder{}
	linter := NewPropertyLinter(DefaultCatalog(), mutator)

	actual := linter.Lint(LintArgs{
		Path:    "Notes/📝Broken build.md",
		Content: "# 📝Broken build\n",
	})
	require.Equal(t, []RuleCode{NoDescription, NoCover, NoStatus}, codesOf(actual))
	assert.False(t, actual[0].Fixable())
	assert.False(t, actual[2].Fixable())
	require.True(t, actual[1].Fixable())

	require.NoError(t, actual[1].Fix(context.Background()))
	assert.Equal(t, []string{"set Notes/📝Broken build.md cover"}, mutator.calls)
}

func TestPropertyLinterWithoutRules(t *testing.T) {
	linter := NewPropertyLinter(DefaultCatalog(), nil, WithoutRules(NoCover))
	actual := linter.Lint(LintArgs{
		Path:    "Notes/📘Go.md",
		Content: "# 📘Go\n",
	})
	assert.Equal(t, []RuleCode{NoDescription, NoURL}, codesOf(actual))
}

func TestMissingProperty(t *testing.T) {
	properties := map[string]any{
		"blank":  " \t",
		"null":   nil,
		"empty":  []any{},
		"text":   "Go",
		"number": 0,
		"list":   []any{"go"},
		"flag":   false,
	}
	assert.True(t, MissingProperty(properties, "absent"))
	assert.True(t, MissingProperty(properties, "blank"))
	assert.True(t, MissingProperty(properties, "null"))
	assert.True(t, MissingProperty(properties, "empty"))
	assert.False(t, MissingProperty(properties, "text"))
	assert.False(t, MissingProperty(properties, "number"))
	assert.False(t, MissingProperty(properties, "list"))
	assert.False(t, MissingProperty(properties, "flag"))
	assert.True(t, MissingProperty(nil, "text"))
}
