package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/julien-sobczak/the-notelinter/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestDisabledRules(t *testing.T) {
	disabled, err := disabledRules("all", []core.RuleCode{core.NoURL})
	require.NoError(t, err)
	assert.Equal(t, []core.RuleCode{core.NoURL}, disabled)

	disabled, err = disabledRules("no-cover, disallowed-fixme", nil)
	require.NoError(t, err)
	assert.NotContains(t, disabled, core.NoCover)
	assert.NotContains(t, disabled, core.DisallowedFixme)
	assert.Len(t, disabled, len(core.RuleCodes())-2)

	_, err = disabledRules("no-such-rule", nil)
	assert.Error(t, err)
}

func TestFormatInspections(t *testing.T) {
	assert.Equal(t, "", formatInspections("Notes/📘Go.md", nil, false))

	inspections := []*core.Inspection{
		{
			Code:    core.V1DateFooter,
			Message: "date footer is deprecated",
			Level:   core.Warn,
			LineNo:  intPointer(12),
			Fix:     func(ctx context.Context) error { return nil },
		},
		{
			Code:    core.NoURL,
			Message: `missing property "url"`,
			Level:   core.Error,
		},
	}
	expected := "Notes/📘Go.md\n" +
		"    12  WARN   v1-date-footer  date footer is deprecated (fixable)\n" +
		"     -  ERROR  no-url  missing property \"url\"\n"
	assert.Equal(t, expected, formatInspections("Notes/📘Go.md", inspections, false))

	assert.Contains(t, formatInspections("Notes/📘Go.md", inspections, true), "(fixed)")

	assert.Equal(t, "2 note(s) checked: 1 error(s), 1 warning(s), 0 info", formatSummary(2, core.CountByLevel(inspections)))
}

func TestUnfixedInspections(t *testing.T) {
	fixable := &core.Inspection{
		Code:  core.V1DateFooter,
		Level: core.Warn,
		Fix:   func(ctx context.Context) error { return nil },
	}
	manual := &core.Inspection{Code: core.NoURL, Level: core.Error}
	inspections := []*core.Inspection{fixable, manual}

	t.Run("Fixes succeeded", func(t *testing.T) {
		assert.Equal(t, []*core.Inspection{manual}, unfixedInspections(inspections, true))
	})

	t.Run("Fixes failed", func(t *testing.T) {
		// A failed fix leaves the issue in the note
		assert.Equal(t, inspections, unfixedInspections(inspections, false))
		output := formatInspections("Notes/Go.md", inspections, false)
		assert.Contains(t, output, "(fixable)")
		assert.NotContains(t, output, "(fixed)")
	})
}

func TestFormatNote(t *testing.T) {
	input := "---\ntitle: Tables\n---\n# T\ntext\n\n\n\n## S\n| a | b |\n|-|-|\n"
	expected := "---\ntitle: Tables\n---\n# T\ntext\n\n\n## S\n| a | b |\n| - | - |\n"
	assert.Equal(t, expected, formatNote(input))
	assert.Equal(t, expected, formatNote(expected))
}

func TestExportNote(t *testing.T) {
	content := "---\ntitle: Go\n---\n# **Go** is [[📘Go|great]]\n"

	plain, err := exportNote(content, "plain")
	require.NoError(t, err)
	assert.Equal(t, "# Go is great", plain)

	slack, err := exportNote(content, "slack")
	require.NoError(t, err)
	assert.Equal(t, "# *Go* is great", slack)

	html, err := exportNote(content, "html")
	require.NoError(t, err)
	assert.Equal(t, "<h1><strong>Go</strong> is great</h1>", html)

	_, err = exportNote(content, "pdf")
	assert.Error(t, err)
}

func TestArgsToNotes(t *testing.T) {
	root := t.TempDir()
	for _, path := range []string{"Notes/📘Go.md", "Notes/Sub/📘Rust.md", "Articles/Go.md", "Templates/📘Template.md"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.Dir(path)), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, path), []byte("# Note\n"), 0644))
	}
	vault := core.NewVault(root, []string{"md"}, core.GlobPaths{"Templates/"})

	notes, err := argsToNotes(vault, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Articles/Go.md", "Notes/Sub/📘Rust.md", "Notes/📘Go.md"}, notes)

	notes, err = argsToNotes(vault, []string{filepath.Join(root, "Notes"), filepath.Join(root, "Notes/📘Go.md")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Notes/Sub/📘Rust.md", "Notes/📘Go.md"}, notes)

	_, err = argsToNotes(vault, []string{filepath.Join(root, "Templates")})
	assert.Error(t, err)
}

func intPointer(i int) *int {
	return &i
}
