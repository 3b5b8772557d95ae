package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUpFromGoldenFile(t *testing.T) {
	filename := SetUpFromGoldenFile(t)

	assert.Equal(t, "TestSetUpFromGoldenFile.md", filepath.Base(filename))
	bytes, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, GoldenFile(t), bytes)
}

func TestSetUpFromGoldenDir(t *testing.T) {
	dirname := SetUpFromGoldenDir(t)

	assert.Equal(t, "# 📘Vault\n\nA collection of notes.\n", ReadFile(t, filepath.Join(dirname, "Notes/📘Vault.md")))
	require.FileExists(t, filepath.Join(dirname, "Notes/attachments/glossary.webp"))

	// The copy can be edited without touching the golden directory
	require.NoError(t, os.WriteFile(filepath.Join(dirname, "Notes/📘Vault.md"), []byte("edited"), 0644))
	assert.Equal(t, "# 📘Vault\n\nA collection of notes.\n", ReadFile(t, filepath.Join("testdata", "TestSetUpFromGoldenDir", "Notes/📘Vault.md")))
}

func TestSetUpFromFileContent(t *testing.T) {
	filename := SetUpFromFileContent(t, "Notes/note.md", "# Note\n")
	assert.Equal(t, "# Note\n", ReadFile(t, filename))
}

func TestGoldenFile(t *testing.T) {
	content := GoldenFile(t)
	assert.Equal(t, "# TestGoldenFile\n\nHi!\n", string(content))
}

func TestGoldenFileNamed(t *testing.T) {
	content := GoldenFileNamed(t, "TestGoldenFileNamedWithAnotherName.md")
	assert.Equal(t, "# TestGoldenFileNamedWithAnotherName\n\nHello!\n", string(content))
}
