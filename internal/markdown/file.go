package markdown

import (
	"fmt"
	"os"
	"strings"
)

const frontMatterDelimiter = "---"

// File is a Markdown file split between its Front Matter and its body.
type File struct {
	AbsolutePath string
	FrontMatter  FrontMatter
	Body         Document
	BodyLine     int // 1-based line where the body starts in the file
}

func (m File) String() string {
	return fmt.Sprintf("Markdown file %q", m.AbsolutePath)
}

// ParseFile parses a Markdown file.
func ParseFile(path string) (*File, error) {
	contentAsBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseContent(path, string(contentAsBytes)), nil
}

// ParseContent splits a raw note between its optional Front Matter and its body.
// The Front Matter must start on the first line.
func ParseContent(path string, content string) *File {
	frontMatter, body, bodyLine := splitFrontMatter(content)
	return &File{
		AbsolutePath: path,
		FrontMatter:  frontMatter,
		Body:         body,
		BodyLine:     bodyLine,
	}
}

func splitFrontMatter(content string) (FrontMatter, Document, int) {
	lines := strings.SplitAfter(content, "\n")
	if len(lines) == 0 || trimEOL(lines[0]) != frontMatterDelimiter {
		return "", Document(content), 1
	}
	var rawFrontMatter strings.Builder
	for i := 1; i < len(lines); i++ {
		if trimEOL(lines[i]) == frontMatterDelimiter {
			return FrontMatter(rawFrontMatter.String()), Document(strings.Join(lines[i+1:], "")), i + 2
		}
		rawFrontMatter.WriteString(lines[i])
	}
	// Unclosed Front Matter = no Front Matter
	return "", Document(content), 1
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}

// Content reassembles the Front Matter and the body.
func (m *File) Content() string {
	if m.FrontMatter == "" {
		return string(m.Body)
	}
	frontMatter := string(m.FrontMatter)
	if !strings.HasSuffix(frontMatter, "\n") {
		frontMatter += "\n"
	}
	return frontMatterDelimiter + "\n" + frontMatter + frontMatterDelimiter + "\n" + string(m.Body)
}

// Properties returns the Front Matter attributes (empty when no Front Matter is present).
func (m *File) Properties() (map[string]any, error) {
	return m.FrontMatter.AsMap()
}

// SetProperty defines a Front Matter attribute.
func (m *File) SetProperty(key string, value any) error {
	frontMatter, err := m.FrontMatter.Set(key, value)
	if err != nil {
		return fmt.Errorf("unable to set %q in %s: %w", key, m.AbsolutePath, err)
	}
	m.FrontMatter = frontMatter
	return nil
}

// RemoveProperty deletes a Front Matter attribute.
func (m *File) RemoveProperty(key string) error {
	frontMatter, err := m.FrontMatter.Remove(key)
	if err != nil {
		return fmt.Errorf("unable to remove %q in %s: %w", key, m.AbsolutePath, err)
	}
	m.FrontMatter = frontMatter
	return nil
}

// Save writes the file back to disk.
func (m *File) Save() error {
	info, err := os.Stat(m.AbsolutePath)
	if err != nil {
		return err
	}
	return os.WriteFile(m.AbsolutePath, []byte(m.Content()), info.Mode())
}
