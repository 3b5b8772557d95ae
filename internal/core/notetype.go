package core

import (
	"fmt"
	"path"
	"regexp"
)

type NoteTypeName string

const (
	Glossary        NoteTypeName = "glossary"
	Procedure       NoteTypeName = "procedure"
	Hub             NoteTypeName = "hub"
	Activity        NoteTypeName = "activity"
	Troubleshooting NoteTypeName = "troubleshooting"
	Report          NoteTypeName = "report"
	Article         NoteTypeName = "article"
	DailyNote       NoteTypeName = "daily-note"
	WeeklyReport    NoteTypeName = "weekly-report"
	Titled          NoteTypeName = "titled"
	Fallback        NoteTypeName = "fallback"
)

// NoteTypeNames lists every note type in declaration order.
var NoteTypeNames = []NoteTypeName{
	Glossary,
	Procedure,
	Hub,
	Activity,
	Troubleshooting,
	Report,
	Article,
	DailyNote,
	WeeklyReport,
	Titled,
	Fallback,
}

// NoteType is a classification of notes based only on their path.
type NoteType struct {
	Name           NoteTypeName
	PrefixEmoji    *string
	CoverImagePath *string
	// A nil pattern matches every path
	PathPattern *regexp.Regexp
}

func (t *NoteType) String() string {
	return string(t.Name)
}

// Matches returns if a vault-relative path (using / as separator) belongs to this type.
func (t *NoteType) Matches(relativePath string) bool {
	if t.PathPattern == nil {
		return true
	}
	return t.PathPattern.MatchString(relativePath)
}

// Catalog is an ordered list of note types. The first matching type wins.
type Catalog []*NoteType

// Classify returns the note type of a vault-relative path, or nil for untyped notes.
func (c Catalog) Classify(relativePath string) *NoteType {
	for _, noteType := range c {
		if noteType.Matches(relativePath) {
			return noteType
		}
	}
	return nil
}

// Find returns the note type with the given name, or nil.
func (c Catalog) Find(name NoteTypeName) *NoteType {
	for _, noteType := range c {
		if noteType.Name == name {
			return noteType
		}
	}
	return nil
}

// Layout defines where the different kinds of notes live inside a vault.
type Layout struct {
	Notes       string `toml:"notes"`
	Articles    string `toml:"articles"`
	Daily       string `toml:"daily"`
	Weekly      string `toml:"weekly"`
	Attachments string `toml:"attachments"`
}

var DefaultLayout = Layout{
	Notes:       "Notes",
	Articles:    "Articles",
	Daily:       "Daily",
	Weekly:      "Weekly",
	Attachments: "Notes/attachments",
}

// DefaultCatalog returns the catalog of the default layout.
func DefaultCatalog() Catalog {
	return NewCatalog(DefaultLayout)
}

// NewCatalog declares the note types for a given layout.
// Catch-all types are declared last: titled notes before the generic fallback.
func NewCatalog(layout Layout) Catalog {
	notes := regexp.QuoteMeta(layout.Notes)
	cover := func(name NoteTypeName) *string {
		return stringPointer(path.Join(layout.Attachments, string(name)+".webp"))
	}
	prefixed := func(name NoteTypeName, emoji string) *NoteType {
		return &NoteType{
			Name:           name,
			PrefixEmoji:    stringPointer(emoji),
			CoverImagePath: cover(name),
			PathPattern:    regexp.MustCompile(fmt.Sprintf(`^%s/%s[^/]*\.md$`, notes, regexp.QuoteMeta(emoji))),
		}
	}

	return Catalog{
		prefixed(Glossary, "📘"),
		prefixed(Procedure, "📗"),
		prefixed(Hub, "📒"),
		prefixed(Activity, "📜"),
		prefixed(Troubleshooting, "📝"),
		prefixed(Report, "📰"),
		{
			Name:           Article,
			CoverImagePath: cover(Article),
			PathPattern:    regexp.MustCompile(fmt.Sprintf(`^%s/.+\.md$`, regexp.QuoteMeta(layout.Articles))),
		},
		{
			Name:        DailyNote,
			PathPattern: regexp.MustCompile(fmt.Sprintf(`^%s/\d{4}-\d{2}-\d{2}\.md$`, regexp.QuoteMeta(layout.Daily))),
		},
		{
			Name:        WeeklyReport,
			PathPattern: regexp.MustCompile(fmt.Sprintf(`^%s/\d{4}-W\d{2}\.md$`, regexp.QuoteMeta(layout.Weekly))),
		},
		{
			Name:        Titled,
			PathPattern: regexp.MustCompile(fmt.Sprintf(`^%s/[^/]+\.md$`, notes)),
		},
		{
			Name:        Fallback,
			PathPattern: regexp.MustCompile(fmt.Sprintf(`^%s/.+\.md$`, notes)),
		},
	}
}

/* Helpers */

func stringPointer(s string) *string {
	return &s
}

func intPointer(i int) *int {
	return &i
}
