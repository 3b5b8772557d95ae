package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/julien-sobczak/the-notelinter/pkg/text"
)

var regexWikiLink = regexp.MustCompile(`\[\[(.*?)\]\]`)

// WikiLink is an internal link.
// See https://help.obsidian.md/Linking+notes+and+files/Internal+links
type WikiLink struct {
	Title string
	Alias string
	// Location of the whole [[...]] token (end inclusive)
	Range text.Range
}

// GetWikiLinks returns every [[...]] token, in order of occurrence.
// The content is split on the first | between the title and the alias.
func GetWikiLinks(md string) []WikiLink {
	var results []WikiLink
	for _, match := range text.MatchAllWithLocation(md, regexWikiLink) {
		link := WikiLink{
			Title: match.Text,
			Range: match.Range,
		}
		if title, alias, ok := strings.Cut(match.Text, "|"); ok {
			link.Title = title
			link.Alias = alias
		}
		results = append(results, link)
	}
	return results
}

// Anchored indicates if a link points to a section in the current file. (ex: [[#A section below]])
func (w WikiLink) Anchored() bool {
	return strings.HasPrefix(w.Title, "#")
}

// Path returns the link without the optional fragment (#heading or #^block).
func (w WikiLink) Path() string {
	path, _, _ := strings.Cut(w.Title, "#")
	return strings.TrimSpace(path)
}

// Section returns the fragment part of the link.
func (w WikiLink) Section() string {
	_, section, _ := strings.Cut(w.Title, "#")
	return section
}

// Piped indicates if a text is present to describe the link. (ex: [[link|A text]])
func (w WikiLink) Piped() bool {
	return w.Alias != ""
}

// Text returns the text displayed for the link.
func (w WikiLink) Text() string {
	if w.Piped() {
		return w.Alias
	}
	return w.Title
}

func (w WikiLink) String() string {
	if w.Piped() {
		return fmt.Sprintf("[[%s|%s]]", w.Title, w.Alias)
	}
	return fmt.Sprintf("[[%s]]", w.Title)
}

// ReplaceWikiLinks rewrites every wikilink using the given function.
// Links are replaced from the last to the first so that the ranges stay valid.
func ReplaceWikiLinks(md string, replace func(link WikiLink) string) string {
	links := GetWikiLinks(md)
	for i := len(links) - 1; i >= 0; i-- {
		md = text.ReplaceAt(md, links[i].Range, replace(links[i]))
	}
	return md
}
