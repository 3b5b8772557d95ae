package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/julien-sobczak/the-notelinter/internal/markdown"
	"github.com/julien-sobczak/the-notelinter/pkg/text"
	"golang.org/x/exp/slices"
)

// ContentLinter inspects the body of notes.
type ContentLinter struct {
	catalog  Catalog
	resolver LinkResolver
	commands CommandRunner
	options  linterOptions
}

// NewContentLinter creates a content linter.
// Without a resolver, links are not checked. Without a command runner, no fix is proposed.
func NewContentLinter(catalog Catalog, resolver LinkResolver, commands CommandRunner, opts ...LinterOption) *ContentLinter {
	return &ContentLinter{
		catalog:  catalog,
		resolver: resolver,
		commands: commands,
		options:  newLinterOptions(opts),
	}
}

type contentRule struct {
	code  RuleCode
	check func(l *ContentLinter, n *lintedNote) []*Inspection
}

// Same order as ContentRuleCodes
var contentRules = []contentRule{
	{code: DisallowedLinkCard, check: checkDisallowedLinkCard},
	{code: NoLinkComment, check: checkNoLinkComment},
	{code: V1LinkCard, check: checkV1LinkCard},
	{code: InvalidMOC, check: checkInvalidMOC},
	{code: V1DateFooter, check: checkV1DateFooter},
	{code: UnresolvedLink, check: checkUnresolvedLink},
	{code: LinkEndsWithParenthesis, check: checkLinkEndsWithParenthesis},
	{code: DisallowedFixme, check: checkDisallowedFixme},
}

// Lint implements Linter.
func (l *ContentLinter) Lint(args LintArgs) []*Inspection {
	noteType := l.catalog.Classify(args.Path)
	if noteType == nil {
		CurrentLogger().Tracef("Skipping untyped note %s", args.Path)
		return nil
	}
	CurrentLogger().Debugf("Linting content of %s as %s", args.Path, noteType)

	note := newLintedNote(args, noteType)

	var results []*Inspection
	for _, rule := range contentRules {
		level := Severity(rule.code, noteType.Name)
		if level == Ignore || !l.options.enabled(rule.code) {
			continue
		}
		for _, inspection := range rule.check(l, note) {
			inspection.Code = rule.code
			inspection.Level = level
			results = append(results, inspection)
		}
	}
	return results
}

/* Link cards */

var regexLinkCard = regexp.MustCompile(`<div class="(link-card(?:-v2)?)">`)

type linkCard struct {
	v2    bool
	start int // 0-based body line of the opening div
	end   int // 0-based body line of the closing div
}

// findLinkCards locates link cards by balancing div tags.
func findLinkCards(lines []string) []linkCard {
	var cards []linkCard
	for i := 0; i < len(lines); i++ {
		match := regexLinkCard.FindStringSubmatch(lines[i])
		if match == nil {
			continue
		}
		card := linkCard{
			v2:    match[1] == "link-card-v2",
			start: i,
			end:   len(lines) - 1,
		}
		depth := 0
		for j := i; j < len(lines); j++ {
			depth += strings.Count(lines[j], "<div") - strings.Count(lines[j], "</div>")
			if depth <= 0 {
				card.end = j
				break
			}
		}
		cards = append(cards, card)
		i = card.end
	}
	return cards
}

func checkDisallowedLinkCard(l *ContentLinter, n *lintedNote) []*Inspection {
	var results []*Inspection
	for _, card := range findLinkCards(n.maskedLines) {
		results = append(results, &Inspection{
			Message: fmt.Sprintf("link cards are not allowed in %s notes", n.noteType),
			LineNo:  n.lineNo(card.start),
			Offset:  n.startOfLine(card.start),
		})
	}
	return results
}

func checkNoLinkComment(l *ContentLinter, n *lintedNote) []*Inspection {
	var results []*Inspection
	for _, card := range findLinkCards(n.maskedLines) {
		if !card.v2 {
			continue
		}
		next := card.end + 1
		for next < len(n.maskedLines) && text.IsBlank(n.maskedLines[next]) {
			next++
		}
		if next < len(n.maskedLines) && strings.HasPrefix(n.maskedLines[next], "> ") {
			continue
		}
		results = append(results, &Inspection{
			Message: "link card must be followed by a comment (> ...)",
			LineNo:  n.lineNo(card.start),
			Offset:  n.startOfLine(card.start),
		})
	}
	return results
}

func checkV1LinkCard(l *ContentLinter, n *lintedNote) []*Inspection {
	var results []*Inspection
	for _, card := range findLinkCards(n.maskedLines) {
		if card.v2 {
			continue
		}
		results = append(results, &Inspection{
			Message: "link card v1 is deprecated, use link-card-v2",
			LineNo:  n.lineNo(card.start),
			Offset:  n.startOfLine(card.start),
		})
	}
	return results
}

/* MOC */

// CanonicalMOC lists the top-level bullets expected in a "## MOC" section.
var CanonicalMOC = []string{
	"- 📒**Related**",
	"- 📜**Activities**",
	"- 📝**Troubleshooting**",
}

func checkInvalidMOC(l *ContentLinter, n *lintedNote) []*Inspection {
	section := n.file.Body.FindSection(2, "MOC")
	if section == nil {
		return nil
	}
	var bullets []string
	for _, line := range section.Content.Lines() {
		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			bullets = append(bullets, strings.TrimRightFunc(line, unicode.IsSpace))
		}
	}
	if slices.Equal(bullets, CanonicalMOC) {
		return nil
	}
	return []*Inspection{{
		Message: fmt.Sprintf("MOC section must contain exactly %s", strings.Join(CanonicalMOC, ", ")),
		LineNo:  n.lineNo(section.Line - 1),
		Offset:  n.startOfLine(section.Line - 1),
	}}
}

/* Date footer */

func checkV1DateFooter(l *ContentLinter, n *lintedNote) []*Inspection {
	for i, line := range n.maskedLines {
		if _, ok := ParseDateFooter(line); !ok {
			continue
		}
		inspection := &Inspection{
			Message: "date footer is deprecated, use created/updated properties",
			LineNo:  n.lineNo(i),
			Offset:  n.startOfLine(i),
		}
		if l.commands != nil {
			path := n.args.Path
			inspection.Fix = func(ctx context.Context) error {
				return l.commands.RunCommand(ctx, MigrateDateFooterCommand, path)
			}
		}
		// A single migration handles every footer
		return []*Inspection{inspection}
	}
	return nil
}

/* Links */

func checkUnresolvedLink(l *ContentLinter, n *lintedNote) []*Inspection {
	if l.resolver == nil {
		return nil
	}
	var results []*Inspection
	for _, link := range markdown.GetWikiLinks(n.masked) {
		if link.Anchored() || link.Path() == "" {
			continue
		}
		if l.resolver.Resolve(link.Path(), n.args.Path) {
			continue
		}
		results = append(results, &Inspection{
			Message: fmt.Sprintf("unresolved link %s", link),
			LineNo:  n.lineAt(link.Range.Start),
			Offset:  n.offset(link.Range.Start),
		})
	}
	return results
}

func checkLinkEndsWithParenthesis(l *ContentLinter, n *lintedNote) []*Inspection {
	var results []*Inspection
	check := func(links []markdown.Link, kind string) {
		for _, link := range links {
			if !strings.HasSuffix(link.URL, ")") {
				continue
			}
			results = append(results, &Inspection{
				Message: fmt.Sprintf("%s URL %q ends with a parenthesis", kind, link.URL),
				LineNo:  n.lineNo(link.Line - 1),
				Offset:  n.startOfLine(link.Line - 1),
			})
		}
	}
	check(n.file.Body.Links(), "link")
	check(n.file.Body.EmbeddedLinks(), "image")
	slices.SortStableFunc(results, func(a, b *Inspection) int {
		return *a.LineNo - *b.LineNo
	})
	return results
}

/* Markers */

func checkDisallowedFixme(l *ContentLinter, n *lintedNote) []*Inspection {
	var results []*Inspection
	for i, line := range n.maskedLines {
		index := strings.Index(line, "FIXME")
		if index == -1 {
			continue
		}
		results = append(results, &Inspection{
			Message: "FIXME marker must be resolved",
			LineNo:  n.lineNo(i),
			Offset:  n.offset(n.lineOffsets[i] + index),
		})
	}
	return results
}
