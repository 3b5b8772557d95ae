package core

import (
	"context"
	"fmt"

	"github.com/julien-sobczak/the-notelinter/internal/markdown"
	"github.com/julien-sobczak/the-notelinter/pkg/text"
)

// PropertyLinter inspects the Front Matter of notes.
type PropertyLinter struct {
	catalog Catalog
	mutator PropertyMutator
	options linterOptions
}

// NewPropertyLinter creates a property linter. Without a mutator, no fix is proposed.
func NewPropertyLinter(catalog Catalog, mutator PropertyMutator, opts ...LinterOption) *PropertyLinter {
	return &PropertyLinter{
		catalog: catalog,
		mutator: mutator,
		options: newLinterOptions(opts),
	}
}

type propertyRule struct {
	code  RuleCode
	check func(l *PropertyLinter, args LintArgs, noteType *NoteType, properties map[string]any) []*Inspection
}

// Same order as PropertyRuleCodes
var propertyRules = []propertyRule{
	{code: NoDescription, check: requireProperty("description")},
	{code: NoCover, check: checkNoCover},
	{code: NoURL, check: requireProperty("url")},
	{code: NoStatus, check: requireProperty("status")},
}

// Lint implements Linter.
func (l *PropertyLinter) Lint(args LintArgs) []*Inspection {
	noteType := l.catalog.Classify(args.Path)
	if noteType == nil {
		return nil
	}
	CurrentLogger().Debugf("Linting properties of %s as %s", args.Path, noteType)

	properties := args.Properties
	if properties == nil {
		var err error
		properties, err = markdown.ParseContent(args.Path, args.Content).Properties()
		if err != nil {
			CurrentLogger().Warnf("Invalid Front Matter in %s: %v", args.Path, err)
			properties = make(map[string]any)
		}
	}

	var results []*Inspection
	for _, rule := range propertyRules {
		level := Severity(rule.code, noteType.Name)
		if level == Ignore || !l.options.enabled(rule.code) {
			continue
		}
		for _, inspection := range rule.check(l, args, noteType, properties) {
			inspection.Code = rule.code
			inspection.Level = level
			results = append(results, inspection)
		}
	}
	return results
}

func requireProperty(key string) func(*PropertyLinter, LintArgs, *NoteType, map[string]any) []*Inspection {
	return func(l *PropertyLinter, args LintArgs, noteType *NoteType, properties map[string]any) []*Inspection {
		if !MissingProperty(properties, key) {
			return nil
		}
		return []*Inspection{{
			Message: fmt.Sprintf("missing property %q", key),
		}}
	}
}

func checkNoCover(l *PropertyLinter, args LintArgs, noteType *NoteType, properties map[string]any) []*Inspection {
	if noteType.CoverImagePath == nil || !MissingProperty(properties, "cover") {
		return nil
	}
	inspection := &Inspection{
		Message: fmt.Sprintf("missing property %q", "cover"),
	}
	if l.mutator != nil {
		path := args.Path
		cover := *noteType.CoverImagePath
		inspection.Fix = func(ctx context.Context) error {
			return l.mutator.SetProperty(ctx, path, "cover", cover)
		}
	}
	return []*Inspection{inspection}
}

// MissingProperty returns if a property is absent, null, blank, or an empty list.
func MissingProperty(properties map[string]any, key string) bool {
	value, ok := properties[key]
	if !ok || value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return text.IsBlank(v)
	case []any:
		return len(v) == 0
	}
	return false
}
