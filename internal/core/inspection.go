package core

import (
	"context"
	"fmt"
	"strings"
)

// FixFunc corrects the condition reported by an inspection.
// Fixes must be idempotent and must re-read the state they modify.
type FixFunc func(ctx context.Context) error

// Inspection is a single lint finding.
type Inspection struct {
	Code    RuleCode
	Message string
	Level   Level
	// 1-based line in the note content (nil when the finding concerns the whole note)
	LineNo *int
	// Byte offset in the note content
	Offset *int
	Fix    FixFunc
}

// Fixable returns if the inspection can be corrected automatically.
func (i *Inspection) Fixable() bool {
	return i.Fix != nil
}

func (i *Inspection) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s: %s", i.Level, i.Code, i.Message))
	if i.LineNo != nil {
		sb.WriteString(fmt.Sprintf(" (line %d)", *i.LineNo))
	}
	return sb.String()
}

// LintArgs are the inputs of a lint pass.
type LintArgs struct {
	Title   string
	Content string
	// Vault-relative path (with / as separator)
	Path string
	// Front Matter attributes. Nil means they are parsed from Content.
	Properties map[string]any
}

// Linter inspects a note.
type Linter interface {
	Lint(args LintArgs) []*Inspection
}

// LintAll concatenates the inspections of every linter in the given order.
// Duplicates are not removed.
func LintAll(linters []Linter, args LintArgs) []*Inspection {
	var results []*Inspection
	for _, linter := range linters {
		results = append(results, linter.Lint(args)...)
	}
	return results
}

// CountByLevel returns how many inspections exist for every level.
func CountByLevel(inspections []*Inspection) map[Level]int {
	counts := make(map[Level]int)
	for _, inspection := range inspections {
		counts[inspection.Level]++
	}
	return counts
}

/* Options */

type linterOptions struct {
	disabledRules map[RuleCode]bool
}

// LinterOption customizes a linter.
type LinterOption func(*linterOptions)

// WithoutRules disables the given rules.
func WithoutRules(codes ...RuleCode) LinterOption {
	return func(o *linterOptions) {
		for _, code := range codes {
			o.disabledRules[code] = true
		}
	}
}

func newLinterOptions(opts []LinterOption) linterOptions {
	options := linterOptions{
		disabledRules: make(map[RuleCode]bool),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

func (o linterOptions) enabled(code RuleCode) bool {
	return !o.disabledRules[code]
}
