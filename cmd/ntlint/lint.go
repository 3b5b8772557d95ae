package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/julien-sobczak/the-notelinter/internal/core"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var lintRules string
var lintFix bool

func init() {
	lintCmd.Flags().StringVarP(&lintRules, "rules", "r", "all", "comma-separated list of rule names used to filter")
	lintCmd.Flags().BoolVarP(&lintFix, "fix", "", false, "fix violations when possible")
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint [path...]",
	Short: "Lint notes",
	Long:  `Check linter rules on notes and optionally fix them.`,
	Run: func(cmd *cobra.Command, args []string) {
		vault := CurrentVault()
		config := core.CurrentConfig()

		disabled, err := disabledRules(lintRules, config.DisabledRules())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		notes, err := argsToNotes(vault, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		catalog := config.Catalog()
		session := core.NewSession(vault, consoleNotifier{},
			core.NewContentLinter(catalog, vault, vault, core.WithoutRules(disabled...)),
			core.NewPropertyLinter(catalog, vault, core.WithoutRules(disabled...)),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		failed := false
		var remaining []*core.Inspection
		progress := newProgressLog(len(notes))
		for i, note := range notes {
			progress.Log(i, note)
			inspections, err := session.LintFile(ctx, note, lintFix)
			progress.Clear("")
			if err != nil {
				fmt.Println(err)
				failed = true
			}
			// Fixes are reported only when all of them succeeded
			fixed := lintFix && err == nil
			fmt.Print(formatInspections(note, inspections, fixed))
			remaining = append(remaining, unfixedInspections(inspections, fixed)...)
		}

		counts := core.CountByLevel(remaining)
		fmt.Println(formatSummary(len(notes), counts))
		if failed || counts[core.Error] > 0 {
			os.Exit(1)
		}
	},
}

// disabledRules returns the rules to skip.
// The filter is a comma-separated list of rules to evaluate ("all" to keep every rule).
func disabledRules(filter string, configured []core.RuleCode) ([]core.RuleCode, error) {
	disabled := slices.Clone(configured)
	if filter == "" || filter == "all" {
		return disabled, nil
	}

	var selected []core.RuleCode
	for _, name := range strings.Split(filter, ",") {
		code := core.RuleCode(strings.TrimSpace(name))
		if !slices.Contains(core.RuleCodes(), code) {
			return nil, fmt.Errorf("unknown rule %q", code)
		}
		selected = append(selected, code)
	}
	for _, code := range core.RuleCodes() {
		if !slices.Contains(selected, code) && !slices.Contains(disabled, code) {
			disabled = append(disabled, code)
		}
	}
	return disabled, nil
}

// unfixedInspections returns the inspections still present after the fixes.
func unfixedInspections(inspections []*core.Inspection, fixed bool) []*core.Inspection {
	var result []*core.Inspection
	for _, inspection := range inspections {
		if fixed && inspection.Fixable() {
			continue
		}
		result = append(result, inspection)
	}
	return result
}

var levelColors = map[core.Level]*color.Color{
	core.Info:  color.New(color.FgCyan),
	core.Warn:  color.New(color.FgYellow),
	core.Error: color.New(color.FgRed, color.Bold),
}

// formatInspections renders the inspections of a note (empty when there is none).
func formatInspections(path string, inspections []*core.Inspection, fixed bool) string {
	if len(inspections) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(color.New(color.Underline).Sprint(path))
	sb.WriteString("\n")
	for _, inspection := range inspections {
		location := "-"
		if inspection.LineNo != nil {
			location = fmt.Sprintf("%d", *inspection.LineNo)
		}
		level := fmt.Sprintf("%-5s", inspection.Level)
		if c, ok := levelColors[inspection.Level]; ok {
			level = c.Sprint(level)
		}
		sb.WriteString(fmt.Sprintf("  %4s  %s  %s  %s", location, level, inspection.Code, inspection.Message))
		if inspection.Fixable() {
			if fixed {
				sb.WriteString(" (fixed)")
			} else {
				sb.WriteString(" (fixable)")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatSummary(notes int, counts map[core.Level]int) string {
	return fmt.Sprintf("%d note(s) checked: %d error(s), %d warning(s), %d info",
		notes, counts[core.Error], counts[core.Warn], counts[core.Info])
}
