package jsxlint

import (
	"fmt"
	"io"
	"strings"
)

// VerboseReporter prints statistics about a lint run
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs run totals
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	// Count fixable issues across rules
	fixable := 0
	for _, s := range result.RuleStats {
		fixable += s.Fixable
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Lint Statistics", r.useColors))
	fmt.Fprintln(r.w, "---------------")

	// Print totals
	fmt.Fprintf(r.w, "Files Scanned:  %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:  %d\n", result.FilesSkipped)
	fmt.Fprintf(r.w, "Rules Enabled:  %d\n", len(result.EnabledRules))
	fmt.Fprintf(r.w, "Errors:         %s\n", RenderStyle(StyleRed, fmt.Sprint(result.ErrorCount), r.useColors && result.ErrorCount > 0))
	fmt.Fprintf(r.w, "Warnings:       %s\n", RenderStyle(StyleYellow, fmt.Sprint(result.WarningCount), r.useColors && result.WarningCount > 0))
	fmt.Fprintf(r.w, "Fixable:        %d\n", fixable)
	if result.FilesFixed > 0 {
		fmt.Fprintf(r.w, "Fixes Applied:  %d (%s)\n", result.FixesApplied, pluralizeCount(result.FilesFixed, "file", "files"))
	}
}

// PrintRuleBreakdown shows each rule's share of the issues
func (r *VerboseReporter) PrintRuleBreakdown(result LintResult) {
	if len(result.RuleStats) == 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "No issues found", r.useColors))
		return
	}

	// Align rule names on the longest one
	total := 0
	width := 0
	for _, s := range result.RuleStats {
		total += s.Issues
		width = max(width, len(s.Rule))
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Issues by Rule", r.useColors))
	fmt.Fprintln(r.w, "--------------")
	// Print one bar per rule
	for _, s := range result.RuleStats {
		fmt.Fprintf(r.w, "%-*s %4d ", width, s.Rule, s.Issues)
		printProgressBar(r.w, float64(s.Issues)/float64(total)*100)
	}

	// List rules with auto-fixable issues
	var fixable []string
	for _, s := range result.RuleStats {
		if s.Fixable > 0 {
			fixable = append(fixable, fmt.Sprintf("%s (%d)", s.Rule, s.Fixable))
		}
	}
	if len(fixable) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Auto-fixable", r.useColors))
		fmt.Fprintln(r.w, "------------")
		fmt.Fprintln(r.w, strings.Join(fixable, ", "))
	}
}

// PrintWarnings shows run warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// printProgressBar prints a 20 cell bar followed by the percentage
func printProgressBar(w io.Writer, percentage float64) {
	const barWidth = 20
	filled := int(percentage / 100 * barWidth)

	fmt.Fprintf(w, "[%s%s] %.1f%%\n",
		strings.Repeat("█", filled),
		strings.Repeat("░", barWidth-filled),
		percentage)
}
