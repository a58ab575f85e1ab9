package jsxlint

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
)

// Reporter handles formatting and outputting linting results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config LintConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config LintConfig) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}
	// NO_COLOR disables colors unless forced by flag
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	// Check for FORCE_COLOR environment variable
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	// Auto-detect TTY
	fileInfo, err := os.Stdout.Stat()
	return err == nil && fileInfo.Mode()&os.ModeCharDevice != 0
}

// PrintIssues outputs issues in golangci-lint format, in file/line/column order
func (r *Reporter) PrintIssues(issues []Issue) {
	// Sort a copy by file, then line, then column
	sorted := append([]Issue(nil), issues...)
	sortIssues(sorted)

	// Print each issue
	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue:
//
//	file:line:col: message (rule)
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (rule)
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	// Print main issue line
	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	// Print source lines with caret indicator
	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		// Print caret indicator
		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up in any tab width.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	// Extract the prefix up to the column (0-based index = column - 1)
	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	// Build padding that matches tabs/spaces in the prefix
	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result LintResult) {
	totalIssues := len(result.Issues)
	truncated := result.TruncatedCount
	errors, warnings := result.ErrorCount, result.WarningCount

	fmt.Fprintln(r.w, "")

	// Total includes issues hidden by limits
	headline := pluralizeCount(totalIssues+truncated, "issue", "issues")
	var details []string
	// Show severity breakdown if we have both types
	if errors > 0 && warnings > 0 {
		details = append(details,
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	}
	if truncated > 0 {
		details = append(details, fmt.Sprintf("%d shown", totalIssues))
	}
	if len(details) > 0 {
		headline += " (" + strings.Join(details, ", ") + ")"
	}
	fmt.Fprintf(r.w, "%s:\n", headline)

	// Print rule breakdown
	for _, stat := range result.RuleStats {
		fmt.Fprintf(r.w, "* %s: %d\n", stat.Rule, stat.Issues)
	}

	if result.FixesApplied > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen,
			fmt.Sprintf("Fixed %s in %s", pluralizeCount(result.FixesApplied, "issue", "issues"),
				pluralizeCount(result.FilesFixed, "file", "files")), r.useColors))
	}

	// Print helpful hint if there are issues
	if totalIssues > 0 {
		fmt.Fprintln(r.w, "")
		fixable := lo.SumBy(result.RuleStats, func(s RuleStat) int { return s.Fixable })
		if fixable > 0 {
			fmt.Fprintln(r.w, RenderStyle(StyleGray,
				fmt.Sprintf("Hint: %s can be fixed with --fix", pluralizeCount(fixable, "issue", "issues")), r.useColors))
		} else {
			fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see rule statistics", r.useColors))
		}
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
