package jsxlint

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

// WriteMarkdown writes the lint result as a Markdown report suitable for
// pull request comments and issues.
func WriteMarkdown(w io.Writer, result *LintResult) error {
	var b strings.Builder

	b.WriteString("# jsxlint Report\n\n")

	b.WriteString("## Executive Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| **Status** | %s |\n", markdownStatus(result))
	fmt.Fprintf(&b, "| **Total Issues** | %d (%s, %s) |\n",
		len(result.Issues)+result.TruncatedCount,
		pluralizeCount(result.ErrorCount, "error", "errors"),
		pluralizeCount(result.WarningCount, "warning", "warnings"))
	fmt.Fprintf(&b, "| **Files Scanned** | %d |\n", result.FilesScanned)
	fmt.Fprintf(&b, "| **Rules Enabled** | %d |\n", len(result.EnabledRules))
	fmt.Fprintf(&b, "| **Auto-fixable** | %d |\n", lo.SumBy(result.RuleStats, func(s RuleStat) int { return s.Fixable }))
	if result.FilesFixed > 0 {
		fmt.Fprintf(&b, "| **Fixes Applied** | %d in %s |\n", result.FixesApplied, pluralizeCount(result.FilesFixed, "file", "files"))
	}
	b.WriteString("\n")

	if len(result.RuleStats) > 0 {
		b.WriteString("## 📊 Issues by Rule\n\n")
		b.WriteString("| Rule | Issues | Errors | Warnings | Fixable |\n")
		b.WriteString("|------|--------|--------|----------|---------|\n")
		for _, s := range result.RuleStats {
			fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %d |\n", s.Rule, s.Issues, s.Errors, s.Warnings, s.Fixable)
		}
		b.WriteString("\n")
	}

	errs := lo.Filter(result.Issues, func(issue Issue, _ int) bool { return issue.Severity == SeverityError })
	if len(errs) > 0 {
		b.WriteString("## ❌ Errors\n\n")
		writeIssueTable(&b, errs)
	}

	warnings := lo.Filter(result.Issues, func(issue Issue, _ int) bool { return issue.Severity != SeverityError })
	if len(warnings) > 0 {
		b.WriteString("## ⚠️ Warnings\n\n")
		writeIssueTable(&b, warnings)
	}

	if result.TruncatedCount > 0 {
		fmt.Fprintf(&b, "_%s not shown due to output limits._\n\n", pluralizeCount(result.TruncatedCount, "issue", "issues"))
	}

	if len(result.Warnings) > 0 {
		b.WriteString("## Notes\n\n")
		for _, warning := range result.Warnings {
			fmt.Fprintf(&b, "- %s\n", escapeMarkdown(warning))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n*Generated by jsxlint v1.0*\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeIssueTable(b *strings.Builder, issues []Issue) {
	b.WriteString("| Location | Rule | Message |\n")
	b.WriteString("|----------|------|---------|\n")
	for _, issue := range issues {
		fmt.Fprintf(b, "| `%s:%d:%d` | `%s` | %s |\n",
			issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column,
			issue.FromLinter, escapeMarkdown(issue.Text))
	}
	b.WriteString("\n")
}

func markdownStatus(result *LintResult) string {
	switch {
	case result.ErrorCount > 0:
		return "🔴 Needs Attention"
	case result.WarningCount > 0:
		return "🟡 Warnings Only"
	default:
		return "🟢 Clean"
	}
}

// escapeMarkdown keeps table cells intact.
func escapeMarkdown(s string) string {
	return strings.NewReplacer("|", "\\|", "\n", " ").Replace(s)
}
