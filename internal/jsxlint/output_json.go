package jsxlint

import (
	"encoding/json"
	"io"
	"time"

	"github.com/samber/lo"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Summary   JSONSummary    `json:"summary"`
	Rules     []JSONRuleStat `json:"rules"`
	Issues    []JSONIssue    `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Fixable      int `json:"fixable"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
	FilesSkipped int `json:"files_skipped"`
	FilesFixed   int `json:"files_fixed"`
	FixesApplied int `json:"fixes_applied"`
}

// JSONRuleStat contains the issue counts of one rule
type JSONRuleStat struct {
	Rule     string `json:"rule"`
	Issues   int    `json:"issues"`
	Errors   int    `json:"errors"`
	Warnings int    `json:"warnings"`
	Fixable  int    `json:"fixable"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"end_line,omitempty"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	MessageID string `json:"message_id"`
	Linter    string `json:"linter"`
	Fixable   bool   `json:"fixable"`
	Source    string `json:"source,omitempty"` // First source line
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	issues := lo.Map(result.Issues, func(issue Issue, _ int) JSONIssue {
		out := JSONIssue{
			File:      issue.Pos.Filename,
			Line:      issue.Pos.Line,
			Column:    issue.Pos.Column,
			Severity:  issue.Severity,
			Message:   issue.Text,
			MessageID: issue.MessageID,
			Linter:    issue.FromLinter,
			Fixable:   issue.Fixable,
		}
		if issue.LineRange != nil {
			out.EndLine = issue.LineRange.To
		}
		if len(issue.SourceLines) > 0 {
			out.Source = issue.SourceLines[0]
		}
		return out
	})

	rules := lo.Map(result.RuleStats, func(s RuleStat, _ int) JSONRuleStat {
		return JSONRuleStat{Rule: s.Rule, Issues: s.Issues, Errors: s.Errors, Warnings: s.Warnings, Fixable: s.Fixable}
	})

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues) + result.TruncatedCount,
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			Fixable:      lo.SumBy(result.RuleStats, func(s RuleStat) int { return s.Fixable }),
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
			FilesSkipped: result.FilesSkipped,
			FilesFixed:   result.FilesFixed,
			FixesApplied: result.FixesApplied,
		},
		Rules:  rules,
		Issues: issues,
	}
}
