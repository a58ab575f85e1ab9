// Package jsxlint discovers JavaScript and TypeScript files, runs the
// configured rules over them and renders the results.
//
// Output follows golangci-lint conventions:
//
//	src/widget.tsx:3:5: `addEventListener` calls must have ... (unregister-events)
//		    window.addEventListener("resize", this.onResize);
//		    ^
//
// Other formats (summary, full, json, markdown) are selected with
// DetermineOutputFormat and written with WriteOutput.
package jsxlint

import "github.com/yacobolo/jsxlint/internal/lint"

// OutputFormat represents the output format mode
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings (golangci-lint style, default)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows per-rule statistics without individual issues
	OutputSummary OutputFormat = "summary"
	// OutputFull shows everything: issues and statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports machine-readable JSON
	OutputJSON OutputFormat = "json"
	// OutputMarkdown exports a shareable Markdown report
	OutputMarkdown OutputFormat = "markdown"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths []string                     // Patterns or directories to scan (e.g., "src/**/*.tsx")
	Rules     map[string]lint.RuleSetting // Enabled rules with severity and options
	Fix       bool                         // Apply fixes and write files back
	Verbose   bool
	Strict    bool // Exit with code 1 if any issue is found

	// Concurrency bounds how many files are analysed at once. 0 = NumCPU.
	Concurrency int

	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	ShowStats          bool // Show statistics summary
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (rule-name) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)
}

// LintResult contains linting results
type LintResult struct {
	Issues []Issue

	FilesDiscovered int
	FilesScanned    int
	FilesSkipped    int // Generated, vendored or gitignored files
	FilesFixed      int // Files rewritten in fix mode
	FixesApplied    int

	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to limits

	EnabledRules []string
	RuleStats    []RuleStat // Sorted by issue count, then name

	Warnings []string
}

// RuleStat summarizes the issues of one rule.
type RuleStat struct {
	Rule     string
	Issues   int
	Errors   int
	Warnings int
	Fixable  int
}

// Failed reports whether the result should fail a build. Errors always fail;
// in strict mode any issue does.
func (r *LintResult) Failed(strict bool) bool {
	if strict {
		return len(r.Issues) > 0
	}
	return r.ErrorCount > 0
}
