package jsxlint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "    window.location.href = url;",
			column:     5,
			want:       "    ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\tsetTimeout(run, 10);",
			column:     5,
			want:       "\t\t  ^",
		},
		{
			name:       "start of line",
			sourceLine: "setTimeout(run);",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, reporter.buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func TestPrintIssues(t *testing.T) {
	issues := []Issue{
		{
			FromLinter:  "no-unhandled-scheduling",
			Text:        "second",
			SourceLines: []string{"  setTimeout(run);"},
			Pos:         IssuePos{Filename: "b.js", Line: 1, Column: 3},
		},
		{
			FromLinter:  "no-href-assignment",
			Text:        "first",
			SourceLines: []string{"location.href = x;"},
			Pos:         IssuePos{Filename: "a.js", Line: 4, Column: 1},
		},
	}

	tests := []struct {
		name     string
		reporter Reporter
		want     string
	}{
		{
			name:     "lines and linter names",
			reporter: Reporter{printLines: true, printLinterName: true},
			want: "a.js:4:1: first (no-href-assignment)\n\tlocation.href = x;\n\t^\n" +
				"b.js:1:3: second (no-unhandled-scheduling)\n\t  setTimeout(run);\n\t  ^\n",
		},
		{
			name:     "compact",
			reporter: Reporter{},
			want:     "a.js:4:1: first\nb.js:1:3: second\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := tt.reporter
			r.w = &buf
			r.PrintIssues(issues)
			assert.Equal(t, tt.want, buf.String())
		})
	}

	// the caller's slice keeps its order
	assert.Equal(t, "b.js", issues[0].Pos.Filename)
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result LintResult
		want   string
	}{
		{
			name: "errors and warnings with fixable issues",
			result: LintResult{
				Issues:       make([]Issue, 3),
				ErrorCount:   2,
				WarningCount: 1,
				RuleStats: []RuleStat{
					{Rule: "no-href-assignment", Issues: 2, Errors: 2, Fixable: 1},
					{Rule: "no-unhandled-scheduling", Issues: 1, Warnings: 1},
				},
			},
			want: "\n3 issues (2 errors, 1 warning):\n* no-href-assignment: 2\n* no-unhandled-scheduling: 1\n\nHint: 1 issue can be fixed with --fix\n",
		},
		{
			name: "truncated",
			result: LintResult{
				Issues:         make([]Issue, 1),
				TruncatedCount: 4,
				ErrorCount:     5,
				RuleStats:      []RuleStat{{Rule: "max-indentation", Issues: 5, Errors: 5}},
			},
			want: "\n5 issues (1 shown):\n* max-indentation: 5\n\nHint: Run with --output-format full to see rule statistics\n",
		},
		{
			name:   "clean",
			result: LintResult{},
			want:   "\n0 issues:\n",
		},
		{
			name: "fixes applied",
			result: LintResult{
				FixesApplied: 3,
				FilesFixed:   1,
			},
			want: "\n0 issues:\nFixed 3 issues in 1 file\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &Reporter{w: &buf}
			r.PrintSummary(tt.result)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestVerboseReporter(t *testing.T) {
	result := LintResult{
		FilesScanned: 4,
		FilesSkipped: 1,
		EnabledRules: []string{"no-href-assignment", "require-typography"},
		ErrorCount:   1,
		WarningCount: 3,
		RuleStats: []RuleStat{
			{Rule: "require-typography", Issues: 3, Warnings: 3, Fixable: 3},
			{Rule: "no-href-assignment", Issues: 1, Errors: 1, Fixable: 1},
		},
		Warnings: []string{"something odd"},
	}

	var buf bytes.Buffer
	r := NewVerboseReporter(&buf, false)
	r.PrintStatistics(result)
	r.PrintRuleBreakdown(result)
	r.PrintWarnings(result)
	out := buf.String()

	assert.Contains(t, out, "Files Scanned:  4\n")
	assert.Contains(t, out, "Rules Enabled:  2\n")
	assert.Contains(t, out, "Fixable:        4\n")
	assert.Contains(t, out, "require-typography    3 [███████████████░░░░░] 75.0%\n")
	assert.Contains(t, out, "no-href-assignment    1 [█████░░░░░░░░░░░░░░░] 25.0%\n")
	assert.Contains(t, out, "require-typography (3), no-href-assignment (1)")
	assert.Contains(t, out, "• something odd")
}

func TestVerboseReporterNoIssues(t *testing.T) {
	var buf bytes.Buffer
	NewVerboseReporter(&buf, false).PrintRuleBreakdown(LintResult{})
	assert.Equal(t, "\nNo issues found\n", buf.String())
}
