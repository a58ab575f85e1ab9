package jsxlint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/jsxlint/internal/lint"
	"github.com/yacobolo/jsxlint/internal/rules"
)

const appSource = `export function go(url) {
  setTimeout(refresh, 100);
  window.location.href = url;
}
`

func testConfig(dir string) LintConfig {
	return LintConfig{
		ScanPaths: []string{dir},
		Rules: map[string]lint.RuleSetting{
			"no-href-assignment":      {Severity: lint.SeverityError},
			"no-unhandled-scheduling": {Severity: lint.SeverityWarning},
		},
		Concurrency: 2,
	}
}

func TestLintEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"app.js":   appSource,
		"clean.ts": "export const answer: number = 42;\n",
	})

	result, err := Lint(context.Background(), rules.NewRegistry(), testConfig(dir))
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, []string{"no-href-assignment", "no-unhandled-scheduling"}, result.EnabledRules)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)
	assert.Zero(t, result.TruncatedCount)
	require.Len(t, result.Issues, 2)

	first := result.Issues[0]
	assert.Equal(t, filepath.Join(dir, "app.js"), first.Pos.Filename)
	assert.Equal(t, IssuePos{Filename: first.Pos.Filename, Line: 2, Column: 3}, first.Pos)
	assert.Equal(t, "no-unhandled-scheduling", first.FromLinter)
	assert.Equal(t, SeverityWarning, first.Severity)
	assert.Equal(t, []string{"  setTimeout(refresh, 100);"}, first.SourceLines)
	assert.False(t, first.Fixable)

	second := result.Issues[1]
	assert.Equal(t, "no-href-assignment", second.FromLinter)
	assert.Equal(t, "avoidHref", second.MessageID)
	assert.Equal(t, SeverityError, second.Severity)
	assert.True(t, second.Fixable)

	assert.Equal(t, []RuleStat{
		{Rule: "no-href-assignment", Issues: 1, Errors: 1, Fixable: 1},
		{Rule: "no-unhandled-scheduling", Issues: 1, Warnings: 1},
	}, result.RuleStats)
	assert.True(t, result.Failed(false))

	// linting does not touch files
	content, err := os.ReadFile(filepath.Join(dir, "app.js"))
	require.NoError(t, err)
	assert.Equal(t, appSource, string(content))
}

func TestLintFixWritesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"app.js": appSource})

	config := testConfig(dir)
	config.Fix = true
	result, err := Lint(context.Background(), rules.NewRegistry(), config)
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesFixed)
	assert.Equal(t, 1, result.FixesApplied)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "no-unhandled-scheduling", result.Issues[0].FromLinter)
	assert.False(t, result.Failed(false))
	assert.True(t, result.Failed(true))

	content, err := os.ReadFile(filepath.Join(dir, "app.js"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "window.location.assign(url);")
}

func TestLintNoFiles(t *testing.T) {
	result, err := Lint(context.Background(), rules.NewRegistry(), testConfig(t.TempDir()))
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
	assert.Equal(t, []string{"no files matched the scan paths"}, result.Warnings)
}

func TestLintRejectsBadConfiguration(t *testing.T) {
	dir := t.TempDir()

	config := testConfig(dir)
	config.Rules = map[string]lint.RuleSetting{"no-such-rule": {Severity: lint.SeverityError}}
	_, err := Lint(context.Background(), rules.NewRegistry(), config)
	require.Error(t, err)
	assert.True(t, errors.Is(err, lint.ErrUnknownRule))

	config.Rules = map[string]lint.RuleSetting{
		"max-indentation": {Severity: lint.SeverityError, Options: map[string]any{"limit": "deep"}},
	}
	_, err = Lint(context.Background(), rules.NewRegistry(), config)
	require.Error(t, err)
	assert.True(t, errors.Is(err, lint.ErrInvalidOptions))
}

func TestLintCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"app.js": appSource})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Lint(ctx, rules.NewRegistry(), testConfig(dir))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLimitIssues(t *testing.T) {
	issue := func(linter, text string) Issue { return Issue{FromLinter: linter, Text: text} }
	issues := []Issue{
		issue("a", "x"), issue("a", "x"), issue("a", "y"),
		issue("b", "x"), issue("b", "z"),
	}

	tests := []struct {
		name          string
		config        LintConfig
		wantLen       int
		wantTruncated int
	}{
		{name: "no limits", config: LintConfig{}, wantLen: 5},
		{name: "per linter", config: LintConfig{MaxIssuesPerLinter: 1}, wantLen: 2, wantTruncated: 3},
		{name: "same issues", config: LintConfig{MaxSameIssues: 1}, wantLen: 3, wantTruncated: 2},
		{name: "both", config: LintConfig{MaxIssuesPerLinter: 2, MaxSameIssues: 1}, wantLen: 2, wantTruncated: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := limitIssues(issues, tt.config)
			assert.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantTruncated, truncated)
		})
	}
}

func TestDeduplicateSameIssues(t *testing.T) {
	issues := []Issue{{Text: "a"}, {Text: "b"}, {Text: "a"}, {Text: "a"}, {Text: "b"}}
	got := deduplicateSameIssues(issues, 2)
	assert.Equal(t, []Issue{{Text: "a"}, {Text: "b"}, {Text: "a"}, {Text: "b"}}, got)
}
