package jsxlint

import (
	"context"
	"os"
	"runtime"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/jsxlint/internal/lint"
)

// fileOutcome is the result of analysing one file.
type fileOutcome struct {
	issues  []Issue
	fixed   bool
	applied int
}

// Lint runs the configured rules over every file matched by config.ScanPaths.
// Rule configuration is validated before any file is read. In fix mode,
// fixed files are written back in place and the remaining issues reported.
func Lint(ctx context.Context, reg *lint.Registry, config LintConfig) (*LintResult, error) {
	// Step 1: Configure rules (fails fast on bad options)
	linter, err := lint.New(reg, config.Rules)
	if err != nil {
		return nil, err
	}
	if len(linter.Rules()) == 0 {
		log.Warn("no rules enabled")
	}

	// Step 2: Discover files
	files, stats, err := DiscoverFiles(config.ScanPaths)
	if err != nil {
		return nil, errors.Wrap(err, "failed to discover files")
	}
	log.Debug("discovered files", "scanned", stats.FilesScanned, "skipped", stats.FilesSkipped)

	// Step 3: Analyse files concurrently, keeping results in file order
	outcomes := make([]fileOutcome, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency(config.Concurrency))
	for i, path := range files {
		g.Go(func() error {
			out, err := lintFile(gctx, linter, path, config.Fix)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Step 4: Collect results
	result := &LintResult{
		FilesDiscovered: stats.FilesDiscovered,
		FilesScanned:    stats.FilesScanned,
		FilesSkipped:    stats.FilesSkipped,
		EnabledRules:    linter.Rules(),
	}
	for _, out := range outcomes {
		result.Issues = append(result.Issues, out.issues...)
		result.FixesApplied += out.applied
		if out.fixed {
			result.FilesFixed++
		}
	}
	if stats.FilesScanned == 0 {
		result.Warnings = append(result.Warnings, "no files matched the scan paths")
	}
	sortIssues(result.Issues)
	countSeverities(result)
	result.RuleStats = buildRuleStats(result.Issues)

	// Step 5: Apply issue limiting if configured
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

func concurrency(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// lintFile analyses one file, fixing it in place when fix is set.
func lintFile(ctx context.Context, linter *lint.Linter, path string, fix bool) (fileOutcome, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return fileOutcome{}, errors.Wrapf(err, "reading %s", path)
	}
	display := GetRelativePath(path)

	if !fix {
		res, err := linter.LintSource(ctx, path, src)
		if err != nil {
			return fileOutcome{}, errors.Wrapf(err, "linting %s", path)
		}
		return fileOutcome{issues: toIssues(display, res.Findings, res.File.Line)}, nil
	}

	res, err := linter.Fix(ctx, path, src)
	if err != nil {
		return fileOutcome{}, errors.Wrapf(err, "fixing %s", path)
	}
	out := fileOutcome{issues: toIssues(display, res.Remaining, res.File.Line), applied: res.Applied}
	if res.Changed() {
		if err := writeFilePreservingMode(path, res.Output); err != nil {
			return fileOutcome{}, err
		}
		out.fixed = true
		log.Debug("fixed file", "file", display, "fixes", res.Applied, "passes", res.Passes)
	}
	for _, f := range res.Remaining {
		if f.FixConflict {
			log.Warn("fix skipped: conflicting edits", "file", display, "rule", f.Rule, "line", f.Line)
		}
	}
	return out, nil
}

func writeFilePreservingMode(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

func toIssues(filename string, findings []lint.Finding, lineText func(int) string) []Issue {
	return lo.Map(findings, func(f lint.Finding, _ int) Issue {
		return newIssue(filename, f, lineText)
	})
}

// sortIssues orders issues by file, then line, then column
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

func countSeverities(result *LintResult) {
	result.ErrorCount, result.WarningCount = 0, 0
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
}

// buildRuleStats groups issues by rule, most frequent first.
func buildRuleStats(issues []Issue) []RuleStat {
	byRule := lo.GroupBy(issues, func(issue Issue) string { return issue.FromLinter })
	stats := make([]RuleStat, 0, len(byRule))
	for rule, group := range byRule {
		stat := RuleStat{Rule: rule, Issues: len(group)}
		for _, issue := range group {
			switch issue.Severity {
			case SeverityError:
				stat.Errors++
			case SeverityWarning:
				stat.Warnings++
			}
			if issue.Fixable {
				stat.Fixable++
			}
		}
		stats = append(stats, stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Issues != stats[j].Issues {
			return stats[i].Issues > stats[j].Issues
		}
		return stats[i].Rule < stats[j].Rule
	})
	return stats
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints.
// Severity counts and rule statistics keep describing the full result.
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-issues-per-linter
	if config.MaxIssuesPerLinter > 0 {
		perLinter := make(map[string]int)
		issues = lo.Filter(issues, func(issue Issue, _ int) bool {
			perLinter[issue.FromLinter]++
			return perLinter[issue.FromLinter] <= config.MaxIssuesPerLinter
		})
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
