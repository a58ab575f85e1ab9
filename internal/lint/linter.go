package lint

import (
	"context"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/yacobolo/jsxlint/internal/rewrite"
	"github.com/yacobolo/jsxlint/internal/syntax"
)

// MaxFixPasses bounds how often Fix re-lints after applying fixes. Fixes that
// overlap in one pass get another chance in the next.
const MaxFixPasses = 10

type configuredRule struct {
	rule     *Rule
	severity Severity
	checker  Checker
}

// Linter runs a configured set of rules. It holds no per-file state and is
// safe for concurrent use.
type Linter struct {
	rules []configuredRule
}

// New validates settings against the registry and configures every enabled
// rule. Any configuration problem is returned before a file is looked at.
func New(reg *Registry, settings map[string]RuleSetting) (*Linter, error) {
	names := make([]string, 0, len(settings))
	for name := range settings {
		names = append(names, name)
	}
	sort.Strings(names)

	l := &Linter{}
	for _, name := range names {
		setting := settings[name]
		rule := reg.Get(name)
		if rule == nil {
			return nil, errors.WithHint(
				errors.Wrapf(ErrUnknownRule, "%q", name),
				"run `jsxlint rules` to list available rules")
		}
		if err := ValidateOptions(rule, setting.Options); err != nil {
			return nil, err
		}
		if setting.Severity == SeverityOff {
			continue
		}
		checker, err := rule.Create(NewOptions(name, setting.Options))
		if err != nil {
			if !errors.Is(err, ErrInvalidOptions) {
				err = errors.Mark(errors.Wrapf(err, "configure %s", name), ErrInvalidOptions)
			}
			return nil, err
		}
		l.rules = append(l.rules, configuredRule{rule: rule, severity: setting.Severity, checker: checker})
	}
	return l, nil
}

// Rules returns the names of the enabled rules.
func (l *Linter) Rules() []string {
	names := make([]string, len(l.rules))
	for i, r := range l.rules {
		names[i] = r.rule.Name
	}
	return names
}

// FileResult holds the findings of one file.
type FileResult struct {
	File     *syntax.File
	Findings []Finding
}

// LintSource parses src and runs every enabled rule over it.
func (l *Linter) LintSource(ctx context.Context, path string, src []byte) (*FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := syntax.Parse(ctx, path, src)
	if err != nil {
		return nil, err
	}
	if file.HasErrors {
		log.Warn("syntax errors, results may be incomplete", "file", path)
	}
	return &FileResult{File: file, Findings: l.run(file)}, nil
}

func (l *Linter) run(file *syntax.File) []Finding {
	contexts := make([]*Context, len(l.rules))
	visitors := make([]Visitor, len(l.rules))
	for i, r := range l.rules {
		contexts[i] = newContext(file, r.rule, r.severity)
		visitors[i] = r.checker(contexts[i])
	}

	syntax.Walk(file.Root, func(n *syntax.Node) {
		for _, v := range visitors {
			if v.Enter != nil {
				v.Enter(n)
			}
		}
	}, func(n *syntax.Node) {
		for _, v := range visitors {
			if v.Exit != nil {
				v.Exit(n)
			}
		}
	})

	var findings []Finding
	for _, c := range contexts {
		findings = append(findings, c.findings...)
	}
	SortFindings(findings)
	return findings
}

// SortFindings orders findings by position, then rule name.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.Rule != b.Rule {
			return a.Rule < b.Rule
		}
		return a.Span.End < b.Span.End
	})
}

// FixResult is the outcome of Fix.
type FixResult struct {
	Output []byte
	// Applied counts the fixes applied over all passes.
	Applied int
	Passes  int
	// Remaining are the findings of the fixed output.
	Remaining []Finding
	File      *syntax.File
}

// Changed reports whether any fix was applied.
func (r *FixResult) Changed() bool { return r.Applied > 0 }

// Fix lints src and applies fixes until none are left or MaxFixPasses is
// reached. Each finding's edits are applied as one group; overlapping
// groups are deferred to the next pass.
func (l *Linter) Fix(ctx context.Context, path string, src []byte) (*FixResult, error) {
	current := src
	result := &FixResult{}
	for result.Passes < MaxFixPasses {
		res, err := l.LintSource(ctx, path, current)
		if err != nil {
			return nil, err
		}
		result.File, result.Remaining = res.File, res.Findings

		var groups [][]rewrite.EditRequest
		for _, f := range res.Findings {
			if f.Fixable() {
				groups = append(groups, f.Fix)
			}
		}
		if len(groups) == 0 {
			break
		}

		fixed, skipped := rewrite.ApplyGroups(string(current), groups)
		result.Passes++
		if fixed == string(current) {
			break
		}
		if len(skipped) > 0 {
			log.Debug("fixes deferred to next pass", "file", path, "count", len(skipped))
		}
		result.Applied += len(groups) - len(skipped)
		current = []byte(fixed)
	}
	if result.Passes == MaxFixPasses {
		res, err := l.LintSource(ctx, path, current)
		if err != nil {
			return nil, err
		}
		result.File, result.Remaining = res.File, res.Findings
	}
	result.Output = current
	return result, nil
}
