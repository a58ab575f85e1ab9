// Package lint runs rules over parsed source files.
//
// A Rule is configured once, before any file is read, and then asked for a
// fresh Visitor per file. All per-file state lives in the closures of that
// visitor, so a configured rule can serve many files concurrently.
package lint

import (
	"github.com/cockroachdb/errors"

	"github.com/yacobolo/jsxlint/internal/rewrite"
	"github.com/yacobolo/jsxlint/internal/syntax"
)

// Configuration errors. They are returned before any file is analysed.
var (
	ErrInvalidOptions = errors.New("invalid rule options")
	ErrUnknownRule    = errors.New("unknown rule")
)

// RuleType classifies what a rule checks.
type RuleType string

// Rule types.
const (
	TypeProblem    RuleType = "problem"
	TypeSuggestion RuleType = "suggestion"
	TypeLayout     RuleType = "layout"
)

// Visitor receives every node of a file depth-first. Either callback may be nil.
type Visitor struct {
	Enter func(n *syntax.Node)
	Exit  func(n *syntax.Node)
}

// Checker builds the visitor for one file.
type Checker func(ctx *Context) Visitor

// Rule describes a lint rule.
type Rule struct {
	Name        string
	Description string
	Type        RuleType
	Fixable     bool
	// Messages maps message ids to templates with {{ key }} placeholders.
	Messages map[string]string
	// Schema is the JSON schema of the options object. Rules without a
	// schema reject any options.
	Schema string
	// Recommended is the severity in the recommended preset.
	Recommended Severity
	// Create validates options and returns the checker.
	Create func(opts *Options) (Checker, error)
}

// Finding is one reported problem in a file.
type Finding struct {
	Rule      string
	MessageID string
	Message   string
	Severity  Severity
	Span      syntax.Span
	Line      int
	Column    int
	EndLine   int
	EndColumn int
	// Fix is the edit group for this finding, already validated.
	Fix []rewrite.EditRequest
	// FixConflict is set when the rule proposed edits that conflict with
	// each other; Fix is empty in that case.
	FixConflict bool
}

// Fixable reports whether the finding carries an applicable fix.
func (f Finding) Fixable() bool { return len(f.Fix) > 0 }
