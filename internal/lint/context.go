package lint

import (
	"regexp"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/yacobolo/jsxlint/internal/rewrite"
	"github.com/yacobolo/jsxlint/internal/syntax"
)

// Report is what a rule passes to Context.Report.
type Report struct {
	// Node locates the finding. When nil, Span is used.
	Node      *syntax.Node
	Span      syntax.Span
	MessageID string
	Data      map[string]string
	Fix       []rewrite.EditRequest
}

// Context is handed to a Checker for one file.
type Context struct {
	File     *syntax.File
	rule     *Rule
	severity Severity
	findings []Finding
}

func newContext(file *syntax.File, rule *Rule, severity Severity) *Context {
	return &Context{File: file, rule: rule, severity: severity}
}

// Text returns the source text of n.
func (c *Context) Text(n *syntax.Node) string { return c.File.Text(n) }

// Report records a finding. The message template is filled from Data. Fix
// edits are validated as one group; a group with conflicting edits is
// dropped and the finding is kept without a fix.
func (c *Context) Report(r Report) {
	span := r.Span
	if r.Node != nil {
		span = r.Node.Span()
	}

	f := Finding{
		Rule:      c.rule.Name,
		MessageID: r.MessageID,
		Message:   FormatMessage(c.rule.Messages[r.MessageID], r.Data),
		Severity:  c.severity,
		Span:      span,
	}
	f.Line, f.Column = c.File.Position(span.Start)
	f.EndLine, f.EndColumn = c.File.Position(span.End)

	if len(r.Fix) > 0 {
		fix, err := rewrite.Normalize(r.Fix, len(c.File.Source))
		if err != nil {
			var conflict *rewrite.ConflictError
			if !errors.As(err, &conflict) {
				log.Debug("dropping invalid fix", "rule", c.rule.Name, "file", c.File.Path, "err", err)
			}
			f.FixConflict = true
		} else {
			f.Fix = fix
		}
	}
	c.findings = append(c.findings, f)
}

var placeholder = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// FormatMessage substitutes {{ key }} placeholders from data. Unknown keys
// are left as written.
func FormatMessage(template string, data map[string]string) string {
	if len(data) == 0 {
		return template
	}
	return placeholder.ReplaceAllStringFunc(template, func(m string) string {
		key := placeholder.FindStringSubmatch(m)[1]
		if v, ok := data[key]; ok {
			return v
		}
		return m
	})
}
