package jsxlint

import "github.com/yacobolo/jsxlint/internal/lint"

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string     `json:"FromLinter"`  // "unregister-events"
	MessageID   string     `json:"MessageID"`   // "unregisterEventsInClass"
	Text        string     `json:"Text"`        // rendered message
	Severity    string     `json:"Severity"`    // "", "warning", "error"
	SourceLines []string   `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos   `json:"Pos"`         // File location
	LineRange   *LineRange `json:"LineRange"`   // Set when the finding spans lines
	Fixable     bool       `json:"Fixable"`     // A fix is available with --fix
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`   // 1-based
	Column   int    `json:"Column"` // 1-based byte column
}

// LineRange specifies a range of lines
type LineRange struct {
	From int `json:"From"`
	To   int `json:"To"`
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

func severityOf(s lint.Severity) string {
	switch s {
	case lint.SeverityError:
		return SeverityError
	case lint.SeverityWarning:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// newIssue converts a rule finding. lineText returns the source of a line.
func newIssue(filename string, f lint.Finding, lineText func(int) string) Issue {
	issue := Issue{
		FromLinter:  f.Rule,
		MessageID:   f.MessageID,
		Text:        f.Message,
		Severity:    severityOf(f.Severity),
		SourceLines: []string{lineText(f.Line)},
		Pos:         IssuePos{Filename: filename, Line: f.Line, Column: f.Column},
		Fixable:     f.Fixable(),
	}
	if f.EndLine > f.Line {
		issue.LineRange = &LineRange{From: f.Line, To: f.EndLine}
	}
	return issue
}
