package rules

import (
	"strings"

	"github.com/yacobolo/jsxlint/internal/lint"
	"github.com/yacobolo/jsxlint/internal/syntax"
)

// NoUnhandledScheduling reports setTimeout and setInterval calls whose
// handle is thrown away.
func NoUnhandledScheduling() *lint.Rule {
	return &lint.Rule{
		Name:        "no-unhandled-scheduling",
		Description: "When using Javascript scheduling (`setTimeout` or `setInterval`), it is recommended to support cancelling of the task, especially within React components.",
		Type:        lint.TypeSuggestion,
		Messages: map[string]string{
			"noUnhandledScheduling": "Avoid scheduling uncancellable `{{ scheduleFunc }}` tasks. Use the returned handle to cancel the operation with `{{ scheduleClearFunc }}` when needed.",
		},
		Recommended: lint.SeverityWarning,
		Create: func(*lint.Options) (lint.Checker, error) {
			return checkUnhandledScheduling, nil
		},
	}
}

var scheduleGlobals = []string{"window", "global", "globalThis"}

func checkUnhandledScheduling(ctx *lint.Context) lint.Visitor {
	f := ctx.File
	return lint.Visitor{Enter: func(n *syntax.Node) {
		if n.Kind != syntax.KindCall {
			return
		}
		stmt := n.Parent
		if stmt == nil || stmt.Kind != syntax.KindExpressionStatement || !stmt.Parent.Is(syntax.KindBlock, syntax.KindProgram) {
			return
		}
		for _, fn := range []string{"setTimeout", "setInterval"} {
			if isCallTo(f, n, fn, scheduleGlobals...) {
				ctx.Report(lint.Report{
					Node:      n,
					MessageID: "noUnhandledScheduling",
					Data: map[string]string{
						"scheduleFunc":      fn,
						"scheduleClearFunc": strings.Replace(fn, "set", "clear", 1),
					},
				})
				return
			}
		}
	}}
}
