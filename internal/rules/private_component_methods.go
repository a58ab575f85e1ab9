package rules

import (
	"github.com/yacobolo/jsxlint/internal/lint"
	"github.com/yacobolo/jsxlint/internal/rewrite"
	"github.com/yacobolo/jsxlint/internal/syntax"
)

// PrivateComponentMethods requires non-lifecycle methods of class
// components to be private, so unused handlers are found by the compiler.
// Accessibility modifiers only exist in TypeScript; other files are skipped.
func PrivateComponentMethods() *lint.Rule {
	return &lint.Rule{
		Name:        "private-component-methods",
		Description: "Non-lifecycle methods for React class components should be private to help find unused handlers",
		Type:        lint.TypeSuggestion,
		Fixable:     true,
		Messages: map[string]string{
			"privateMethods": "Non-lifecycle methods for React class components should be private",
		},
		Recommended: lint.SeverityError,
		Create: func(*lint.Options) (lint.Checker, error) {
			return checkPrivateMethods, nil
		},
	}
}

func checkPrivateMethods(ctx *lint.Context) lint.Visitor {
	f := ctx.File
	if !f.Dialect.IsTypeScript() {
		return lint.Visitor{}
	}
	return lint.Visitor{Enter: func(n *syntax.Node) {
		if n.Kind != syntax.KindClass || !isComponentClass(f, n) {
			return
		}
		for _, member := range classMembers(n) {
			key := syntax.MemberKey(member)
			if key == nil || key.Kind != syntax.KindPropertyIdentifier || key.Type == "private_property_identifier" {
				continue
			}
			if member.HasModifier("static") || member.HasModifier("private") || lifecycleMethods[f.Text(key)] {
				continue
			}
			if member.Kind == syntax.KindField && !isFunctionValue(member) {
				continue
			}
			ctx.Report(lint.Report{
				Node:      key,
				MessageID: "privateMethods",
				Fix:       makePrivate(member, key),
			})
		}
	}}
}

func isFunctionValue(field *syntax.Node) bool {
	v := syntax.Unwrap(syntax.MemberValue(field))
	return v.Is(syntax.KindArrowFunction, syntax.KindFunctionExpression)
}

// makePrivate turns an existing public or protected modifier into private,
// or inserts private before the first other modifier (async, get, readonly,
// ...) or the key.
func makePrivate(member, key *syntax.Node) []rewrite.EditRequest {
	for _, c := range member.Children {
		if c.Kind == syntax.KindAccessibility {
			return []rewrite.EditRequest{rewrite.ReplaceRange(c.Start, c.End, "private")}
		}
	}
	at := key.Start
	for _, m := range member.Modifiers {
		if m.Start < at && m.Text != "static" {
			at = m.Start
		}
	}
	return []rewrite.EditRequest{rewrite.InsertAt(at, "private ")}
}
