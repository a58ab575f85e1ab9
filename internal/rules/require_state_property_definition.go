package rules

import (
	"github.com/yacobolo/jsxlint/internal/lint"
	"github.com/yacobolo/jsxlint/internal/syntax"
)

// RequireStatePropertyDefinition checks that class components declaring a
// state type (the second type argument of the base class) initialize state,
// and that components without one do not.
func RequireStatePropertyDefinition() *lint.Rule {
	return &lint.Rule{
		Name:        "require-state-property-definition",
		Description: "For class components that use state, a state property should be defined before mount.",
		Type:        lint.TypeProblem,
		Messages: map[string]string{
			"requireStatePropertyDefinition":    "A state property definition should be included in classes that have a state type defined",
			"unexpectedStatePropertyDefinition": "An unexpected state definition was found when a state type was not provided as a type argument to React.Component",
		},
		Recommended: lint.SeverityWarning,
		Create: func(*lint.Options) (lint.Checker, error) {
			return checkStateDefinition, nil
		},
	}
}

func checkStateDefinition(ctx *lint.Context) lint.Visitor {
	f := ctx.File
	return lint.Visitor{Enter: func(n *syntax.Node) {
		if n.Kind != syntax.KindClass || !isComponentClass(f, n) {
			return
		}
		def := stateDefinition(f, n)
		typed := len(componentTypeArgs(n)) >= 2
		switch {
		case def != nil && !typed:
			ctx.Report(lint.Report{Node: def, MessageID: "unexpectedStatePropertyDefinition"})
		case def == nil && typed:
			ctx.Report(lint.Report{Node: n, MessageID: "requireStatePropertyDefinition"})
		}
	}}
}

// stateDefinition returns the state field of a class, or the first
// this.state = ... statement directly in its constructor.
func stateDefinition(f *syntax.File, class *syntax.Node) *syntax.Node {
	var constructor *syntax.Node
	for _, m := range classMembers(class) {
		key := syntax.MemberKey(m)
		if key == nil || key.Kind != syntax.KindPropertyIdentifier {
			continue
		}
		switch {
		case m.Kind == syntax.KindField && f.Text(key) == "state" && !m.HasModifier("static"):
			return m
		case m.Kind == syntax.KindMethod && f.Text(key) == "constructor" && constructor == nil:
			constructor = m
		}
	}
	if constructor == nil {
		return nil
	}
	body := constructor.Field("body")
	if body == nil {
		return nil
	}
	for _, stmt := range body.Children {
		if stmt.Kind != syntax.KindExpressionStatement || len(stmt.Children) == 0 {
			continue
		}
		assign := stmt.Children[0]
		if assign.Kind != syntax.KindAssignment || assign.Operator != "=" {
			continue
		}
		left := syntax.Unwrap(assign.Field("left"))
		if left.Is(syntax.KindMember) &&
			syntax.Unwrap(left.Field("object")).Is(syntax.KindThis) &&
			f.Text(left.Field("property")) == "state" {
			return stmt
		}
	}
	return nil
}
