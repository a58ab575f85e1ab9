package rules

import (
	"github.com/yacobolo/jsxlint/internal/lint"
	"github.com/yacobolo/jsxlint/internal/rewrite"
	"github.com/yacobolo/jsxlint/internal/syntax"
)

// NoHrefAssignment reports location.href assignments and rewrites them to
// location.assign calls, which are easier to stub in tests.
//
// Without type information a location is recognised by shape: an
// identifier named location, any X.location, or a local alias of
// window.location or document.location.
func NoHrefAssignment() *lint.Rule {
	return &lint.Rule{
		Name:        "no-href-assignment",
		Description: "Prefer using location.assign to make testing easier",
		Type:        lint.TypeSuggestion,
		Fixable:     true,
		Messages: map[string]string{
			"avoidHref": "Prefer using location.assign instead of href direct assignments",
		},
		Recommended: lint.SeverityError,
		Create: func(*lint.Options) (lint.Checker, error) {
			return checkHrefAssignment, nil
		},
	}
}

var locationOwners = map[string]bool{"window": true, "document": true}

func checkHrefAssignment(ctx *lint.Context) lint.Visitor {
	f := ctx.File
	var aliases map[string]bool

	isLocation := func(n *syntax.Node) bool {
		n = syntax.Unwrap(n)
		switch {
		case n == nil:
			return false
		case n.Kind == syntax.KindIdentifier:
			name := f.Text(n)
			return name == "location" || aliases[name]
		case n.Kind == syntax.KindMember:
			return f.Text(n.Field("property")) == "location"
		}
		return false
	}

	return lint.Visitor{Enter: func(n *syntax.Node) {
		switch n.Kind {
		case syntax.KindProgram:
			aliases = locationAliases(f, n)
		case syntax.KindAssignment:
			if n.Operator != "=" {
				return
			}
			left, right := syntax.Unwrap(n.Field("left")), n.Field("right")
			if left == nil || right == nil || left.Kind != syntax.KindMember {
				return
			}
			prop := left.Field("property")
			if f.Text(prop) != "href" || !isLocation(left.Field("object")) {
				return
			}
			ctx.Report(lint.Report{
				Node:      n,
				MessageID: "avoidHref",
				Fix: []rewrite.EditRequest{
					rewrite.ReplaceRange(prop.Start, right.Start, "assign("),
					rewrite.InsertAt(right.End, ")"),
				},
			})
		}
	}}
}

// locationAliases collects names bound to window.location or
// document.location anywhere in the file:
//
//	const loc = window.location
//	const { location: loc } = window
func locationAliases(f *syntax.File, root *syntax.Node) map[string]bool {
	aliases := make(map[string]bool)
	for _, decl := range syntax.Find(root, func(n *syntax.Node) bool { return n.Kind == syntax.KindVariableDeclarator }) {
		name, value := decl.Field("name"), syntax.Unwrap(decl.Field("value"))
		if name == nil || value == nil {
			continue
		}
		switch name.Kind {
		case syntax.KindIdentifier:
			if value.Kind == syntax.KindMember &&
				f.Text(value.Field("property")) == "location" &&
				locationOwners[f.Text(syntax.Unwrap(value.Field("object")))] {
				aliases[f.Text(name)] = true
			}
		case syntax.KindObjectPattern:
			if value.Kind != syntax.KindIdentifier || !locationOwners[f.Text(value)] {
				continue
			}
			for _, p := range name.Children {
				if p.Kind == syntax.KindPairPattern && f.Text(p.Field("key")) == "location" {
					if target := p.Field("value"); target != nil && target.Kind == syntax.KindIdentifier {
						aliases[f.Text(target)] = true
					}
				}
			}
		}
	}
	return aliases
}
