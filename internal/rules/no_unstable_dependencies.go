package rules

import (
	"github.com/yacobolo/jsxlint/internal/lint"
	"github.com/yacobolo/jsxlint/internal/syntax"
)

// NoUnstableDependencies reports hook dependencies that are recreated on
// every render: local variables whose every assignment is an object, array,
// function, class, new expression or JSX.
func NoUnstableDependencies() *lint.Rule {
	return &lint.Rule{
		Name:        "no-unstable-dependencies",
		Description: "Unstable dependencies should be avoided in React hook dependency arrays",
		Type:        lint.TypeSuggestion,
		Messages: map[string]string{
			"unstableDependency": "Variable is created every render, but it is used in a React hook dependency array. Consider moving the value to a module constant.",
		},
		Create: func(*lint.Options) (lint.Checker, error) {
			return checkUnstableDependencies, nil
		},
	}
}

var dependencyHooks = map[string]bool{
	"useCallback":     true,
	"useMemo":         true,
	"useEffect":       true,
	"useLayoutEffect": true,
}

func checkUnstableDependencies(ctx *lint.Context) lint.Visitor {
	f := ctx.File
	reported := make(map[*syntax.Node]bool)
	report := func(n *syntax.Node) {
		if !reported[n] {
			reported[n] = true
			ctx.Report(lint.Report{Node: n, MessageID: "unstableDependency"})
		}
	}

	return lint.Visitor{Enter: func(n *syntax.Node) {
		if n.Kind != syntax.KindCall {
			return
		}
		if _, name, ok := callee(f, n); !ok || !dependencyHooks[name] {
			return
		}
		args := syntax.Arguments(n)
		if len(args) < 2 || args[1].Kind != syntax.KindArray {
			return
		}
		for _, dep := range args[1].Children {
			id := dependencyIdentifier(dep)
			if id == nil {
				continue
			}
			writes, ok := resolveWrites(f, n, f.Text(id))
			if !ok || len(writes) == 0 {
				continue
			}
			stable := false
			for _, w := range writes {
				if !isUnstableExpression(w) {
					stable = true
					break
				}
			}
			if stable {
				continue
			}
			for _, w := range writes {
				report(w)
			}
			report(dep)
		}
	}}
}

// dependencyIdentifier returns the variable a dependency entry refers to:
// the identifier itself, or the root object of a member chain.
func dependencyIdentifier(dep *syntax.Node) *syntax.Node {
	dep = syntax.Unwrap(dep)
	for dep != nil && dep.Kind == syntax.KindMember {
		dep = syntax.Unwrap(dep.Field("object"))
	}
	if dep == nil || dep.Kind != syntax.KindIdentifier {
		return nil
	}
	return dep
}

func isUnstableExpression(n *syntax.Node) bool {
	return syntax.Unwrap(n).Is(
		syntax.KindObject,
		syntax.KindArray,
		syntax.KindArrowFunction,
		syntax.KindFunctionExpression,
		syntax.KindClass,
		syntax.KindNew,
		syntax.KindJSXElement,
		syntax.KindJSXSelfClosing,
	)
}

// resolveWrites finds the nearest function around call that declares name
// and returns every expression written to it there. ok is false when the
// name is not declared in any enclosing function (module scope or global).
func resolveWrites(f *syntax.File, call *syntax.Node, name string) (writes []*syntax.Node, ok bool) {
	for fn := enclosingFunction(call); fn != nil; fn = enclosingFunction(fn) {
		declared, initial := declarations(f, fn, name)
		if !declared {
			continue
		}
		writes = append(writes, initial...)
		syntax.Walk(fn.Field("body"), func(n *syntax.Node) {
			if n.Kind != syntax.KindAssignment || n.Operator != "=" {
				return
			}
			left := syntax.Unwrap(n.Field("left"))
			if left.Is(syntax.KindIdentifier) && f.Text(left) == name {
				if right := n.Field("right"); right != nil {
					writes = append(writes, right)
				}
			}
		}, nil)
		return writes, true
	}
	return nil, false
}

// declarations reports whether fn declares name, as a parameter or as a
// variable in its own body, and returns the initial values written by
// those declarations.
func declarations(f *syntax.File, fn *syntax.Node, name string) (declared bool, writes []*syntax.Node) {
	bind := func(pattern, init *syntax.Node) {
		for _, b := range bindings(pattern) {
			if f.Text(b.id) != name {
				continue
			}
			declared = true
			switch {
			case b.init != nil:
				writes = append(writes, b.init)
			case init != nil:
				writes = append(writes, init)
			}
		}
	}

	if params := fn.Field("parameters"); params != nil {
		for _, p := range params.Children {
			bind(p, nil)
		}
	} else if p := fn.Field("parameter"); p != nil {
		bind(p, nil)
	}

	syntax.Walk(fn.Field("body"), func(n *syntax.Node) {
		if n.Kind == syntax.KindVariableDeclarator && enclosingFunction(n) == fn {
			bind(n.Field("name"), n.Field("value"))
		}
	}, nil)
	return declared, writes
}

type binding struct {
	id   *syntax.Node
	init *syntax.Node
}

// bindings lists the identifiers bound by a parameter or declarator
// pattern, with the default value attached to each, if any.
func bindings(pattern *syntax.Node) []binding {
	if pattern == nil {
		return nil
	}
	switch pattern.Kind {
	case syntax.KindIdentifier:
		if pattern.Type == "type_identifier" {
			return nil
		}
		return []binding{{id: pattern}}
	case syntax.KindAssignmentPattern:
		left, right := pattern.Field("left"), pattern.Field("right")
		if left == nil && len(pattern.Children) > 0 {
			left = pattern.Children[0]
		}
		out := bindings(left)
		for i := range out {
			if out[i].init == nil {
				out[i].init = right
			}
		}
		return out
	case syntax.KindParameter:
		out := bindings(pattern.Field("pattern"))
		if value := pattern.Field("value"); value != nil {
			for i := range out {
				if out[i].init == nil {
					out[i].init = value
				}
			}
		}
		return out
	case syntax.KindPairPattern:
		return bindings(pattern.Field("value"))
	}
	var out []binding
	switch pattern.Kind {
	case syntax.KindObjectPattern:
		for _, c := range pattern.Children {
			out = append(out, bindings(c)...)
		}
	case syntax.KindOther:
		if pattern.Type == "array_pattern" || pattern.Type == "rest_pattern" {
			for _, c := range pattern.Children {
				out = append(out, bindings(c)...)
			}
		}
	}
	return out
}
