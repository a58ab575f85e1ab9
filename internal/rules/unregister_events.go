package rules

import (
	"github.com/yacobolo/jsxlint/internal/ledger"
	"github.com/yacobolo/jsxlint/internal/lint"
	"github.com/yacobolo/jsxlint/internal/scope"
	"github.com/yacobolo/jsxlint/internal/syntax"
)

// UnregisterEvents reports addEventListener calls in components that are
// not matched by a removeEventListener call when the component unmounts.
func UnregisterEvents() *lint.Rule {
	return &lint.Rule{
		Name:        "unregister-events",
		Description: "After registering event listeners in React components, event handlers should be unregistered when the component is unmounted.",
		Type:        lint.TypeProblem,
		Messages: map[string]string{
			"unregisterEventsInClass": "`addEventListener` calls must have a corresponding unregister event call in `componentWillUnmount`",
			"unregisterEventsInHook":  "`addEventListener` calls must have a corresponding unregister event call in a `useEffect` cleanup function",
		},
		Recommended: lint.SeverityError,
		Create: func(*lint.Options) (lint.Checker, error) {
			return checkUnregisterEvents, nil
		},
	}
}

var listenerTargets = []string{"window", "document"}

func checkUnregisterEvents(ctx *lint.Context) lint.Visitor {
	f := ctx.File
	tracker := scope.NewTracker()
	subscriptions := ledger.New(tracker, func(found ledger.Finding) {
		id := "unregisterEventsInHook"
		if found.ScopeKind == scope.Class {
			id = "unregisterEventsInClass"
		}
		ctx.Report(lint.Report{Span: found.Subscription.Provenance, MessageID: id})
	})
	opened := make(map[*syntax.Node]bool)

	open := func(kind scope.Kind, n *syntax.Node) {
		tracker.Enter(kind, n)
		opened[n] = true
	}

	return lint.Visitor{
		Enter: func(n *syntax.Node) {
			switch n.Kind {
			case syntax.KindProgram:
				tracker.Reset()
			case syntax.KindClass:
				if isComponentClass(f, n) {
					open(scope.Class, n)
				}
			case syntax.KindFunctionDeclaration, syntax.KindVariableDeclarator:
				if isComponentName(syntax.Name(f, n)) && registersListeners(f, n) {
					open(scope.Hook, n)
				}
			case syntax.KindCall:
				// Listeners outside any component are not tracked.
				if tracker.Depth() == 0 {
					return
				}
				cur := tracker.Current()
				switch {
				case isCallTo(f, n, "addEventListener", listenerTargets...):
					if sub, ok := ledger.Signature(f, n); ok {
						subscriptions.RecordRegistration(sub)
					}
				case isCallTo(f, n, "removeEventListener", listenerTargets...):
					if !inCleanup(f, n, cur) {
						return
					}
					if sub, ok := ledger.Signature(f, n); ok {
						subscriptions.RecordDeregistration(sub)
					}
				}
			}
		},
		Exit: func(n *syntax.Node) {
			if opened[n] {
				delete(opened, n)
				tracker.Exit()
			}
		},
	}
}

func registersListeners(f *syntax.File, n *syntax.Node) bool {
	calls := syntax.Find(n, func(c *syntax.Node) bool {
		return isCallTo(f, c, "addEventListener", listenerTargets...)
	})
	return len(calls) > 0
}

// inCleanup reports whether a deregistration call sits where it runs on
// unmount: componentWillUnmount for classes, a useEffect cleanup for hooks.
func inCleanup(f *syntax.File, call *syntax.Node, cur *scope.Scope) bool {
	for p := call.Parent; p != nil && p != cur.Node; p = p.Parent {
		switch cur.Kind {
		case scope.Class:
			if p.Is(syntax.KindMethod, syntax.KindField) &&
				syntax.Name(f, p) == "componentWillUnmount" &&
				p.Closest(syntax.KindClass) == cur.Node {
				return true
			}
		case scope.Hook:
			if p.Kind == syntax.KindReturn && isEffectCallback(f, enclosingFunction(p)) {
				return true
			}
		}
	}
	return false
}

// isEffectCallback reports whether fn is passed directly to useEffect.
func isEffectCallback(f *syntax.File, fn *syntax.Node) bool {
	if fn == nil || !fn.Is(syntax.KindArrowFunction, syntax.KindFunctionExpression) {
		return false
	}
	args := fn.Parent
	if args == nil || args.Kind != syntax.KindArguments {
		return false
	}
	return isCallTo(f, args.Parent, "useEffect", "React")
}
