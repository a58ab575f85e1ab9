package rules

import (
	"github.com/yacobolo/jsxlint/internal/syntax"
)

// componentBases are the base class names that make a class a component,
// bare or qualified (React.Component).
var componentBases = map[string]bool{
	"Component":     true,
	"PureComponent": true,
}

// lifecycleMethods are the React class members that must stay public.
var lifecycleMethods = map[string]bool{
	"constructor":               true,
	"componentWillMount":        true,
	"render":                    true,
	"componentDidMount":         true,
	"componentWillReceiveProps": true,
	"shouldComponentUpdate":     true,
	"componentWillUpdate":       true,
	"componentDidUpdate":        true,
	"componentWillUnmount":      true,
	"getDerivedStateFromProps":  true,
}

// isComponentClass reports whether class extends Component or PureComponent.
func isComponentClass(f *syntax.File, class *syntax.Node) bool {
	base, _ := syntax.Heritage(class)
	if base == nil {
		return false
	}
	return componentBases[syntax.PropertyName(f, base)]
}

// componentTypeArgs returns the type arguments given to the component base
// class, or nil.
func componentTypeArgs(class *syntax.Node) []*syntax.Node {
	_, args := syntax.Heritage(class)
	if args == nil {
		return nil
	}
	return args.Children
}

// isComponentName reports whether name looks like a component: a capital
// letter followed by at least one more character.
func isComponentName(name string) bool {
	return len(name) >= 2 && name[0] >= 'A' && name[0] <= 'Z'
}

// callee splits the function of a call into its object text and name:
// f() gives ("", "f"), window.f() gives ("window", "f"). Computed and
// otherwise dynamic callees return ok=false.
func callee(f *syntax.File, call *syntax.Node) (object, name string, ok bool) {
	fn := syntax.Unwrap(call.Field("function"))
	if fn == nil {
		return "", "", false
	}
	switch fn.Kind {
	case syntax.KindIdentifier:
		return "", f.Text(fn), true
	case syntax.KindMember:
		obj := syntax.Unwrap(fn.Field("object"))
		prop := fn.Field("property")
		if obj == nil || prop == nil {
			return "", "", false
		}
		return f.Text(obj), f.Text(prop), true
	}
	return "", "", false
}

// isCallTo reports whether call invokes name, bare or on one of objects.
func isCallTo(f *syntax.File, call *syntax.Node, name string, objects ...string) bool {
	if call == nil || call.Kind != syntax.KindCall {
		return false
	}
	obj, fn, ok := callee(f, call)
	if !ok || fn != name {
		return false
	}
	if obj == "" {
		return true
	}
	for _, o := range objects {
		if obj == o {
			return true
		}
	}
	return false
}

// enclosingFunction returns the nearest function around n.
func enclosingFunction(n *syntax.Node) *syntax.Node {
	return n.Closest(syntax.KindFunctionDeclaration, syntax.KindFunctionExpression, syntax.KindArrowFunction, syntax.KindMethod)
}

// classMembers returns the methods and fields of a class body.
func classMembers(class *syntax.Node) []*syntax.Node {
	body := class.Field("body")
	if body == nil {
		body = class.FirstChild(syntax.KindClassBody)
	}
	if body == nil {
		return nil
	}
	var members []*syntax.Node
	for _, c := range body.Children {
		if c.Is(syntax.KindMethod, syntax.KindField) {
			members = append(members, c)
		}
	}
	return members
}
