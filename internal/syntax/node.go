package syntax

// Span is a half-open byte range [Start, End) in the original source.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether offset lies inside the span.
func (s Span) Contains(offset int) bool { return offset >= s.Start && offset < s.End }

// Modifier is a keyword attached to a declaration, such as static, async or
// an accessibility modifier.
type Modifier struct {
	Text  string
	Start int
}

// Node is a named syntax node. Anonymous grammar tokens are folded into
// Operator and Modifiers; comments are collected on the File instead.
type Node struct {
	Kind      Kind
	Type      string
	Start     int
	End       int
	Parent    *Node
	Children  []*Node
	Operator  string
	Modifiers []Modifier

	fields map[string]*Node
}

// Span returns the byte range of the node.
func (n *Node) Span() Span { return Span{Start: n.Start, End: n.End} }

// Field returns the child stored under a grammar field name, or nil.
func (n *Node) Field(name string) *Node {
	if n == nil {
		return nil
	}
	return n.fields[name]
}

// Child returns the i-th named child, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// FirstChild returns the first child of the given kind.
func (n *Node) FirstChild(kind Kind) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// Is reports whether the node has one of the given kinds.
func (n *Node) Is(kinds ...Kind) bool {
	if n == nil {
		return false
	}
	for _, k := range kinds {
		if n.Kind == k {
			return true
		}
	}
	return false
}

// HasModifier reports whether a modifier keyword with the given text is present.
func (n *Node) HasModifier(text string) bool {
	for _, m := range n.Modifiers {
		if m.Text == text {
			return true
		}
	}
	return false
}

// Closest returns the nearest ancestor (excluding n) of one of the given kinds.
func (n *Node) Closest(kinds ...Kind) *Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Is(kinds...) {
			return p
		}
	}
	return nil
}

// IsFunction reports whether the node introduces a function body.
func (n *Node) IsFunction() bool {
	return n.Is(KindFunctionDeclaration, KindFunctionExpression, KindArrowFunction, KindMethod)
}

// Unwrap strips parentheses, type assertions and non-null assertions.
func Unwrap(n *Node) *Node {
	for n != nil && n.Is(KindParenthesized, KindAs, KindNonNull) {
		if len(n.Children) == 0 {
			return n
		}
		n = n.Children[0]
	}
	return n
}

// Walk visits n and its descendants depth-first. exit may be nil.
func Walk(n *Node, enter func(*Node), exit func(*Node)) {
	if n == nil {
		return
	}
	enter(n)
	for _, c := range n.Children {
		Walk(c, enter, exit)
	}
	if exit != nil {
		exit(n)
	}
}

// Find returns every descendant of n (including n) matching pred, in document order.
func Find(n *Node, pred func(*Node) bool) []*Node {
	var out []*Node
	Walk(n, func(c *Node) {
		if pred(c) {
			out = append(out, c)
		}
	}, nil)
	return out
}
