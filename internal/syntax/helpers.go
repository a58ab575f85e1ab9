package syntax

import (
	"strconv"
	"strings"
)

// StringContent returns the span inside the quotes of a string literal.
func StringContent(n *Node) Span {
	if n == nil || n.End-n.Start < 2 {
		return Span{}
	}
	return Span{Start: n.Start + 1, End: n.End - 1}
}

// StringValue returns the unescaped value of a string literal.
func StringValue(f *File, n *Node) (string, bool) {
	if n == nil || n.Kind != KindString {
		return "", false
	}
	return unescape(f.SpanText(StringContent(n))), true
}

var simpleEscapes = map[byte]string{
	'n': "\n", 't': "\t", 'r': "\r", 'b': "\b", 'f': "\f", 'v': "\v", '0': "\x00",
}

func unescape(raw string) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			sb.WriteByte(c)
			continue
		}
		i++
		next := raw[i]
		if s, ok := simpleEscapes[next]; ok {
			sb.WriteString(s)
			continue
		}
		switch next {
		case '\n':
			// line continuation
		case '\r':
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
		case 'x':
			if i+2 < len(raw) {
				if v, err := strconv.ParseUint(raw[i+1:i+3], 16, 8); err == nil {
					sb.WriteRune(rune(v))
					i += 2
					continue
				}
			}
			sb.WriteByte(next)
		case 'u':
			hex, width := "", 0
			if i+1 < len(raw) && raw[i+1] == '{' {
				if end := strings.IndexByte(raw[i:], '}'); end > 0 {
					hex, width = raw[i+2:i+end], end
				}
			} else if i+4 < len(raw) {
				hex, width = raw[i+1:i+5], 4
			}
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil && hex != "" {
				sb.WriteRune(rune(v))
				i += width
				continue
			}
			sb.WriteByte(next)
		default:
			sb.WriteByte(next)
		}
	}
	return sb.String()
}

// TemplateQuasis returns the spans of the literal chunks of a template string,
// excluding the backticks and ${ } substitutions.
func TemplateQuasis(n *Node) []Span {
	if n == nil || n.Kind != KindTemplate {
		return nil
	}
	var spans []Span
	start := n.Start + 1
	for _, c := range n.Children {
		if c.Kind != KindTemplateSubstitution {
			continue
		}
		spans = append(spans, Span{Start: start, End: c.Start})
		start = c.End
	}
	end := n.End - 1
	if end < start {
		end = start
	}
	return append(spans, Span{Start: start, End: end})
}

// JSXTextSpans returns the text runs between the children of a JSX element.
// Each run corresponds to one text node including its surrounding whitespace,
// whatever the grammar decided about trimming or entity splitting.
func JSXTextSpans(n *Node) []Span {
	if n == nil || n.Kind != KindJSXElement {
		return nil
	}
	open := n.Field("open_tag")
	if open == nil {
		open = n.FirstChild(KindJSXOpening)
	}
	closing := n.Field("close_tag")
	if closing == nil {
		closing = n.FirstChild(KindJSXClosing)
	}
	if open == nil || closing == nil {
		return nil
	}

	var spans []Span
	start := open.End
	for _, c := range n.Children {
		if c == open || c == closing {
			continue
		}
		if c.Is(KindJSXElement, KindJSXSelfClosing, KindJSXExpression) {
			if c.Start > start {
				spans = append(spans, Span{Start: start, End: c.Start})
			}
			start = c.End
		}
	}
	if closing.Start > start {
		spans = append(spans, Span{Start: start, End: closing.Start})
	}
	return spans
}

// Name returns the identifier text of a declaration (class, function,
// variable declarator, method or field), or "".
func Name(f *File, n *Node) string {
	if n == nil {
		return ""
	}
	id := n.Field("name")
	if id == nil {
		id = n.Field("property")
	}
	if id == nil {
		return ""
	}
	if id.Kind == KindString {
		v, _ := StringValue(f, id)
		return v
	}
	return f.Text(id)
}

// MemberKey returns the key node of a method or field definition.
func MemberKey(n *Node) *Node {
	if key := n.Field("name"); key != nil {
		return key
	}
	return n.Field("property")
}

// MemberValue returns the initializer of a field definition.
func MemberValue(n *Node) *Node {
	return n.Field("value")
}

// Heritage returns the base class expression and its type arguments, if any.
// Both the javascript (class_heritage > expression) and typescript
// (class_heritage > extends_clause) shapes are recognised.
func Heritage(class *Node) (base *Node, typeArgs *Node) {
	if class == nil || class.Kind != KindClass {
		return nil, nil
	}
	heritage := class.FirstChild(KindClassHeritage)
	if heritage == nil {
		return nil, nil
	}
	clause := heritage.FirstChild(KindExtendsClause)
	if clause == nil {
		if len(heritage.Children) == 0 {
			return nil, nil
		}
		base = heritage.Children[0]
	} else {
		base = clause.Field("value")
		if base == nil && len(clause.Children) > 0 {
			base = clause.Children[0]
		}
		typeArgs = clause.Field("type_arguments")
		if typeArgs == nil {
			typeArgs = clause.FirstChild(KindTypeArguments)
		}
	}
	// generic_type and instantiation_expression carry their own type arguments
	if base != nil && typeArgs == nil {
		typeArgs = base.FirstChild(KindTypeArguments)
		if (base.Type == "generic_type" || base.Type == "instantiation_expression") && len(base.Children) > 0 {
			base = base.Children[0]
		}
	}
	return base, typeArgs
}

// PropertyName returns the trailing property name of a member expression,
// or the identifier text itself.
func PropertyName(f *File, n *Node) string {
	n = Unwrap(n)
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindMember:
		return f.Text(n.Field("property"))
	case KindIdentifier, KindPropertyIdentifier:
		return f.Text(n)
	case KindOther:
		if n.Type == "nested_identifier" || n.Type == "nested_type_identifier" {
			if len(n.Children) > 0 {
				return f.Text(n.Children[len(n.Children)-1])
			}
		}
	}
	return ""
}

// Arguments returns the argument expressions of a call or new expression.
func Arguments(call *Node) []*Node {
	args := call.Field("arguments")
	if args == nil {
		return nil
	}
	return args.Children
}

// JSXAttributes returns the attributes of an opening or self-closing element.
func JSXAttributes(tag *Node) []*Node {
	var attrs []*Node
	for _, c := range tag.Children {
		if c.Kind == KindJSXAttribute {
			attrs = append(attrs, c)
		}
	}
	return attrs
}

// JSXAttributeName returns the name node and value node of a JSX attribute.
func JSXAttributeName(attr *Node) (name, value *Node) {
	if len(attr.Children) == 0 {
		return nil, nil
	}
	name = attr.Children[0]
	if len(attr.Children) > 1 {
		value = attr.Children[1]
	}
	return name, value
}
