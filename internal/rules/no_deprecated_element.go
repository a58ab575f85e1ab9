package rules

import (
	"github.com/yacobolo/jsxlint/internal/lint"
	"github.com/yacobolo/jsxlint/internal/rewrite"
	"github.com/yacobolo/jsxlint/internal/syntax"
)

// Deprecation is one entry of the no-deprecated-element table.
type Deprecation struct {
	Element string `json:"element"`
	// ReplaceWith is shorthand for Replace with only an element name.
	ReplaceWith string       `json:"replaceWith"`
	Replace     *Replacement `json:"replace"`
}

// Replacement describes how a deprecated element is migrated.
type Replacement struct {
	Element     string    `json:"element"`
	AddProps    []AddProp `json:"addProps"`
	RemoveProps []string  `json:"removeProps"`
}

// AddProp adds an attribute to the migrated element. The value is taken
// from the first present attribute in KeysToPullValueFrom, falling back to
// DefaultValue. An existing attribute with the same key is only replaced
// when Overwrite is set.
type AddProp struct {
	Key                 string   `json:"key"`
	DefaultValue        string   `json:"defaultValue"`
	KeysToPullValueFrom []string `json:"keysToPullValueFrom"`
	Overwrite           bool     `json:"overwrite"`
}

const deprecationSchema = `{
	"type": "object",
	"properties": {
		"deprecate": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"element": {"type": "string", "minLength": 1},
					"replaceWith": {"type": "string", "minLength": 1},
					"replace": {
						"type": "object",
						"properties": {
							"element": {"type": "string", "minLength": 1},
							"addProps": {
								"type": "array",
								"items": {
									"type": "object",
									"properties": {
										"key": {"type": "string", "minLength": 1},
										"defaultValue": {"type": "string"},
										"keysToPullValueFrom": {"type": "array", "items": {"type": "string"}},
										"overwrite": {"type": "boolean"}
									},
									"required": ["key", "defaultValue"],
									"additionalProperties": false
								}
							},
							"removeProps": {"type": "array", "items": {"type": "string"}}
						},
						"required": ["element"],
						"additionalProperties": false
					}
				},
				"required": ["element"],
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`

// NoDeprecatedElement reports configured JSX elements and, when a
// replacement is configured, migrates them.
func NoDeprecatedElement() *lint.Rule {
	return &lint.Rule{
		Name:        "no-deprecated-element",
		Description: "Deprecated elements should not be used",
		Type:        lint.TypeSuggestion,
		Fixable:     true,
		Messages: map[string]string{
			"noDeprecatedElement":             "<{{element}}> is deprecated",
			"noDeprecatedElement_replacement": "<{{element}}> is deprecated, use <{{replaceWith}}> instead.",
		},
		Schema: deprecationSchema,
		Create: newDeprecatedElementChecker,
	}
}

func newDeprecatedElementChecker(opts *lint.Options) (lint.Checker, error) {
	var cfg struct {
		Deprecate []Deprecation `json:"deprecate"`
	}
	if err := opts.Decode(&cfg); err != nil {
		return nil, err
	}

	byElement := make(map[string]*Deprecation, len(cfg.Deprecate))
	for i := range cfg.Deprecate {
		d := &cfg.Deprecate[i]
		if d.Replace == nil && d.ReplaceWith != "" {
			d.Replace = &Replacement{Element: d.ReplaceWith}
		}
		byElement[d.Element] = d
	}

	return func(ctx *lint.Context) lint.Visitor {
		f := ctx.File
		return lint.Visitor{Enter: func(n *syntax.Node) {
			var tag *syntax.Node
			switch n.Kind {
			case syntax.KindJSXElement:
				tag = openingTag(n)
			case syntax.KindJSXSelfClosing:
				tag = n
			default:
				return
			}
			name := tag.Field("name")
			if name == nil {
				return
			}
			d, ok := byElement[f.Text(name)]
			if !ok {
				return
			}

			if d.Replace == nil {
				ctx.Report(lint.Report{
					Node:      name,
					MessageID: "noDeprecatedElement",
					Data:      map[string]string{"element": d.Element},
				})
				return
			}
			ctx.Report(lint.Report{
				Node:      name,
				MessageID: "noDeprecatedElement_replacement",
				Data:      map[string]string{"element": d.Element, "replaceWith": d.Replace.Element},
				Fix:       migrateElement(f, n, tag, d.Replace),
			})
		}}
	}, nil
}

func openingTag(elem *syntax.Node) *syntax.Node {
	if open := elem.Field("open_tag"); open != nil {
		return open
	}
	return elem.FirstChild(syntax.KindJSXOpening)
}

func closingTag(elem *syntax.Node) *syntax.Node {
	if closing := elem.Field("close_tag"); closing != nil {
		return closing
	}
	return elem.FirstChild(syntax.KindJSXClosing)
}

// migrateElement builds the edit group that renames the element and applies
// the prop changes of r. All offsets refer to the unmodified source.
func migrateElement(f *syntax.File, elem, tag *syntax.Node, r *Replacement) []rewrite.EditRequest {
	name := tag.Field("name")
	edits := []rewrite.EditRequest{rewrite.ReplaceRange(name.Start, name.End, r.Element)}
	if elem.Kind == syntax.KindJSXElement {
		if closing := closingTag(elem).Field("name"); closing != nil {
			edits = append(edits, rewrite.ReplaceRange(closing.Start, closing.End, r.Element))
		}
	}

	attrs := make(map[string]*syntax.Node)
	for _, attr := range syntax.JSXAttributes(tag) {
		key, _ := syntax.JSXAttributeName(attr)
		if k := f.Text(key); k != "" {
			if _, seen := attrs[k]; !seen {
				attrs[k] = attr
			}
		}
	}

	for _, p := range r.AddProps {
		text := renderProp(p.Key, p.DefaultValue)
		for _, from := range p.KeysToPullValueFrom {
			if source, ok := attrs[from]; ok {
				_, value := syntax.JSXAttributeName(source)
				text = renderProp(p.Key, f.Text(value))
				break
			}
		}
		if existing, ok := attrs[p.Key]; ok {
			if p.Overwrite {
				edits = append(edits, rewrite.ReplaceRange(existing.Start, existing.End, text))
			}
			continue
		}
		edits = append(edits, rewrite.InsertAt(name.End, " "+text))
	}

	for _, key := range r.RemoveProps {
		if attr, ok := attrs[key]; ok {
			edits = append(edits, rewrite.RemoveRange(attr.Start, attr.End))
		}
	}
	return edits
}

// renderProp renders key=value, or the bare key when value is empty. A
// pulled shorthand attribute has no value and stays shorthand.
func renderProp(key, value string) string {
	if value == "" {
		return key
	}
	return key + "=" + value
}
