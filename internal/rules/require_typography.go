package rules

import (
	"github.com/yacobolo/jsxlint/internal/lint"
	"github.com/yacobolo/jsxlint/internal/rewrite"
	"github.com/yacobolo/jsxlint/internal/syntax"
	"github.com/yacobolo/jsxlint/internal/typography"
)

// RequireTypography reports straight quotes, three periods and +- in human
// readable text: string literals, template literals and JSX text.
func RequireTypography() *lint.Rule {
	return &lint.Rule{
		Name:        "require-typography",
		Description: "Prefer using the alternative typographic characters for human readable text",
		Type:        lint.TypeSuggestion,
		Fixable:     true,
		Messages: map[string]string{
			"requireTypography": "Prefer using the alternative typographic character {{ toUnicode }}{{ toAsciiAlternate }}",
		},
		Schema: `{
			"type": "object",
			"properties": {
				"preferAscii": {"type": "boolean", "default": false}
			},
			"additionalProperties": false
		}`,
		Create: newTypographyChecker,
	}
}

func newTypographyChecker(opts *lint.Options) (lint.Checker, error) {
	var cfg struct {
		PreferASCII bool `json:"preferAscii"`
	}
	if err := opts.Decode(&cfg); err != nil {
		return nil, err
	}

	// String literals can only carry escapes; templates and JSX text are
	// usually rendered as HTML.
	literal, markup := typography.Unicode, typography.Unicode
	if cfg.PreferASCII {
		literal, markup = typography.Escape, typography.Entity
	}

	return func(ctx *lint.Context) lint.Visitor {
		f := ctx.File
		scanner := typography.NewScanner()

		check := func(span syntax.Span, r typography.Rendering) {
			if span.Len() == 0 {
				return
			}
			for _, found := range scanner.Scan(f.SpanText(span), span.Start) {
				toUnicode, alternate := found.Describe(r)
				report := lint.Report{
					Span:      syntax.Span{Start: found.Offset, End: found.Offset + found.Length},
					MessageID: "requireTypography",
					Data:      map[string]string{"toUnicode": toUnicode, "toAsciiAlternate": alternate},
				}
				if found.Fixable {
					report.Fix = []rewrite.EditRequest{
						rewrite.ReplaceRange(report.Span.Start, report.Span.End, found.Replacement.In(r)),
					}
				}
				ctx.Report(report)
			}
		}

		return lint.Visitor{Enter: func(n *syntax.Node) {
			switch n.Kind {
			case syntax.KindString:
				check(syntax.StringContent(n), literal)
			case syntax.KindTemplate:
				for _, quasi := range syntax.TemplateQuasis(n) {
					check(quasi, markup)
				}
			case syntax.KindJSXElement:
				for _, text := range syntax.JSXTextSpans(n) {
					check(text, markup)
				}
			}
		}}
	}, nil
}
