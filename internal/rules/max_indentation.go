package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yacobolo/jsxlint/internal/lint"
	"github.com/yacobolo/jsxlint/internal/syntax"
)

// MaxIndentation limits how many indentation levels a line may have.
func MaxIndentation() *lint.Rule {
	return &lint.Rule{
		Name:        "max-indentation",
		Description: "Limits the maximum number of times a line can be indented to improve readability.",
		Type:        lint.TypeLayout,
		Messages: map[string]string{
			"maxIndentationExceeded": "Maximum indentation exceeded. Try breaking out the code into functions to improve readability",
		},
		Schema: `{
			"type": "object",
			"properties": {
				"limit": {"type": "integer", "minimum": 1, "maximum": 999, "default": 5},
				"includeSpaces": {"type": "boolean", "default": true},
				"includeTab": {"type": "boolean", "default": true},
				"spacesPerTab": {"type": "integer", "minimum": 1, "maximum": 64, "default": 4}
			},
			"additionalProperties": false
		}`,
		Create: newMaxIndentationChecker,
	}
}

type indentationOptions struct {
	Limit         int  `json:"limit"`
	IncludeSpaces bool `json:"includeSpaces"`
	IncludeTab    bool `json:"includeTab"`
	SpacesPerTab  int  `json:"spacesPerTab"`
}

// indentationPattern matches more than Limit consecutive indentation units.
// It returns nil when neither spaces nor tabs are counted.
func (o indentationOptions) pattern() *regexp.Regexp {
	var units []string
	if o.IncludeSpaces {
		units = append(units, fmt.Sprintf("(?: {%d})", o.SpacesPerTab))
	}
	if o.IncludeTab {
		units = append(units, `\t`)
	}
	if len(units) == 0 {
		return nil
	}
	return regexp.MustCompile(fmt.Sprintf("(?:%s){%d,}", strings.Join(units, "|"), o.Limit+1))
}

func newMaxIndentationChecker(opts *lint.Options) (lint.Checker, error) {
	cfg := indentationOptions{Limit: 5, IncludeSpaces: true, IncludeTab: true, SpacesPerTab: 4}
	if err := opts.Decode(&cfg); err != nil {
		return nil, err
	}
	re := cfg.pattern()

	return func(ctx *lint.Context) lint.Visitor {
		if re == nil || !re.Match(ctx.File.Source) {
			return lint.Visitor{}
		}
		f := ctx.File
		var runs []syntax.Span

		// Runs inside literals and comments that are themselves deeply
		// indented text are left alone.
		suppress := func(span syntax.Span) {
			if !re.MatchString(f.SpanText(span)) {
				return
			}
			kept := runs[:0]
			for _, r := range runs {
				if !span.Contains(r.Start) {
					kept = append(kept, r)
				}
			}
			runs = kept
		}

		return lint.Visitor{
			Enter: func(n *syntax.Node) {
				switch n.Kind {
				case syntax.KindProgram:
					for line := 1; line <= f.LineCount(); line++ {
						if loc := re.FindStringIndex(f.Line(line)); loc != nil {
							start := f.LineStart(line)
							runs = append(runs, syntax.Span{Start: start + loc[0], End: start + loc[1]})
						}
					}
				case syntax.KindString, syntax.KindRegex:
					suppress(n.Span())
				case syntax.KindTemplate:
					for _, quasi := range syntax.TemplateQuasis(n) {
						suppress(quasi)
					}
				}
			},
			Exit: func(n *syntax.Node) {
				if n.Kind != syntax.KindProgram {
					return
				}
				for _, c := range f.Comments {
					suppress(c.Span())
				}
				for _, r := range runs {
					ctx.Report(lint.Report{Span: r, MessageID: "maxIndentationExceeded"})
				}
			},
		}
	}, nil
}
