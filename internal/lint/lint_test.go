package lint

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/jsxlint/internal/rewrite"
	"github.com/yacobolo/jsxlint/internal/syntax"
)

// renameRule reports every identifier named opts.From and offers to rename it.
func renameRule() *Rule {
	return &Rule{
		Name:     "rename",
		Type:     TypeSuggestion,
		Fixable:  true,
		Messages: map[string]string{"rename": "Rename {{ from }} to {{ to }}"},
		Schema: `{
			"type": "object",
			"properties": {
				"from": {"type": "string"},
				"to": {"type": "string"}
			},
			"additionalProperties": false
		}`,
		Recommended: SeverityWarning,
		Create: func(opts *Options) (Checker, error) {
			cfg := struct {
				From string `json:"from"`
				To   string `json:"to"`
			}{From: "foo", To: "bar"}
			if err := opts.Decode(&cfg); err != nil {
				return nil, err
			}
			return func(ctx *Context) Visitor {
				return Visitor{Enter: func(n *syntax.Node) {
					if n.Kind != syntax.KindIdentifier || ctx.Text(n) != cfg.From {
						return
					}
					ctx.Report(Report{
						Node:      n,
						MessageID: "rename",
						Data:      map[string]string{"from": cfg.From, "to": cfg.To},
						Fix:       []rewrite.EditRequest{rewrite.ReplaceRange(n.Start, n.End, cfg.To)},
					})
				}}
			}, nil
		},
	}
}

// countRule reports how many calls it has seen when the program is exited.
func countRule() *Rule {
	return &Rule{
		Name:     "count",
		Type:     TypeProblem,
		Messages: map[string]string{"count": "{{ n }} calls"},
		Create: func(*Options) (Checker, error) {
			return func(ctx *Context) Visitor {
				calls := 0
				return Visitor{
					Enter: func(n *syntax.Node) {
						if n.Kind == syntax.KindCall {
							calls++
						}
					},
					Exit: func(n *syntax.Node) {
						if n.Kind == syntax.KindProgram {
							ctx.Report(Report{Node: n, MessageID: "count", Data: map[string]string{"n": string(rune('0' + calls))}})
						}
					},
				}
			}, nil
		},
	}
}

func conflictRule() *Rule {
	return &Rule{
		Name:     "conflict",
		Messages: map[string]string{"x": "conflict"},
		Create: func(*Options) (Checker, error) {
			return func(ctx *Context) Visitor {
				return Visitor{Enter: func(n *syntax.Node) {
					if n.Kind != syntax.KindProgram {
						return
					}
					ctx.Report(Report{Node: n, MessageID: "x", Fix: []rewrite.EditRequest{
						rewrite.ReplaceRange(0, 2, "a"),
						rewrite.ReplaceRange(1, 3, "b"),
					}})
				}}
			}, nil
		},
	}
}

func testRegistry() *Registry {
	reg := NewRegistry()
	reg.MustRegister(renameRule(), countRule(), conflictRule())
	return reg
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		want     string
	}{
		{name: "no data", template: "plain", want: "plain"},
		{name: "spaced placeholder", template: "use {{ a }}", data: map[string]string{"a": "x"}, want: "use x"},
		{name: "tight placeholder", template: "<{{element}}>", data: map[string]string{"element": "Bad"}, want: "<Bad>"},
		{name: "missing key kept", template: "{{ a }}{{ b }}", data: map[string]string{"a": "1"}, want: "1{{ b }}"},
		{name: "empty value", template: "x{{ a }}y", data: map[string]string{"a": ""}, want: "xy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMessage(tt.template, tt.data))
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      any
		want    Severity
		wantErr bool
	}{
		{in: "off", want: SeverityOff},
		{in: "warn", want: SeverityWarning},
		{in: "Warning", want: SeverityWarning},
		{in: "error", want: SeverityError},
		{in: 2, want: SeverityError},
		{in: 1.0, want: SeverityWarning},
		{in: "fatal", wantErr: true},
		{in: 7, wantErr: true},
		{in: true, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		if tt.wantErr {
			require.Error(t, err, "%v", tt.in)
			assert.True(t, errors.Is(err, ErrInvalidOptions))
			continue
		}
		require.NoError(t, err, "%v", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseRuleSetting(t *testing.T) {
	s, err := ParseRuleSetting("warn")
	require.NoError(t, err)
	assert.Equal(t, SeverityWarning, s.Severity)
	assert.Nil(t, s.Options)

	s, err = ParseRuleSetting(map[string]any{"options": map[string]any{"to": "baz"}})
	require.NoError(t, err)
	assert.Equal(t, SeverityError, s.Severity)
	assert.Equal(t, map[string]any{"to": "baz"}, s.Options)

	s, err = ParseRuleSetting(map[any]any{"severity": "off"})
	require.NoError(t, err)
	assert.Equal(t, SeverityOff, s.Severity)

	_, err = ParseRuleSetting(map[string]any{"level": "warn"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOptions))
}

func TestRegistry(t *testing.T) {
	reg := testRegistry()
	assert.Equal(t, []string{"conflict", "count", "rename"}, reg.Names())
	assert.Nil(t, reg.Get("missing"))
	require.NotNil(t, reg.Get("rename"))

	err := reg.Register(renameRule())
	require.Error(t, err)

	err = reg.Register(&Rule{Name: "no-create"})
	require.Error(t, err)
}

func TestRegistryPreset(t *testing.T) {
	reg := testRegistry()

	recommended, err := reg.Preset(PresetRecommended)
	require.NoError(t, err)
	assert.Equal(t, map[string]RuleSetting{"rename": {Severity: SeverityWarning}}, recommended)

	all, err := reg.Preset(PresetAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, s := range all {
		assert.Equal(t, SeverityError, s.Severity)
	}

	none, err := reg.Preset(PresetNone)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = reg.Preset("strictest")
	require.Error(t, err)
}

func TestNewRejectsBadConfiguration(t *testing.T) {
	reg := testRegistry()

	tests := []struct {
		name     string
		settings map[string]RuleSetting
		target   error
	}{
		{
			name:     "unknown rule",
			settings: map[string]RuleSetting{"nope": {Severity: SeverityError}},
			target:   ErrUnknownRule,
		},
		{
			name: "unknown option key",
			settings: map[string]RuleSetting{"rename": {
				Severity: SeverityError,
				Options:  map[string]any{"form": "x"},
			}},
			target: ErrInvalidOptions,
		},
		{
			name: "wrong option type",
			settings: map[string]RuleSetting{"rename": {
				Severity: SeverityError,
				Options:  map[string]any{"to": 3},
			}},
			target: ErrInvalidOptions,
		},
		{
			name: "options on a rule without options",
			settings: map[string]RuleSetting{"count": {
				Severity: SeverityError,
				Options:  map[string]any{"x": 1},
			}},
			target: ErrInvalidOptions,
		},
		{
			name: "disabled rules are still validated",
			settings: map[string]RuleSetting{"rename": {
				Severity: SeverityOff,
				Options:  map[string]any{"bogus": true},
			}},
			target: ErrInvalidOptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(reg, tt.settings)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), err.Error())
		})
	}
}

func TestCreateErrorIsConfigurationError(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(&Rule{
		Name:   "broken",
		Schema: `{"type": "object"}`,
		Create: func(*Options) (Checker, error) { return nil, errors.New("boom") },
	})
	_, err := New(reg, map[string]RuleSetting{"broken": {Severity: SeverityError}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOptions))
}

func TestLintSource(t *testing.T) {
	l, err := New(testRegistry(), map[string]RuleSetting{
		"rename": {Severity: SeverityWarning, Options: map[string]any{"to": "baz"}},
		"count":  {Severity: SeverityError},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"count", "rename"}, l.Rules())

	src := "foo();\nbar(foo);\n"
	res, err := l.LintSource(context.Background(), "a.js", []byte(src))
	require.NoError(t, err)
	require.Len(t, res.Findings, 3)

	assert.Equal(t, "count", res.Findings[0].Rule)
	assert.Equal(t, "2 calls", res.Findings[0].Message)
	assert.Equal(t, SeverityError, res.Findings[0].Severity)

	second := res.Findings[1]
	assert.Equal(t, "rename", second.Rule)
	assert.Equal(t, "Rename foo to baz", second.Message)
	assert.Equal(t, SeverityWarning, second.Severity)
	assert.Equal(t, 1, second.Line)
	assert.Equal(t, 1, second.Column)
	assert.True(t, second.Fixable())

	third := res.Findings[2]
	assert.Equal(t, 2, third.Line)
	assert.Equal(t, 5, third.Column)
	assert.Equal(t, 8, third.EndColumn)
}

func TestLintSourceStateIsPerFile(t *testing.T) {
	l, err := New(testRegistry(), map[string]RuleSetting{"count": {Severity: SeverityError}})
	require.NoError(t, err)

	for _, src := range []string{"a(); b();", "c(); d();"} {
		res, err := l.LintSource(context.Background(), "a.js", []byte(src))
		require.NoError(t, err)
		require.Len(t, res.Findings, 1)
		assert.Equal(t, "2 calls", res.Findings[0].Message)
	}
}

func TestConflictingFixIsDropped(t *testing.T) {
	l, err := New(testRegistry(), map[string]RuleSetting{"conflict": {Severity: SeverityError}})
	require.NoError(t, err)

	res, err := l.LintSource(context.Background(), "a.js", []byte("abc;"))
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
	assert.True(t, res.Findings[0].FixConflict)
	assert.False(t, res.Findings[0].Fixable())

	fixed, err := l.Fix(context.Background(), "a.js", []byte("abc;"))
	require.NoError(t, err)
	assert.Equal(t, "abc;", string(fixed.Output))
	assert.False(t, fixed.Changed())
}

func TestFix(t *testing.T) {
	l, err := New(testRegistry(), map[string]RuleSetting{"rename": {Severity: SeverityError}})
	require.NoError(t, err)

	res, err := l.Fix(context.Background(), "a.js", []byte("foo(foo, foo);"))
	require.NoError(t, err)
	assert.Equal(t, "bar(bar, bar);", string(res.Output))
	assert.Equal(t, 3, res.Applied)
	assert.Empty(t, res.Remaining)
	assert.True(t, res.Changed())
}

func TestLintSourceUnsupportedFile(t *testing.T) {
	l, err := New(testRegistry(), nil)
	require.NoError(t, err)
	_, err = l.LintSource(context.Background(), "a.css", []byte("a{}"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, syntax.ErrUnsupportedFile))
}

func TestOptionsDecodeKeepsDefaults(t *testing.T) {
	cfg := struct {
		Limit  int  `json:"limit"`
		Spaces bool `json:"includeSpaces"`
	}{Limit: 5, Spaces: true}

	require.NoError(t, NewOptions("x", map[any]any{"limit": 3}).Decode(&cfg))
	assert.Equal(t, 3, cfg.Limit)
	assert.True(t, cfg.Spaces)

	var unset *Options
	require.NoError(t, unset.Decode(&cfg))
	assert.Equal(t, 3, cfg.Limit)
}
