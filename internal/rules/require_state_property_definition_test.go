package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireStatePropertyDefinition(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "state type without definition",
			src:  "class A extends React.Component<Props, State> {\n  render() { return null; }\n}",
			want: []string{"requireStatePropertyDefinition"},
		},
		{
			name: "state field",
			src:  "class A extends React.Component<Props, State> {\n  state: State = { open: false };\n}",
		},
		{
			name: "state set in constructor",
			src:  "class A extends Component<Props, State> {\n  constructor(props: Props) {\n    super(props);\n    this.state = { open: false };\n  }\n}",
		},
		{
			name: "state set in nested function does not count",
			src:  "class A extends Component<Props, State> {\n  constructor(props: Props) {\n    super(props);\n    const init = () => { this.state = { open: false }; };\n  }\n}",
			want: []string{"requireStatePropertyDefinition"},
		},
		{
			name: "static state does not count",
			src:  "class A extends React.Component<Props, State> {\n  static state = {};\n}",
			want: []string{"requireStatePropertyDefinition"},
		},
		{
			name: "state field without state type",
			src:  "class A extends React.Component<Props> {\n  state = { open: false };\n}",
			want: []string{"unexpectedStatePropertyDefinition"},
		},
		{
			name: "constructor state without state type",
			src:  "class A extends React.PureComponent<Props> {\n  constructor(props: Props) {\n    super(props);\n    this.state = {};\n  }\n}",
			want: []string{"unexpectedStatePropertyDefinition"},
		},
		{
			name: "no type arguments",
			src:  "class A extends React.Component {\n  render() { return null; }\n}",
		},
		{
			name: "not a component",
			src:  "class A extends Store<Props, State> {\n  render() { return null; }\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := lintCode(t, RequireStatePropertyDefinition(), nil, "a.tsx", tt.src)
			if len(tt.want) == 0 {
				assert.Empty(t, findings)
				return
			}
			assert.Equal(t, tt.want, messageIDs(findings))
		})
	}
}

func TestRequireStatePropertyDefinitionLocation(t *testing.T) {
	findings := lintCode(t, RequireStatePropertyDefinition(), nil, "a.tsx",
		"class A extends React.Component<Props> {\n  state = {};\n}")
	require.Len(t, findings, 1)
	assert.Equal(t, 2, findings[0].Line)
	assert.Equal(t, 3, findings[0].Column)
}
