package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrivateComponentMethods(t *testing.T) {
	tests := []struct {
		name string
		path string
		src  string
		want string
	}{
		{
			name: "method",
			path: "a.tsx",
			src:  "class A extends React.Component {\n  handleClick() {}\n}",
			want: "class A extends React.Component {\n  private handleClick() {}\n}",
		},
		{
			name: "arrow field",
			path: "a.tsx",
			src:  "class A extends Component<Props> {\n  onChange = (e: Event) => {};\n}",
			want: "class A extends Component<Props> {\n  private onChange = (e: Event) => {};\n}",
		},
		{
			name: "public becomes private",
			path: "a.tsx",
			src:  "class A extends React.PureComponent {\n  public render2() {}\n}",
			want: "class A extends React.PureComponent {\n  private render2() {}\n}",
		},
		{
			name: "protected becomes private",
			path: "a.ts",
			src:  "class A extends React.Component {\n  protected load() {}\n}",
			want: "class A extends React.Component {\n  private load() {}\n}",
		},
		{
			name: "async method",
			path: "a.tsx",
			src:  "class A extends React.Component {\n  async fetchData() {}\n}",
			want: "class A extends React.Component {\n  private async fetchData() {}\n}",
		},
		{
			name: "already private",
			path: "a.tsx",
			src:  "class A extends React.Component {\n  private handleClick() {}\n}",
			want: "class A extends React.Component {\n  private handleClick() {}\n}",
		},
		{
			name: "hash private",
			path: "a.tsx",
			src:  "class A extends React.Component {\n  #handleClick() {}\n}",
			want: "class A extends React.Component {\n  #handleClick() {}\n}",
		},
		{
			name: "static method",
			path: "a.tsx",
			src:  "class A extends React.Component {\n  static create() {}\n}",
			want: "class A extends React.Component {\n  static create() {}\n}",
		},
		{
			name: "lifecycle methods",
			path: "a.tsx",
			src:  "class A extends React.Component {\n  constructor(p: Props) { super(p); }\n  componentDidMount() {}\n  render() { return null; }\n}",
			want: "class A extends React.Component {\n  constructor(p: Props) { super(p); }\n  componentDidMount() {}\n  render() { return null; }\n}",
		},
		{
			name: "non-function field",
			path: "a.tsx",
			src:  "class A extends React.Component {\n  count = 0;\n}",
			want: "class A extends React.Component {\n  count = 0;\n}",
		},
		{
			name: "plain class",
			path: "a.ts",
			src:  "class Store {\n  load() {}\n}",
			want: "class Store {\n  load() {}\n}",
		},
		{
			name: "javascript file",
			path: "a.jsx",
			src:  "class A extends React.Component {\n  handleClick() {}\n}",
			want: "class A extends React.Component {\n  handleClick() {}\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fixCode(t, PrivateComponentMethods(), nil, tt.path, tt.src))
		})
	}
}

func TestPrivateComponentMethodsReportsKey(t *testing.T) {
	src := "class A extends React.Component {\n  render() { return null; }\n  handleClick() {}\n  onKey = () => {};\n}"
	findings := lintCode(t, PrivateComponentMethods(), nil, "a.tsx", src)
	require.Len(t, findings, 2)
	assert.Equal(t, 3, findings[0].Line)
	assert.Equal(t, 3, findings[0].Column)
	assert.Equal(t, 14, findings[0].EndColumn)
	assert.Equal(t, 4, findings[1].Line)
	assert.Equal(t, "Non-lifecycle methods for React class components should be private", findings[1].Message)
}
