package syntax

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Dialect is the grammar a file is parsed with.
type Dialect int

const (
	// JavaScript covers .js/.jsx and module variants; JSX is always enabled.
	JavaScript Dialect = iota
	// TypeScript covers .ts files without JSX.
	TypeScript
	// TSX covers .tsx files.
	TSX
)

func (d Dialect) String() string {
	switch d {
	case TypeScript:
		return "typescript"
	case TSX:
		return "tsx"
	default:
		return "javascript"
	}
}

// IsTypeScript reports whether the dialect carries type syntax.
func (d Dialect) IsTypeScript() bool { return d == TypeScript || d == TSX }

// ErrUnsupportedFile is returned by Parse for extensions without a grammar.
var ErrUnsupportedFile = errors.New("unsupported file type")

var dialects = map[string]Dialect{
	".js":  JavaScript,
	".jsx": JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TSX,
}

// DialectFor returns the dialect for a path based on its extension.
func DialectFor(path string) (Dialect, bool) {
	d, ok := dialects[strings.ToLower(filepath.Ext(path))]
	return d, ok
}

// Supported reports whether Parse accepts the path.
func Supported(path string) bool {
	_, ok := DialectFor(path)
	return ok
}

func (d Dialect) language() *sitter.Language {
	switch d {
	case TypeScript:
		return typescript.GetLanguage()
	case TSX:
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// File is a parsed source file.
type File struct {
	Path     string
	Source   []byte
	Dialect  Dialect
	Root     *Node
	Comments []*Node
	// HasErrors is set when the parser had to recover from syntax errors.
	HasErrors bool

	lineStarts []int
}

// Parse parses src with the grammar selected by the path extension.
func Parse(ctx context.Context, path string, src []byte) (*File, error) {
	dialect, ok := DialectFor(path)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFile, "parse %s", path)
	}
	return ParseDialect(ctx, path, src, dialect)
}

// ParseDialect parses src with an explicit dialect.
func ParseDialect(ctx context.Context, path string, src []byte, dialect Dialect) (*File, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(dialect.language())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	defer tree.Close()

	f := &File{Path: path, Source: src, Dialect: dialect}
	root := tree.RootNode()
	f.HasErrors = root.HasError()
	f.Root = f.convert(root, nil)
	f.lineStarts = lineStarts(src)
	return f, nil
}

var modifierKeywords = map[string]bool{
	"static":   true,
	"async":    true,
	"get":      true,
	"set":      true,
	"readonly": true,
	"abstract": true,
	"override": true,
	"declare":  true,
}

var assignmentOperators = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"**=": true, "<<=": true, ">>=": true, ">>>=": true, "&=": true, "|=": true,
	"^=": true, "&&=": true, "||=": true, "??=": true,
}

func (f *File) convert(sn *sitter.Node, parent *Node) *Node {
	n := &Node{
		Kind:   kindOf(sn.Type()),
		Type:   sn.Type(),
		Start:  int(sn.StartByte()),
		End:    int(sn.EndByte()),
		Parent: parent,
	}

	count := int(sn.ChildCount())
	for i := 0; i < count; i++ {
		child := sn.Child(i)
		if child == nil {
			continue
		}
		typ := child.Type()

		if !child.IsNamed() {
			switch {
			case modifierKeywords[typ]:
				n.Modifiers = append(n.Modifiers, Modifier{Text: typ, Start: int(child.StartByte())})
			case n.Kind == KindAssignment && assignmentOperators[typ]:
				n.Operator = typ
			}
			continue
		}

		if typ == "comment" || typ == "html_comment" {
			f.Comments = append(f.Comments, f.convert(child, n))
			continue
		}

		c := f.convert(child, n)
		switch typ {
		case "accessibility_modifier":
			n.Modifiers = append(n.Modifiers, Modifier{Text: f.Text(c), Start: c.Start})
		case "override_modifier":
			n.Modifiers = append(n.Modifiers, Modifier{Text: "override", Start: c.Start})
		}
		n.Children = append(n.Children, c)

		if name := sn.FieldNameForChild(i); name != "" {
			if n.fields == nil {
				n.fields = make(map[string]*Node)
			}
			if _, exists := n.fields[name]; !exists {
				n.fields[name] = c
			}
		}
	}
	return n
}

func lineStarts(src []byte) []int {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// Text returns the source text covered by n.
func (f *File) Text(n *Node) string {
	if n == nil {
		return ""
	}
	return string(f.Source[n.Start:n.End])
}

// SpanText returns the source text covered by s.
func (f *File) SpanText(s Span) string {
	return string(f.Source[s.Start:s.End])
}

// Position converts a byte offset into a 1-based line and column.
func (f *File) Position(offset int) (line, column int) {
	idx := sort.Search(len(f.lineStarts), func(i int) bool { return f.lineStarts[i] > offset }) - 1
	if idx < 0 {
		idx = 0
	}
	return idx + 1, offset - f.lineStarts[idx] + 1
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int { return len(f.lineStarts) }

// Line returns the text of a 1-based line without its terminator.
func (f *File) Line(line int) string {
	if line < 1 || line > len(f.lineStarts) {
		return ""
	}
	start := f.lineStarts[line-1]
	end := len(f.Source)
	if line < len(f.lineStarts) {
		end = f.lineStarts[line] - 1
	}
	return strings.TrimSuffix(string(f.Source[start:end]), "\r")
}

// LineStart returns the byte offset of a 1-based line.
func (f *File) LineStart(line int) int {
	if line < 1 || line > len(f.lineStarts) {
		return len(f.Source)
	}
	return f.lineStarts[line-1]
}
