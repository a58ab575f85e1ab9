// Package typography finds ASCII stand-ins for typographic characters in
// human readable text: straight quotes, three periods and the +- digraph.
package typography

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rendering selects which form of a replacement character is proposed.
type Rendering int

const (
	// Unicode proposes the character itself.
	Unicode Rendering = iota
	// Escape proposes a JavaScript escape sequence such as \u2019.
	Escape
	// Entity proposes an HTML entity such as &rsquo;.
	Entity
)

// Forms holds the three renderings of one typographic character.
type Forms struct {
	Unicode string
	Escape  string
	Entity  string
}

// In returns the rendering selected by r.
func (f Forms) In(r Rendering) string {
	switch r {
	case Escape:
		return f.Escape
	case Entity:
		return f.Entity
	default:
		return f.Unicode
	}
}

// Pattern is one catalogue entry.
type Pattern struct {
	Name  string
	ASCII string
	// Quote patterns use Left after whitespace and Right otherwise.
	Quote bool
	Left  Forms
	Right Forms
}

// Catalogue is the fixed set of patterns the scanner looks for.
var Catalogue = []Pattern{
	{
		Name:  "singleQuote",
		ASCII: "'",
		Quote: true,
		Left:  Forms{Unicode: "‘", Escape: `\u2018`, Entity: "&lsquo;"},
		Right: Forms{Unicode: "’", Escape: `\u2019`, Entity: "&rsquo;"},
	},
	{
		Name:  "doubleQuote",
		ASCII: `"`,
		Quote: true,
		Left:  Forms{Unicode: "“", Escape: `\u201C`, Entity: "&ldquo;"},
		Right: Forms{Unicode: "”", Escape: `\u201D`, Entity: "&rdquo;"},
	},
	{
		Name:  "ellipsis",
		ASCII: "...",
		Right: Forms{Unicode: "…", Escape: `\u2026`, Entity: "&hellip;"},
	},
	{
		Name:  "plusOrMinus",
		ASCII: "+-",
		Right: Forms{Unicode: "±", Escape: `\u{B1}`, Entity: "&plusmn;"},
	},
}

// DefaultRepeatLimit is the number of back-to-back copies of a pattern a
// span may contain before that pattern is ignored in the whole span.
const DefaultRepeatLimit = 2

// Finding is one proposed replacement.
type Finding struct {
	Pattern *Pattern
	// Offset is absolute: the span start passed to Scan plus the index in text.
	Offset int
	Length int
	// Fixable is false for a quote at the very start of the span, where its
	// direction cannot be told.
	Fixable     bool
	Replacement Forms
}

// Scanner scans text spans against the catalogue.
type Scanner struct {
	RepeatLimit int
}

// NewScanner returns a scanner using DefaultRepeatLimit.
func NewScanner() *Scanner {
	return &Scanner{RepeatLimit: DefaultRepeatLimit}
}

// Scan returns the findings in text ordered by offset. spanStart is the
// absolute offset of text in its file.
func (s *Scanner) Scan(text string, spanStart int) []Finding {
	var findings []Finding
	for i := range Catalogue {
		p := &Catalogue[i]
		if !strings.Contains(text, p.ASCII) || s.suppressed(text, p.ASCII) {
			continue
		}
		for idx := 0; ; {
			next := strings.Index(text[idx:], p.ASCII)
			if next < 0 {
				break
			}
			at := idx + next
			findings = append(findings, s.finding(p, text, at, spanStart))
			idx = at + len(p.ASCII)
		}
	}
	sort.SliceStable(findings, func(i, j int) bool { return findings[i].Offset < findings[j].Offset })
	return findings
}

// Scan scans text with a default scanner.
func Scan(text string, spanStart int) []Finding {
	return NewScanner().Scan(text, spanStart)
}

func (s *Scanner) finding(p *Pattern, text string, at, spanStart int) Finding {
	f := Finding{
		Pattern:     p,
		Offset:      spanStart + at,
		Length:      len(p.ASCII),
		Fixable:     true,
		Replacement: p.Right,
	}
	if !p.Quote {
		return f
	}
	if at == 0 {
		f.Fixable = false
		return f
	}
	if r, _ := utf8.DecodeLastRuneInString(text[:at]); unicode.IsSpace(r) {
		f.Replacement = p.Left
	}
	return f
}

// suppressed reports whether text holds a run of pattern repeated more
// than RepeatLimit times back to back.
func (s *Scanner) suppressed(text, pattern string) bool {
	if s.RepeatLimit <= 0 {
		return false
	}
	return strings.Contains(text, strings.Repeat(pattern, s.RepeatLimit+1))
}

// Describe returns the proposed replacement as shown to the user: the
// Unicode form, followed by the selected alternate form in brackets when it
// differs. Unfixable quotes list both directions.
func (f Finding) Describe(r Rendering) (toUnicode, alternate string) {
	chosen := f.Replacement.In(r)
	if f.Fixable {
		toUnicode = f.Replacement.Unicode
	} else {
		toUnicode = f.Pattern.Left.Unicode + " OR " + f.Pattern.Right.Unicode
	}
	if chosen != f.Replacement.Unicode {
		alternate = " [" + chosen + "]"
	}
	return toUnicode, alternate
}
