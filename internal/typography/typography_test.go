package typography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type found struct {
	offset  int
	unicode string
	fixable bool
}

func summarize(findings []Finding) []found {
	out := make([]found, len(findings))
	for i, f := range findings {
		out[i] = found{offset: f.Offset, unicode: f.Replacement.Unicode, fixable: f.Fixable}
	}
	return out
}

func TestScan(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		spanStart int
		want      []found
	}{
		{
			name: "apostrophe and double quotes",
			text: `it's "ok"`,
			want: []found{
				{offset: 2, unicode: "’", fixable: true},
				{offset: 5, unicode: "“", fixable: true},
				{offset: 8, unicode: "”", fixable: true},
			},
		},
		{
			name: "quote at span start is unfixable",
			text: `'hello'`,
			want: []found{
				{offset: 0, unicode: "’", fixable: false},
				{offset: 6, unicode: "’", fixable: true},
			},
		},
		{
			name:      "offsets are absolute",
			text:      "Loading...",
			spanStart: 10,
			want:      []found{{offset: 17, unicode: "…", fixable: true}},
		},
		{
			name: "plus minus",
			text: "5 +- 1",
			want: []found{{offset: 2, unicode: "±", fixable: true}},
		},
		{
			name: "quote after non-ascii whitespace opens",
			text: "a 'b'",
			want: []found{
				{offset: 3, unicode: "‘", fixable: true},
				{offset: 5, unicode: "’", fixable: true},
			},
		},
		{
			name: "nothing to report",
			text: "plain text",
			want: []found{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(Scan(tt.text, tt.spanStart))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanSuppressesRepeatedPattern(t *testing.T) {
	t.Run("repeated pattern is ignored in the span", func(t *testing.T) {
		got := Scan(`say '''quoted''' it's`, 0)
		for _, f := range got {
			assert.NotEqual(t, "singleQuote", f.Pattern.Name)
		}
	})

	t.Run("other patterns in the same span are still reported", func(t *testing.T) {
		got := Scan(`'''... wait`, 0)
		require.Len(t, got, 1)
		assert.Equal(t, "ellipsis", got[0].Pattern.Name)
	})

	t.Run("suppression is per span", func(t *testing.T) {
		assert.Empty(t, Scan(`a''' b'`, 0))
		assert.Len(t, Scan(`b'`, 0), 1)
	})

	t.Run("two copies stay below the limit", func(t *testing.T) {
		assert.Len(t, Scan(`a'' b`, 0), 2)
	})

	t.Run("limit disabled", func(t *testing.T) {
		s := &Scanner{RepeatLimit: 0}
		assert.Len(t, s.Scan(`a'''`, 0), 3)
	})
}

func TestDescribe(t *testing.T) {
	findings := Scan(`'a' b...`, 0)
	require.Len(t, findings, 3)

	toUnicode, alt := findings[0].Describe(Unicode)
	assert.Equal(t, "‘ OR ’", toUnicode)
	assert.Equal(t, "", alt)

	toUnicode, alt = findings[1].Describe(Escape)
	assert.Equal(t, "’", toUnicode)
	assert.Equal(t, ` [\u2019]`, alt)

	toUnicode, alt = findings[2].Describe(Entity)
	assert.Equal(t, "…", toUnicode)
	assert.Equal(t, " [&hellip;]", alt)
}
