// Package rewrite applies batches of text edits expressed as offsets into an
// original, unmodified text.
//
// Edits never see each other's results: every offset refers to the original
// text, and overlapping requests are either merged or rejected before any
// text is produced.
package rewrite

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// Op is the kind of an edit request.
type Op int

const (
	// Replace substitutes [Start, End) with Text.
	Replace Op = iota
	// Insert adds Text at Start. End is ignored.
	Insert
	// Remove deletes [Start, End).
	Remove
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	default:
		return "replace"
	}
}

// EditRequest is one requested change to the original text.
type EditRequest struct {
	Op    Op
	Start int
	End   int
	Text  string
}

// ReplaceRange requests replacing [start, end) with text.
func ReplaceRange(start, end int, text string) EditRequest {
	return EditRequest{Op: Replace, Start: start, End: end, Text: text}
}

// InsertAt requests inserting text at offset.
func InsertAt(offset int, text string) EditRequest {
	return EditRequest{Op: Insert, Start: offset, End: offset, Text: text}
}

// RemoveRange requests deleting [start, end).
func RemoveRange(start, end int) EditRequest {
	return EditRequest{Op: Remove, Start: start, End: end}
}

func (e EditRequest) String() string {
	if e.Op == Insert {
		return fmt.Sprintf("insert %q at %d", e.Text, e.Start)
	}
	if e.Op == Remove {
		return fmt.Sprintf("remove [%d,%d)", e.Start, e.End)
	}
	return fmt.Sprintf("replace [%d,%d) with %q", e.Start, e.End, e.Text)
}

func (e EditRequest) isRange() bool { return e.Op != Insert }

// ErrOutOfRange is returned for edits that fall outside the text.
var ErrOutOfRange = errors.New("edit out of range")

// ConflictError reports two replace edits that overlap with different content.
type ConflictError struct {
	First  EditRequest
	Second EditRequest
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting edits: %s overlaps %s", e.First, e.Second)
}

type sequenced struct {
	EditRequest
	seq int
}

// Normalize validates edits against a text of the given length and returns
// them in application order: non-overlapping range edits sorted by start,
// with insertions placed after any range edit at the same offset and in
// request order among themselves.
//
// Overlapping removals merge into their union. A removal overlapping a
// replacement becomes a replacement of the union. Identical edits collapse,
// and overlapping replacements with the same content become one replacement
// of the union. Two overlapping replacements with different content are a
// *ConflictError.
// Insertions strictly inside a range edit move to the end of that range.
func Normalize(edits []EditRequest, length int) ([]EditRequest, error) {
	var ranges, inserts []sequenced
	for i, e := range edits {
		if e.Op == Insert {
			e.End = e.Start
		}
		if e.Start < 0 || e.End < e.Start || e.End > length {
			return nil, errors.Wrapf(ErrOutOfRange, "%s in text of length %d", e, length)
		}
		if e.Op == Replace && e.Start == e.End {
			e.Op = Insert
		}
		if e.Op == Remove {
			e.Text = ""
		}
		s := sequenced{EditRequest: e, seq: i}
		if e.isRange() {
			ranges = append(ranges, s)
		} else {
			inserts = append(inserts, s)
		}
	}

	sort.SliceStable(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })

	var merged []sequenced
	for _, r := range ranges {
		if len(merged) == 0 {
			merged = append(merged, r)
			continue
		}
		last := &merged[len(merged)-1]
		if r.Start >= last.End {
			merged = append(merged, r)
			continue
		}
		combined, err := mergeRanges(last.EditRequest, r.EditRequest)
		if err != nil {
			return nil, err
		}
		last.EditRequest = combined
	}

	for i := range inserts {
		for _, r := range merged {
			if inserts[i].Start > r.Start && inserts[i].Start < r.End {
				inserts[i].Start, inserts[i].End = r.End, r.End
				break
			}
		}
	}
	inserts = dedupeInserts(inserts)

	all := append(merged, inserts...)
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.isRange() != b.isRange() {
			return a.isRange()
		}
		return a.seq < b.seq
	})

	out := make([]EditRequest, len(all))
	for i, s := range all {
		out[i] = s.EditRequest
	}
	return out, nil
}

func mergeRanges(a, b EditRequest) (EditRequest, error) {
	union := EditRequest{Op: Remove, Start: min(a.Start, b.Start), End: max(a.End, b.End)}
	switch {
	case a.Op == Remove && b.Op == Remove:
		return union, nil
	case a == b:
		return a, nil
	case a.Op == Replace && b.Op == Replace:
		if a.Text != b.Text {
			return EditRequest{}, &ConflictError{First: a, Second: b}
		}
		union.Op, union.Text = Replace, a.Text
	case a.Op == Replace:
		union.Op, union.Text = Replace, a.Text
	default:
		union.Op, union.Text = Replace, b.Text
	}
	return union, nil
}

func dedupeInserts(inserts []sequenced) []sequenced {
	seen := make(map[EditRequest]bool, len(inserts))
	out := inserts[:0]
	for _, ins := range inserts {
		if seen[ins.EditRequest] {
			continue
		}
		seen[ins.EditRequest] = true
		out = append(out, ins)
	}
	return out
}

// ApplyEdits applies a batch of edits to text as a single unit.
func ApplyEdits(text string, edits []EditRequest) (string, error) {
	normalized, err := Normalize(edits, len(text))
	if err != nil {
		return "", err
	}
	return apply(text, normalized), nil
}

func apply(text string, normalized []EditRequest) string {
	var sb strings.Builder
	sb.Grow(len(text))
	cursor := 0
	for _, e := range normalized {
		if e.Start > cursor {
			sb.WriteString(text[cursor:e.Start])
			cursor = e.Start
		}
		sb.WriteString(e.Text)
		if e.isRange() && e.End > cursor {
			cursor = e.End
		}
	}
	sb.WriteString(text[cursor:])
	return sb.String()
}

// Extent returns the smallest range covering all edits.
func Extent(edits []EditRequest) (start, end int) {
	if len(edits) == 0 {
		return 0, 0
	}
	start, end = edits[0].Start, edits[0].End
	for _, e := range edits[1:] {
		start = min(start, e.Start)
		end = max(end, e.End)
	}
	return start, end
}

// ApplyGroups applies independent groups of edits, each group atomically.
// Groups are considered in order of their extent; a group whose extent
// overlaps an already accepted group, or which is itself invalid, is
// skipped and its index returned. Groups are never merged with each other.
func ApplyGroups(text string, groups [][]EditRequest) (string, []int) {
	type candidate struct {
		index      int
		start, end int
		edits      []EditRequest
	}

	var candidates []candidate
	var skipped []int
	for i, g := range groups {
		normalized, err := Normalize(g, len(text))
		if err != nil || len(normalized) == 0 {
			skipped = append(skipped, i)
			continue
		}
		start, end := Extent(normalized)
		candidates = append(candidates, candidate{index: i, start: start, end: end, edits: normalized})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].start != candidates[j].start {
			return candidates[i].start < candidates[j].start
		}
		return candidates[i].end < candidates[j].end
	})

	var accepted []EditRequest
	lastEnd := -1
	for _, c := range candidates {
		if c.start < lastEnd {
			skipped = append(skipped, c.index)
			continue
		}
		accepted = append(accepted, c.edits...)
		lastEnd = max(lastEnd, c.end)
	}
	sort.Ints(skipped)

	normalized, err := Normalize(accepted, len(text))
	if err != nil {
		// accepted groups never overlap, so this only happens on a bug
		return text, allIndexes(len(groups))
	}
	return apply(text, normalized), skipped
}

func allIndexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
