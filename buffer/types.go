package buffer

import "cmp"

// Pos is a document position. GraphemeCol counts grapheme clusters from the
// start of the row; both fields are zero-based.
type Pos struct {
	Row         int
	GraphemeCol int
}

// ComparePos orders positions by row, then column.
func ComparePos(a, b Pos) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.GraphemeCol, b.GraphemeCol)
}

// Range is the half-open span [Start, End).
type Range struct {
	Start Pos
	End   Pos
}

// NormalizeRange swaps the ends of r when they are out of order.
func NormalizeRange(r Range) Range {
	if ComparePos(r.End, r.Start) < 0 {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

// Contains reports whether p lies in the normalized range.
func (r Range) Contains(p Pos) bool {
	r = NormalizeRange(r)
	return ComparePos(r.Start, p) <= 0 && ComparePos(p, r.End) < 0
}

// TextEdit replaces Range with Text. Text may span several lines.
type TextEdit struct {
	Range Range
	Text  string
}
