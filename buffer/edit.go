package buffer

import (
	"strings"

	"github.com/iw2rmb/highlit/internal/grapheme"
)

// InsertText replaces the selection, or inserts at the cursor, and leaves
// the cursor after the inserted text.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.editAt(r, s)
}

// InsertGrapheme inserts one grapheme cluster. An empty g is ignored.
func (b *Buffer) InsertGrapheme(g string) {
	if g != "" {
		b.InsertText(g)
	}
}

func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteBackward removes the selection or the cluster before the cursor,
// joining rows at a line start.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.Selection(); ok {
		b.editAt(r, "")
		return
	}
	b.editAt(Range{Start: b.stepLeft(b.cursor), End: b.cursor}, "")
}

// DeleteForward removes the selection or the cluster after the cursor,
// joining rows at a line end.
func (b *Buffer) DeleteForward() {
	if r, ok := b.Selection(); ok {
		b.editAt(r, "")
		return
	}
	b.editAt(Range{Start: b.cursor, End: b.stepRight(b.cursor)}, "")
}

func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.editAt(r, "")
	}
}

// ReplaceRange replaces r with text as one undoable change.
//
// The cursor is mapped through the edit: before the range it stays put, at
// or after the range end it shifts with the text that follows, and inside
// the range it lands at the end of the inserted text.
func (b *Buffer) ReplaceRange(r Range, text string) {
	t := b.begin(ChangeSourceReplace)
	if _, ok := t.splice(b, r, text); ok {
		b.commit(t, mapPos(b.cursor, t.edits[0]))
	}
}

func (b *Buffer) editAt(r Range, text string) {
	t := b.begin(ChangeSourceEdit)
	if end, ok := t.splice(b, r, text); ok {
		b.commit(t, end)
	}
}

func mapPos(p Pos, e AppliedEdit) Pos {
	before, after := e.RangeBefore, e.RangeAfter
	switch {
	case ComparePos(p, before.Start) <= 0:
		return p
	case ComparePos(p, before.End) < 0:
		return after.End
	case p.Row == before.End.Row:
		return Pos{Row: after.End.Row, GraphemeCol: after.End.GraphemeCol + p.GraphemeCol - before.End.GraphemeCol}
	default:
		return Pos{Row: p.Row + after.End.Row - before.End.Row, GraphemeCol: p.GraphemeCol}
	}
}

// splice rewrites the rows touched by r. Untouched rows are shared with the
// previous line slice; touched rows are rebuilt.
func (b *Buffer) splice(r Range, text string) (AppliedEdit, bool) {
	r = NormalizeRange(Range{Start: b.clampPos(r.Start), End: b.clampPos(r.End)})
	old := b.textIn(r)
	if old == text {
		return AppliedEdit{}, false
	}

	parts := strings.Split(text, "\n")
	mid := make([][]string, len(parts))
	for i, p := range parts {
		mid[i] = grapheme.Split(p)
	}

	head := b.lines[r.Start.Row][:r.Start.GraphemeCol]
	tail := b.lines[r.End.Row][r.End.GraphemeCol:]
	last := len(mid) - 1
	end := Pos{Row: r.Start.Row + last, GraphemeCol: len(mid[last])}
	if last == 0 {
		end.GraphemeCol += len(head)
	}
	mid[0] = concat(head, mid[0])
	mid[last] = concat(mid[last], tail)

	lines := make([][]string, 0, len(b.lines)+last)
	lines = append(lines, b.lines[:r.Start.Row]...)
	lines = append(lines, mid...)
	lines = append(lines, b.lines[r.End.Row+1:]...)
	b.lines = lines

	return AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: end},
		InsertText:  text,
		DeletedText: old,
	}, true
}

func (b *Buffer) textIn(r Range) string {
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(b.lines[r.Start.Row][r.Start.GraphemeCol:r.End.GraphemeCol])
	}
	rows := make([][]string, 0, r.End.Row-r.Start.Row+1)
	rows = append(rows, b.lines[r.Start.Row][r.Start.GraphemeCol:])
	rows = append(rows, b.lines[r.Start.Row+1:r.End.Row]...)
	rows = append(rows, b.lines[r.End.Row][:r.End.GraphemeCol])
	return joinLines(rows)
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
