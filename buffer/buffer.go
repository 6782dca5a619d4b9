package buffer

import (
	"strings"

	"github.com/iw2rmb/highlit/internal/grapheme"
)

const (
	defaultHistoryLimit   = 1000
	defaultChangeLogLimit = 256
)

type Options struct {
	// HistoryLimit bounds the undo stack. Zero means 1000; a negative value
	// disables undo.
	HistoryLimit int
	// ChangeLogLimit bounds how many changes ChangesSince can report. Zero
	// means 256.
	ChangeLogLimit int
}

// selection is anchored where it started; head follows the cursor.
type selection struct {
	active bool
	anchor Pos
	head   Pos
}

func (s selection) state() SelectionState {
	r := NormalizeRange(Range{Start: s.anchor, End: s.head})
	if !s.active || r.IsEmpty() {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

// Buffer holds the document text, cursor and selection.
//
// Rows are stored as grapheme clusters, so a GraphemeCol is a slice index.
// Edits replace rows instead of writing into them; undo snapshots rely on it.
type Buffer struct {
	lines   [][]string
	version uint64

	cursor Pos
	sel    selection

	opt  Options
	hist historyState
	log  []Change
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = defaultHistoryLimit
	}
	if opt.ChangeLogLimit <= 0 {
		opt.ChangeLogLimit = defaultChangeLogLimit
	}
	return &Buffer{lines: splitLines(text), opt: opt}
}

func (b *Buffer) Text() string { return joinLines(b.lines) }

// LineCount returns the number of rows, which is never zero.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" for rows outside the document.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// Version increases on every effective change to text, cursor or selection.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	if p = b.clampPos(p); p != b.cursor {
		b.cursor = p
		b.version++
	}
}

func (b *Buffer) Selection() (Range, bool) {
	st := b.sel.state()
	return st.Range, st.Active
}

// SetSelection selects r, clamped to the document. An empty r clears the
// selection.
func (b *Buffer) SetSelection(r Range) {
	next := selection{active: true, anchor: b.clampPos(r.Start), head: b.clampPos(r.End)}
	if next.anchor == next.head {
		next = selection{}
	}
	b.setSelection(next)
}

func (b *Buffer) ClearSelection() { b.setSelection(selection{}) }

func (b *Buffer) setSelection(next selection) {
	if next.state() == b.sel.state() {
		b.sel = next
		return
	}
	b.sel = next
	b.version++
}

func (b *Buffer) clampPos(p Pos) Pos {
	row := min(max(p.Row, 0), len(b.lines)-1)
	col := min(max(p.GraphemeCol, 0), len(b.lines[row]))
	return Pos{Row: row, GraphemeCol: col}
}

func (b *Buffer) lineEnd(row int) Pos {
	return Pos{Row: row, GraphemeCol: len(b.lines[row])}
}

func (b *Buffer) docEnd() Pos { return b.lineEnd(len(b.lines) - 1) }

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, len(parts))
	for i, s := range parts {
		lines[i] = grapheme.Split(s)
	}
	return lines
}

func joinLines(lines [][]string) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, g := range line {
			sb.WriteString(g)
		}
	}
	return sb.String()
}
