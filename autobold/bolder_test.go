package autobold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/highlit/buffer"
	"github.com/iw2rmb/highlit/internal/grapheme"
	"github.com/iw2rmb/highlit/token"
)

type replaceCall struct {
	text     string
	from, to buffer.Pos
}

// fakeEditor is a single-purpose host: it answers queries from lines and
// applies same-row replacements.
type fakeEditor struct {
	lines    []string
	cursor   buffer.Pos
	noCursor bool
	readOnly bool
	replaced []replaceCall
}

func (f *fakeEditor) ReadOnly() bool { return f.readOnly }

func (f *fakeEditor) Cursor() (buffer.Pos, bool) {
	if f.noCursor {
		return buffer.Pos{}, false
	}
	return f.cursor, true
}

func (f *fakeEditor) TokenAt(p buffer.Pos) token.Token {
	return token.At(f.Line(p.Row), p.GraphemeCol)
}

func (f *fakeEditor) Line(row int) string {
	if row < 0 || row >= len(f.lines) {
		return ""
	}
	return f.lines[row]
}

func (f *fakeEditor) ReplaceRange(text string, from, to buffer.Pos) {
	f.replaced = append(f.replaced, replaceCall{text: text, from: from, to: to})
	clusters := grapheme.Split(f.lines[from.Row])
	f.lines[from.Row] = grapheme.Join(clusters[:from.GraphemeCol]) + text + grapheme.Join(clusters[to.GraphemeCol:])
}

func at(row, col int) buffer.Pos { return buffer.Pos{Row: row, GraphemeCol: col} }

// press records prev as the last key-release cursor, moves to cur, and
// evaluates one key press.
func press(b *Bolder, ed *fakeEditor, prev, cur buffer.Pos) bool {
	ed.cursor = prev
	b.tracker.Record(ed)
	ed.cursor = cur
	return b.OnKeyPress(ed)
}

func TestBolder_BoldsLabels(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
		from int
	}{
		{"plain label", "Title:", "**Title:**", 0},
		{"unordered list item", "- Task:", "- **Task:**", 2},
		{"ordered list item", "1. Step:", "1. **Step:**", 3},
		{"whitespace label", "  :", "**  :**", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := &fakeEditor{lines: []string{tt.line}}
			end := grapheme.Count(tt.line)
			b := NewBolder(nil)

			require.True(t, press(b, ed, at(0, end), at(0, end)))
			assert.Equal(t, tt.want, ed.lines[0])
			require.Len(t, ed.replaced, 1)
			assert.Equal(t, at(0, tt.from), ed.replaced[0].from)
			assert.Equal(t, at(0, end), ed.replaced[0].to)
		})
	}
}

func TestBolder_AcceptsOneColumnAdvance(t *testing.T) {
	ed := &fakeEditor{lines: []string{"Title:"}}
	b := NewBolder(nil)

	require.True(t, press(b, ed, at(0, 5), at(0, 6)))
	assert.Equal(t, "**Title:**", ed.lines[0])
}

func TestBolder_UsesLiveTokenEnd(t *testing.T) {
	// Content after the colon is left untouched.
	ed := &fakeEditor{lines: []string{"Title: body"}}
	b := NewBolder(nil)

	require.True(t, press(b, ed, at(0, 6), at(0, 6)))
	assert.Equal(t, "**Title:** body", ed.lines[0])
}

func TestBolder_NoOps(t *testing.T) {
	tests := []struct {
		name string
		line string
		prev buffer.Pos
		cur  buffer.Pos
	}{
		{"no colon", "Title", at(0, 5), at(0, 5)},
		{"already bolded", "**Already:**", at(0, 10), at(0, 10)},
		{"cursor jumped on the same line", "Title:", at(0, 2), at(0, 6)},
		{"cursor moved back", "Title:", at(0, 7), at(0, 6)},
		{"different line", "Title:", at(1, 6), at(0, 6)},
		{"token is not a colon", "Title: x", at(0, 8), at(0, 8)},
		{"colon inside a word", "ab:cd", at(0, 3), at(0, 3)},
		{"later colon", "Note: see:", at(0, 10), at(0, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := &fakeEditor{lines: []string{tt.line, tt.line}}
			b := NewBolder(nil)

			assert.False(t, press(b, ed, tt.prev, tt.cur))
			assert.Empty(t, ed.replaced)
			assert.Equal(t, tt.line, ed.lines[0])
		})
	}
}

func TestBolder_ReadOnlyEditorIsNoOp(t *testing.T) {
	ed := &fakeEditor{lines: []string{"Title:"}, readOnly: true}
	var bolded []Bolded
	b := NewBolder(nil)
	b.onBold = func(ev Bolded) { bolded = append(bolded, ev) }

	assert.False(t, press(b, ed, at(0, 6), at(0, 6)))
	assert.Empty(t, ed.replaced)
	assert.Empty(t, bolded)
}

func TestBolder_NoRecordedCursorIsNoOp(t *testing.T) {
	ed := &fakeEditor{lines: []string{"Title:"}, cursor: at(0, 6)}
	b := NewBolder(nil)

	assert.False(t, b.OnKeyPress(ed))
	assert.Empty(t, ed.replaced)
}

func TestBolder_MissingCursorIsNoOp(t *testing.T) {
	ed := &fakeEditor{lines: []string{"Title:"}, cursor: at(0, 6)}
	b := NewBolder(nil)
	b.tracker.Record(ed)

	ed.noCursor = true
	assert.False(t, b.OnKeyPress(ed))
	assert.Empty(t, ed.replaced)
}

func TestBolder_Idempotent(t *testing.T) {
	ed := &fakeEditor{lines: []string{"Title:"}}
	b := NewBolder(nil)
	require.True(t, press(b, ed, at(0, 6), at(0, 6)))
	require.Equal(t, "**Title:**", ed.lines[0])

	// Type another colon at the new end of the line.
	ed.lines[0] += ":"
	assert.False(t, press(b, ed, at(0, 10), at(0, 11)))
	assert.Equal(t, "**Title:**:", ed.lines[0])
	assert.Len(t, ed.replaced, 1)
}

func TestBolder_LinesWithoutColonNeverTrigger(t *testing.T) {
	lines := []string{"", "a", "Title", "- Task", "1. Step", "**bold**", "x y z"}
	for _, line := range lines {
		ed := &fakeEditor{lines: []string{line}}
		b := NewBolder(nil)
		n := grapheme.Count(line)
		for col := 0; col <= n; col++ {
			assert.False(t, press(b, ed, at(0, col), at(0, col)), "line %q col %d", line, col)
		}
		assert.Empty(t, ed.replaced, "line %q", line)
	}
}

func TestBolder_OnBoldCallback(t *testing.T) {
	var got []Bolded
	p := New(WithOnBold(func(ev Bolded) { got = append(got, ev) }))
	ed := &fakeEditor{lines: []string{"- Task:"}, cursor: at(0, 7)}

	p.RecordCursor(ed)
	require.True(t, p.OnKeyPress(ed))
	require.Len(t, got, 1)
	assert.Equal(t, Bolded{
		Editor: ed,
		From:   at(0, 2),
		To:     at(0, 7),
		Label:  "Task:",
		Text:   "**Task:**",
	}, got[0])
}
