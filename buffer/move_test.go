package buffer

import "testing"

func TestBuffer_Move_Grapheme(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 0}); got != want {
		t.Fatalf("right across line=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("left across line=%v, want %v", got, want)
	}
}

func TestBuffer_Move_LineClampsColumn(t *testing.T) {
	b := New("long line\nab", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 7})

	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 2}); got != want {
		t.Fatalf("down=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveLine, Dir: DirHome})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 0}); got != want {
		t.Fatalf("home=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 2}); got != want {
		t.Fatalf("end=%v, want %v", got, want)
	}
}

func TestBuffer_Move_Word(t *testing.T) {
	b := New("one  two three", Options{})

	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got, want := b.Cursor().GraphemeCol, 3; got != want {
		t.Fatalf("first word right=%d, want %d", got, want)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got, want := b.Cursor().GraphemeCol, 8; got != want {
		t.Fatalf("second word right=%d, want %d", got, want)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got, want := b.Cursor().GraphemeCol, 5; got != want {
		t.Fatalf("word left=%d, want %d", got, want)
	}
}

func TestBuffer_Move_Doc(t *testing.T) {
	b := New("ab\ncde", Options{})
	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 3}); got != want {
		t.Fatalf("doc end=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirHome})
	if got, want := b.Cursor(), (Pos{}); got != want {
		t.Fatalf("doc start=%v, want %v", got, want)
	}
}

func TestBuffer_Move_ExtendSelects(t *testing.T) {
	b := New("hello", Options{})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if want := (Range{End: Pos{Row: 0, GraphemeCol: 2}}); r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if _, ok := b.Selection(); ok {
		t.Fatalf("plain move must clear selection")
	}
}

func TestBuffer_Move_NoOpKeepsVersion(t *testing.T) {
	b := New("a", Options{})
	v := b.Version()
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Version(); got != v {
		t.Fatalf("no-op move bumped version")
	}
}
