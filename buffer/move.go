package buffer

import (
	"github.com/iw2rmb/highlit/internal/grapheme"
	"github.com/iw2rmb/highlit/token"
)

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start, or document start for MoveDoc
	DirEnd  // line end, or document end for MoveDoc
)

// Move describes a cursor motion. Extend grows the selection from its anchor
// instead of clearing it.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

func (b *Buffer) Move(m Move) {
	target := b.clampPos(b.target(b.cursor, m))

	next := selection{}
	if m.Extend {
		anchor := b.cursor
		if b.sel.state().Active {
			anchor = b.sel.anchor
		}
		if anchor != target {
			next = selection{active: true, anchor: anchor, head: target}
		}
	}

	if target == b.cursor && next.state() == b.sel.state() {
		return
	}
	b.cursor = target
	b.sel = next
	b.version++
}

func (b *Buffer) target(p Pos, m Move) Pos {
	if m.Unit == MoveDoc {
		switch m.Dir {
		case DirLeft, DirUp, DirHome:
			return Pos{}
		default:
			return b.docEnd()
		}
	}

	switch m.Dir {
	case DirHome:
		return Pos{Row: p.Row}
	case DirEnd:
		return b.lineEnd(p.Row)
	case DirUp:
		return b.vertical(p, -1)
	case DirDown:
		return b.vertical(p, 1)
	case DirLeft:
		if m.Unit == MoveWord {
			return b.wordLeft(p)
		}
		return b.stepLeft(p)
	case DirRight:
		if m.Unit == MoveWord {
			return b.wordRight(p)
		}
		return b.stepRight(p)
	default:
		return p
	}
}

// stepLeft returns the position one cluster before p, wrapping to the end
// of the previous row.
func (b *Buffer) stepLeft(p Pos) Pos {
	switch {
	case p.GraphemeCol > 0:
		return Pos{Row: p.Row, GraphemeCol: p.GraphemeCol - 1}
	case p.Row > 0:
		return b.lineEnd(p.Row - 1)
	default:
		return p
	}
}

// stepRight returns the position one cluster after p, wrapping to the start
// of the next row.
func (b *Buffer) stepRight(p Pos) Pos {
	switch {
	case p.GraphemeCol < len(b.lines[p.Row]):
		return Pos{Row: p.Row, GraphemeCol: p.GraphemeCol + 1}
	case p.Row < len(b.lines)-1:
		return Pos{Row: p.Row + 1}
	default:
		return p
	}
}

// vertical keeps the column, clamped to the target row.
func (b *Buffer) vertical(p Pos, delta int) Pos {
	row := p.Row + delta
	if row < 0 || row >= len(b.lines) {
		return p
	}
	return Pos{Row: row, GraphemeCol: min(p.GraphemeCol, len(b.lines[row]))}
}

// Word moves stop at token edges, skipping whitespace, and stay on the row.
func (b *Buffer) wordLeft(p Pos) Pos {
	toks := token.Split(grapheme.Join(b.lines[p.Row]))
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i].Kind != token.Space && toks[i].Start < p.GraphemeCol {
			return Pos{Row: p.Row, GraphemeCol: toks[i].Start}
		}
	}
	return Pos{Row: p.Row}
}

func (b *Buffer) wordRight(p Pos) Pos {
	for _, tok := range token.Split(grapheme.Join(b.lines[p.Row])) {
		if tok.Kind != token.Space && tok.End > p.GraphemeCol {
			return Pos{Row: p.Row, GraphemeCol: tok.End}
		}
	}
	return b.lineEnd(p.Row)
}
