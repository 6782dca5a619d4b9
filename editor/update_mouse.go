package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/highlit/buffer"
	graphemeutil "github.com/iw2rmb/highlit/internal/grapheme"
)

// updateMouse scrolls on wheel input and moves the cursor on left click.
// Mouse input is not a keystroke, so no key handlers run.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	if !m.focused || m.buf == nil {
		return m, cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, cmd
	}
	if !m.mouseInBounds(msg.X, msg.Y) {
		return m, cmd
	}

	m.buf.SetCursor(m.screenToDocPos(msg.X, msg.Y))
	m.buf.ClearSelection()
	return m, cmd
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

// screenToDocPos maps a viewport cell to the grapheme under it. Cells past
// the end of a line map to the line end.
func (m Model) screenToDocPos(x, y int) buffer.Pos {
	row := clamp(y+m.viewport.YOffset, 0, m.buf.LineCount()-1)
	x -= m.gutterWidth()
	if x < 0 {
		return buffer.Pos{Row: row, GraphemeCol: 0}
	}

	clusters := graphemeutil.Split(m.buf.Line(row))
	cell := 0
	for col, g := range clusters {
		w := graphemeCellWidth(g, cell, m.cfg.tabWidth())
		if x < cell+w {
			return buffer.Pos{Row: row, GraphemeCol: col}
		}
		cell += w
	}
	return buffer.Pos{Row: row, GraphemeCol: len(clusters)}
}
