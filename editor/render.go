package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/highlit/buffer"
	graphemeutil "github.com/iw2rmb/highlit/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	lineCount := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(lineCount)
	}
	firstVisible, lastVisible := m.visibleRows(lineCount)

	out := make([]string, 0, lineCount)
	for row := 0; row < lineCount; row++ {
		line := m.buf.Line(row)
		clusters := graphemeutil.Split(line)

		var spans []HighlightSpan
		if m.cfg.Highlighter != nil && row >= firstVisible && row < lastVisible {
			spans = m.highlightForLine(row, line, len(clusters), cursor)
		}

		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.lineNum(m.focused && row == cursor.Row)
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(m.renderLine(clusters, row, cursor, sel, selOK, spans))
		out = append(out, sb.String())
	}

	return strings.Join(out, "\n")
}

func (m *Model) renderLine(clusters []string, row int, cursor buffer.Pos, sel buffer.Range, selOK bool, spans []HighlightSpan) string {
	st := m.cfg.Style
	tabWidth := m.cfg.tabWidth()

	var sb strings.Builder
	cell := 0
	for col, g := range clusters {
		style := st.Text
		if sp, ok := spanAt(spans, col); ok {
			style = sp.Style.Inherit(style)
		}
		p := buffer.Pos{Row: row, GraphemeCol: col}
		if selOK && sel.Contains(p) {
			style = st.Selection.Inherit(style)
		}
		if m.focused && p == cursor {
			style = st.Cursor.Inherit(style)
		}

		w := graphemeCellWidth(g, cell, tabWidth)
		text := g
		if g == "\t" {
			text = strings.Repeat(" ", w)
		}
		sb.WriteString(style.Render(text))
		cell += w
	}

	if m.focused && cursor.Row == row && cursor.GraphemeCol >= len(clusters) {
		sb.WriteString(st.Cursor.Inherit(st.Text).Render(" "))
	}
	return sb.String()
}

func (m *Model) highlightForLine(row int, line string, lineLen int, cursor buffer.Pos) []HighlightSpan {
	ctx := LineContext{
		Row:               row,
		Text:              line,
		CursorGraphemeCol: -1,
	}
	if cursor.Row == row {
		ctx.CursorGraphemeCol = cursor.GraphemeCol
		ctx.HasCursor = true
	}

	spans, err := m.cfg.Highlighter.HighlightLine(ctx)
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, lineLen)
}

// visibleRows returns the half-open row range currently inside the viewport.
func (m *Model) visibleRows(lineCount int) (int, int) {
	h := m.bodyHeight()
	if h <= 0 {
		return 0, 0
	}
	start := clamp(m.viewport.YOffset, 0, lineCount)
	end := clamp(start+h, 0, lineCount)
	return start, end
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}
