// Package markdown highlights Markdown lines for the editor using chroma's
// Markdown lexer and styles, with goldmark locating strong and emphasis.
package markdown

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/iw2rmb/highlit/editor"
	"github.com/iw2rmb/highlit/internal/grapheme"
)

// DefaultStyle is the chroma style used when none is given.
const DefaultStyle = "monokai"

// Highlighter implements editor.Highlighter.
type Highlighter struct {
	lexer  chroma.Lexer
	style  *chroma.Style
	styles map[chroma.TokenType]lipgloss.Style
}

var _ editor.Highlighter = (*Highlighter)(nil)

// NewHighlighter returns a highlighter using the named chroma style.
func NewHighlighter(styleName string) (*Highlighter, error) {
	if styleName == "" {
		styleName = DefaultStyle
	}
	st, ok := styles.Registry[styleName]
	if !ok {
		return nil, fmt.Errorf("unknown chroma style %q", styleName)
	}

	l := lexers.Get("markdown")
	if l == nil {
		l = lexers.Fallback
	}
	return &Highlighter{
		lexer:  chroma.Coalesce(l),
		style:  st,
		styles: make(map[chroma.TokenType]lipgloss.Style),
	}, nil
}

// StyleNames lists the available chroma styles.
func StyleNames() []string { return styles.Names() }

// HighlightLine styles one line on its own. Multi-line constructs such as
// fenced code blocks are not tracked across lines.
//
// chroma supplies token colors for headings, list markers and code.
// Strong and emphasis come from goldmark's inline parser, since chroma
// reports a line like "**Title:** body" as plain text.
func (h *Highlighter) HighlightLine(ctx editor.LineContext) ([]editor.HighlightSpan, error) {
	if ctx.Text == "" {
		return nil, nil
	}
	cells, err := h.tokenCells(ctx.Text)
	if err != nil {
		return nil, err
	}
	markEmphasis(ctx.Text, cells)

	var spans []editor.HighlightSpan
	for start := 0; start < len(cells); {
		end := start + 1
		for end < len(cells) && cells[end] == cells[start] {
			end++
		}
		if st, ok := h.cellStyle(cells[start]); ok {
			spans = append(spans, editor.HighlightSpan{
				StartGraphemeCol: start,
				EndGraphemeCol:   end,
				Style:            st,
			})
		}
		start = end
	}
	return spans, nil
}

// cell is the styling state of one grapheme cluster.
type cell struct {
	token  chroma.TokenType
	strong bool
	em     bool
}

func (h *Highlighter) tokenCells(line string) ([]cell, error) {
	it, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return nil, err
	}
	cells := make([]cell, 0, grapheme.Count(line))
	for tok := it(); tok != chroma.EOF; tok = it() {
		for i, n := 0, grapheme.Count(tok.Value); i < n; i++ {
			cells = append(cells, cell{token: tok.Type})
		}
	}
	return cells, nil
}

func (h *Highlighter) cellStyle(c cell) (lipgloss.Style, bool) {
	st, ok := h.styleFor(c.token)
	if !ok {
		st = lipgloss.NewStyle()
	}
	if c.strong {
		st = st.Bold(true)
	}
	if c.em {
		st = st.Italic(true)
	}
	return st, ok || c.strong || c.em
}

// markEmphasis flags the cells covered by strong (level 2) and emphasis
// (level 1) runs, delimiters included.
func markEmphasis(line string, cells []cell) {
	src := []byte(line)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		em, ok := n.(*ast.Emphasis)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		start, stop, ok := extent(em)
		if !ok {
			return ast.WalkContinue, nil
		}
		from := grapheme.ColumnAt(line, start)
		to := min(grapheme.ColumnAt(line, stop), len(cells))
		for i := from; i < to; i++ {
			if em.Level >= 2 {
				cells[i].strong = true
			} else {
				cells[i].em = true
			}
		}
		return ast.WalkContinue, nil
	})
}

// extent returns the byte span of n in the source. Emphasis nodes grow by
// their delimiter length on each side.
func extent(n ast.Node) (start, stop int, ok bool) {
	if t, isText := n.(*ast.Text); isText {
		return t.Segment.Start, t.Segment.Stop, true
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		s, e, cok := extent(c)
		if !cok {
			continue
		}
		if !ok {
			start, stop, ok = s, e, true
			continue
		}
		start, stop = min(start, s), max(stop, e)
	}
	if em, isEm := n.(*ast.Emphasis); isEm && ok {
		start -= em.Level
		stop += em.Level
	}
	return start, stop, ok
}

// styleFor converts the chroma entry for t to a lipgloss style. Entries
// without any visible attribute report false so plain text keeps the
// editor's text style.
func (h *Highlighter) styleFor(t chroma.TokenType) (lipgloss.Style, bool) {
	if st, ok := h.styles[t]; ok {
		return st, true
	}

	e := h.style.Get(t)
	st := lipgloss.NewStyle()
	visible := false
	if e.Colour.IsSet() {
		st = st.Foreground(lipgloss.Color(e.Colour.String()))
		visible = true
	}
	if e.Bold == chroma.Yes {
		st = st.Bold(true)
		visible = true
	}
	if e.Italic == chroma.Yes {
		st = st.Italic(true)
		visible = true
	}
	if e.Underline == chroma.Yes {
		st = st.Underline(true)
		visible = true
	}
	if !visible {
		return lipgloss.Style{}, false
	}
	h.styles[t] = st
	return st, true
}
