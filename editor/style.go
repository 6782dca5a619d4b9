package editor

import "github.com/charmbracelet/lipgloss"

// Style is the set of lipgloss styles the editor renders with. Highlight
// spans are layered over Text.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

var (
	dimColor       = lipgloss.AdaptiveColor{Light: "250", Dark: "240"}
	activeNumColor = lipgloss.AdaptiveColor{Light: "236", Dark: "250"}
	selectionColor = lipgloss.AdaptiveColor{Light: "254", Dark: "237"}
)

// NewStyle builds the default palette for r. Colors adapt to the terminal
// background r detects.
func NewStyle(r *lipgloss.Renderer) Style {
	gutter := r.NewStyle().Foreground(dimColor)
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: r.NewStyle().Foreground(activeNumColor).Bold(true),
		Text:          r.NewStyle(),
		Selection:     r.NewStyle().Background(selectionColor),
		Cursor:        r.NewStyle().Reverse(true),
	}
}

// DefaultStyle is NewStyle for the default renderer, which writes to stdout.
func DefaultStyle() Style { return NewStyle(lipgloss.DefaultRenderer()) }

func (s Style) lineNum(active bool) lipgloss.Style {
	if active {
		return s.LineNumActive
	}
	return s.LineNum
}
