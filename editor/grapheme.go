package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const defaultTabWidth = 4

// graphemeCellWidth is the number of terminal cells cluster g takes when
// drawn at cell col. A tab fills up to the next multiple of tabWidth.
func graphemeCellWidth(g string, col, tabWidth int) int {
	if g == "\t" {
		return tabAdvance(col, tabWidth)
	}
	// runewidth reports zero for some emoji sequences uniseg measures.
	if w := runewidth.StringWidth(g); w > 0 {
		return w
	}
	return max(uniseg.StringWidth(g), 0)
}

func tabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}
	return tabWidth - max(col, 0)%tabWidth
}

// clamp limits v to [lo, hi]. When hi < lo it returns lo.
func clamp(v, lo, hi int) int { return max(lo, min(v, hi)) }
