package autobold

import (
	"regexp"
	"strings"

	"github.com/iw2rmb/highlit/buffer"
	"github.com/iw2rmb/highlit/internal/grapheme"
)

// BoldMarker opens and closes bold markup.
const BoldMarker = "**"

const (
	labelTerminator = ':'
	unorderedMarker = "- "
)

// orderedListRE matches "<digits>." followed by optional words and a colon.
// Everything after the period is optional, so any line that starts with
// digits and a period counts as an ordered list item.
var orderedListRE = regexp.MustCompile(`^\d+\.\s?(\w+\s?)*:?`)

// Replacement is a planned rewrite of one line. From and To are grapheme
// columns in the live line.
type Replacement struct {
	From  int
	To    int
	Label string
	Text  string
}

// IsSequentialTyping reports whether cur is what ordinary typing produces from
// prev: same row, and the cursor stayed put or advanced by one column.
func IsSequentialTyping(prev, cur buffer.Pos) bool {
	if prev.Row != cur.Row {
		return false
	}
	d := cur.GraphemeCol - prev.GraphemeCol
	return d == 0 || d == 1
}

// IsOrderedListItem reports whether text starts like an ordered list item.
func IsOrderedListItem(text string) bool {
	return orderedListRE.MatchString(text)
}

// LabelStart returns the column where the label begins in text: after an
// unordered marker, after an ordered "N." marker and one separating space,
// or at 0.
func LabelStart(text string) int {
	switch {
	case strings.HasPrefix(text, unorderedMarker):
		return len(unorderedMarker)
	case IsOrderedListItem(text):
		start := strings.IndexByte(text, '.') + 1
		if start < len(text) && (text[start] == ' ' || text[start] == '\t') {
			start++
		}
		return start
	default:
		return 0
	}
}

// IsBolded reports whether label already opens with a bold marker.
func IsBolded(label string) bool {
	return strings.HasPrefix(label, BoldMarker)
}

// Wrap surrounds label with bold markers.
func Wrap(label string) string {
	return BoldMarker + label + BoldMarker
}

// PlanLine decides how line should be rewritten when a colon token ending at
// tokenEnd was just typed.
//
// The line is cut right after its first colon; the label runs from the list
// prefix (if any) to that cut. Nothing is planned when no label precedes the
// colon or when the label is already bold.
//
// A colon typed after an earlier one on the same line plans nothing. Cutting
// at the first colon and replacing up to tokenEnd would otherwise delete the
// text between the two colons: typing the last colon of "Note: see:" must
// not turn the line into "**Note:**".
func PlanLine(line string, tokenEnd int) (Replacement, bool) {
	i := strings.IndexByte(line, labelTerminator)
	if i < 0 {
		return Replacement{}, false
	}
	truncated := line[:i+1]
	if grapheme.Count(truncated) != tokenEnd {
		return Replacement{}, false
	}

	// List prefixes are ASCII, so the byte offset is also a grapheme column.
	start := LabelStart(truncated)
	if start > i {
		return Replacement{}, false
	}
	label := truncated[start:]
	if IsBolded(label) {
		return Replacement{}, false
	}

	return Replacement{
		From:  start,
		To:    tokenEnd,
		Label: label,
		Text:  Wrap(label),
	}, true
}
