// Package grapheme wraps uniseg for the grapheme-column coordinates used
// across highlit.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split breaks s into extended grapheme clusters.
func Split(s string) []string {
	var out []string
	state := -1
	for s != "" {
		var c string
		c, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, c)
	}
	return out
}

func Count(s string) int { return uniseg.GraphemeClusterCount(s) }

func Join(clusters []string) string { return strings.Join(clusters, "") }

// ColumnAt converts a byte offset in s to a grapheme column. An offset
// inside a cluster maps to that cluster's column; offsets past the end map
// to the cluster count.
func ColumnAt(s string, off int) int {
	col, pos := 0, 0
	state := -1
	for s != "" {
		var c string
		c, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if pos+len(c) > off {
			return col
		}
		pos += len(c)
		col++
	}
	return col
}

// IsSpace reports whether cluster is non-empty whitespace.
func IsSpace(cluster string) bool { return all(cluster, unicode.IsSpace) }

// IsPunct reports whether cluster is non-empty punctuation.
func IsPunct(cluster string) bool { return all(cluster, unicode.IsPunct) }

func all(s string, pred func(rune) bool) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool { return !pred(r) }) < 0
}
