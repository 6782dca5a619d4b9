// Package token splits a single line into lexical tokens the way the editor
// host reports them to extensions.
//
// Tokens follow Unicode word boundaries (UAX #29): runs of letters and
// digits form one token, while punctuation and whitespace clusters stand
// alone. Offsets are grapheme columns, matching buffer.Pos.
package token

import (
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/highlit/internal/grapheme"
)

// Kind classifies a token by its first grapheme cluster.
type Kind uint8

const (
	Word Kind = iota
	Space
	Punct
)

func (k Kind) String() string {
	switch k {
	case Space:
		return "space"
	case Punct:
		return "punct"
	default:
		return "word"
	}
}

// Token is a half-open span [Start, End) of one line and the text it covers.
type Token struct {
	Start int
	End   int
	Text  string
	Kind  Kind
}

func (t Token) IsEmpty() bool { return t.Start == t.End }

// Split returns the tokens of line in order. The tokens cover the line with
// no gaps.
func Split(line string) []Token {
	if line == "" {
		return nil
	}

	var out []Token
	col := 0
	state := -1
	rest := line
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		n := grapheme.Count(word)
		out = append(out, Token{Start: col, End: col + n, Text: word, Kind: kindOf(word)})
		col += n
	}
	return out
}

// At returns the token that covers the character just before col, so a
// cursor placed right after a token reports that token. At col 0 (or on an
// empty line) it returns an empty token at col 0.
func At(line string, col int) Token {
	if col <= 0 {
		return Token{}
	}
	toks := Split(line)
	for _, t := range toks {
		if t.Start < col && col <= t.End {
			return t
		}
	}
	if len(toks) > 0 {
		last := toks[len(toks)-1]
		return Token{Start: last.End, End: last.End}
	}
	return Token{}
}

func kindOf(word string) Kind {
	first, _, _, _ := uniseg.FirstGraphemeClusterInString(word, -1)
	switch {
	case grapheme.IsSpace(first):
		return Space
	case grapheme.IsPunct(first):
		return Punct
	default:
		return Word
	}
}
