package segment

import "github.com/rivo/uniseg"

// Boundary is a byte range [Start, End) over the original text,
// delimiting one grapheme cluster or one word per UAX#29.
type Boundary struct {
	Start, End int
}

// GraphemeBoundaries walks text cluster by cluster (UAX#29 extended
// grapheme clusters), the unit cursor movement and hit-testing operate
// on rather than raw code points.
func GraphemeBoundaries(text string) []Boundary {
	if text == "" {
		return nil
	}
	var out []Boundary
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		start, end := g.Positions()
		out = append(out, Boundary{Start: start, End: end})
	}
	return out
}

// WordBoundaries walks text word by word (UAX#29 word segmentation),
// the unit line-breaking and double-click selection operate on.
func WordBoundaries(text string) []Boundary {
	if text == "" {
		return nil
	}
	var out []Boundary
	state := -1
	pos := 0
	remaining := text
	for len(remaining) > 0 {
		word, rest, newState := uniseg.FirstWordInString(remaining, state)
		out = append(out, Boundary{Start: pos, End: pos + len(word)})
		pos += len(word)
		remaining = rest
		state = newState
	}
	return out
}
