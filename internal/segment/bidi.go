package segment

import (
	"fmt"

	"golang.org/x/text/unicode/bidi"
)

// Direction is the resolved paragraph or run direction.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "RTL"
	}
	return "LTR"
}

// directionRun is a maximal byte range [start, end) of text carrying a
// single resolved bidi direction, as produced by the UAX#9 algorithm.
type directionRun struct {
	start, end int
	dir        Direction
}

// bidiRuns resolves bidi embedding levels for text (UAX#9) and reduces
// them to direction runs. Grounded on the bidi split in gioui's text
// shaper (splitBidi): a bidi.Paragraph set to the paragraph's base
// direction, then walked run by run via Order(). Neutral-run
// resolution, including isolated neutrals adopting the paragraph
// direction, is the bidi package's own job; nothing here second-guesses
// it.
func bidiRuns(text string, base Direction) ([]directionRun, error) {
	def := bidi.LeftToRight
	if base == RTL {
		def = bidi.RightToLeft
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(def)); err != nil {
		return nil, fmt.Errorf("bidi: set paragraph: %w", err)
	}
	ordering, err := p.Order()
	if err != nil {
		return nil, fmt.Errorf("bidi: order paragraph: %w", err)
	}

	runs := make([]directionRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		dir := LTR
		if run.Direction() == bidi.RightToLeft {
			dir = RTL
		}
		runs = append(runs, directionRun{start: start, end: end, dir: dir})
	}
	return runs, nil
}

func directionAt(runs []directionRun, offset int, base Direction) Direction {
	for _, r := range runs {
		if offset >= r.start && offset < r.end {
			return r.dir
		}
	}
	return base
}
