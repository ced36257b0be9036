// Package segment partitions text into runs of uniform script and bidi
// direction (UAX#24 / UAX#9), with hard line breaks always forcing a
// run boundary, plus grapheme and word boundary iteration (UAX#29) for
// cursor movement and hit-testing. It never resolves fonts or shapes
// glyphs; it is infallible on valid UTF-8 input, failing only on
// malformed input or an internal bidi error.
package segment

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/go-text/typesetting/language"
)

// Run is a maximal span of text sharing one script and one bidi
// direction, never crossing a hard line break. Byte offsets are into
// the original input, so concatenating Text across Runs in order
// reproduces it exactly, and the Runs partition it without overlap.
//
// Language is not detected from the text: BCP 47 language tagging
// depends on context (user locale, document metadata) UAX#24/UAX#9/
// UAX#29 say nothing about, so it is supplied by the caller and
// carried through uniformly, the same way gotext's langConfig takes
// the locale as an input rather than inferring it from the run.
type Run struct {
	Text               string
	ByteStart, ByteEnd int
	Script             language.Script
	Direction          Direction
	Language           string
}

// Segment partitions text into Runs given the paragraph's base
// direction (used to resolve neutral runs and as the fallback when no
// strong directional character has been seen yet) and a BCP 47
// language tag applied uniformly to every resulting Run.
func Segment(text string, base Direction, lang string) ([]Run, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("segment: input is not valid UTF-8")
	}
	if text == "" {
		return nil, nil
	}

	scripts := itemizeScript(text)
	directions, err := bidiRuns(text, base)
	if err != nil {
		return nil, fmt.Errorf("segment: %w", err)
	}
	hardOffsets := hardBreakOffsets(text)

	boundarySet := map[int]bool{0: true, len(text): true}
	for _, r := range scripts {
		boundarySet[r.start] = true
		boundarySet[r.end] = true
	}
	for _, r := range directions {
		boundarySet[r.start] = true
		boundarySet[r.end] = true
	}
	hardSet := make(map[int]bool, len(hardOffsets))
	for _, off := range hardOffsets {
		boundarySet[off] = true
		hardSet[off] = true
	}

	offsets := make([]int, 0, len(boundarySet))
	for off := range boundarySet {
		offsets = append(offsets, off)
	}
	sort.Ints(offsets)

	var runs []Run
	for i := 0; i+1 < len(offsets); i++ {
		start, end := offsets[i], offsets[i+1]
		script := scriptAt(scripts, start)
		dir := directionAt(directions, start, base)

		if len(runs) > 0 {
			last := &runs[len(runs)-1]
			if last.Script == script && last.Direction == dir && !hardSet[start] {
				last.ByteEnd = end
				last.Text = text[last.ByteStart:last.ByteEnd]
				continue
			}
		}
		runs = append(runs, Run{
			Text:      text[start:end],
			ByteStart: start,
			ByteEnd:   end,
			Script:    script,
			Direction: dir,
			Language:  lang,
		})
	}
	return runs, nil
}
