// Package shape maps a segmented text run and a font to positioned,
// shaped glyphs (OpenType GSUB/GPOS for complex scripts), and offers a
// non-conformant NullShaper for diagnostics when the full shaping
// engine isn't wanted.
package shape

import (
	"fmt"

	"github.com/typf-go/typf/internal/fontdb"
	"github.com/typf-go/typf/internal/segment"
)

// Glyph is a single positioned, shaped glyph in output pixels.
type Glyph struct {
	GlyphID uint32
	Cluster int // byte offset into the run's substring
	X, Y    float64
	Advance float64
}

// ShapingResult is the shaped form of a segment.Run.
type ShapingResult struct {
	Text      string
	Glyphs    []Glyph
	Advance   float64
	MinX      float64
	MinY      float64
	MaxX      float64
	MaxY      float64
	Font      *fontdb.Face
	Direction segment.Direction
}

// ErrFontMissing is returned when Shape is called without a usable font face.
type ErrFontMissing struct{}

func (ErrFontMissing) Error() string { return "shape: font missing" }

// ShapingFailedError wraps a shaping engine failure with the detail
// the caller needs to diagnose it, rather than swallowing it.
type ShapingFailedError struct {
	Detail string
}

func (e *ShapingFailedError) Error() string {
	return fmt.Sprintf("shape: shaping failed: %s", e.Detail)
}

// Shaper maps a segment.Run plus a resolved font face to a ShapingResult.
type Shaper interface {
	Shape(run segment.Run, face *fontdb.Face, sizePx float64, features map[string]uint32) (*ShapingResult, error)
}

// bounds accumulates the union bounding box of shaped glyph extents,
// matching spec's requirement that bounding box come from each
// glyph's rendered extent rather than advances alone.
type bounds struct {
	minX, minY, maxX, maxY float64
	seen                   bool
}

func (b *bounds) add(x0, y0, x1, y1 float64) {
	if !b.seen {
		b.minX, b.minY, b.maxX, b.maxY = x0, y0, x1, y1
		b.seen = true
		return
	}
	if x0 < b.minX {
		b.minX = x0
	}
	if y0 < b.minY {
		b.minY = y0
	}
	if x1 > b.maxX {
		b.maxX = x1
	}
	if y1 > b.maxY {
		b.maxY = y1
	}
}
