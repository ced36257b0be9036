package shape

import (
	"github.com/typf-go/typf/internal/fontdb"
	"github.com/typf-go/typf/internal/segment"
)

// NullShaper maps each code point to its font's cmap entry directly,
// using horizontal metrics for advance. It does NOT apply OpenType
// GSUB/GPOS, so Arabic joining, Indic reordering, ligatures, and
// kerning are all absent; it exists only as a diagnostic fallback, not
// a substitute for HarfbuzzShaper on real text. Grounded on the
// teacher's freetype stub pattern: a minimal, explicitly-non-conformant
// stand-in that still satisfies the Shaper contract rather than a test
// double that panics.
type NullShaper struct{}

func NewNullShaper() *NullShaper {
	return &NullShaper{}
}

func (NullShaper) Shape(run segment.Run, face *fontdb.Face, sizePx float64, _ map[string]uint32) (*ShapingResult, error) {
	if face == nil {
		return nil, ErrFontMissing{}
	}
	fface := face.FontFace()
	if fface == nil {
		return nil, ErrFontMissing{}
	}

	upem := float64(fface.Upem())
	if upem <= 0 {
		upem = 1000
	}
	scale := sizePx / upem

	glyphs := make([]Glyph, 0, len(run.Text))
	var b bounds
	var x float64
	byteOffset := 0
	for _, r := range run.Text {
		gid, ok := fface.NominalGlyph(r)
		var id uint32
		if ok {
			id = uint32(gid)
		} // unmapped code points fall through to .notdef (id 0)

		advanceUnits := float64(fface.HorizontalAdvance(gid))
		advance := advanceUnits * scale

		glyphs = append(glyphs, Glyph{
			GlyphID: id,
			Cluster: byteOffset,
			X:       x,
			Y:       0,
			Advance: advance,
		})
		b.add(x, -sizePx, x+advance, 0)

		x += advance
		byteOffset += runeLen(r)
	}

	return &ShapingResult{
		Text:      run.Text,
		Glyphs:    glyphs,
		Advance:   x,
		MinX:      b.minX,
		MinY:      b.minY,
		MaxX:      b.maxX,
		MaxY:      b.maxY,
		Font:      face,
		Direction: run.Direction,
	}, nil
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
