package typf

import (
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/typf-go/typf/internal/surface"
)

// glyphOutlineSegments extracts a glyph's outline in font units, scaled
// to output pixels, as the OutlineSegment stream internal/surface's
// curve flattening and vector emission both consume (spec.md §4.7
// "shared code" requirement). scaleY is conventionally negative: font
// design space is Y-up, output pixel space is Y-down. Grounded on the
// GlyphData/GlyphOutline type-assertion pattern shared by every go-text
// consumer studied in the pack (cogentcore's rasterx glyph cache,
// go-skia-support's Typeface.GetGlyphPath). A glyph with no outline
// (space, bitmap-only glyph) yields a nil slice, not an error — the
// caller treats it as an empty contour set.
func glyphOutlineSegments(face gofont.Face, gid gofont.GID, scaleX, scaleY float64) []surface.OutlineSegment {
	data := face.GlyphData(gid)
	outline, ok := data.(gofont.GlyphOutline)
	if !ok {
		return nil
	}

	segs := make([]surface.OutlineSegment, 0, len(outline.Segments))
	for _, s := range outline.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			segs = append(segs, surface.OutlineSegment{
				Kind: surface.MoveTo,
				X:    float64(s.Args[0].X) * scaleX,
				Y:    float64(s.Args[0].Y) * scaleY,
			})
		case opentype.SegmentOpLineTo:
			segs = append(segs, surface.OutlineSegment{
				Kind: surface.LineTo,
				X:    float64(s.Args[0].X) * scaleX,
				Y:    float64(s.Args[0].Y) * scaleY,
			})
		case opentype.SegmentOpQuadTo:
			segs = append(segs, surface.OutlineSegment{
				Kind: surface.QuadTo,
				CX1:  float64(s.Args[0].X) * scaleX,
				CY1:  float64(s.Args[0].Y) * scaleY,
				X:    float64(s.Args[1].X) * scaleX,
				Y:    float64(s.Args[1].Y) * scaleY,
			})
		case opentype.SegmentOpCubeTo:
			segs = append(segs, surface.OutlineSegment{
				Kind: surface.CubicTo,
				CX1:  float64(s.Args[0].X) * scaleX,
				CY1:  float64(s.Args[0].Y) * scaleY,
				CX2:  float64(s.Args[1].X) * scaleX,
				CY2:  float64(s.Args[1].Y) * scaleY,
				X:    float64(s.Args[2].X) * scaleX,
				Y:    float64(s.Args[2].Y) * scaleY,
			})
		}
	}
	return segs
}
