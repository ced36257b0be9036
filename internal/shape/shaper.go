package shape

import (
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/opentype/loader"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/typf-go/typf/internal/fontdb"
	"github.com/typf-go/typf/internal/segment"
)

// HarfbuzzShaper is the conformant shaper: it drives
// shaping.HarfbuzzShaper, which in turn implements OpenType GSUB/GPOS
// (Arabic joining, Indic reordering, ligatures, kerning) via the pack's
// pure-Go harfbuzz port. Grounded on gioui's shaperImpl.shapeText,
// adapted from gio's per-widget line shaping to typf's one-run-in,
// one-ShapingResult-out contract.
type HarfbuzzShaper struct {
	engine shaping.HarfbuzzShaper
}

func NewHarfbuzzShaper() *HarfbuzzShaper {
	return &HarfbuzzShaper{}
}

func (h *HarfbuzzShaper) Shape(run segment.Run, face *fontdb.Face, sizePx float64, features map[string]uint32) (*ShapingResult, error) {
	if face == nil {
		return nil, ErrFontMissing{}
	}
	fface := face.FontFace()
	if fface == nil {
		return nil, ErrFontMissing{}
	}

	dir := di.DirectionLTR
	if run.Direction == segment.RTL {
		dir = di.DirectionRTL
	}

	runes := []rune(run.Text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      fface,
		Size:      fixed.Int26_6(math.Round(sizePx * 64)),
		Script:    run.Script,
		Language:  language.NewLanguage(run.Language),
	}
	for tag, value := range features {
		input.FontFeatures = append(input.FontFeatures, shaping.FontFeature{
			Tag:   loader.MustNewTag(tag),
			Value: value,
		})
	}

	out, err := h.shapeSafely(input)
	if err != nil {
		return nil, &ShapingFailedError{Detail: err.Error()}
	}
	return toResult(run, out, face), nil
}

// shapeSafely guards the call to the underlying harfbuzz port: a
// shaping library error is propagated per spec rather than silently
// swallowed, including the rare malformed-font panic turning into an
// error instead of taking the caller down.
func (h *HarfbuzzShaper) shapeSafely(input shaping.Input) (out shaping.Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorFromRecover(r)
		}
	}()
	out = h.engine.Shape(input)
	return out, nil
}

func toResult(run segment.Run, out shaping.Output, face *fontdb.Face) *ShapingResult {
	glyphs := make([]Glyph, 0, len(out.Glyphs))
	var b bounds
	var x, y float64
	// ClusterIndex indexes the []rune handed to the shaper; map it back
	// to a byte offset into run.Text.
	byteOffsets := make([]int, 0, len(run.Text)+1)
	for i := range run.Text {
		byteOffsets = append(byteOffsets, i)
	}
	byteOffsets = append(byteOffsets, len(run.Text))
	for _, g := range out.Glyphs {
		xOff := fixedToFloat(g.XOffset)
		yOff := fixedToFloat(g.YOffset)
		xAdv := fixedToFloat(g.XAdvance)
		yAdv := fixedToFloat(g.YAdvance)

		gx := x + xOff
		gy := y + yOff

		glyphs = append(glyphs, Glyph{
			GlyphID: g.GlyphID,
			Cluster: byteOffsets[g.ClusterIndex],
			X:       gx,
			Y:       gy,
			Advance: xAdv,
		})

		xBearing := fixedToFloat(g.XBearing)
		yBearing := fixedToFloat(g.YBearing)
		width := fixedToFloat(g.Width)
		height := fixedToFloat(g.Height)
		b.add(gx+xBearing, gy-yBearing, gx+xBearing+width, gy-yBearing+height)

		x += xAdv
		y += yAdv
	}

	result := &ShapingResult{
		Text:      run.Text,
		Glyphs:    glyphs,
		Advance:   x,
		Font:      face,
		Direction: run.Direction,
	}
	if b.seen {
		result.MinX, result.MinY, result.MaxX, result.MaxY = b.minX, b.minY, b.maxX, b.maxY
	}
	return result
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func errorFromRecover(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &ShapingFailedError{Detail: "panic in shaping engine"}
}
