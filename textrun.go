package typf

import (
	"github.com/go-text/typesetting/language"

	"github.com/typf-go/typf/internal/fontdb"
	"github.com/typf-go/typf/internal/segment"
	"github.com/typf-go/typf/internal/shape"
)

// Direction is LTR or RTL (spec.md §3 TextRun.direction).
type Direction = segment.Direction

const (
	LTR = segment.LTR
	RTL = segment.RTL
)

// TextRun is a contiguous slice of the input carrying one direction,
// one script, one language, and (once resolved by the pipeline) a font
// (spec.md §3 TextRun). Invariant: the runs of a segmentation partition
// the input's byte range without overlap, and reproduce it in logical
// order when concatenated — enforced by internal/segment.Segment, not
// re-checked here.
type TextRun struct {
	Text      string
	ByteStart int
	ByteEnd   int
	Script    string // ISO 15924, e.g. "Latn"
	Language  string // BCP 47, e.g. "en-US"
	Direction Direction
	Font      *Font // nil until the pipeline resolves one for this run

	// rawScript is the language.Script value the segmenter resolved,
	// kept alongside the public ISO 15924 Script tag so the shaper
	// (backend_orge.go) can hand it straight to shaping.Input without
	// re-parsing the tag string back into a language.Script.
	rawScript language.Script
}

func textRunFromSegment(r segment.Run) TextRun {
	return TextRun{
		Text:      r.Text,
		ByteStart: r.ByteStart,
		ByteEnd:   r.ByteEnd,
		Script:    segment.ScriptTag(r.Script),
		Language:  r.Language,
		Direction: r.Direction,
		rawScript: r.Script,
	}
}

// Glyph is a positioned glyph in output coordinates (spec.md §3 Glyph).
// Invariants (upheld by every Shaper implementation, not re-checked
// here): Advance is non-negative; Cluster is non-decreasing across the
// glyph stream for an LTR run and non-increasing for an RTL run.
type Glyph struct {
	GlyphID uint32
	Cluster int
	X, Y    float64
	Advance float64
}

func glyphFromShape(g shape.Glyph) Glyph {
	return Glyph{GlyphID: g.GlyphID, Cluster: g.Cluster, X: g.X, Y: g.Y, Advance: g.Advance}
}

// ShapingResult is the shaped form of a TextRun (spec.md §3
// ShapingResult). Invariant: the bounding box (MinX/MinY/MaxX/MaxY)
// encloses the union of every glyph's rendered extent at its position
// — upheld by the Shaper that produced it (internal/shape).
type ShapingResult struct {
	Text                   string
	Glyphs                 []Glyph
	Advance                float64
	MinX, MinY, MaxX, MaxY float64
	Font                   *Font
	Direction              Direction

	// resolvedFace is the font database face already resolved for Font
	// at Shape time, carried through so Render doesn't need to repeat
	// family/fallback resolution (backend_orge.go).
	resolvedFace *fontdb.Face
}

func shapingResultFromInternal(sr *shape.ShapingResult, font *Font, face *fontdb.Face) *ShapingResult {
	glyphs := make([]Glyph, len(sr.Glyphs))
	for i, g := range sr.Glyphs {
		glyphs[i] = glyphFromShape(g)
	}
	return &ShapingResult{
		Text:         sr.Text,
		Glyphs:       glyphs,
		Advance:      sr.Advance,
		MinX:         sr.MinX,
		MinY:         sr.MinY,
		MaxX:         sr.MaxX,
		MaxY:         sr.MaxY,
		Font:         font,
		Direction:    sr.Direction,
		resolvedFace: face,
	}
}
