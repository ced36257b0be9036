package surface

import (
	"golang.org/x/image/math/fixed"

	"github.com/typf-go/typf/internal/curves"
	"github.com/typf-go/typf/internal/orge"
	"github.com/typf-go/typf/internal/transform"
)

// CommandKind tags a PathCommand's meaning (spec.md §6 Vector output).
type CommandKind int

const (
	MoveTo CommandKind = iota
	LineTo
	QuadTo
	CubicTo
	Close
)

// PathCommand is one step of a glyph outline in output pixel space,
// baseline-relative (spec.md §6: "ordered list of path commands
// {MoveTo(x,y), LineTo(x,y), QuadTo(cx,cy,x,y), CubicTo(c1x,c1y,c2x,c2y,x,y),
// Close}"). Unused coordinate fields are zero depending on Kind.
type PathCommand struct {
	Kind     CommandKind
	X, Y     float64
	CX1, CY1 float64 // QuadTo control point, or CubicTo's first control point
	CX2, CY2 float64 // CubicTo's second control point
}

// OutlineSegment is a single contour command as read directly off a
// font's glyph outline (font-unit space, curves not yet flattened).
// This is the shared input the rasterizer (via internal/curves
// flattening) and the vector path emitter (here, passthrough) both
// consume, satisfying spec.md §4.7's "shared code" requirement without
// forcing the vector path to flatten curves it doesn't need to.
type OutlineSegment struct {
	Kind     CommandKind
	X, Y     float64
	CX1, CY1 float64
	CX2, CY2 float64
}

// EmitPath converts a glyph's raw outline segments to output-space
// PathCommands by applying the per-glyph affine transform to every
// coordinate in each segment (spec.md §6 "plus a per-glyph transform").
// Curve segments are passed through untouched: the vector backend's
// consumer is expected to handle Bezier commands directly, so no
// flattening happens here (flattening is internal/curves' other
// consumer, FlattenSegments below).
func EmitPath(segments []OutlineSegment, glyphTransform *transform.TransAffine) []PathCommand {
	out := make([]PathCommand, len(segments))
	for i, s := range segments {
		cmd := PathCommand{Kind: s.Kind}
		switch s.Kind {
		case MoveTo, LineTo:
			cmd.X, cmd.Y = s.X, s.Y
			glyphTransform.Transform(&cmd.X, &cmd.Y)
		case QuadTo:
			cmd.CX1, cmd.CY1 = s.CX1, s.CY1
			cmd.X, cmd.Y = s.X, s.Y
			glyphTransform.Transform(&cmd.CX1, &cmd.CY1)
			glyphTransform.Transform(&cmd.X, &cmd.Y)
		case CubicTo:
			cmd.CX1, cmd.CY1 = s.CX1, s.CY1
			cmd.CX2, cmd.CY2 = s.CX2, s.CY2
			cmd.X, cmd.Y = s.X, s.Y
			glyphTransform.Transform(&cmd.CX1, &cmd.CY1)
			glyphTransform.Transform(&cmd.CX2, &cmd.CY2)
			glyphTransform.Transform(&cmd.X, &cmd.Y)
		case Close:
			// no coordinates
		}
		out[i] = cmd
	}
	return out
}

// FlattenSegments converts raw outline segments into polygon contours
// ready for orge.Rasterize, reusing internal/curves'
// FlattenQuadratic/FlattenCubic for the Bezier subdivision — the same
// flattening code EmitPath's consumer would use if it chose to
// rasterize instead of emit vector commands (spec.md §4.7's "shared
// code" requirement). Each MoveTo starts a new contour; an explicit
// Close ends one early, otherwise a contour runs until the next MoveTo
// or the end of the segment list (orge implicitly closes the last
// point back to the first).
func FlattenSegments(segments []OutlineSegment, glyphTransform *transform.TransAffine, tolerance float64) []orge.Contour {
	var contours []orge.Contour
	var current orge.Contour
	var cur fixed.Point26_6

	flush := func() {
		if len(current) > 0 {
			contours = append(contours, current)
			current = nil
		}
	}
	toFixedPoint := func(x, y float64) fixed.Point26_6 {
		glyphTransform.Transform(&x, &y)
		return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	}

	for _, s := range segments {
		switch s.Kind {
		case MoveTo:
			flush()
			cur = toFixedPoint(s.X, s.Y)
			current = append(current, cur)
		case LineTo:
			cur = toFixedPoint(s.X, s.Y)
			current = append(current, cur)
		case QuadTo:
			c1 := toFixedPoint(s.CX1, s.CY1)
			end := toFixedPoint(s.X, s.Y)
			pts := curves.FlattenQuadratic(cur, c1, end, tolerance)
			current = append(current, pts[1:]...)
			cur = end
		case CubicTo:
			c1 := toFixedPoint(s.CX1, s.CY1)
			c2 := toFixedPoint(s.CX2, s.CY2)
			end := toFixedPoint(s.X, s.Y)
			pts := curves.FlattenCubic(cur, c1, c2, end, tolerance)
			current = append(current, pts[1:]...)
			cur = end
		case Close:
			flush()
		}
	}
	flush()
	return contours
}
