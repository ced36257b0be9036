// Package orge is the pure-software scan converter: a classic
// edge-table / active-edge-list polygon fill operating on 26.6
// fixed-point coordinates, producing monochrome or grayscale coverage
// bitmaps. The architecture (separate edge table, active list, clip
// bounds) follows the teacher's internal/rasterizer package; the fill
// algorithm itself is the edge-crossing GET/AEL technique rather than
// the teacher's analytic cell-area accumulation, because that is the
// numeric contract this package is required to match exactly.
package orge

import "golang.org/x/image/math/fixed"

// Contour is a closed polygon: an implicit edge connects the last point
// back to the first. Contours are the output of curve flattening
// (internal/curves) — by the time they reach orge, all Bezier segments
// have already been reduced to line segments.
type Contour []fixed.Point26_6

// edge is one non-horizontal line segment of a flattened contour,
// normalized so Y0 < Y1 (top to bottom in output coordinates, where Y
// increases downward).
type edge struct {
	yTop, yBottom int           // integer scanline rows; active for yTop <= row < yBottom
	x             fixed.Int26_6 // current x; starts at the intercept for yTop, advances by slopePerRow each row
	slopePerRow   fixed.Int26_6 // dx per 1 full scanline row (64 fixed-point units of y)
	winding       int8          // +1 downward, -1 upward
}

// buildEdges converts a set of contours into edge records, discarding
// horizontal segments (spec.md §4.6 step 1) and clamping each edge's
// row range to [0, height).
func buildEdges(contours []Contour, height int) []edge {
	var edges []edge
	for _, c := range contours {
		n := len(c)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := c[i]
			p1 := c[(i+1)%n]
			if p0.Y == p1.Y {
				continue
			}
			if e, ok := makeEdge(p0, p1, height); ok {
				edges = append(edges, e)
			}
		}
	}
	return edges
}

// makeEdge builds the edge record for one segment, clamped to
// [0, height). ok is false if the clamped edge contributes no rows.
func makeEdge(p0, p1 fixed.Point26_6, height int) (edge, bool) {
	winding := int8(1)
	top, bot := p0, p1
	if p1.Y > p0.Y {
		winding = 1
	} else {
		winding = -1
	}
	if top.Y > bot.Y {
		top, bot = bot, top
	}

	dy := int64(bot.Y - top.Y)
	dx := int64(bot.X - top.X)
	// Spec's (Δx << 6) / Δy formula: 64 == 1<<6 fixed-point units per
	// scanline row, so this is the x advance for one full row step.
	slopePerRow := fixed.Int26_6((dx << 6) / dy)

	yTopRow := ceilDiv64(int64(top.Y), 64)
	yBottomRow := ceilDiv64(int64(bot.Y), 64)
	if yTopRow >= yBottomRow {
		return edge{}, false
	}

	xAtTop := int64(top.X) + (dx*(yTopRow*64-int64(top.Y)))/dy

	if yTopRow < 0 {
		xAtTop += slopePerRowInt(slopePerRow) * -yTopRow
		yTopRow = 0
	}
	if yBottomRow > int64(height) {
		yBottomRow = int64(height)
	}
	if yTopRow >= yBottomRow {
		return edge{}, false
	}

	return edge{
		yTop:        int(yTopRow),
		yBottom:     int(yBottomRow),
		x:           fixed.Int26_6(xAtTop),
		slopePerRow: slopePerRow,
		winding:     winding,
	}, true
}

func slopePerRowInt(s fixed.Int26_6) int64 { return int64(s) }

// ceilDiv64 returns the smallest integer r such that r*b >= a, for b > 0.
func ceilDiv64(a, b int64) int64 {
	if a >= 0 {
		return (a + b - 1) / b
	}
	return -((-a) / b)
}
