package curves

import (
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/typf-go/typf/internal/basics"
)

func TestCurve3DivBasic(t *testing.T) {
	curve := NewCurve3Div()

	if curve.AngleTolerance() != 0.0 {
		t.Error("Expected default angle tolerance to be 0.0")
	}

	curve.Init(0, 0, 50, 100, 100, 0)
	curve.Rewind(0)

	x, y, cmd := curve.Vertex()
	if cmd != basics.PathCmdMoveTo {
		t.Errorf("Expected first vertex to be MoveTo, got %v", cmd)
	}
	if x != 0 || y != 0 {
		t.Errorf("Expected first vertex at (0,0), got (%f,%f)", x, y)
	}

	vertexCount := 1
	var lastX, lastY float64
	for {
		x, y, cmd = curve.Vertex()
		if cmd == basics.PathCmdStop {
			break
		}
		if cmd != basics.PathCmdLineTo {
			t.Errorf("Expected LineTo command, got %v", cmd)
		}
		lastX, lastY = x, y
		vertexCount++
	}

	if vertexCount < 3 {
		t.Errorf("Expected at least 3 vertices, got %d", vertexCount)
	}
	if lastX != 100 || lastY != 0 {
		t.Errorf("Expected last vertex at (100,0), got (%f,%f)", lastX, lastY)
	}
}

func TestCurve3DivAngleTolerance(t *testing.T) {
	curve := NewCurve3Div()
	curve.SetAngleTolerance(0.1)
	if curve.AngleTolerance() != 0.1 {
		t.Error("Failed to set angle tolerance")
	}

	curve.Init(0, 0, 50, 100, 100, 0)
	curve.Rewind(0)

	vertexCount := 0
	for {
		_, _, cmd := curve.Vertex()
		if cmd == basics.PathCmdStop {
			break
		}
		vertexCount++
	}
	if vertexCount < 2 {
		t.Error("Expected vertices with angle tolerance")
	}
}

func TestCurve3DivTighterToleranceAddsPoints(t *testing.T) {
	loose := NewCurve3Div()
	loose.SetTolerance(2.0)
	loose.Init(0, 0, 50, 100, 100, 0)

	tight := NewCurve3Div()
	tight.SetTolerance(0.01)
	tight.Init(0, 0, 50, 100, 100, 0)

	if len(tight.Points()) <= len(loose.Points()) {
		t.Errorf("tighter tolerance should flatten to more points: loose=%d tight=%d",
			len(loose.Points()), len(tight.Points()))
	}
}

func TestCurve4DivBasic(t *testing.T) {
	curve := NewCurve4Div()
	curve.Init(0, 0, 33, 100, 66, 100, 100, 0)
	curve.Rewind(0)

	x, y, cmd := curve.Vertex()
	if cmd != basics.PathCmdMoveTo {
		t.Errorf("Expected first vertex to be MoveTo, got %v", cmd)
	}
	if x != 0 || y != 0 {
		t.Errorf("Expected first vertex at (0,0), got (%f,%f)", x, y)
	}

	vertexCount := 1
	var lastX, lastY float64
	for {
		x, y, cmd = curve.Vertex()
		if cmd == basics.PathCmdStop {
			break
		}
		lastX, lastY = x, y
		vertexCount++
	}
	if vertexCount < 3 {
		t.Errorf("Expected at least 3 vertices, got %d", vertexCount)
	}
	if lastX != 100 || lastY != 0 {
		t.Errorf("Expected last vertex at (100,0), got (%f,%f)", lastX, lastY)
	}
}

func TestCurve4DivCuspLimit(t *testing.T) {
	curve := NewCurve4Div()
	curve.SetCuspLimit(0.5)
	if curve.CuspLimit() == 0.0 {
		t.Error("Expected non-zero cusp limit after SetCuspLimit")
	}
	curve.SetCuspLimit(0)
	if curve.CuspLimit() != 0.0 {
		t.Error("Expected cusp limit to reset to 0")
	}
}

func TestCurve3DivCollinearCollapses(t *testing.T) {
	curve := NewCurve3Div()
	curve.Init(0, 0, 50, 0, 100, 0)

	points := curve.Points()
	if len(points) != 2 {
		t.Errorf("collinear control points should collapse to 2 points, got %d", len(points))
	}
}

func TestCurve4DivCollinearCollapses(t *testing.T) {
	curve := NewCurve4Div()
	curve.Init(0, 0, 33, 0, 66, 0, 100, 0)

	points := curve.Points()
	if len(points) != 2 {
		t.Errorf("collinear control points should collapse to 2 points, got %d", len(points))
	}
}

func TestReset(t *testing.T) {
	curve := NewCurve3Div()
	curve.Init(0, 0, 50, 100, 100, 0)
	curve.Rewind(0)
	curve.Vertex()

	curve.Reset()
	if curve.Points() == nil {
		t.Fatal("Points() should not be nil after Reset")
	}
	if len(curve.Points()) != 0 {
		t.Errorf("expected no points immediately after Reset, got %d", len(curve.Points()))
	}
}

func TestToFixed26_6(t *testing.T) {
	points := []basics.Point[float64]{{X: 1.5, Y: -2.25}}
	fx := ToFixed26_6(points)
	if len(fx) != 1 {
		t.Fatalf("expected 1 point, got %d", len(fx))
	}
	if fx[0].X != fixed.Int26_6(96) { // 1.5 * 64
		t.Errorf("X = %v, want 96", fx[0].X)
	}
	if fx[0].Y != fixed.Int26_6(-144) { // -2.25 * 64
		t.Errorf("Y = %v, want -144", fx[0].Y)
	}
}

func TestFlattenQuadratic(t *testing.T) {
	p0 := fixed.P(0, 0)
	p1 := fixed.P(50, 100)
	p2 := fixed.P(100, 0)

	pts := FlattenQuadratic(p0, p1, p2, DefaultTolerance)
	if len(pts) < 3 {
		t.Fatalf("expected at least 3 flattened points, got %d", len(pts))
	}
	if pts[0] != p0 {
		t.Errorf("first point = %v, want %v", pts[0], p0)
	}
	if pts[len(pts)-1] != p2 {
		t.Errorf("last point = %v, want %v", pts[len(pts)-1], p2)
	}
}

func TestFlattenCubic(t *testing.T) {
	p0 := fixed.P(0, 0)
	p1 := fixed.P(33, 100)
	p2 := fixed.P(66, 100)
	p3 := fixed.P(100, 0)

	pts := FlattenCubic(p0, p1, p2, p3, DefaultTolerance)
	if len(pts) < 3 {
		t.Fatalf("expected at least 3 flattened points, got %d", len(pts))
	}
	if pts[0] != p0 {
		t.Errorf("first point = %v, want %v", pts[0], p0)
	}
	if pts[len(pts)-1] != p3 {
		t.Errorf("last point = %v, want %v", pts[len(pts)-1], p3)
	}
}
