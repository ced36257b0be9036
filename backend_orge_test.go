package typf

import (
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/typf-go/typf/internal/orge"
	"github.com/typf-go/typf/internal/surface"
)

func pt(x, y int) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
}

func TestContourBoundsUnionsAllPoints(t *testing.T) {
	contours := []orge.Contour{
		{pt(1, 2), pt(5, 2), pt(5, 8)},
		{pt(-3, 0), pt(10, 10)},
	}
	min, max := contourBounds(contours)
	if min.X != fixed.I(-3) || min.Y != fixed.I(0) {
		t.Errorf("min = %v, want (-3, 0)", min)
	}
	if max.X != fixed.I(10) || max.Y != fixed.I(10) {
		t.Errorf("max = %v, want (10, 10)", max)
	}
}

func TestContourBoundsEmptyInput(t *testing.T) {
	min, max := contourBounds(nil)
	if min != (fixed.Point26_6{}) || max != (fixed.Point26_6{}) {
		t.Errorf("expected zero bounds for empty input, got min=%v max=%v", min, max)
	}
}

func TestTranslateContoursShiftsEveryPoint(t *testing.T) {
	contours := []orge.Contour{{pt(1, 1), pt(2, 2)}}
	dx, dy := fixed.I(3), fixed.I(-1)
	out := translateContours(contours, dx, dy)

	if out[0][0] != pt(4, 0) || out[0][1] != pt(5, 1) {
		t.Errorf("translateContours produced %v, want shifted points", out)
	}
	// original must be untouched
	if contours[0][0] != pt(1, 1) {
		t.Error("translateContours must not mutate its input")
	}
}

func TestCompositeMaxKeepsBrighterPixel(t *testing.T) {
	dst := surface.NewBitmap(4, 4, surface.FormatGray8)
	dst.Row(1)[1] = 100

	src := surface.NewBitmap(2, 2, surface.FormatGray8)
	src.Row(0)[0] = 50  // dimmer than the existing pixel at (1,1)
	src.Row(0)[1] = 200 // brighter than the pixel at (2,1)

	compositeMax(dst, src, 1, 1)

	if dst.Row(1)[1] != 100 {
		t.Errorf("dst(1,1) = %d, want 100 (existing brighter pixel kept)", dst.Row(1)[1])
	}
	if dst.Row(1)[2] != 200 {
		t.Errorf("dst(2,1) = %d, want 200 (new brighter pixel written)", dst.Row(1)[2])
	}
}

func TestCompositeMaxClipsOutOfBounds(t *testing.T) {
	dst := surface.NewBitmap(2, 2, surface.FormatGray8)
	src := surface.NewBitmap(2, 2, surface.FormatGray8)
	src.Row(0)[0] = 255
	src.Row(1)[1] = 255

	// Should not panic even though src partially falls outside dst.
	compositeMax(dst, src, 1, 1)
	if dst.Row(1)[1] != 255 {
		t.Errorf("in-bounds corner should still composite, got %d", dst.Row(1)[1])
	}
}
