package shape

import "testing"

func TestBoundsAddFirstCallSeeds(t *testing.T) {
	var b bounds
	b.add(1, 2, 3, 4)
	if b.minX != 1 || b.minY != 2 || b.maxX != 3 || b.maxY != 4 {
		t.Errorf("bounds = %+v, want {1 2 3 4}", b)
	}
}

func TestBoundsAddUnion(t *testing.T) {
	var b bounds
	b.add(0, 0, 5, 5)
	b.add(-2, 1, 3, 10)
	if b.minX != -2 {
		t.Errorf("minX = %v, want -2", b.minX)
	}
	if b.minY != 0 {
		t.Errorf("minY = %v, want 0", b.minY)
	}
	if b.maxX != 5 {
		t.Errorf("maxX = %v, want 5", b.maxX)
	}
	if b.maxY != 10 {
		t.Errorf("maxY = %v, want 10", b.maxY)
	}
}

func TestErrFontMissingMessage(t *testing.T) {
	err := ErrFontMissing{}
	if err.Error() == "" {
		t.Error("ErrFontMissing should have a non-empty message")
	}
}

func TestShapingFailedErrorIncludesDetail(t *testing.T) {
	err := &ShapingFailedError{Detail: "harfbuzz choked"}
	if got := err.Error(); got == "" || got == "shape: shaping failed: " {
		t.Errorf("Error() = %q, want it to include the detail", got)
	}
}
