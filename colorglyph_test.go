package typf

import "testing"

func TestDefaultColorGlyphSourceDeclinesEveryGlyph(t *testing.T) {
	layers, ok := DefaultColorGlyphSource.ColorLayers(42)
	if ok {
		t.Error("DefaultColorGlyphSource should never report color layers")
	}
	if layers != nil {
		t.Error("DefaultColorGlyphSource should return a nil layer slice")
	}
}
