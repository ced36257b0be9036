package typf

import "testing"

func TestNewShapeCacheIsEmpty(t *testing.T) {
	c := newShapeCache()
	if c.Len() != 0 {
		t.Errorf("new ShapeCache should start empty, Len() = %d", c.Len())
	}
}

func TestNewGlyphCacheIsEmpty(t *testing.T) {
	c := newGlyphCache()
	if c.Len() != 0 {
		t.Errorf("new GlyphCache should start empty, Len() = %d", c.Len())
	}
}

func TestShapeCacheKeyDistinguishesDirection(t *testing.T) {
	font := NewFontFromFamily("Noto Sans", 16, 400, StyleUpright)
	base := ShapeCacheKey{Font: font.CacheKey(), Text: "hi", Script: "Latn", Language: "en", Direction: LTR}
	other := base
	other.Direction = RTL

	if base == other {
		t.Error("ShapeCacheKey must differ when Direction differs")
	}
}

func TestGlyphCacheKeyDistinguishesAntialiasMode(t *testing.T) {
	font := NewFontFromFamily("Noto Sans", 16, 400, StyleUpright)
	base := GlyphCacheKey{Font: font.CacheKey(), GlyphID: 7, SizePx: 16, AA: AntialiasNone}
	other := base
	other.AA = AntialiasGrayscale

	if base == other {
		t.Error("GlyphCacheKey must differ when AA mode differs")
	}
}
