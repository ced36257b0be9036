package surface

import (
	"testing"

	"github.com/typf-go/typf/internal/color"
)

func TestSwapRGBABGRRoundTrip(t *testing.T) {
	b := NewBitmap(2, 1, FormatRGBA8)
	copy(b.Pix, []byte{10, 20, 30, 255, 40, 50, 60, 128})
	orig := append([]byte(nil), b.Pix...)

	if err := SwapRGBABGR(b); err != nil {
		t.Fatalf("SwapRGBABGR: %v", err)
	}
	if b.Format != FormatBGRA8 {
		t.Errorf("format after swap = %s, want BGRA8", b.Format)
	}
	if err := SwapRGBABGR(b); err != nil {
		t.Fatalf("SwapRGBABGR (second): %v", err)
	}
	if b.Format != FormatRGBA8 {
		t.Errorf("format after second swap = %s, want RGBA8", b.Format)
	}
	for i := range orig {
		if b.Pix[i] != orig[i] {
			t.Fatalf("byte %d: got %d, want %d (round trip should be exact)", i, b.Pix[i], orig[i])
		}
	}
}

func TestSwapRGBABGRRejectsGray8(t *testing.T) {
	b := NewBitmap(1, 1, FormatGray8)
	if err := SwapRGBABGR(b); err == nil {
		t.Error("expected error swapping channels on a Gray8 bitmap")
	}
}

func TestPremultiplyUnpremultiplyRoundTrip(t *testing.T) {
	b := NewBitmap(1, 1, FormatRGBA8)
	copy(b.Pix, []byte{200, 100, 50, 128})
	orig := append([]byte(nil), b.Pix...)

	if err := Premultiply(b); err != nil {
		t.Fatalf("Premultiply: %v", err)
	}
	if !b.Premultiplied {
		t.Error("Premultiplied flag not set")
	}
	if err := Unpremultiply(b); err != nil {
		t.Fatalf("Unpremultiply: %v", err)
	}
	if b.Premultiplied {
		t.Error("Premultiplied flag not cleared")
	}
	for i := range orig {
		diff := int(b.Pix[i]) - int(orig[i])
		if diff < -1 || diff > 1 {
			t.Errorf("byte %d: got %d, want %d (diff %d, spec allows < 1 rounding)", i, b.Pix[i], orig[i], diff)
		}
	}
}

func TestPremultiplyAgreesAcrossChannelOrders(t *testing.T) {
	// Same logical color (R=200 G=100 B=50 A=128) laid out in both
	// formats; decoding through internal/order's index tables must
	// recover matching logical channels regardless of byte order.
	rgba := NewBitmap(1, 1, FormatRGBA8)
	copy(rgba.Pix, []byte{200, 100, 50, 128})
	bgra := NewBitmap(1, 1, FormatBGRA8)
	copy(bgra.Pix, []byte{50, 100, 200, 128}) // B, G, R, A

	if err := Premultiply(rgba); err != nil {
		t.Fatalf("Premultiply(rgba): %v", err)
	}
	if err := Premultiply(bgra); err != nil {
		t.Fatalf("Premultiply(bgra): %v", err)
	}
	if rgba.Pix[0] != bgra.Pix[2] || rgba.Pix[1] != bgra.Pix[1] || rgba.Pix[2] != bgra.Pix[0] || rgba.Pix[3] != bgra.Pix[3] {
		t.Errorf("premultiplied logical colors disagree: rgba=%v bgra=%v", rgba.Pix, bgra.Pix)
	}
}

func TestPremultiplyIsIdempotent(t *testing.T) {
	b := NewBitmap(1, 1, FormatRGBA8)
	copy(b.Pix, []byte{200, 100, 50, 128})
	Premultiply(b)
	after := append([]byte(nil), b.Pix...)
	Premultiply(b)
	for i := range after {
		if b.Pix[i] != after[i] {
			t.Errorf("second Premultiply changed byte %d: %d -> %d", i, after[i], b.Pix[i])
		}
	}
}

func TestExpandGrayscale(t *testing.T) {
	g := NewBitmap(2, 1, FormatGray8)
	g.Pix[0] = 255
	g.Pix[1] = 0

	fg := color.RGBA8[rgbaCS]{R: 10, G: 20, B: 30, A: 255}
	out, err := ExpandGrayscale(g, fg)
	if err != nil {
		t.Fatalf("ExpandGrayscale: %v", err)
	}
	if out.Format != FormatRGBA8 {
		t.Fatalf("format = %s, want RGBA8", out.Format)
	}
	row := out.Row(0)
	if row[0] != 10 || row[1] != 20 || row[2] != 30 || row[3] != 255 {
		t.Errorf("fully-covered pixel = %v, want [10 20 30 255]", row[0:4])
	}
	if row[7] != 0 {
		t.Errorf("zero-coverage pixel alpha = %d, want 0", row[7])
	}
}

func TestExpandGrayscaleRejectsRGBA(t *testing.T) {
	b := NewBitmap(1, 1, FormatRGBA8)
	if _, err := ExpandGrayscale(b, color.RGBA8[rgbaCS]{}); err == nil {
		t.Error("expected error expanding an already-RGBA8 bitmap")
	}
}

func TestCompositeOverBackgroundFullCoverageIsForeground(t *testing.T) {
	g := NewBitmap(1, 1, FormatGray8)
	g.Pix[0] = 255

	fg := color.RGBA8[rgbaCS]{R: 10, G: 20, B: 30, A: 255}
	bg := color.RGBA8[rgbaCS]{R: 200, G: 200, B: 200, A: 255}
	out, err := CompositeOverBackground(g, fg, bg)
	if err != nil {
		t.Fatalf("CompositeOverBackground: %v", err)
	}
	row := out.Row(0)
	if row[0] != 10 || row[1] != 20 || row[2] != 30 || row[3] != 255 {
		t.Errorf("full coverage pixel = %v, want opaque foreground [10 20 30 255]", row[0:4])
	}
}

func TestCompositeOverBackgroundZeroCoverageIsBackground(t *testing.T) {
	g := NewBitmap(1, 1, FormatGray8)
	g.Pix[0] = 0

	fg := color.RGBA8[rgbaCS]{R: 10, G: 20, B: 30, A: 255}
	bg := color.RGBA8[rgbaCS]{R: 200, G: 150, B: 100, A: 255}
	out, err := CompositeOverBackground(g, fg, bg)
	if err != nil {
		t.Fatalf("CompositeOverBackground: %v", err)
	}
	row := out.Row(0)
	if row[0] != 200 || row[1] != 150 || row[2] != 100 || row[3] != 255 {
		t.Errorf("zero coverage pixel = %v, want opaque background [200 150 100 255]", row[0:4])
	}
}

func TestCompositeOverBackgroundTransparentBackgroundKeepsForegroundAlpha(t *testing.T) {
	g := NewBitmap(1, 1, FormatGray8)
	g.Pix[0] = 128

	fg := color.RGBA8[rgbaCS]{R: 255, G: 255, B: 255, A: 255}
	bg := color.RGBA8[rgbaCS]{} // fully transparent
	out, err := CompositeOverBackground(g, fg, bg)
	if err != nil {
		t.Fatalf("CompositeOverBackground: %v", err)
	}
	row := out.Row(0)
	if row[3] != 128 {
		t.Errorf("alpha over a transparent background = %d, want ~128 (source coverage)", row[3])
	}
}

func TestCompositeOverBackgroundRejectsRGBA(t *testing.T) {
	b := NewBitmap(1, 1, FormatRGBA8)
	if _, err := CompositeOverBackground(b, color.RGBA8[rgbaCS]{}, color.RGBA8[rgbaCS]{}); err == nil {
		t.Error("expected error compositing an already-RGBA8 bitmap")
	}
}
