package surface

import "testing"

func TestPNGRoundTripRGBA(t *testing.T) {
	b := NewBitmap(3, 2, FormatRGBA8)
	for i := range b.Pix {
		b.Pix[i] = byte(i * 7 % 256)
	}
	// Force fully opaque alpha so straight-alpha round trip is exact
	// (PNG has no notion of premultiplied alpha to lose precision to).
	for x := 0; x < 3*2; x++ {
		b.Pix[x*4+3] = 255
	}

	encoded, err := EncodePNG(b)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	decoded, err := DecodePNG(encoded)
	if err != nil {
		t.Fatalf("DecodePNG: %v", err)
	}
	if decoded.Width != b.Width || decoded.Height != b.Height {
		t.Fatalf("decoded dims = %dx%d, want %dx%d", decoded.Width, decoded.Height, b.Width, b.Height)
	}
	if decoded.Format != FormatRGBA8 {
		t.Fatalf("decoded format = %s, want RGBA8", decoded.Format)
	}
	for y := 0; y < b.Height; y++ {
		srcRow, dstRow := b.Row(y), decoded.Row(y)
		for i := range srcRow {
			if srcRow[i] != dstRow[i] {
				t.Fatalf("row %d byte %d: got %d, want %d", y, i, dstRow[i], srcRow[i])
			}
		}
	}
}

func TestPNGRoundTripGray8(t *testing.T) {
	b := NewBitmap(4, 4, FormatGray8)
	for i := range b.Pix {
		b.Pix[i] = byte(i * 17 % 256)
	}

	encoded, err := EncodePNG(b)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	decoded, err := DecodePNG(encoded)
	if err != nil {
		t.Fatalf("DecodePNG: %v", err)
	}
	if decoded.Format != FormatGray8 {
		t.Fatalf("decoded format = %s, want Gray8", decoded.Format)
	}
	for i := range b.Pix {
		if decoded.Pix[i] != b.Pix[i] {
			t.Fatalf("byte %d: got %d, want %d", i, decoded.Pix[i], b.Pix[i])
		}
	}
}

func TestPNGEncodeUnpremultipliesFirst(t *testing.T) {
	b := NewBitmap(1, 1, FormatRGBA8)
	copy(b.Pix, []byte{200, 100, 50, 128})
	Premultiply(b)
	premultipliedBytes := append([]byte(nil), b.Pix...)

	encoded, err := EncodePNG(b)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	// EncodePNG must not mutate the caller's bitmap.
	for i := range premultipliedBytes {
		if b.Pix[i] != premultipliedBytes[i] {
			t.Fatalf("EncodePNG mutated the source bitmap at byte %d", i)
		}
	}

	decoded, err := DecodePNG(encoded)
	if err != nil {
		t.Fatalf("DecodePNG: %v", err)
	}
	// Decoded PNG is always straight alpha; it should roughly match the
	// pre-premultiply straight values, not the premultiplied ones.
	row := decoded.Row(0)
	if row[0] < 195 || row[0] > 205 {
		t.Errorf("decoded R = %d, want ~200 (straight alpha, not premultiplied ~100)", row[0])
	}
}
