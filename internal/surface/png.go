package surface

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// EncodePNG serializes a Bitmap as a standard 8-bit PNG (spec.md §3
// RenderOutput.Png, §4.8 "standard DEFLATE-based PNG encoding"),
// Grayscale or RGBA depending on the bitmap's format, grounded on the
// teacher's images.go SaveToPNG (image/png, the teacher's own choice of
// encoder — see DESIGN.md for why no third-party PNG codec is used).
func EncodePNG(b *Bitmap) ([]byte, error) {
	img, err := toStandardImage(b)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("surface: png encode: %w", err)
	}
	return buf.Bytes(), nil
}

// toStandardImage converts a Bitmap to a standard library image.Image.
// RGBA8/BGRA8 are converted to image.NRGBA (non-premultiplied), which
// is what PNG's alpha channel semantics expect; a premultiplied source
// is unpremultiplied first, on a throwaway copy so the caller's bitmap
// is untouched.
func toStandardImage(b *Bitmap) (image.Image, error) {
	switch b.Format {
	case FormatGray8:
		img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
		for y := 0; y < b.Height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+b.Width], b.Row(y))
		}
		return img, nil

	case FormatRGBA8, FormatBGRA8:
		src := b
		if b.Format == FormatBGRA8 {
			src = b.Clone()
			if err := SwapRGBABGR(src); err != nil {
				return nil, err
			}
		}
		if src.Premultiplied {
			straight := src.Clone()
			if err := Unpremultiply(straight); err != nil {
				return nil, err
			}
			src = straight
		}
		img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
		for y := 0; y < b.Height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+b.Width*4], src.Row(y))
		}
		return img, nil

	default:
		return nil, fmt.Errorf("surface: unsupported format %s for PNG encoding", b.Format)
	}
}

// DecodePNG parses PNG bytes into a straight-alpha Bitmap, Gray8 for
// grayscale sources and RGBA8 otherwise (spec.md §8 property:
// PNG(decode(PNG(encode(B)))) == B for 8-bit RGBA B).
func DecodePNG(data []byte) (*Bitmap, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("surface: png decode: %w", err)
	}

	if gray, ok := img.(*image.Gray); ok {
		bounds := gray.Bounds()
		out := NewBitmap(bounds.Dx(), bounds.Dy(), FormatGray8)
		for y := 0; y < out.Height; y++ {
			srcRow := (y) * gray.Stride
			copy(out.Row(y), gray.Pix[srcRow:srcRow+out.Width])
		}
		return out, nil
	}

	bounds := img.Bounds()
	nrgba := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			nrgba.Set(x, y, img.At(x, y))
		}
	}
	out := NewBitmap(bounds.Dx(), bounds.Dy(), FormatRGBA8)
	for y := 0; y < out.Height; y++ {
		srcRow := y * nrgba.Stride
		copy(out.Row(y), nrgba.Pix[srcRow:srcRow+out.Width*4])
	}
	return out, nil
}
