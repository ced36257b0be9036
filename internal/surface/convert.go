package surface

import (
	"fmt"

	"github.com/typf-go/typf/internal/color"
	"github.com/typf-go/typf/internal/order"
)

// rgbaCS is the colorspace tag used for all surface-level pixel math.
// typf's output bitmaps are always 8-bit sRGB display pixels, so a
// single concrete instantiation of the generic color types suffices.
type rgbaCS = color.SRGB

// orderFor reports the channel index table for a Bitmap's alpha
// format (spec.md §4.8), so channel math reads positions from
// internal/order instead of assuming a literal byte layout.
func orderFor(f Format) order.RGBAOrder {
	switch f {
	case FormatRGBA8:
		return order.RGBA{}
	case FormatBGRA8:
		return order.BGRA{}
	default:
		panic("surface: orderFor called with non-alpha format " + f.String())
	}
}

// SwapRGBABGR swaps the R and B channels of every pixel in place,
// converting RGBA8<->BGRA8 (spec.md §4.8 "swaps the first and third
// color bytes"). Both formats are symmetric under the same swap.
func SwapRGBABGR(b *Bitmap) error {
	if b.Format != FormatRGBA8 && b.Format != FormatBGRA8 {
		return fmt.Errorf("surface: SwapRGBABGR requires RGBA8 or BGRA8, got %s", b.Format)
	}
	ord := orderFor(b.Format)
	ir, ib := ord.IdxR(), ord.IdxB()
	for y := 0; y < b.Height; y++ {
		row := b.Row(y)
		for x := 0; x+3 < len(row); x += 4 {
			row[x+ir], row[x+ib] = row[x+ib], row[x+ir]
		}
	}
	if b.Format == FormatRGBA8 {
		b.Format = FormatBGRA8
	} else {
		b.Format = FormatRGBA8
	}
	return nil
}

// Premultiply converts every pixel from straight to premultiplied
// alpha in place (spec.md §4.8). No-op if already premultiplied.
func Premultiply(b *Bitmap) error {
	if b.Format != FormatRGBA8 && b.Format != FormatBGRA8 {
		return fmt.Errorf("surface: Premultiply requires RGBA8 or BGRA8, got %s", b.Format)
	}
	if b.Premultiplied {
		return nil
	}
	forEachPixel(b, func(c *color.RGBA8[rgbaCS]) { c.Premultiply() })
	b.Premultiplied = true
	return nil
}

// Unpremultiply converts every pixel from premultiplied back to
// straight alpha in place (spec.md §8 property 6: round-trip exact up
// to < 1/channel rounding). No-op if already straight.
func Unpremultiply(b *Bitmap) error {
	if b.Format != FormatRGBA8 && b.Format != FormatBGRA8 {
		return fmt.Errorf("surface: Unpremultiply requires RGBA8 or BGRA8, got %s", b.Format)
	}
	if !b.Premultiplied {
		return nil
	}
	forEachPixel(b, func(c *color.RGBA8[rgbaCS]) { c.Unpremultiply() })
	b.Premultiplied = false
	return nil
}

// forEachPixel decodes each pixel into an RGBA8 using b.Format's
// channel order, lets fn mutate it, and re-encodes it in place. Using
// internal/order's index tables rather than a literal byte layout
// matters here: BGRA8's R/B positions are swapped relative to RGBA8,
// so premultiply/unpremultiply on a BGRA8 bitmap would scale the wrong
// channels without it.
func forEachPixel(b *Bitmap, fn func(*color.RGBA8[rgbaCS])) {
	ord := orderFor(b.Format)
	ir, ig, ib, ia := ord.IdxR(), ord.IdxG(), ord.IdxB(), ord.IdxA()
	for y := 0; y < b.Height; y++ {
		row := b.Row(y)
		for x := 0; x+3 < len(row); x += 4 {
			c := color.RGBA8[rgbaCS]{R: row[x+ir], G: row[x+ig], B: row[x+ib], A: row[x+ia]}
			fn(&c)
			row[x+ir], row[x+ig], row[x+ib], row[x+ia] = c.R, c.G, c.B, c.A
		}
	}
}

// ExpandGrayscale converts a Grayscale-8 coverage bitmap to an RGBA8
// bitmap, expanding each coverage byte through the alpha channel with
// the caller-supplied foreground color (spec.md §4.8). The result is
// always straight alpha.
func ExpandGrayscale(b *Bitmap, fg color.RGBA8[rgbaCS]) (*Bitmap, error) {
	if b.Format != FormatGray8 {
		return nil, fmt.Errorf("surface: ExpandGrayscale requires Gray8, got %s", b.Format)
	}
	out := NewBitmap(b.Width, b.Height, FormatRGBA8)
	for y := 0; y < b.Height; y++ {
		srcRow := b.Row(y)
		dstRow := out.Row(y)
		for x := 0; x < b.Width; x++ {
			g := color.Gray8[rgbaCS]{V: srcRow[x], A: 255}
			px := g.ToRGBA8(fg)
			dstRow[x*4], dstRow[x*4+1], dstRow[x*4+2], dstRow[x*4+3] = px.R, px.G, px.B, px.A
		}
	}
	return out, nil
}

// CompositeOverBackground expands a Gray8 coverage mask through fg, then
// composites the result over a solid bg using the standard Porter-Duff
// "over" operator, computed in premultiplied space via
// RGBA8.Premultiply/Unpremultiply (spec.md §4.8's premultiply contract;
// §3 RenderOptions "background: RGBA color or transparent"). The result
// is always straight alpha.
func CompositeOverBackground(b *Bitmap, fg, bg color.RGBA8[rgbaCS]) (*Bitmap, error) {
	if b.Format != FormatGray8 {
		return nil, fmt.Errorf("surface: CompositeOverBackground requires Gray8, got %s", b.Format)
	}
	out := NewBitmap(b.Width, b.Height, FormatRGBA8)
	bgPremul := bg
	bgPremul.Premultiply()
	for y := 0; y < b.Height; y++ {
		srcRow := b.Row(y)
		dstRow := out.Row(y)
		for x := 0; x < b.Width; x++ {
			g := color.Gray8[rgbaCS]{V: srcRow[x], A: 255}
			src := g.ToRGBA8(fg)
			srcPremul := src
			srcPremul.Premultiply()

			inv := 255 - srcPremul.A
			outPremul := color.RGBA8[rgbaCS]{
				R: srcPremul.R + color.Multiply8(bgPremul.R, inv),
				G: srcPremul.G + color.Multiply8(bgPremul.G, inv),
				B: srcPremul.B + color.Multiply8(bgPremul.B, inv),
				A: srcPremul.A + color.Multiply8(bgPremul.A, inv),
			}
			outPremul.Unpremultiply()
			dstRow[x*4], dstRow[x*4+1], dstRow[x*4+2], dstRow[x*4+3] =
				outPremul.R, outPremul.G, outPremul.B, outPremul.A
		}
	}
	return out, nil
}
