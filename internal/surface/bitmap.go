// Package surface implements the conversion layer between the
// rasterizer's native output, the caller-facing pixel formats, and PNG
// encoding (spec.md §4.8): BGRA<->RGBA channel swaps, premultiply /
// unpremultiply, grayscale-to-RGBA expansion, and PNG round-tripping.
// Grounded on the teacher's internal/color (premultiply math),
// internal/order (channel index tables) and internal/buffer (row/
// stride accounting), composed the way the teacher's own images.go
// composes buffer+color into a savable image.
package surface

import (
	"fmt"

	"github.com/typf-go/typf/internal/buffer"
)

// Format identifies a Bitmap's pixel layout (spec.md §3 Bitmap formats).
type Format int

const (
	FormatGray8 Format = iota
	FormatRGBA8
	FormatBGRA8
)

func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

func (f Format) bytesPerPixel() int {
	if f == FormatGray8 {
		return 1
	}
	return 4
}

// Bitmap is an owned buffer of stride*height bytes (spec.md §3 Bitmap):
// width, height, stride (bytes per row, >= width*bytesPerPixel), pixel
// format, and an explicit premultiplication flag for alpha formats.
type Bitmap struct {
	Width, Height int
	Stride        int
	Format        Format
	Premultiplied bool
	Pix           []byte
}

// NewBitmap allocates a zeroed Bitmap with the minimum valid stride.
func NewBitmap(width, height int, format Format) *Bitmap {
	stride := width * format.bytesPerPixel()
	return &Bitmap{
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
		Pix:    make([]byte, stride*height),
	}
}

// Row returns the byte slice for scanline y. Stride/bounds accounting
// is delegated to internal/buffer.RenderingBufferU8, the same
// row-accessor the teacher used for its AGG rendering buffers, rather
// than reimplementing its slicing logic here.
func (b *Bitmap) Row(y int) []byte {
	rb := buffer.NewRenderingBufferU8WithData(b.Pix, b.Width, b.Height, b.Stride)
	return rb.Row(y)
}

// Clone returns a deep copy; Bitmap exclusively owns its buffer
// (spec.md §3 Ownership), so sharing requires an explicit copy.
func (b *Bitmap) Clone() *Bitmap {
	out := &Bitmap{
		Width:         b.Width,
		Height:        b.Height,
		Stride:        b.Stride,
		Format:        b.Format,
		Premultiplied: b.Premultiplied,
		Pix:           make([]byte, len(b.Pix)),
	}
	copy(out.Pix, b.Pix)
	return out
}
