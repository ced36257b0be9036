package typf

import "github.com/typf-go/typf/internal/surface"

// Format identifies a Bitmap's pixel layout (spec.md §3 Bitmap formats).
type Format = surface.Format

const (
	FormatGray8 = surface.FormatGray8
	FormatRGBA8 = surface.FormatRGBA8
	FormatBGRA8 = surface.FormatBGRA8
)

// Bitmap is an owned buffer of stride*height bytes (spec.md §3 Bitmap).
// Invariant: for alpha formats, Premultiplied tracks whether channels
// are premultiplied by alpha; conversions are explicit (see
// internal/surface.Premultiply/Unpremultiply) and lossless within
// per-channel rounding.
type Bitmap struct {
	Width, Height int
	Stride        int
	Format        Format
	Premultiplied bool
	Pix           []byte
}

func bitmapFromSurface(b *surface.Bitmap) *Bitmap {
	return &Bitmap{
		Width:         b.Width,
		Height:        b.Height,
		Stride:        b.Stride,
		Format:        b.Format,
		Premultiplied: b.Premultiplied,
		Pix:           b.Pix,
	}
}

func (b *Bitmap) toSurface() *surface.Bitmap {
	return &surface.Bitmap{
		Width:         b.Width,
		Height:        b.Height,
		Stride:        b.Stride,
		Format:        b.Format,
		Premultiplied: b.Premultiplied,
		Pix:           b.Pix,
	}
}

// PathCommand re-exports the vector path command shape emitted by the
// render pipeline (spec.md §6 "ordered list of path commands").
type PathCommand = surface.PathCommand

const (
	MoveTo  = surface.MoveTo
	LineTo  = surface.LineTo
	QuadTo  = surface.QuadTo
	CubicTo = surface.CubicTo
	Close   = surface.Close
)

type outputTag int

const (
	outputBitmap outputTag = iota
	outputPNG
	outputVector
)

// RenderOutput is a tagged union over the three output shapes a render
// call can produce (spec.md §3 RenderOutput): Bitmap, Png(bytes), or
// Vector(path-commands). The consumer selects via RenderOptions.Format;
// the accessor matching the selected format returns ok == true.
type RenderOutput struct {
	tag    outputTag
	bitmap *Bitmap
	png    []byte
	vector []PathCommand
}

func newBitmapOutput(b *Bitmap) RenderOutput   { return RenderOutput{tag: outputBitmap, bitmap: b} }
func newPNGOutput(data []byte) RenderOutput    { return RenderOutput{tag: outputPNG, png: data} }
func newVectorOutput(cmds []PathCommand) RenderOutput {
	return RenderOutput{tag: outputVector, vector: cmds}
}

// Bitmap returns the raw bitmap, if this output was produced in Raw
// format.
func (r RenderOutput) Bitmap() (*Bitmap, bool) {
	return r.bitmap, r.tag == outputBitmap
}

// PNG returns encoded PNG bytes, if this output was produced in Png
// format.
func (r RenderOutput) PNG() ([]byte, bool) {
	return r.png, r.tag == outputPNG
}

// Vector returns the path command list, if this output was produced in
// Vector format.
func (r RenderOutput) Vector() ([]PathCommand, bool) {
	return r.vector, r.tag == outputVector
}
