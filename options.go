package typf

import "github.com/typf-go/typf/internal/color"

// Color is a straight-alpha sRGB color (spec.md §3 RenderOptions
// foreground/background).
type Color struct {
	R, G, B, A uint8
}

// Transparent is the zero Color: fully transparent black.
var Transparent = Color{}

func (c Color) toRGBA8() color.RGBA8[color.SRGB] {
	return color.RGBA8[color.SRGB]{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Antialias selects the rasterizer's coverage mode (spec.md §3
// RenderOptions.antialias).
type Antialias int

const (
	// AntialiasNone produces a 1-bit monochrome coverage mask.
	AntialiasNone Antialias = iota
	// AntialiasGrayscale produces an 8-bit grayscale coverage mask via
	// supersampled downsampling (spec.md §4.6 step 6).
	AntialiasGrayscale
)

// OutputFormat selects RenderOutput's active variant (spec.md §3
// RenderOptions.format).
type OutputFormat int

const (
	FormatRaw OutputFormat = iota
	FormatPNG
	FormatVector
)

// RenderOptions configures a single render call (spec.md §3
// RenderOptions). The zero value does not validate: font size 0 is
// rejected as InvalidInput. DefaultRenderOptions returns a valid
// starting point.
type RenderOptions struct {
	FontSize       float64 // positive, points; controls rasterization scale
	Antialias      Antialias
	Format         OutputFormat
	Padding        int // non-negative pixels added to the canvas on all sides
	Foreground     Color
	Background     Color
	GrayscaleLevel int // oversampling factor k in {1, 2, 4, 8}; ignored unless Antialias == AntialiasGrayscale
}

// DefaultRenderOptions returns sane defaults: 16pt, grayscale AA at the
// configured default oversample factor, raw bitmap output, opaque black
// foreground on a transparent background, no padding.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		FontSize:       16,
		Antialias:      AntialiasGrayscale,
		Format:         FormatRaw,
		Padding:        0,
		Foreground:     Color{R: 0, G: 0, B: 0, A: 255},
		Background:     Transparent,
		GrayscaleLevel: defaultGrayscaleLevel,
	}
}

const defaultGrayscaleLevel = 4

func (o RenderOptions) validate() *Error {
	if !(o.FontSize > 0) {
		return newError(InvalidInput, "RenderOptions.FontSize must be positive", nil)
	}
	if o.Padding < 0 {
		return newError(InvalidInput, "RenderOptions.Padding must be non-negative", nil)
	}
	if o.Antialias == AntialiasGrayscale {
		switch o.GrayscaleLevel {
		case 1, 2, 4, 8:
		default:
			return newError(InvalidInput, "RenderOptions.GrayscaleLevel must be one of 1, 2, 4, 8", nil)
		}
	}
	return nil
}
