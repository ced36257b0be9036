// Package color provides the 8-bit color and coverage types used by the
// surface conversion and rasterizer layers.
//
// This is a trimmed, adapted descendant of the teacher's generic
// multi-depth color package (github.com/typf-go/typf/internal/color): typf only ever
// produces Grayscale-8 coverage masks and RGBA-8 output (spec.md §3
// Bitmap formats), so the 16-bit/32-bit and RGB (alpha-less) variants
// the teacher carries for general 2D drawing are dropped. The
// colorspace type parameter and premultiply/lerp fixed-point math are
// kept in the teacher's own shape.
package color

// ColorSpace is a zero-cost compile-time marker, preventing arbitrary
// types from being used as the CS type parameter.
type ColorSpace interface {
	isColorSpace()
}

type Linear struct{}

func (Linear) isColorSpace() {}

type SRGB struct{}

func (SRGB) isColorSpace() {}
