package orge

import (
	"golang.org/x/image/math/fixed"

	"github.com/typf-go/typf/internal/basics"
)

// RasterizeGrayscale renders contours at k times the requested
// resolution, scan-converts the upscaled outline to a monochrome mask,
// and downsamples it to an 8-bit coverage mask (spec.md §4.6 step 6).
// Because it always routes through Rasterize, property 5
// (rasterize(P, C, grayscale-k) == downsample(rasterize(scale(P,k),
// k*C, monochrome), k)) holds by construction rather than by
// coincidence.
func RasterizeGrayscale(contours []Contour, width, height, k int, fillRule basics.FillingRule) []byte {
	if k <= 0 {
		k = 1
	}
	scaled := scaleContours(contours, k)
	mono := Rasterize(scaled, width*k, height*k, fillRule)
	return downsample(mono, width, height, k)
}

// scaleContours multiplies every coordinate by k; fixed.Int26_6 is a
// linear fixed-point representation, so scaling the underlying integer
// scales the represented value exactly.
func scaleContours(contours []Contour, k int) []Contour {
	out := make([]Contour, len(contours))
	for i, c := range contours {
		scaled := make(Contour, len(c))
		for j, p := range c {
			scaled[j] = fixed.Point26_6{X: p.X * fixed.Int26_6(k), Y: p.Y * fixed.Int26_6(k)}
		}
		out[i] = scaled
	}
	return out
}

// downsample reduces a (k*width)x(k*height) monochrome mask to an
// 8-bit grayscale coverage mask by summing each k*k block of monochrome
// samples and scaling to [0, 255], rounding half to even (spec.md §4.6
// step 6 and numeric contract). The sum is accumulated as an integer
// and divided exactly once.
func downsample(mono []byte, width, height, k int) []byte {
	out := make([]byte, width*height)
	kWidth := width * k
	k2 := k * k
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sum := 0
			for dy := 0; dy < k; dy++ {
				rowOffset := (y*k+dy)*kWidth + x*k
				row := mono[rowOffset : rowOffset+k]
				for _, v := range row {
					sum += int(v)
				}
			}
			out[y*width+x] = roundHalfToEven(sum*255, k2)
		}
	}
	return out
}

// roundHalfToEven computes round(numerator/denominator) using banker's
// rounding, matching the numeric contract's "round-half-to-even on
// final byte coverage".
func roundHalfToEven(numerator, denominator int) byte {
	q := numerator / denominator
	r := numerator % denominator
	twice := r * 2
	switch {
	case twice > denominator:
		q++
	case twice == denominator && q%2 != 0:
		q++
	}
	if q > 255 {
		q = 255
	}
	if q < 0 {
		q = 0
	}
	return byte(q)
}
