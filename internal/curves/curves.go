// Package curves flattens quadratic and cubic Bezier curves into
// polylines by recursive de Casteljau subdivision, stopping each branch
// once it is within a caller-supplied distance tolerance of the true
// curve. Both the rasterizer and the vector path emitter consume the
// same flattened point stream, so there is exactly one flattening
// algorithm in the module.
package curves

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/typf-go/typf/internal/array"
	"github.com/typf-go/typf/internal/basics"
)

const (
	CurveDistanceEpsilon            = 1e-30
	CurveCollinearityEpsilon        = 1e-30
	CurveAngleToleranceEpsilon      = 0.01
	CurveRecursionLimit        uint = 32
)

// DefaultTolerance is the maximum deviation, in pixels, between a
// flattened polyline and the curve it approximates.
const DefaultTolerance = 0.25

// toleranceToScale converts a pixel tolerance into the approximationScale
// the subdivision tests below are expressed in: distanceToleranceSquare
// is (0.5/scale)^2, so scale = 0.5/tolerance makes the stopping distance
// equal to tolerance.
func toleranceToScale(tolerance float64) float64 {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return 0.5 / tolerance
}

// Curve3Div flattens a quadratic Bezier curve by recursive subdivision.
type Curve3Div struct {
	approximationScale float64
	angleTolerance     float64
	count              int
	points             *array.PodBVector[basics.Point[float64]]
}

// NewCurve3Div creates a quadratic curve flattener using the default
// tolerance.
func NewCurve3Div() *Curve3Div {
	return &Curve3Div{
		approximationScale: toleranceToScale(DefaultTolerance),
		points:             array.NewPodBVector[basics.Point[float64]](),
	}
}

// NewCurve3DivWithPoints creates and immediately flattens a quadratic
// curve using the default tolerance.
func NewCurve3DivWithPoints(x1, y1, x2, y2, x3, y3 float64) *Curve3Div {
	c := NewCurve3Div()
	c.Init(x1, y1, x2, y2, x3, y3)
	return c
}

func (c *Curve3Div) Reset() {
	c.points.RemoveAll()
	c.count = 0
}

// Init flattens the curve with the given control points, replacing any
// previously flattened points.
func (c *Curve3Div) Init(x1, y1, x2, y2, x3, y3 float64) {
	c.points.RemoveAll()
	distanceToleranceSquare := 0.5 / c.approximationScale
	distanceToleranceSquare *= distanceToleranceSquare
	c.bezier(x1, y1, x2, y2, x3, y3, distanceToleranceSquare)
	c.count = 0
}

func (c *Curve3Div) ApproximationScale() float64 { return c.approximationScale }

// SetTolerance sets the flattening tolerance directly, in pixels.
func (c *Curve3Div) SetTolerance(tolerance float64) {
	c.approximationScale = toleranceToScale(tolerance)
}

func (c *Curve3Div) SetApproximationScale(s float64) { c.approximationScale = s }

func (c *Curve3Div) AngleTolerance() float64 { return c.angleTolerance }

func (c *Curve3Div) SetAngleTolerance(a float64) { c.angleTolerance = a }

func (c *Curve3Div) Rewind(pathID uint) { c.count = 0 }

// Vertex returns the next flattened point, in order, terminated by
// basics.PathCmdStop.
func (c *Curve3Div) Vertex() (x, y float64, cmd basics.PathCommand) {
	if c.count >= c.points.Size() {
		return 0, 0, basics.PathCmdStop
	}
	p := c.points.At(c.count)
	c.count++
	if c.count == 1 {
		return p.X, p.Y, basics.PathCmdMoveTo
	}
	return p.X, p.Y, basics.PathCmdLineTo
}

// Points returns all flattened points in order, including the first and
// last control points.
func (c *Curve3Div) Points() []basics.Point[float64] {
	out := make([]basics.Point[float64], c.points.Size())
	for i := range out {
		out[i] = c.points.At(i)
	}
	return out
}

func (c *Curve3Div) bezier(x1, y1, x2, y2, x3, y3, distanceToleranceSquare float64) {
	c.points.Add(basics.Point[float64]{X: x1, Y: y1})
	c.recursiveBezier(x1, y1, x2, y2, x3, y3, 0, distanceToleranceSquare)
	c.points.Add(basics.Point[float64]{X: x3, Y: y3})
}

func (c *Curve3Div) recursiveBezier(x1, y1, x2, y2, x3, y3 float64, level uint, distanceToleranceSquare float64) {
	if level > CurveRecursionLimit {
		return
	}

	x12 := (x1 + x2) / 2
	y12 := (y1 + y2) / 2
	x23 := (x2 + x3) / 2
	y23 := (y2 + y3) / 2
	x123 := (x12 + x23) / 2
	y123 := (y12 + y23) / 2

	dx := x3 - x1
	dy := y3 - y1
	d := math.Abs((x2-x3)*dy - (y2-y3)*dx)

	if d > CurveCollinearityEpsilon {
		if d*d <= distanceToleranceSquare*(dx*dx+dy*dy) {
			if c.angleTolerance < CurveAngleToleranceEpsilon {
				c.points.Add(basics.Point[float64]{X: x123, Y: y123})
				return
			}

			da := math.Abs(math.Atan2(y3-y2, x3-x2) - math.Atan2(y2-y1, x2-x1))
			if da >= basics.Pi {
				da = 2*basics.Pi - da
			}

			if da < c.angleTolerance {
				c.points.Add(basics.Point[float64]{X: x123, Y: y123})
				return
			}
		}
	} else {
		da := dx*dx + dy*dy
		if da == 0 {
			d = basics.CalcSqDistance(x1, y1, x2, y2)
		} else {
			d = ((x2-x1)*dx + (y2-y1)*dy) / da
			if d > 0 && d < 1 {
				return
			}
			switch {
			case d <= 0:
				d = basics.CalcSqDistance(x2, y2, x1, y1)
			case d >= 1:
				d = basics.CalcSqDistance(x2, y2, x3, y3)
			default:
				d = basics.CalcSqDistance(x2, y2, x1+d*dx, y1+d*dy)
			}
		}
		if d < distanceToleranceSquare {
			c.points.Add(basics.Point[float64]{X: x2, Y: y2})
			return
		}
	}

	c.recursiveBezier(x1, y1, x12, y12, x123, y123, level+1, distanceToleranceSquare)
	c.recursiveBezier(x123, y123, x23, y23, x3, y3, level+1, distanceToleranceSquare)
}

// Curve4Div flattens a cubic Bezier curve by recursive subdivision.
type Curve4Div struct {
	approximationScale float64
	angleTolerance     float64
	cuspLimit          float64
	count              int
	points             *array.PodBVector[basics.Point[float64]]
}

// NewCurve4Div creates a cubic curve flattener using the default
// tolerance.
func NewCurve4Div() *Curve4Div {
	return &Curve4Div{
		approximationScale: toleranceToScale(DefaultTolerance),
		points:             array.NewPodBVector[basics.Point[float64]](),
	}
}

// NewCurve4DivWithPoints creates and immediately flattens a cubic curve
// using the default tolerance.
func NewCurve4DivWithPoints(x1, y1, x2, y2, x3, y3, x4, y4 float64) *Curve4Div {
	c := NewCurve4Div()
	c.Init(x1, y1, x2, y2, x3, y3, x4, y4)
	return c
}

func (c *Curve4Div) Reset() {
	c.points.RemoveAll()
	c.count = 0
}

// Init flattens the curve with the given control points, replacing any
// previously flattened points.
func (c *Curve4Div) Init(x1, y1, x2, y2, x3, y3, x4, y4 float64) {
	c.points.RemoveAll()
	distanceToleranceSquare := 0.5 / c.approximationScale
	distanceToleranceSquare *= distanceToleranceSquare
	c.bezier(x1, y1, x2, y2, x3, y3, x4, y4, distanceToleranceSquare)
	c.count = 0
}

func (c *Curve4Div) ApproximationScale() float64 { return c.approximationScale }

// SetTolerance sets the flattening tolerance directly, in pixels.
func (c *Curve4Div) SetTolerance(tolerance float64) {
	c.approximationScale = toleranceToScale(tolerance)
}

func (c *Curve4Div) SetApproximationScale(s float64) { c.approximationScale = s }

func (c *Curve4Div) AngleTolerance() float64 { return c.angleTolerance }

func (c *Curve4Div) SetAngleTolerance(a float64) { c.angleTolerance = a }

func (c *Curve4Div) CuspLimit() float64 {
	if c.cuspLimit == 0.0 {
		return 0.0
	}
	return basics.Pi - c.cuspLimit
}

func (c *Curve4Div) SetCuspLimit(v float64) {
	if v == 0.0 {
		c.cuspLimit = 0.0
	} else {
		c.cuspLimit = basics.Pi - v
	}
}

func (c *Curve4Div) Rewind(pathID uint) { c.count = 0 }

// Vertex returns the next flattened point, in order, terminated by
// basics.PathCmdStop.
func (c *Curve4Div) Vertex() (x, y float64, cmd basics.PathCommand) {
	if c.count >= c.points.Size() {
		return 0, 0, basics.PathCmdStop
	}
	p := c.points.At(c.count)
	c.count++
	if c.count == 1 {
		return p.X, p.Y, basics.PathCmdMoveTo
	}
	return p.X, p.Y, basics.PathCmdLineTo
}

// Points returns all flattened points in order, including the first and
// last control points.
func (c *Curve4Div) Points() []basics.Point[float64] {
	out := make([]basics.Point[float64], c.points.Size())
	for i := range out {
		out[i] = c.points.At(i)
	}
	return out
}

func (c *Curve4Div) bezier(x1, y1, x2, y2, x3, y3, x4, y4, distanceToleranceSquare float64) {
	c.points.Add(basics.Point[float64]{X: x1, Y: y1})
	c.recursiveBezier(x1, y1, x2, y2, x3, y3, x4, y4, 0, distanceToleranceSquare)
	c.points.Add(basics.Point[float64]{X: x4, Y: y4})
}

func (c *Curve4Div) recursiveBezier(x1, y1, x2, y2, x3, y3, x4, y4 float64, level uint, distanceToleranceSquare float64) {
	if level > CurveRecursionLimit {
		return
	}

	x12 := (x1 + x2) / 2
	y12 := (y1 + y2) / 2
	x23 := (x2 + x3) / 2
	y23 := (y2 + y3) / 2
	x34 := (x3 + x4) / 2
	y34 := (y3 + y4) / 2
	x123 := (x12 + x23) / 2
	y123 := (y12 + y23) / 2
	x234 := (x23 + x34) / 2
	y234 := (y23 + y34) / 2
	x1234 := (x123 + x234) / 2
	y1234 := (y123 + y234) / 2

	dx := x4 - x1
	dy := y4 - y1

	d2 := math.Abs((x2-x4)*dy - (y2-y4)*dx)
	d3 := math.Abs((x3-x4)*dy - (y3-y4)*dx)

	var da1, da2, k float64

	switch (func() int {
		result := 0
		if d2 > CurveCollinearityEpsilon {
			result += 1
		}
		if d3 > CurveCollinearityEpsilon {
			result += 2
		}
		return result
	})() {
	case 0:
		k = dx*dx + dy*dy
		if k == 0 {
			d2 = basics.CalcSqDistance(x1, y1, x2, y2)
			d3 = basics.CalcSqDistance(x4, y4, x3, y3)
		} else {
			k = 1 / k
			da1 = x2 - x1
			da2 = y2 - y1
			d2 = k * (da1*dx + da2*dy)
			da1 = x3 - x1
			da2 = y3 - y1
			d3 = k * (da1*dx + da2*dy)
			if d2 > 0 && d2 < 1 && d3 > 0 && d3 < 1 {
				return
			}
			switch {
			case d2 <= 0:
				d2 = basics.CalcSqDistance(x2, y2, x1, y1)
			case d2 >= 1:
				d2 = basics.CalcSqDistance(x2, y2, x4, y4)
			default:
				d2 = basics.CalcSqDistance(x2, y2, x1+d2*dx, y1+d2*dy)
			}
			switch {
			case d3 <= 0:
				d3 = basics.CalcSqDistance(x3, y3, x1, y1)
			case d3 >= 1:
				d3 = basics.CalcSqDistance(x3, y3, x4, y4)
			default:
				d3 = basics.CalcSqDistance(x3, y3, x1+d3*dx, y1+d3*dy)
			}
		}
		if d2 > d3 {
			if d2 < distanceToleranceSquare {
				c.points.Add(basics.Point[float64]{X: x2, Y: y2})
				return
			}
		} else {
			if d3 < distanceToleranceSquare {
				c.points.Add(basics.Point[float64]{X: x3, Y: y3})
				return
			}
		}

	case 1:
		if d3*d3 <= distanceToleranceSquare*(dx*dx+dy*dy) {
			if c.angleTolerance < CurveAngleToleranceEpsilon {
				c.points.Add(basics.Point[float64]{X: x23, Y: y23})
				return
			}
			da1 = math.Abs(math.Atan2(y4-y3, x4-x3) - math.Atan2(y3-y2, x3-x2))
			if da1 >= basics.Pi {
				da1 = 2*basics.Pi - da1
			}
			if da1 < c.angleTolerance {
				c.points.Add(basics.Point[float64]{X: x2, Y: y2})
				c.points.Add(basics.Point[float64]{X: x3, Y: y3})
				return
			}
			if c.cuspLimit != 0.0 && da1 > c.cuspLimit {
				c.points.Add(basics.Point[float64]{X: x3, Y: y3})
				return
			}
		}

	case 2:
		if d2*d2 <= distanceToleranceSquare*(dx*dx+dy*dy) {
			if c.angleTolerance < CurveAngleToleranceEpsilon {
				c.points.Add(basics.Point[float64]{X: x23, Y: y23})
				return
			}
			da1 = math.Abs(math.Atan2(y3-y2, x3-x2) - math.Atan2(y2-y1, x2-x1))
			if da1 >= basics.Pi {
				da1 = 2*basics.Pi - da1
			}
			if da1 < c.angleTolerance {
				c.points.Add(basics.Point[float64]{X: x2, Y: y2})
				c.points.Add(basics.Point[float64]{X: x3, Y: y3})
				return
			}
			if c.cuspLimit != 0.0 && da1 > c.cuspLimit {
				c.points.Add(basics.Point[float64]{X: x2, Y: y2})
				return
			}
		}

	case 3:
		if (d2+d3)*(d2+d3) <= distanceToleranceSquare*(dx*dx+dy*dy) {
			if c.angleTolerance < CurveAngleToleranceEpsilon {
				c.points.Add(basics.Point[float64]{X: x23, Y: y23})
				return
			}
			k = math.Atan2(y3-y2, x3-x2)
			da1 = math.Abs(k - math.Atan2(y2-y1, x2-x1))
			da2 = math.Abs(math.Atan2(y4-y3, x4-x3) - k)
			if da1 >= basics.Pi {
				da1 = 2*basics.Pi - da1
			}
			if da2 >= basics.Pi {
				da2 = 2*basics.Pi - da2
			}
			if da1+da2 < c.angleTolerance {
				c.points.Add(basics.Point[float64]{X: x23, Y: y23})
				return
			}
			if c.cuspLimit != 0.0 {
				if da1 > c.cuspLimit {
					c.points.Add(basics.Point[float64]{X: x2, Y: y2})
					return
				}
				if da2 > c.cuspLimit {
					c.points.Add(basics.Point[float64]{X: x3, Y: y3})
					return
				}
			}
		}
	}

	c.recursiveBezier(x1, y1, x12, y12, x123, y123, x1234, y1234, level+1, distanceToleranceSquare)
	c.recursiveBezier(x1234, y1234, x234, y234, x34, y34, x4, y4, level+1, distanceToleranceSquare)
}

// ToFixed26_6 converts a flattened point stream to 26.6 fixed point, the
// coordinate type the rasterizer and the vector path emitter share.
func ToFixed26_6(points []basics.Point[float64]) []fixed.Point26_6 {
	out := make([]fixed.Point26_6, len(points))
	for i, p := range points {
		out[i] = fixed.Point26_6{X: fixed.Int26_6(math.Round(p.X * 64)), Y: fixed.Int26_6(math.Round(p.Y * 64))}
	}
	return out
}

// FlattenQuadratic flattens a quadratic Bezier curve directly to 26.6
// fixed point using the given tolerance in pixels.
func FlattenQuadratic(p0, p1, p2 fixed.Point26_6, tolerance float64) []fixed.Point26_6 {
	c := NewCurve3Div()
	c.SetTolerance(tolerance)
	c.Init(toFloat(p0.X), toFloat(p0.Y), toFloat(p1.X), toFloat(p1.Y), toFloat(p2.X), toFloat(p2.Y))
	return ToFixed26_6(c.Points())
}

// FlattenCubic flattens a cubic Bezier curve directly to 26.6 fixed
// point using the given tolerance in pixels.
func FlattenCubic(p0, p1, p2, p3 fixed.Point26_6, tolerance float64) []fixed.Point26_6 {
	c := NewCurve4Div()
	c.SetTolerance(tolerance)
	c.Init(toFloat(p0.X), toFloat(p0.Y), toFloat(p1.X), toFloat(p1.Y), toFloat(p2.X), toFloat(p2.Y), toFloat(p3.X), toFloat(p3.Y))
	return ToFixed26_6(c.Points())
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
