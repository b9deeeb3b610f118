package spline

import (
	"iter"
	"sort"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// [CubicBez.Extrema].
const MaxExtrema = 4

// CubicBez is a cubic Bézier segment. P0 and P3 are on the curve, P1 and P2
// are the handles.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the curve at parameter t, which is generally in [0, 1].
//
// The result is exactly P0 at t = 0 and exactly P3 at t = 1.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Differentiate returns the derivative of the curve, which is a quadratic
// Bézier. Its points are to be interpreted as vectors.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Extrema returns the parameters in (0, 1) at which the curve has a
// horizontal or vertical tangent, in increasing order.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		roots, n := SolveQuadratic(d0, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d := c.Differentiate()
	oneCoord(d.P0.X, d.P1.X, d.P2.X)
	oneCoord(d.P0.Y, d.P1.Y, d.P2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// curve in the range [0, 1].
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRectFromPoints(c.Start(), c.End())
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// PathElements returns the curve as a "move to" followed by a "cubic to".
func (c CubicBez) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(c.P0)) &&
			yield(CubicTo(c.P1, c.P2, c.P3))
	}
}
