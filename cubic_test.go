package spline

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	deriv := c.Differentiate()
	diff(t, QuadBez{Pt(1, 0), Pt(1, 1), Pt(1, 2)}, deriv, cmpopts.EquateApprox(0, 1e-12))

	// The end points of the derivative are the tangents at the ends.
	const delta = 1e-6
	start := c.Eval(delta).Sub(c.Eval(0)).Mul(1.0 / delta)
	end := c.Eval(1).Sub(c.Eval(1 - delta)).Mul(1.0 / delta)
	if l := Vec2(deriv.P0).Sub(start).Hypot(); l >= delta*4 {
		t.Errorf("start tangent differs by %g", l)
	}
	if l := Vec2(deriv.P2).Sub(end).Hypot(); l >= delta*4 {
		t.Errorf("end tangent differs by %g", l)
	}
}

func TestCubicBezEvalEnds(t *testing.T) {
	c := CubicBez{Pt(0.1, -3.7), Pt(1e6, 2), Pt(-4, 1e-9), Pt(7.3, 0.3)}
	if got := c.Eval(0); got != c.Start() {
		t.Errorf("got %s at t=0, want %s", got, c.Start())
	}
	if got := c.Eval(1); got != c.End() {
		t.Errorf("got %s at t=1, want %s", got, c.End())
	}
}

func TestCubicBezExtrema(t *testing.T) {
	q := CubicBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	extrema, n := q.Extrema()
	if n != 1 {
		t.Fatalf("got %d extrema, expected 1", n)
	}
	if want := 0.5; math.Abs(extrema[0]-want) > 1e-6 {
		t.Errorf("got extrema %v, want %v", extrema[0], want)
	}

	q = CubicBez{Pt(0.4, 0.5), Pt(0.0, 1.0), Pt(1.0, 0.0), Pt(0.5, 0.4)}
	extrema, n = q.Extrema()
	if n != 4 {
		t.Fatalf("got %d extrema, expected 4", n)
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	c := CubicBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	bbox := c.BoundingBox()
	if bbox.X0 != 0 || bbox.X1 != 1 || bbox.Y0 != 0 || math.Abs(bbox.Y1-0.75) > 1e-12 {
		t.Errorf("got %s, want Rect{(0, 0), (1, 0.75)}", bbox)
	}
}

func TestCubicBezPathElements(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)}
	diff(t, []PathElement{
		MoveTo(Pt(0, 0)),
		CubicTo(Pt(1, 1), Pt(2, 1), Pt(3, 0)),
	}, slices.Collect(c.PathElements()))
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	opts := []cmp.Option{cmpopts.EquateApprox(0, 1e-12), cmpopts.EquateEmpty()}
	diff(t, []float64{-math.Sqrt(5), math.Sqrt(5)}, slice(SolveQuadratic(-5.0, 0.0, 1.0)), opts...)
	diff(t, []float64{}, slice(SolveQuadratic(5.0, 0.0, 1.0)), opts...)
	diff(t, []float64{-5.0}, slice(SolveQuadratic(5.0, 1.0, 0.0)), opts...)
	diff(t, []float64{-1.0}, slice(SolveQuadratic(1.0, 2.0, 1.0)), opts...)
	diff(t, []float64{0}, slice(SolveQuadratic(0, 0, 0)), opts...)
}
