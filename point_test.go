package spline

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Vec(3, -4), Pt(4, -2).Sub(Pt(1, 2)))
	diff(t, Pt(1, 1), Pt(0, 0).Midpoint(Pt(2, 2)))
	diff(t, Pt(-1.5, 0.25), Pt(-3, 1).Midpoint(Pt(0, -0.5)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestVecArithmetic(t *testing.T) {
	v := Vec(1, 2)
	diff(t, Vec(3, 6), v.Mul(3))
	diff(t, Vec(0.5, 1), v.Div(2))
	diff(t, Vec(4, 0), v.Add(Vec(3, -2)))
	diff(t, Vec(-2, 4), v.Sub(Vec(3, -2)))
	if got := Vec(3, 4).Hypot(); got != 5 {
		t.Errorf("got magnitude %v, want 5", got)
	}
	if !v.IsFinite() {
		t.Errorf("%s should be finite", v)
	}
}

func TestPointFinite(t *testing.T) {
	if !Pt(1, -3).IsFinite() {
		t.Error("(1, -3) should be finite")
	}
	inf := Pt(math.Inf(-1), 0)
	if inf.IsFinite() || !inf.IsInf() {
		t.Errorf("%s should be infinite", inf)
	}
	nan := Pt(0, math.NaN())
	if nan.IsFinite() || !nan.IsNaN() {
		t.Errorf("%s should be NaN", nan)
	}
}
