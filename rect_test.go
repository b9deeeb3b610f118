package spline

import (
	"testing"
)

func TestRectAbs(t *testing.T) {
	r := NewRectFromPoints(Pt(10, 0), Pt(0, 20))
	diff(t, Rect{0, 0, 10, 20}, r)
	if w, h := r.Width(), r.Height(); w != 10 || h != 20 {
		t.Errorf("got %vx%v, want 10x20", w, h)
	}
	diff(t, r, Rect{10, 20, 0, 0}.Abs())
	if s := r.String(); s != "Rect{(0, 0), (10, 20)}" {
		t.Errorf("got %q", s)
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{0, 0, 1, 1}
	b := Rect{2, -1, 3, 0.5}
	diff(t, Rect{0, -1, 3, 1}, a.Union(b))
	diff(t, a.Union(b), b.Union(a))

	pts := []Point{Pt(3, 4), Pt(-1, 2), Pt(0, -7), Pt(2, 2)}
	r := Rect{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	diff(t, Rect{-1, -7, 3, 4}, r)
	for _, pt := range pts {
		if !inRect(r, pt) {
			t.Errorf("%s doesn't contain %s", r, pt)
		}
	}
}
