package spline

// QuadBez is a quadratic Bézier segment. [CubicBez.Differentiate] returns
// one, whose points are to be read as vectors.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}
