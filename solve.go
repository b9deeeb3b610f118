package spline

import "fmt"

// HandlePair holds the two off-curve control points of one segment. A is
// the handle leaving the segment's first knot and B the handle arriving at
// its second knot.
type HandlePair struct {
	A Point
	B Point
}

// CoefficientMatrix returns the n×n matrix of the handle system for a curve
// with n segments.
//
// The diagonal is 4, except for the first entry, which is 2, and the last,
// which is 7. Both off-diagonals are 1, except for the last entry of the
// sub-diagonal, which is 2. The first and last rows encode zero curvature at
// the curve's end points, the other rows equal first and second derivatives
// at the joints.
func CoefficientMatrix(n int) Tridiagonal {
	if n <= 0 {
		return Tridiagonal{}
	}
	m := Tridiagonal{
		Sub:   make([]float64, n-1),
		Diag:  make([]float64, n),
		Super: make([]float64, n-1),
	}
	for i := range m.Diag {
		m.Diag[i] = 4
	}
	for i := range m.Sub {
		m.Sub[i] = 1
		m.Super[i] = 1
	}
	m.Diag[0] = 2
	m.Diag[n-1] = 7
	if n >= 2 {
		m.Sub[n-2] = 2
	}
	return m
}

// rightHandSide builds the right-hand side of the handle system. The
// boundary rows override the general formula.
func rightHandSide(knots []Point) []Vec2 {
	n := len(knots) - 1
	p := make([]Vec2, n)
	for i := 1; i < n-1; i++ {
		// 2·(2·K[i] + K[i+1])
		p[i] = Vec2(knots[i]).Mul(2).Add(Vec2(knots[i+1])).Mul(2)
	}
	p[0] = Vec2(knots[0]).Add(Vec2(knots[1]).Mul(2))
	p[n-1] = Vec2(knots[n-1]).Mul(8).Add(Vec2(knots[n]))
	return p
}

// validateKnots checks that knots can be solved for.
func validateKnots(knots []Point) error {
	if len(knots) < 3 {
		return fmt.Errorf("%w, got %d", ErrInsufficientPoints, len(knots))
	}
	for i, k := range knots {
		if !k.IsFinite() {
			return fmt.Errorf("%w: knot %d is %s", ErrInvalidKnot, i, k)
		}
	}
	return nil
}

// SolveHandles computes the handles of the C1-continuous cubic Bézier
// spline through knots. It returns one [HandlePair] per segment, that is,
// len(knots)-1 pairs.
//
// The first handles A are the solution of the tridiagonal system built by
// [CoefficientMatrix]; the second handles follow from them: B[i] mirrors
// A[i+1] about knot i+1, and the last B lies halfway between the last A and
// the final knot.
//
// At least three knots are required. Fewer result in
// [ErrInsufficientPoints]; knots with NaN or infinite coordinates result in
// [ErrInvalidKnot].
func SolveHandles(knots []Point) ([]HandlePair, error) {
	if err := validateKnots(knots); err != nil {
		return nil, err
	}
	n := len(knots) - 1

	a, err := CoefficientMatrix(n).Solve(rightHandSide(knots))
	if err != nil {
		return nil, err
	}

	out := make([]HandlePair, n)
	for i := range n - 1 {
		out[i] = HandlePair{
			A: Point(a[i]),
			B: Point(Vec2(knots[i+1]).Mul(2).Sub(a[i+1])),
		}
	}
	out[n-1] = HandlePair{
		A: Point(a[n-1]),
		B: Point(a[n-1]).Midpoint(knots[n]),
	}
	return out, nil
}
