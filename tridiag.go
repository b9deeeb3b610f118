package spline

import (
	"fmt"
	"math"
)

// pivotEpsilon is the relative magnitude below which a pivot of the Thomas
// algorithm is treated as zero.
const pivotEpsilon = 1e-12

// Tridiagonal is an n×n matrix whose only non-zero entries lie on the main
// diagonal and the two diagonals adjacent to it.
//
// Sub[i] is the entry at row i+1, column i. Super[i] is the entry at row i,
// column i+1. Both have length n-1.
type Tridiagonal struct {
	Sub   []float64
	Diag  []float64
	Super []float64
}

// N returns the dimension of the matrix.
func (m Tridiagonal) N() int {
	return len(m.Diag)
}

// At returns the entry at row i, column j.
func (m Tridiagonal) At(i, j int) float64 {
	switch j - i {
	case 0:
		return m.Diag[i]
	case 1:
		return m.Super[i]
	case -1:
		return m.Sub[j]
	default:
		return 0
	}
}

// Dense returns the matrix as a slice of rows.
func (m Tridiagonal) Dense() [][]float64 {
	n := m.N()
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := max(i-1, 0); j <= min(i+1, n-1); j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

// MulVec computes m·x, treating each Vec2 as a pair of independent right-hand
// sides.
func (m Tridiagonal) MulVec(x []Vec2) []Vec2 {
	n := m.N()
	out := make([]Vec2, n)
	for i := range n {
		v := x[i].Mul(m.Diag[i])
		if i > 0 {
			v = v.Add(x[i-1].Mul(m.Sub[i-1]))
		}
		if i < n-1 {
			v = v.Add(x[i+1].Mul(m.Super[i]))
		}
		out[i] = v
	}
	return out
}

// Solve solves m·x = d using the Thomas algorithm. The x and y components
// of d are solved simultaneously, as they share the same coefficients.
//
// No pivoting is done. This is stable for diagonally dominant matrices, such
// as the ones built by [CoefficientMatrix]. A pivot that is zero relative to
// its row, or any non-finite intermediate value, results in
// [ErrSingularSystem].
func (m Tridiagonal) Solve(d []Vec2) ([]Vec2, error) {
	n := m.N()
	if len(d) != n {
		return nil, fmt.Errorf("spline: right-hand side has %d entries, matrix has %d rows", len(d), n)
	}
	if n == 0 {
		return nil, nil
	}

	// Forward sweep. cp holds the modified super-diagonal, dp the modified
	// right-hand side.
	cp := make([]float64, n)
	dp := make([]Vec2, n)
	for i := range n {
		pivot := m.Diag[i]
		rhs := d[i]
		if i > 0 {
			pivot -= m.Sub[i-1] * cp[i-1]
			rhs = rhs.Sub(dp[i-1].Mul(m.Sub[i-1]))
		}
		if !m.pivotOK(i, pivot) {
			return nil, fmt.Errorf("%w: pivot %g in row %d", ErrSingularSystem, pivot, i)
		}
		if i < n-1 {
			cp[i] = m.Super[i] / pivot
		}
		dp[i] = rhs.Div(pivot)
	}

	// Back substitution.
	x := make([]Vec2, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i].Sub(x[i+1].Mul(cp[i]))
	}
	for i, v := range x {
		if !v.IsFinite() {
			return nil, fmt.Errorf("%w: non-finite solution %s in row %d", ErrSingularSystem, v, i)
		}
	}
	return x, nil
}

func (m Tridiagonal) pivotOK(i int, pivot float64) bool {
	if math.IsNaN(pivot) || math.IsInf(pivot, 0) {
		return false
	}
	scale := math.Abs(m.Diag[i])
	if i > 0 {
		scale = max(scale, math.Abs(m.Sub[i-1]))
	}
	if i < m.N()-1 {
		scale = max(scale, math.Abs(m.Super[i]))
	}
	if scale == 0 {
		return false
	}
	return math.Abs(pivot) > pivotEpsilon*scale
}
