// Package knots generates knot sequences for demos and benchmarks.
package knots

import (
	"math/rand/v2"

	"honnef.co/go/spline"
)

// Random returns n points drawn uniformly from the unit square, in order of
// generation.
func Random(rng *rand.Rand, n int) []spline.Point {
	pts := make([]spline.Point, n)
	for i := range pts {
		pts[i] = spline.Pt(rng.Float64(), rng.Float64())
	}
	return pts
}

// Walk returns n points whose x coordinates increase by one and whose y
// coordinates take a random step in [-1, 1) from the previous knot. The first
// knot is the origin.
func Walk(rng *rand.Rand, n int) []spline.Point {
	pts := make([]spline.Point, n)
	var y float64
	for i := range pts {
		if i > 0 {
			y += 2*rng.Float64() - 1
		}
		pts[i] = spline.Pt(float64(i), y)
	}
	return pts
}

// Seeded returns the generator used for a configured seed.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
