// Package spline fits smooth curves through points and samples them densely,
// so that entities can follow the curve one sample at a time.
//
// # Splines through knots
//
// Given knots K₀ … Kₙ, [SolveHandles] computes a cubic Bézier segment
// between each pair of consecutive knots. The segments pass through the
// knots exactly, and neighbouring segments have equal first and second
// derivatives where they meet, which makes the curve visually smooth. The
// curvature at the first and last knot is zero.
//
// The handles of the segments are the solution of a tridiagonal linear
// system ([CoefficientMatrix]). It is solved with the Thomas algorithm in
// linear time, x and y coordinates at once ([Tridiagonal.Solve]).
//
// At least three knots are needed. With only two, the first and last rows of
// the system coincide and the boundary conditions contradict each other.
//
// # Sampling
//
// [Evaluate] samples each segment at a fixed number of parameters evenly
// spread over [0, 1], both ends included, and concatenates the samples in
// segment order. Because every segment contributes its own end points, each
// interior knot occurs twice in the samples. Each segment thus has the same
// number of samples, which consumers may rely on.
//
// # Curves and entities
//
// [Curve] ties the two together. It is constructed from knots and a sample
// count, computes its samples once and hands them out as often as needed.
// Entities, identified by [walk.EntityID], move along the samples with
// [Curve.Step]; see package [honnef.co/go/spline/walk] for the details.
//
//	c, err := spline.NewCurve(knots, 50, spline.DefaultCurveOptions)
//	if err != nil {
//		return err
//	}
//	id := walk.NewEntityID()
//	for {
//		pt, ok, err := c.Step(id)
//		if err != nil {
//			return err
//		}
//		if !ok {
//			break
//		}
//		fmt.Println(pt)
//	}
//
// # Drawing
//
// This package doesn't draw. It does provide what drawing code needs: the
// knots ([Curve.ControlPoints]), the samples ([Curve.Samples]), the segments
// as path elements ([Curve.PathElements], [Polyline]) and SVG path data
// ([SVG]). Package [honnef.co/go/spline/plot] builds gonum plots from
// curves.
//
// # Errors
//
// Failures are reported as errors wrapping one of the Err values of this
// package; use [errors.Is] to tell them apart. An entity reaching the end of
// the curve is not an error.
package spline
