package spline

import (
	"fmt"
	"iter"
)

// Linspace returns n parameters evenly spaced over [0, 1], including both
// ends. For n == 1 it yields only 0. The last value is exactly 1.
func Linspace(n int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if n == 1 {
			yield(0)
			return
		}
		last := float64(n - 1)
		for i := range n {
			if !yield(float64(i) / last) {
				return
			}
		}
	}
}

// Segments returns the cubic segments of the spline through knots with the
// given handles. Segment i runs from knots[i] to knots[i+1].
//
// The caller must ensure that len(handles) == len(knots)-1.
func Segments(knots []Point, handles []HandlePair) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		for i, h := range handles {
			if !yield(CubicBez{knots[i], h.A, h.B, knots[i+1]}) {
				return
			}
		}
	}
}

// Evaluate samples every segment of the spline through knots at
// samplesPerSegment evenly spaced parameters (see [Linspace]) and returns
// all samples, segment by segment, in one slice of length
// len(handles)*samplesPerSegment.
//
// Neighbouring segments both contribute their shared knot, so interior
// knots appear twice in the result. This keeps the number of samples per
// segment constant.
func Evaluate(knots []Point, handles []HandlePair, samplesPerSegment int) ([]Point, error) {
	if samplesPerSegment < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSampleCount, samplesPerSegment)
	}
	if len(handles) != len(knots)-1 {
		return nil, fmt.Errorf("%w: %d knots, %d handle pairs", ErrHandleMismatch, len(knots), len(handles))
	}
	out := make([]Point, 0, len(handles)*samplesPerSegment)
	for seg := range Segments(knots, handles) {
		for t := range Linspace(samplesPerSegment) {
			out = append(out, seg.Eval(t))
		}
	}
	return out, nil
}
