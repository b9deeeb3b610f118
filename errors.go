package spline

import "errors"

var (
	// ErrInsufficientPoints is returned when fewer than three knots are
	// given. Two knots would make the first and last rows of the system
	// coincide.
	ErrInsufficientPoints = errors.New("spline: need at least 3 knots")
	// ErrInvalidKnot is returned for knots with NaN or infinite coordinates.
	ErrInvalidKnot = errors.New("spline: knot is not finite")
	// ErrSingularSystem is returned when the handle system has no unique
	// solution.
	ErrSingularSystem = errors.New("spline: singular system")
	// ErrInvalidSampleCount is returned for fewer than one sample per
	// segment.
	ErrInvalidSampleCount = errors.New("spline: samples per segment must be at least 1")
	// ErrHandleMismatch is returned when the number of handle pairs isn't
	// one less than the number of knots.
	ErrHandleMismatch = errors.New("spline: handle count doesn't match knot count")
	// ErrCurveNotSolved is returned when samples are needed before the curve
	// has been solved.
	ErrCurveNotSolved = errors.New("spline: curve was never solved")
)
