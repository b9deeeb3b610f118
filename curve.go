package spline

import (
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"honnef.co/go/spline/walk"
)

// CurveOptions specifies optional settings for [NewCurve].
type CurveOptions struct {
	// AutoSolve solves the curve in NewCurve. Otherwise, the curve is solved
	// by the first call to [Curve.Solution].
	AutoSolve bool
	// Logger receives debug records about solving and walking. A nil Logger
	// discards them.
	Logger *zap.Logger
	// Shards is the number of cursor shards of the curve's walker. See
	// [walk.WithShards].
	Shards int
}

// DefaultCurveOptions solves curves on construction.
var DefaultCurveOptions = CurveOptions{AutoSolve: true}

// Curve is a C1-continuous cubic Bézier spline through a fixed sequence of
// knots, sampled at a fixed number of parameters per segment.
//
// The samples are computed once, either on construction or on first use, and
// never change afterwards. Entities walk along the samples using
// [Curve.Step].
//
// A Curve is safe for concurrent use.
type Curve struct {
	knots             []Point
	samplesPerSegment int
	log               *zap.Logger
	shards            int

	mu       sync.Mutex
	handles  option[[]HandlePair]
	solution option[[]Point]
	walker   *walk.Walker[Point]
}

// NewCurve returns the curve through knots, sampled samplesPerSegment times
// per segment. The knots are copied.
//
// NewCurve fails with [ErrInsufficientPoints] for fewer than three knots,
// [ErrInvalidKnot] for knots that aren't finite and [ErrInvalidSampleCount]
// for samplesPerSegment < 1. With opts.AutoSolve, errors from solving are
// returned as well.
func NewCurve(knots []Point, samplesPerSegment int, opts CurveOptions) (*Curve, error) {
	if err := validateKnots(knots); err != nil {
		return nil, err
	}
	if samplesPerSegment < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSampleCount, samplesPerSegment)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	c := &Curve{
		knots:             slices.Clone(knots),
		samplesPerSegment: samplesPerSegment,
		log:               log,
		shards:            opts.Shards,
	}
	if opts.AutoSolve {
		if _, err := c.Solution(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Solution returns the samples of the curve, solving it if that hasn't
// happened yet. Once computed, the samples are kept; later calls return
// copies of the same samples.
func (c *Curve) Solution() ([]Point, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.solution.isSet {
		if err := c.solve(); err != nil {
			return nil, err
		}
	}
	return slices.Clone(c.solution.unwrap()), nil
}

// solve computes handles, samples and the walker. c.mu must be held.
func (c *Curve) solve() error {
	start := time.Now()
	handles, err := SolveHandles(c.knots)
	if err != nil {
		return err
	}
	samples, err := Evaluate(c.knots, handles, c.samplesPerSegment)
	if err != nil {
		return err
	}
	c.handles.set(handles)
	c.solution.set(samples)
	c.walker = walk.New(samples, walk.WithLogger(c.log), walk.WithShards(c.shards))
	c.log.Debug("curve solved",
		zap.Int("knots", len(c.knots)),
		zap.Int("segments", len(handles)),
		zap.Int("samples", len(samples)),
		zap.Duration("took", time.Since(start)))
	return nil
}

// Step moves the entity one sample along the curve. See [walk.Walker.Step]
// for the exact semantics. The boolean is false once the entity is
// exhausted, which is not an error.
//
// Step fails with [ErrCurveNotSolved] if the curve hasn't been solved.
func (c *Curve) Step(id walk.EntityID) (Point, bool, error) {
	w, ok := c.Walker()
	if !ok {
		return Point{}, false, ErrCurveNotSolved
	}
	pt, ok := w.Step(id)
	return pt, ok, nil
}

// Walker returns the walker over the curve's samples, if the curve has been
// solved.
func (c *Curve) Walker() (*walk.Walker[Point], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.walker, c.walker != nil
}

// Solved reports whether the samples have been computed.
func (c *Curve) Solved() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.solution.isSet
}

// ControlPoints returns a copy of the knots.
func (c *Curve) ControlPoints() []Point {
	return slices.Clone(c.knots)
}

// SamplesPerSegment returns the number of samples taken from each segment.
func (c *Curve) SamplesPerSegment() int {
	return c.samplesPerSegment
}

// Samples returns a copy of the samples without solving the curve. The
// boolean is false if the curve hasn't been solved.
func (c *Curve) Samples() ([]Point, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.solution.isSet {
		return nil, false
	}
	return slices.Clone(c.solution.value), true
}

// Handles returns a copy of the handles without solving the curve. The
// boolean is false if the curve hasn't been solved.
func (c *Curve) Handles() ([]HandlePair, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.handles.isSet {
		return nil, false
	}
	return slices.Clone(c.handles.value), true
}

// Segments returns the cubic segments of the curve. It yields nothing if
// the curve hasn't been solved.
func (c *Curve) Segments() iter.Seq[CubicBez] {
	handles, ok := c.Handles()
	if !ok {
		return func(func(CubicBez) bool) {}
	}
	return Segments(c.knots, handles)
}

// PathElements returns the curve as path elements: one MoveTo followed by
// one CubicTo per segment.
func (c *Curve) PathElements() iter.Seq[PathElement] {
	return CubicElements(c.Segments())
}

// BoundingBox returns the smallest rectangle enclosing the knots and, if
// the curve has been solved, all segments.
func (c *Curve) BoundingBox() Rect {
	bbox := NewRectFromPoints(c.knots[0], c.knots[0])
	for _, k := range c.knots[1:] {
		bbox = bbox.UnionPoint(k)
	}
	for seg := range c.Segments() {
		bbox = bbox.Union(seg.BoundingBox())
	}
	return bbox
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) unwrap() T {
	if !opt.isSet {
		panic("option isn't set")
	}
	return opt.value
}
