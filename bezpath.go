package spline

import (
	"fmt"
	"iter"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
)

// PathElement is one drawing command of a path, for collaborators that draw
// curves and sample sequences.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	default:
		return "InvalidPathElement"
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// CubicElements converts a sequence of connected cubic segments to path
// elements. A MoveTo is emitted for the first segment and whenever a segment
// doesn't start where the previous one ended.
func CubicElements(seq iter.Seq[CubicBez]) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var current option[Point]
		for c := range seq {
			if !current.isSet || current.value != c.Start() {
				if !yield(MoveTo(c.Start())) {
					return
				}
			}
			if !yield(CubicTo(c.P1, c.P2, c.P3)) {
				return
			}
			current.set(c.End())
		}
	}
}

// Polyline returns path elements connecting pts with straight lines. This is
// how a sample sequence is drawn.
func Polyline(pts []Point) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, pt := range pts {
			el := LineTo(pt)
			if i == 0 {
				el = MoveTo(pt)
			}
			if !yield(el) {
				return
			}
		}
	}
}
