// Package plot draws solved curves with gonum/plot: the samples as a line
// and the knots as circles.
package plot

import (
	"image/color"

	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"honnef.co/go/spline"
)

// Points adapts a slice of points to gonum's [plotter.XYer].
type Points []spline.Point

var _ plotter.XYer = Points(nil)

func (pts Points) Len() int {
	return len(pts)
}

func (pts Points) XY(i int) (float64, float64) {
	return pts[i].Splat()
}

// Options specifies optional settings for [New] and [Save].
type Options struct {
	Title string
	// Size of the saved image. Zero values select 11×8 inches.
	Width, Height vg.Length
	// Colors of the sampled curve and of the knots. Nil values select blue
	// and red.
	CurveColor color.Color
	KnotColor  color.Color
	// Padding is the fraction of the curve's width and height left free
	// around its bounding box. Zero selects 0.05, negative values none.
	Padding float64
}

func (opts Options) padding() float64 {
	switch {
	case opts.Padding == 0:
		return 0.05
	case opts.Padding < 0:
		return 0
	default:
		return opts.Padding
	}
}

func (opts Options) size() (vg.Length, vg.Length) {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 11 * vg.Inch
	}
	if h <= 0 {
		h = 8 * vg.Inch
	}
	return w, h
}

// New returns a plot of the curve's samples and knots. It fails with
// [spline.ErrCurveNotSolved] if the curve hasn't been solved.
func New(c *spline.Curve, opts Options) (*gonumplot.Plot, error) {
	samples, ok := c.Samples()
	if !ok {
		return nil, spline.ErrCurveNotSolved
	}

	p := gonumplot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	line, err := plotter.NewLine(Points(samples))
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = opts.CurveColor
	if line.LineStyle.Color == nil {
		line.LineStyle.Color = color.RGBA{B: 255, A: 255}
	}

	knots, err := plotter.NewScatter(Points(c.ControlPoints()))
	if err != nil {
		return nil, err
	}
	knots.GlyphStyle.Shape = draw.CircleGlyph{}
	knots.GlyphStyle.Color = opts.KnotColor
	if knots.GlyphStyle.Color == nil {
		knots.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	}

	p.Add(line, knots)
	p.Legend.Add("curve", line)
	p.Legend.Add("knots", knots)

	// The samples miss the extrema between them, so the axes follow the
	// exact bounding box of the segments instead.
	bbox := c.BoundingBox()
	pad := opts.padding()
	dx, dy := bbox.Width()*pad, bbox.Height()*pad
	p.X.Min, p.X.Max = bbox.X0-dx, bbox.X1+dx
	p.Y.Min, p.Y.Max = bbox.Y0-dy, bbox.Y1+dy
	return p, nil
}

// Save plots the curve and writes the image to path. The format follows
// from the file extension, as in [gonumplot.Plot.Save].
func Save(c *spline.Curve, path string, opts Options) error {
	p, err := New(c, opts)
	if err != nil {
		return err
	}
	w, h := opts.size()
	return p.Save(w, h, path)
}
