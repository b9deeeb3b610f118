package plot

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"

	"honnef.co/go/spline"
)

var knots = []spline.Point{spline.Pt(0, 0), spline.Pt(1, 2), spline.Pt(2, 0), spline.Pt(3, 2)}

func TestPoints(t *testing.T) {
	pts := Points(knots)
	require.Equal(t, 4, pts.Len())
	x, y := pts.XY(1)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)

	xys, err := plotter.CopyXYs(pts)
	require.NoError(t, err)
	assert.Equal(t, plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}, {X: 3, Y: 2}}, xys)
}

func TestNew(t *testing.T) {
	t.Run("Unsolved", func(t *testing.T) {
		c, err := spline.NewCurve(knots, 10, spline.CurveOptions{})
		require.NoError(t, err)
		_, err = New(c, Options{})
		require.ErrorIs(t, err, spline.ErrCurveNotSolved)
	})

	t.Run("Solved", func(t *testing.T) {
		c, err := spline.NewCurve(knots, 10, spline.DefaultCurveOptions)
		require.NoError(t, err)
		p, err := New(c, Options{Title: "curve", KnotColor: color.Black})
		require.NoError(t, err)
		assert.Equal(t, "curve", p.Title.Text)

		// The axes enclose the padded bounding box, which in turn encloses
		// every sample.
		bbox := c.BoundingBox()
		dx, dy := 0.05*bbox.Width(), 0.05*bbox.Height()
		assert.Equal(t, bbox.X0-dx, p.X.Min)
		assert.Equal(t, bbox.X1+dx, p.X.Max)
		assert.Equal(t, bbox.Y0-dy, p.Y.Min)
		assert.Equal(t, bbox.Y1+dy, p.Y.Max)
		assert.Less(t, p.Y.Min, 0.0)
		assert.Greater(t, p.Y.Max, 2.0)
		samples, _ := c.Samples()
		for _, pt := range samples {
			assert.True(t, pt.X >= p.X.Min && pt.X <= p.X.Max, "x of %s outside the axis", pt)
			assert.True(t, pt.Y >= p.Y.Min && pt.Y <= p.Y.Max, "y of %s outside the axis", pt)
		}
	})

	t.Run("Padding", func(t *testing.T) {
		c, err := spline.NewCurve(knots, 10, spline.DefaultCurveOptions)
		require.NoError(t, err)
		bbox := c.BoundingBox()

		p, err := New(c, Options{Padding: -1})
		require.NoError(t, err)
		assert.Equal(t, bbox.X0, p.X.Min)
		assert.Equal(t, bbox.X1, p.X.Max)
		assert.Equal(t, bbox.Y0, p.Y.Min)
		assert.Equal(t, bbox.Y1, p.Y.Max)

		p, err = New(c, Options{Padding: 0.5})
		require.NoError(t, err)
		assert.Equal(t, bbox.X0-1.5, p.X.Min)
		assert.Equal(t, bbox.X1+1.5, p.X.Max)
	})
}

func TestSave(t *testing.T) {
	c, err := spline.NewCurve(knots, 20, spline.DefaultCurveOptions)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "curve.svg")
	require.NoError(t, Save(c, path, Options{Title: "curve"}))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, fi.Size())
}
