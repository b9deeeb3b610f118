package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/spline"
	"honnef.co/go/spline/internal/config"
	"honnef.co/go/spline/internal/knots"
	"honnef.co/go/spline/plot"
	"honnef.co/go/spline/walk"
)

type result struct {
	id    walk.EntityID
	steps int
	last  spline.Point
	// distance is the length of the polyline through the visited samples.
	distance float64
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger, w io.Writer) error {
	pts := cfg.Points()
	if len(pts) == 0 {
		rng := knots.Seeded(cfg.Seed)
		switch cfg.KnotShape {
		case config.ShapeWalk:
			pts = knots.Walk(rng, cfg.RandomKnots)
		default:
			pts = knots.Random(rng, cfg.RandomKnots)
		}
		log.Info("generated knots",
			zap.Int("knots", len(pts)),
			zap.String("shape", cfg.KnotShape),
			zap.Uint64("seed", cfg.Seed))
	}

	c, err := spline.NewCurve(pts, cfg.SamplesPerSegment, spline.CurveOptions{
		AutoSolve: true,
		Logger:    log,
		Shards:    cfg.Shards,
	})
	if err != nil {
		return err
	}

	if path := cfg.Output.SVG; path != "" {
		if err := writeSVG(c, path, cfg.Output.Precision); err != nil {
			return err
		}
		log.Info("wrote svg", zap.String("path", path))
	}
	if path := cfg.Output.Plot; path != "" {
		if err := plot.Save(c, path, plot.Options{Title: fmt.Sprintf("%d knots", len(pts))}); err != nil {
			return fmt.Errorf("couldn't plot curve: %w", err)
		}
		log.Info("wrote plot", zap.String("path", path))
	}

	var trace io.Writer
	if cfg.Output.Trace {
		trace = w
	}
	results, err := walkAll(ctx, c, cfg.Entities, log, trace)
	if err != nil {
		return err
	}
	for _, res := range results {
		if _, err := fmt.Fprintf(w, "%s\t%d steps\t%s\t%.6g travelled\n", res.id, res.steps, res.last, res.distance); err != nil {
			return err
		}
	}
	return nil
}

// walkAll steps n entities concurrently until each has exhausted the curve.
// If trace is not nil, every position is written to it as a line of entity,
// step and point.
func walkAll(ctx context.Context, c *spline.Curve, n int, log *zap.Logger, trace io.Writer) ([]result, error) {
	results := make([]result, n)
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	start := time.Now()
	for i := range results {
		id := walk.NewEntityID()
		results[i].id = id
		g.Go(func() error {
			elog := log.With(zap.Stringer("entity", id))
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				pt, ok, err := c.Step(id)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				res := &results[i]
				if res.steps > 0 {
					res.distance += res.last.Distance(pt)
				}
				res.steps++
				res.last = pt
				elog.Debug("step", zap.Int("step", res.steps), zap.Float64("x", pt.X), zap.Float64("y", pt.Y))
				if trace != nil {
					mu.Lock()
					_, err := fmt.Fprintf(trace, "%s\t%d\t%s\n", id, res.steps, pt)
					mu.Unlock()
					if err != nil {
						return err
					}
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Info("walk finished", zap.Int("entities", n), zap.Duration("took", time.Since(start)))
	return results, nil
}

func writeSVG(c *spline.Curve, path string, precision int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := spline.WriteSVG(f, c.PathElements(), spline.SVGOptions{MaxPrecision: precision}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
