// Command splinewalk fits a smooth spline through a set of knots, optionally
// draws it, and walks a number of entities along its samples.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/tdewolff/argp"

	"honnef.co/go/spline/internal/config"
	"honnef.co/go/spline/internal/logging"
)

type Walk struct {
	Config   string `short:"c" desc:"Config file, YAML or JSON"`
	Knots    string `short:"k" desc:"Knots as space separated x,y pairs"`
	Random   int    `short:"r" desc:"Number of random knots, used without explicit knots"`
	Shape    string `desc:"Shape of random knots: random or walk"`
	Samples  int    `short:"n" desc:"Samples per segment"`
	Seed     uint64 `short:"s" desc:"Seed for random knots"`
	Entities int    `short:"e" desc:"Number of entities walking the curve"`
	Shards   int    `desc:"Number of walker shards"`
	SVG      string `desc:"Write SVG path data to this file"`
	Plot     string `short:"p" desc:"Render the curve to this image file (png, svg, pdf)"`
	Trace    bool   `short:"t" desc:"Write every position of every entity to standard output"`
	LogLevel string `short:"l" desc:"Log level: debug, info, warn or error"`
}

func main() {
	root := argp.NewCmd(&Walk{}, "Walk entities along a cubic spline through knots")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Walk) Run() error {
	cfg, err := cmd.config()
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Options{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, cfg, log, os.Stdout)
}

// config loads the config file, if any, and applies the flags on top of it.
func (cmd *Walk) config() (*config.Config, error) {
	cfg := config.Default()
	if cmd.Config != "" {
		c, err := config.Load(cmd.Config)
		if err != nil {
			return nil, err
		}
		cfg = *c
	}

	if cmd.Knots != "" {
		knots, err := parseKnots(cmd.Knots)
		if err != nil {
			return nil, err
		}
		cfg.Knots = knots
	}
	if cmd.Random != 0 {
		cfg.Knots = nil
		cfg.RandomKnots = cmd.Random
	}
	if cmd.Shape != "" {
		cfg.KnotShape = cmd.Shape
	}
	if cmd.Samples != 0 {
		cfg.SamplesPerSegment = cmd.Samples
	}
	if cmd.Seed != 0 {
		cfg.Seed = cmd.Seed
	}
	if cmd.Entities != 0 {
		cfg.Entities = cmd.Entities
	}
	if cmd.Shards != 0 {
		cfg.Shards = cmd.Shards
	}
	if cmd.SVG != "" {
		cfg.Output.SVG = cmd.SVG
	}
	if cmd.Plot != "" {
		cfg.Output.Plot = cmd.Plot
	}
	if cmd.Trace {
		cfg.Output.Trace = true
	}
	if cmd.LogLevel != "" {
		cfg.Log.Level = cmd.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// parseKnots parses knots of the form "0,0 1,2 2,0".
func parseKnots(s string) ([]config.Knot, error) {
	fields := strings.Fields(s)
	knots := make([]config.Knot, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("knot %q isn't of the form x,y", f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("knot %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("knot %q: %w", f, err)
		}
		knots = append(knots, config.Knot{X: x, Y: y})
	}
	return knots, nil
}
