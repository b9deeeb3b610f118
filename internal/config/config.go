// Package config loads the settings of the splinewalk command from YAML or
// JSON files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"honnef.co/go/spline"
	"honnef.co/go/spline/internal/logging"
)

// Shapes of generated knots.
const (
	ShapeRandom = "random"
	ShapeWalk   = "walk"
)

// Config describes a curve, the entities walking it and where to draw it.
// Knots takes precedence over RandomKnots, which are generated in the
// given KnotShape.
type Config struct {
	Knots             []Knot `json:"knots,omitempty" yaml:"knots,omitempty"`
	RandomKnots       int    `json:"random_knots,omitempty" yaml:"random_knots,omitempty"`
	KnotShape         string `json:"knot_shape,omitempty" yaml:"knot_shape,omitempty"`
	Seed              uint64 `json:"seed" yaml:"seed"`
	SamplesPerSegment int    `json:"samples_per_segment" yaml:"samples_per_segment"`
	Entities          int    `json:"entities" yaml:"entities"`
	Shards            int    `json:"shards,omitempty" yaml:"shards,omitempty"`
	Log               Log    `json:"log" yaml:"log"`
	Output            Output `json:"output" yaml:"output"`
}

type Knot struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type Log struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding" yaml:"encoding"`
}

type Output struct {
	// SVG is the path of a file receiving the curve as SVG path data.
	SVG string `json:"svg,omitempty" yaml:"svg,omitempty"`
	// Plot is the path of an image file rendered with gonum/plot.
	Plot string `json:"plot,omitempty" yaml:"plot,omitempty"`
	// Precision bounds the decimals written to SVG path data.
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`
	// Trace writes every position of every entity to standard output.
	Trace bool `json:"trace,omitempty" yaml:"trace,omitempty"`
}

func Default() Config {
	return Config{
		RandomKnots:       8,
		KnotShape:         ShapeRandom,
		Seed:              1,
		SamplesPerSegment: 100,
		Entities:          4,
		Log: Log{
			Level:    "info",
			Encoding: logging.EncodingJSON,
		},
		Output: Output{
			Precision: 3,
		},
	}
}

// Points returns the configured knots.
func (c *Config) Points() []spline.Point {
	pts := make([]spline.Point, len(c.Knots))
	for i, k := range c.Knots {
		pts[i] = spline.Pt(k.X, k.Y)
	}
	return pts
}

func (c *Config) Validate() error {
	var errs []error
	if len(c.Knots) == 0 && c.RandomKnots < 3 {
		errs = append(errs, fmt.Errorf("random_knots must be at least 3, got %d", c.RandomKnots))
	}
	switch c.KnotShape {
	case ShapeRandom, ShapeWalk:
	default:
		errs = append(errs, fmt.Errorf("knot_shape must be %q or %q, got %q", ShapeRandom, ShapeWalk, c.KnotShape))
	}
	if len(c.Knots) > 0 && len(c.Knots) < 3 {
		errs = append(errs, fmt.Errorf("need at least 3 knots, got %d", len(c.Knots)))
	}
	for i, k := range c.Knots {
		if !spline.Pt(k.X, k.Y).IsFinite() {
			errs = append(errs, fmt.Errorf("knot %d is not finite", i))
		}
	}
	if c.SamplesPerSegment < 1 {
		errs = append(errs, fmt.Errorf("samples_per_segment must be positive, got %d", c.SamplesPerSegment))
	}
	if c.Entities < 0 {
		errs = append(errs, fmt.Errorf("entities must not be negative, got %d", c.Entities))
	}
	if c.Shards < 0 {
		errs = append(errs, fmt.Errorf("shards must not be negative, got %d", c.Shards))
	}
	if c.Output.Precision < 0 {
		errs = append(errs, fmt.Errorf("output precision must not be negative, got %d", c.Output.Precision))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadYAML reads a config from r. Fields missing from the document keep
// their default values. An empty document yields the defaults.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, err
	}
	return &c, nil
}

// LoadJSON reads a config from r, like [LoadYAML].
func LoadJSON(r io.Reader) (*Config, error) {
	c := Default()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, err
	}
	return &c, nil
}

// Load reads and validates the config file at path. Files ending in .json
// are decoded as JSON, everything else as YAML.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c *Config
	if strings.EqualFold(filepath.Ext(path), ".json") {
		c, err = LoadJSON(f)
	} else {
		c, err = LoadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't load %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
