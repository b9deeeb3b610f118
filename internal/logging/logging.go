// Package logging builds the zap loggers used by the command line tools.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

type Options struct {
	// Level is one of debug, info, warn or error. Empty means info.
	Level string
	// Encoding is json or console. Empty means json.
	Encoding string
	// OutputPaths default to stderr.
	OutputPaths []string
}

// ParseLevel maps a level name to its zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zap.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(s))
	if err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

func New(opts Options) (*zap.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	encoding := opts.Encoding
	switch encoding {
	case "":
		encoding = EncodingJSON
	case EncodingJSON, EncodingConsole:
	default:
		return nil, fmt.Errorf("logging: unknown encoding %q", encoding)
	}

	out := opts.OutputPaths
	if len(out) == 0 {
		out = []string{"stderr"}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      out,
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	// Debug output traces every step and must not be thinned out.
	if lvl > zap.DebugLevel {
		config.Sampling = &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		}
	}
	return config.Build()
}
