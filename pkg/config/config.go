// Package config provides the configuration for the arrays CLI.
//
// The configuration is organized into sections:
//   - Logging: level, encoding and output paths for the zap logger
//   - Metrics: whether container operations are counted and how the
//     summary is reported
//   - Render: how containers are written back out
//
// Example usage:
//
//	cfg := config.Default()
//	if err := config.Load("arrays.yaml", cfg); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"slices"

	"github.com/ajitpratap0/arrays/pkg/array"
	"github.com/ajitpratap0/arrays/pkg/errors"
)

// Config is the top-level CLI configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`
	Render  RenderConfig  `yaml:"render" json:"render"`
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level       string   `yaml:"level" json:"level"` // debug, info, warn or error
	Development bool     `yaml:"development" json:"development"`
	Encoding    string   `yaml:"encoding" json:"encoding"` // json or console
	OutputPaths []string `yaml:"output_paths" json:"output_paths"`
}

// MetricsConfig controls operation counting.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
	// Summary logs the counter snapshot when a command finishes.
	Summary bool `yaml:"summary" json:"summary"`
}

// RenderConfig controls output of containers.
type RenderConfig struct {
	// Indent pretty-prints JSON output.
	Indent bool `yaml:"indent" json:"indent"`
	// Kind is the element kind assumed for untyped input.
	Kind string `yaml:"kind" json:"kind"`
	// Seed makes shuffles reproducible. Zero picks a random seed.
	Seed uint64 `yaml:"seed" json:"seed"`
}

// Default returns a configuration with the values the CLI uses when no file
// is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:       "info",
			Encoding:    "console",
			OutputPaths: []string{"stderr"},
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Summary: false,
		},
		Render: RenderConfig{
			Indent: false,
			Kind:   array.KindObject.String(),
		},
	}
}

var (
	validLevels    = []string{"debug", "info", "warn", "error"}
	validEncodings = []string{"json", "console"}
)

// Validate checks that every field holds a supported value.
func (c *Config) Validate() error {
	if !slices.Contains(validLevels, c.Logging.Level) {
		return errors.Newf(errors.ErrorTypeConfig, "unsupported log level %q", c.Logging.Level).
			WithDetail("field", "logging.level")
	}
	if !slices.Contains(validEncodings, c.Logging.Encoding) {
		return errors.Newf(errors.ErrorTypeConfig, "unsupported log encoding %q", c.Logging.Encoding).
			WithDetail("field", "logging.encoding")
	}
	if _, ok := array.ParseKind(c.Render.Kind); !ok {
		return errors.Newf(errors.ErrorTypeConfig, "unknown element kind %q", c.Render.Kind).
			WithDetail("field", "render.kind")
	}
	if c.Metrics.Summary && !c.Metrics.Enabled {
		return errors.New(errors.ErrorTypeConfig, "metrics.summary requires metrics.enabled").
			WithDetail("field", "metrics.summary")
	}
	return nil
}
