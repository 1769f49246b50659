// Package config defines process configuration and loading.
//
// Conventions:
// - Provide New(...) returning defaults; Load layers file and env on top.
// - All functions accepting I/O take context.Context first.
package config

import "context"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// InputPath points at the batting table to analyze.
	InputPath string `koanf:"input_path"`

	// InputFormat selects the source decoder: auto, csv, or xlsx.
	// Auto picks by file extension.
	InputFormat string `koanf:"input_format"`

	// Sheet names the worksheet for xlsx sources; blank means the
	// first sheet.
	Sheet string `koanf:"sheet"`

	// MinAtBats is the qualifying career at-bats threshold.
	MinAtBats int `koanf:"min_at_bats"`

	// OutputPath receives the JSON report; blank means stdout.
	OutputPath string `koanf:"output_path"`

	// Pretty indents the JSON report.
	Pretty bool `koanf:"pretty"`

	// Addr configures the HTTP listen address for serve mode.
	Addr string `koanf:"addr"`
}

// New creates a Config with defaults. Context is accepted first per the
// project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:    "info",
		InputPath:   "baseball.csv",
		InputFormat: "auto",
		MinAtBats:   50,
		Addr:        ":8480",
	}
}
