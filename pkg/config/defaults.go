package config

import (
	"os"

	"loglens/pkg/detector"
	"loglens/pkg/parser"
)

// Default values for configuration.
const (
	DefaultOutputFormat = "text"
	DefaultSampleSize   = detector.DefaultSampleSize
	DefaultMaxLineSize  = parser.DefaultMaxLineSize
)

// Environment variable names.
const (
	EnvFormat       = "LOGLENS_FORMAT"
	EnvOutputFormat = "LOGLENS_OUTPUT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SampleSize:  DefaultSampleSize,
		MaxLineSize: DefaultMaxLineSize,
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides.
func (c *Config) applyEnvironmentOverrides() {
	if format := os.Getenv(EnvFormat); format != "" {
		c.Format = format
	}
	if format := os.Getenv(EnvOutputFormat); format != "" {
		c.Output.Format = format
	}
}
