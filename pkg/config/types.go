// Package config provides configuration loading and validation for LogLens.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Sources lists log files or glob patterns to parse.
	Sources []string `yaml:"sources,omitempty"`

	// Format forces a format label, bypassing content detection.
	// Empty means detect.
	Format string `yaml:"format,omitempty"`

	// SampleSize is the number of leading lines scored during detection.
	SampleSize int `yaml:"sample_size,omitempty"`

	// MaxLineSize caps a single input line, in bytes.
	MaxLineSize int `yaml:"max_line_size,omitempty"`

	// Output controls report rendering.
	Output OutputConfig `yaml:"output,omitempty"`
}

// OutputConfig controls how parse reports are rendered.
type OutputConfig struct {
	// Format is the report format: text or json.
	Format string `yaml:"format,omitempty"`

	// Color enables highlight colorization in text output.
	Color bool `yaml:"color,omitempty"`

	// Verbose enables per-entry field breakdowns.
	Verbose bool `yaml:"verbose,omitempty"`

	// Level restricts output to entries with this severity word.
	Level string `yaml:"level,omitempty"`
}
