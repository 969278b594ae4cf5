package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"loglens/pkg/detector"
	"loglens/pkg/entry"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Format != "" && !detector.IsLabel(cfg.Format) {
		return fmt.Errorf("format: unknown label %q (one of: %s)",
			cfg.Format, strings.Join(detector.Labels(), ", "))
	}

	if cfg.SampleSize < 0 {
		return fmt.Errorf("sample_size: must not be negative (got %d)", cfg.SampleSize)
	}

	if cfg.MaxLineSize < 0 {
		return fmt.Errorf("max_line_size: must not be negative (got %d)", cfg.MaxLineSize)
	}

	switch cfg.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format: unknown format %q (use text or json)", cfg.Output.Format)
	}

	if cfg.Output.Level != "" && !entry.IsLevel(strings.ToUpper(cfg.Output.Level)) {
		return fmt.Errorf("output.level: unknown severity %q (one of: %s)",
			cfg.Output.Level, strings.Join(entry.Levels, ", "))
	}

	return nil
}
