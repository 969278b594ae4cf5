package output

import (
	"context"
	"io"
)

// Formatter renders a parse report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose enables per-entry field breakdowns and extra summary detail.
	Verbose bool

	// Quiet enables minimal summary-only output.
	Quiet bool

	// Color enables highlight-span colorization in text output.
	Color bool
}
