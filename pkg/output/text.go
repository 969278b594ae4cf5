package output

import (
	"context"
	"fmt"
	"io"

	"loglens/pkg/entry"
	"loglens/pkg/render"
)

// TextFormatter formats reports as human-readable text, optionally with
// highlight-span colorization.
type TextFormatter struct {
	opts     FormatOptions
	renderer *render.Renderer
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{
		opts:     opts,
		renderer: render.New(opts.Color),
	}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s: format=%s, %d entries, %d errors, %d warnings\n",
		report.File,
		report.Format,
		report.Summary.Entries,
		report.Summary.Errors,
		report.Summary.Warnings)
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "=== %s (format: %s) ===\n", report.File, report.Format)
	fmt.Fprintln(w)

	for _, e := range report.Entries {
		f.formatEntry(e, w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d lines, %d entries, %d errors, %d warnings\n",
		report.Summary.Lines,
		report.Summary.Entries,
		report.Summary.Errors,
		report.Summary.Warnings)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Entries with timestamps: %d\n", report.Summary.WithTimestamp)
		if tr := report.Summary.TimeRange; tr != nil {
			fmt.Fprintf(w, "Time range: %s to %s\n",
				tr.Start.Format("2006-01-02 15:04:05"),
				tr.End.Format("2006-01-02 15:04:05"))
		}
	}

	return nil
}

func (f *TextFormatter) formatEntry(e *entry.Entry, w io.Writer) {
	fmt.Fprintf(w, "%6d  %s\n", e.LineNumber, f.renderer.Line(e.RawLine, e.Highlights))

	if !f.opts.Verbose {
		return
	}

	ts := "-"
	if e.HasTimestamp() {
		ts = e.Timestamp.Format("2006-01-02 15:04:05")
	}
	level := e.Level
	if level == "" {
		level = "-"
	}
	source := e.Source
	if source == "" {
		source = "-"
	}
	fmt.Fprintf(w, "        ts=%s level=%s source=%s\n", ts, level, source)
}
