package output

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"loglens/pkg/entry"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// jsonEntry is the wire shape of one entry. Absent timestamp, level, and
// source serialize as null rather than empty strings.
type jsonEntry struct {
	LineNumber int               `json:"line_number"`
	Timestamp  *string           `json:"timestamp"`
	Level      *string           `json:"level"`
	Source     *string           `json:"source"`
	Message    string            `json:"message"`
	RawLine    string            `json:"raw_line"`
	Highlights []entry.Highlight `json:"highlights"`
}

type jsonReport struct {
	File    string      `json:"file"`
	Format  string      `json:"format"`
	Summary Summary     `json:"summary"`
	Entries []jsonEntry `json:"entries"`
}

// Format renders the report as indented JSON.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		return encoder.Encode(report.Summary)
	}

	out := jsonReport{
		File:    report.File,
		Format:  report.Format,
		Summary: report.Summary,
		Entries: make([]jsonEntry, 0, len(report.Entries)),
	}
	for _, e := range report.Entries {
		out.Entries = append(out.Entries, toJSONEntry(e))
	}

	return encoder.Encode(out)
}

func toJSONEntry(e *entry.Entry) jsonEntry {
	je := jsonEntry{
		LineNumber: e.LineNumber,
		Message:    e.Message,
		RawLine:    e.RawLine,
		Highlights: e.Highlights,
	}
	if je.Highlights == nil {
		je.Highlights = []entry.Highlight{}
	}
	if e.HasTimestamp() {
		ts := e.Timestamp.Format(time.RFC3339Nano)
		je.Timestamp = &ts
	}
	if e.Level != "" {
		je.Level = &e.Level
	}
	if e.Source != "" {
		je.Source = &e.Source
	}
	return je
}
