// Package output provides formatting and report generation for parse
// results.
package output

import (
	"strings"
	"time"

	"loglens/pkg/entry"
	"loglens/pkg/parser"
)

// Report is the complete output for one parsed document.
type Report struct {
	// File is the path of the source document, or "-" for stdin.
	File string

	// Format is the resolved format label for the document.
	Format string

	// Summary provides aggregate statistics.
	Summary Summary

	// Entries holds the parsed entries in document order.
	Entries []*entry.Entry
}

// Summary provides aggregate statistics over a document's entries.
type Summary struct {
	// Lines is the total number of lines in the document, blanks included.
	Lines int `json:"lines"`

	// Entries is the number of non-blank lines parsed.
	Entries int `json:"entries"`

	// WithTimestamp is the number of entries with a parsed timestamp.
	WithTimestamp int `json:"with_timestamp"`

	// ByLevel counts entries per extracted severity token.
	ByLevel map[string]int `json:"by_level,omitempty"`

	// Errors counts entries whose level falls in the error bucket.
	Errors int `json:"errors"`

	// Warnings counts entries whose level falls in the warning bucket.
	Warnings int `json:"warnings"`

	// TimeRange spans the earliest and latest parsed timestamps, if any.
	TimeRange *TimeRange `json:"time_range,omitempty"`
}

// TimeRange is a closed time window.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewReport builds a Report with computed summary statistics.
func NewReport(file string, result *parser.Result) *Report {
	report := &Report{
		File:    file,
		Format:  result.Format,
		Entries: result.Entries,
		Summary: Summary{
			Lines:   result.Lines,
			Entries: len(result.Entries),
		},
	}

	for _, e := range result.Entries {
		if e.Level != "" {
			if report.Summary.ByLevel == nil {
				report.Summary.ByLevel = make(map[string]int)
			}
			report.Summary.ByLevel[e.Level]++
			switch entry.Bucket(e.Level) {
			case "error":
				report.Summary.Errors++
			case "warning":
				report.Summary.Warnings++
			}
		}

		if !e.HasTimestamp() {
			continue
		}
		report.Summary.WithTimestamp++
		tr := report.Summary.TimeRange
		if tr == nil {
			report.Summary.TimeRange = &TimeRange{Start: e.Timestamp, End: e.Timestamp}
			continue
		}
		if e.Timestamp.Before(tr.Start) {
			tr.Start = e.Timestamp
		}
		if e.Timestamp.After(tr.End) {
			tr.End = e.Timestamp
		}
	}

	return report
}

// HasErrors returns true if any entry carried an error-bucket level.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// FilterLevel returns the entries whose level equals the given severity
// word, compared case-insensitively. An empty filter returns entries as-is.
func FilterLevel(entries []*entry.Entry, level string) []*entry.Entry {
	if level == "" {
		return entries
	}
	want := strings.ToUpper(level)
	var filtered []*entry.Entry
	for _, e := range entries {
		if e.Level == want {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
