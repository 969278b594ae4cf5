// Package entry defines the structured log entry produced by the parsing
// engine, plus the severity vocabulary and pattern tables shared between
// format detection and per-line extraction.
package entry

import "time"

// Highlight marks a sub-span of a raw line for rendering.
// Start and End are half-open byte offsets into the raw line.
// Spans from different pattern families may overlap; emission order is
// significant (the first-emitted span wins on visual overlap).
type Highlight struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Category string `json:"category"`
}

// Entry is one parsed log line.
type Entry struct {
	// LineNumber is the 1-based position in the original document.
	// Blank lines are skipped but still counted.
	LineNumber int

	// RawLine is the original line with leading/trailing whitespace trimmed.
	RawLine string

	// Timestamp is the parsed timestamp; zero if no pattern matched or the
	// matched text failed to parse.
	Timestamp time.Time

	// Level is the upper-cased severity token, or "" if none was found.
	Level string

	// Source is the component/process token, or "" if none was found.
	Source string

	// Message is RawLine with the matched timestamp and level substrings
	// removed and the ends trimmed. May equal RawLine.
	Message string

	// Highlights are the rendering spans over RawLine, in emission order.
	Highlights []Highlight
}

// HasTimestamp reports whether a timestamp was extracted for this entry.
func (e *Entry) HasTimestamp() bool {
	return !e.Timestamp.IsZero()
}
