// Package parser turns arbitrary, unlabeled log text into structured
// entries: per-line timestamp, severity level, source token, residual
// message, and highlight spans for rendering.
package parser

import (
	"strings"

	"loglens/pkg/detector"
	"loglens/pkg/entry"
)

// Result is the outcome of parsing one document.
type Result struct {
	// Entries holds one entry per non-blank line, in document order.
	Entries []*entry.Entry

	// Format is the resolved format label (detected, or the caller's hint).
	Format string

	// Lines is the total number of lines in the document, blanks included.
	Lines int
}

// Parse splits a document into lines and extracts structured entries from
// every non-blank line. When formatHint is empty the format is detected from
// the document's leading lines; a non-empty hint bypasses detection but does
// not change extraction behavior.
//
// Blank lines produce no entry but keep their slot in the numbering:
// LineNumber is always the 1-based position in the original split. Parse is
// pure and cannot fail; an empty document yields zero entries and the
// generic label.
func Parse(content string, formatHint string) *Result {
	lines := strings.Split(content, "\n")

	label := formatHint
	if label == "" {
		label = detector.Detect(lines)
	}

	var entries []*entry.Entry
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, ParseLine(i+1, line, label))
	}

	return &Result{
		Entries: entries,
		Format:  label,
		Lines:   len(lines),
	}
}
