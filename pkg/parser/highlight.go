package parser

import (
	"regexp"
	"strings"

	"loglens/pkg/entry"
)

// Highlight categories without a severity bucket.
const (
	categoryTimestamp = "timestamp"
	categoryIP        = "ip"
	categoryURL       = "url"
	categoryPath      = "path"
	categoryNumber    = "number"
	categoryString    = "string"
)

var (
	ipHighlight     = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)
	urlHighlight    = regexp.MustCompile(`https?://\S+`)
	pathHighlight   = regexp.MustCompile(`(?:/[^\s]*)+\.[a-zA-Z0-9]+`)
	numberHighlight = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
	quoteHighlight  = regexp.MustCompile(`"[^"]*"`)
)

// Highlights generates rendering spans over a raw line. Every pattern family
// re-scans the full line independently of field extraction, so spans may
// disagree with the structured fields (two timestamp-shaped substrings both
// get spans even though only the first fills the Timestamp field).
//
// Spans are not merged or deduplicated; emission order is the render
// tie-break. Numbers are suppressed when their start offset falls inside any
// previously emitted span. Only the start offset is checked, not the full
// interval.
func Highlights(line string) []entry.Highlight {
	var spans []entry.Highlight

	for i := range entry.TimestampPatterns {
		for _, loc := range entry.TimestampPatterns[i].Pattern.FindAllStringIndex(line, -1) {
			spans = append(spans, entry.Highlight{Start: loc[0], End: loc[1], Category: categoryTimestamp})
		}
	}

	for _, p := range entry.LevelPatterns {
		for _, m := range p.FindAllStringSubmatchIndex(line, -1) {
			token := strings.ToUpper(line[m[2]:m[3]])
			spans = append(spans, entry.Highlight{Start: m[0], End: m[1], Category: entry.Bucket(token)})
		}
	}

	for _, loc := range ipHighlight.FindAllStringIndex(line, -1) {
		spans = append(spans, entry.Highlight{Start: loc[0], End: loc[1], Category: categoryIP})
	}

	for _, loc := range urlHighlight.FindAllStringIndex(line, -1) {
		spans = append(spans, entry.Highlight{Start: loc[0], End: loc[1], Category: categoryURL})
	}

	for _, loc := range pathHighlight.FindAllStringIndex(line, -1) {
		spans = append(spans, entry.Highlight{Start: loc[0], End: loc[1], Category: categoryPath})
	}

	for _, loc := range numberHighlight.FindAllStringIndex(line, -1) {
		if startsInside(spans, loc[0]) {
			continue
		}
		spans = append(spans, entry.Highlight{Start: loc[0], End: loc[1], Category: categoryNumber})
	}

	for _, loc := range quoteHighlight.FindAllStringIndex(line, -1) {
		spans = append(spans, entry.Highlight{Start: loc[0], End: loc[1], Category: categoryString})
	}

	return spans
}

// startsInside reports whether offset falls inside any existing span.
func startsInside(spans []entry.Highlight, offset int) bool {
	for _, s := range spans {
		if s.Start <= offset && offset < s.End {
			return true
		}
	}
	return false
}
