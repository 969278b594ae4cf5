package parser

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"loglens/pkg/entry"
)

// extractTimestamp tries the ordered timestamp pattern table against the
// line. The first pattern that matches anywhere wins; later patterns are not
// tried even when the captured text fails to parse. On parse failure the
// winning pattern is still returned so the caller knows a match occurred.
func extractTimestamp(line string) (time.Time, *entry.TimestampPattern, bool) {
	for i := range entry.TimestampPatterns {
		tp := &entry.TimestampPatterns[i]
		m := tp.Pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		ts, err := parseTimestamp(m[1], tp.Layouts)
		if err != nil {
			return time.Time{}, tp, false
		}
		return ts, tp, true
	}
	return time.Time{}, nil, false
}

// parseTimestamp parses captured timestamp text leniently: the pattern's own
// layouts first, then a fuzzy catch-all. Year-less syslog timestamps get the
// current year.
func parseTimestamp(text string, layouts []string) (time.Time, error) {
	for _, layout := range layouts {
		ts, err := time.Parse(layout, text)
		if err != nil {
			continue
		}
		if ts.Year() == 0 {
			now := time.Now()
			ts = time.Date(now.Year(), ts.Month(), ts.Day(),
				ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
		}
		return ts, nil
	}

	ts, err := dateparse.ParseAny(text)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", text, err)
	}
	return ts, nil
}
