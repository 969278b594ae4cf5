package entry

import (
	"fmt"
	"regexp"
)

// TimestampPattern pairs a timestamp-shaped regex with the Go time layouts
// its captured text may parse under. The first capture group is the
// timestamp text.
type TimestampPattern struct {
	Name    string
	Pattern *regexp.Regexp
	Layouts []string
}

// The individual timestamp patterns. Exposed so the format detector can
// reuse them as structural signals without duplicating the regexes.
var (
	// ISOTimestamp matches "2025-09-23 22:40:00" with an optional fraction.
	ISOTimestamp = TimestampPattern{
		Name:    "iso",
		Pattern: regexp.MustCompile(`(\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2}(?:\.\d+)?)`),
		Layouts: []string{"2006-01-02 15:04:05.999999999"},
	}

	// SyslogTimestamp matches "Sep 23 22:40:00". The year is absent and
	// gets inferred at parse time.
	SyslogTimestamp = TimestampPattern{
		Name:    "syslog",
		Pattern: regexp.MustCompile(`([A-Za-z]{3}\s+\d{1,2}\s+\d{2}:\d{2}:\d{2})`),
		Layouts: []string{"Jan _2 15:04:05"},
	}

	// ApacheTimestamp matches "[23/Sep/2025:22:40:00 +0000]". The brackets
	// are part of the match but not the captured text.
	ApacheTimestamp = TimestampPattern{
		Name:    "apache",
		Pattern: regexp.MustCompile(`\[(\d{2}/[A-Za-z]{3}/\d{4}:\d{2}:\d{2}:\d{2}\s+[+-]\d{4})\]`),
		Layouts: []string{"02/Jan/2006:15:04:05 -0700"},
	}

	// RFC3339Timestamp matches "2025-09-23T22:40:00.123456Z" with optional
	// fraction and optional Z suffix.
	RFC3339Timestamp = TimestampPattern{
		Name:    "rfc3339",
		Pattern: regexp.MustCompile(`(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?Z?)`),
		Layouts: []string{"2006-01-02T15:04:05.999999999Z07:00", "2006-01-02T15:04:05.999999999"},
	}

	// DateTimeTimestamp matches "2025-09-23 22:40:00" without a fraction
	// (MySQL-style). Kept after ISOTimestamp for table-order fidelity.
	DateTimeTimestamp = TimestampPattern{
		Name:    "datetime",
		Pattern: regexp.MustCompile(`(\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2})`),
		Layouts: []string{"2006-01-02 15:04:05"},
	}
)

// TimestampPatterns is the ordered timestamp pattern table. Extraction tries
// these in slice order and the first pattern that matches anywhere in the
// line wins, so the ordering is load-bearing.
var TimestampPatterns = []TimestampPattern{
	ISOTimestamp,
	SyslogTimestamp,
	ApacheTimestamp,
	RFC3339Timestamp,
	DateTimeTimestamp,
}

// LevelPatterns is the ordered level pattern table: bare word, bracketed,
// angle-bracketed. All are case-insensitive and capture the severity token.
var LevelPatterns = []*regexp.Regexp{
	regexp.MustCompile(fmt.Sprintf(`(?i)\b(%s)\b`, LevelAlternation())),
	regexp.MustCompile(fmt.Sprintf(`(?i)\[(%s)\]`, LevelAlternation())),
	regexp.MustCompile(fmt.Sprintf(`(?i)<(%s)>`, LevelAlternation())),
}

// SourcePatterns is the ordered source pattern table: bracketed token,
// angle-bracketed token, then a bare "token:" prefix. The bare form
// requires a leading letter so time fields like "22:40:00" never qualify.
var SourcePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\[([^\]]+)\]`),
	regexp.MustCompile(`<([^>]+)>`),
	regexp.MustCompile(`([A-Za-z_]\w+):`),
}
