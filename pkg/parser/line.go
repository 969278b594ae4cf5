package parser

import (
	"regexp"
	"strings"

	"loglens/pkg/entry"
)

// ParseLine extracts structured fields from a single log line. It is
// deterministic and pure: every sub-step is best-effort and absence of a
// match leaves the corresponding field empty, never an error.
//
// The format hint is informational only. Extraction is format-agnostic; the
// hint does not change which patterns are tried.
func ParseLine(lineNumber int, rawLine string, formatHint string) *entry.Entry {
	raw := strings.TrimSpace(rawLine)
	e := &entry.Entry{
		LineNumber: lineNumber,
		RawLine:    raw,
	}

	ts, tsPattern, tsParsed := extractTimestamp(raw)
	if tsParsed {
		e.Timestamp = ts
	}

	level, levelPattern := extractLevel(raw)
	e.Level = level

	e.Source = extractSource(raw)

	// Only a successfully parsed timestamp is excised; a timestamp-shaped
	// substring that failed to parse stays in the message.
	var removeTS *entry.TimestampPattern
	if tsParsed {
		removeTS = tsPattern
	}
	e.Message = deriveMessage(raw, removeTS, levelPattern)

	e.Highlights = Highlights(raw)

	return e
}

// extractLevel tries the ordered level pattern table; the first match wins
// and the captured token is upper-cased.
func extractLevel(line string) (string, *regexp.Regexp) {
	for _, p := range entry.LevelPatterns {
		m := p.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return strings.ToUpper(m[1]), p
	}
	return "", nil
}

// extractSource tries the ordered source pattern table. Each pattern
// contributes only its first match as a candidate; the first candidate that
// is not a severity word and is longer than one character wins. A rejected
// candidate falls through to the next pattern, which is how a bracketed
// level like "[ERROR]" avoids being taken as a source.
func extractSource(line string) string {
	for _, p := range entry.SourcePatterns {
		m := p.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		candidate := m[1]
		if !entry.IsLevel(candidate) && len(candidate) > 1 {
			return candidate
		}
	}
	return ""
}

// deriveMessage removes the first occurrence of the winning timestamp and
// level patterns from the raw line and trims the result. Source tokens are
// deliberately left in place to preserve component context.
func deriveMessage(raw string, tsPattern *entry.TimestampPattern, levelPattern *regexp.Regexp) string {
	msg := raw
	if tsPattern != nil {
		if loc := tsPattern.Pattern.FindStringIndex(msg); loc != nil {
			msg = msg[:loc[0]] + msg[loc[1]:]
		}
	}
	if levelPattern != nil {
		if loc := levelPattern.FindStringIndex(msg); loc != nil {
			msg = msg[:loc[0]] + msg[loc[1]:]
		}
	}
	return strings.TrimSpace(msg)
}
