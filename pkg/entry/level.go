package entry

import "strings"

// Levels is the severity vocabulary, in canonical order. Both format
// detection keyword scoring and level extraction use this single table so the
// two can never disagree on what counts as a level token.
var Levels = []string{"TRACE", "DEBUG", "INFO", "WARN", "WARNING", "ERROR", "FATAL", "CRITICAL"}

// IsLevel reports whether token is exactly one of the severity words.
// The comparison is case-sensitive: a lower-cased bracket token like
// "[error]" is a valid source candidate, "[ERROR]" is not.
func IsLevel(token string) bool {
	for _, l := range Levels {
		if token == l {
			return true
		}
	}
	return false
}

// LevelAlternation returns the vocabulary joined for use in regexp
// alternations, e.g. "TRACE|DEBUG|...".
func LevelAlternation() string {
	return strings.Join(Levels, "|")
}

// Bucket maps an upper-cased severity token to its highlight category.
func Bucket(level string) string {
	switch strings.ToUpper(level) {
	case "ERROR", "FATAL", "CRITICAL":
		return "error"
	case "WARN", "WARNING":
		return "warning"
	case "INFO":
		return "info"
	case "DEBUG", "TRACE":
		return "debug"
	default:
		return "level"
	}
}
