package entry

import (
	"strings"
	"testing"
)

func TestIsLevel(t *testing.T) {
	for _, l := range Levels {
		if !IsLevel(l) {
			t.Errorf("IsLevel(%q) = false, want true", l)
		}
	}

	// The comparison is case-sensitive and exact.
	for _, token := range []string{"error", "Info", "WARNINGS", "ERR", ""} {
		if IsLevel(token) {
			t.Errorf("IsLevel(%q) = true, want false", token)
		}
	}
}

func TestLevelAlternation(t *testing.T) {
	alt := LevelAlternation()
	if got := len(strings.Split(alt, "|")); got != len(Levels) {
		t.Errorf("alternation has %d terms, want %d", got, len(Levels))
	}
	if !strings.HasPrefix(alt, "TRACE|") {
		t.Errorf("alternation = %q, want canonical order", alt)
	}
}

func TestBucket(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"ERROR", "error"},
		{"FATAL", "error"},
		{"CRITICAL", "error"},
		{"WARN", "warning"},
		{"WARNING", "warning"},
		{"INFO", "info"},
		{"DEBUG", "debug"},
		{"TRACE", "debug"},
		{"error", "error"},
		{"NOTICE", "level"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := Bucket(tt.level); got != tt.want {
				t.Errorf("Bucket(%q) = %q, want %q", tt.level, got, tt.want)
			}
		})
	}
}

func TestHasTimestamp(t *testing.T) {
	var e Entry
	if e.HasTimestamp() {
		t.Error("zero entry should have no timestamp")
	}
}
