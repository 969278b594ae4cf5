package output

import (
	"testing"
	"time"

	"loglens/pkg/entry"
	"loglens/pkg/parser"
)

func TestNewReport_Summary(t *testing.T) {
	content := "2025-09-23 10:00:00 [ERROR] db: connection lost\n" +
		"\n" +
		"2025-09-23 10:00:05 [WARN] db: retrying\n" +
		"no structure here\n" +
		"2025-09-23 10:00:09 [FATAL] db: giving up"

	report := NewReport("db.log", parser.Parse(content, ""))

	s := report.Summary
	if s.Lines != 5 {
		t.Errorf("Lines = %d, want 5", s.Lines)
	}
	if s.Entries != 4 {
		t.Errorf("Entries = %d, want 4", s.Entries)
	}
	if s.WithTimestamp != 3 {
		t.Errorf("WithTimestamp = %d, want 3", s.WithTimestamp)
	}
	// ERROR and FATAL both land in the error bucket.
	if s.Errors != 2 {
		t.Errorf("Errors = %d, want 2", s.Errors)
	}
	if s.Warnings != 1 {
		t.Errorf("Warnings = %d, want 1", s.Warnings)
	}
	if s.ByLevel["ERROR"] != 1 || s.ByLevel["WARN"] != 1 || s.ByLevel["FATAL"] != 1 {
		t.Errorf("ByLevel = %v, want one each of ERROR, WARN, FATAL", s.ByLevel)
	}

	if s.TimeRange == nil {
		t.Fatal("Expected a time range")
	}
	wantStart := time.Date(2025, 9, 23, 10, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 9, 23, 10, 0, 9, 0, time.UTC)
	if !s.TimeRange.Start.Equal(wantStart) || !s.TimeRange.End.Equal(wantEnd) {
		t.Errorf("TimeRange = %v to %v, want %v to %v",
			s.TimeRange.Start, s.TimeRange.End, wantStart, wantEnd)
	}

	if !report.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}

func TestNewReport_NoTimestamps(t *testing.T) {
	report := NewReport("plain.log", parser.Parse("one\ntwo", ""))

	if report.Summary.TimeRange != nil {
		t.Errorf("TimeRange = %v, want nil", report.Summary.TimeRange)
	}
	if report.Summary.WithTimestamp != 0 {
		t.Errorf("WithTimestamp = %d, want 0", report.Summary.WithTimestamp)
	}
	if report.HasErrors() {
		t.Error("HasErrors() = true, want false")
	}
}

func TestFilterLevel(t *testing.T) {
	entries := []*entry.Entry{
		{LineNumber: 1, Level: "ERROR"},
		{LineNumber: 2, Level: "INFO"},
		{LineNumber: 3, Level: "ERROR"},
		{LineNumber: 4},
	}

	t.Run("empty filter passes through", func(t *testing.T) {
		if got := FilterLevel(entries, ""); len(got) != 4 {
			t.Errorf("entries = %d, want 4", len(got))
		}
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		got := FilterLevel(entries, "error")
		if len(got) != 2 {
			t.Fatalf("entries = %d, want 2", len(got))
		}
		if got[0].LineNumber != 1 || got[1].LineNumber != 3 {
			t.Errorf("line numbers = %d, %d, want 1, 3", got[0].LineNumber, got[1].LineNumber)
		}
	})

	t.Run("exact level only, no bucket expansion", func(t *testing.T) {
		// FATAL is in the error bucket but is not matched by an ERROR filter.
		mixed := []*entry.Entry{{Level: "ERROR"}, {Level: "FATAL"}}
		if got := FilterLevel(mixed, "ERROR"); len(got) != 1 {
			t.Errorf("entries = %d, want 1", len(got))
		}
	})

	t.Run("no matches", func(t *testing.T) {
		if got := FilterLevel(entries, "DEBUG"); len(got) != 0 {
			t.Errorf("entries = %d, want 0", len(got))
		}
	})
}
