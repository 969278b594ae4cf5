package parser

import (
	"strings"
	"testing"
)

func TestParse_EntryPerNonBlankLine(t *testing.T) {
	content := "first line\n\nsecond line\n   \nthird line"

	result := Parse(content, "")

	if result.Lines != 5 {
		t.Errorf("Lines = %d, want 5", result.Lines)
	}
	if len(result.Entries) != 3 {
		t.Fatalf("Entries = %d, want 3", len(result.Entries))
	}

	// Blank lines produce no entry but keep their slot in the numbering.
	wantNumbers := []int{1, 3, 5}
	for i, e := range result.Entries {
		if e.LineNumber != wantNumbers[i] {
			t.Errorf("Entries[%d].LineNumber = %d, want %d", i, e.LineNumber, wantNumbers[i])
		}
	}
}

func TestParse_DetectsFormatWhenHintEmpty(t *testing.T) {
	content := "Sep 23 22:40:00 server sshd[1234]: accepted\nSep 23 22:40:01 server sshd[1234]: closed"

	result := Parse(content, "")

	if result.Format != "syslog" {
		t.Errorf("Format = %q, want syslog", result.Format)
	}
}

func TestParse_HintBypassesDetection(t *testing.T) {
	content := "Sep 23 22:40:00 server sshd[1234]: accepted"

	result := Parse(content, "nginx")

	if result.Format != "nginx" {
		t.Errorf("Format = %q, want the caller's hint", result.Format)
	}
	// The hint does not change extraction: the bracketed token still wins.
	if len(result.Entries) != 1 || result.Entries[0].Source != "1234" {
		t.Errorf("Entries = %+v, want one entry with source 1234", result.Entries)
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	result := Parse("", "")

	if len(result.Entries) != 0 {
		t.Errorf("Entries = %d, want 0", len(result.Entries))
	}
	if result.Format != "generic" {
		t.Errorf("Format = %q, want generic", result.Format)
	}
	// Splitting the empty string still yields one (blank) line.
	if result.Lines != 1 {
		t.Errorf("Lines = %d, want 1", result.Lines)
	}
}

func TestParse_TrailingNewline(t *testing.T) {
	result := Parse("only line\n", "")

	if result.Lines != 2 {
		t.Errorf("Lines = %d, want 2", result.Lines)
	}
	if len(result.Entries) != 1 {
		t.Errorf("Entries = %d, want 1", len(result.Entries))
	}
}

func TestParse_RawLinesRoundTrip(t *testing.T) {
	lines := []string{
		"Sep 23 22:40:00 server kernel: out of memory",
		"  padded but kept  ",
		"[2025-09-23 22:40:00.123] [ERROR] Connection to 10.0.0.5 failed",
	}

	result := Parse(strings.Join(lines, "\n"), "")

	if len(result.Entries) != len(lines) {
		t.Fatalf("Entries = %d, want %d", len(result.Entries), len(lines))
	}
	for i, e := range result.Entries {
		if e.RawLine != strings.TrimSpace(lines[i]) {
			t.Errorf("Entries[%d].RawLine = %q, want %q", i, e.RawLine, strings.TrimSpace(lines[i]))
		}
	}
}

func TestParse_HighlightSpanBounds(t *testing.T) {
	content := strings.Join([]string{
		"2025-09-23 22:40:00.123 [ERROR] GET https://example.com/a.html from 10.0.0.5",
		`nginx: 192.168.1.1 - - "POST /api/v1/x.json HTTP/1.1" 201 3.14`,
		"no structure at all",
	}, "\n")

	for _, e := range Parse(content, "").Entries {
		for _, h := range e.Highlights {
			if h.Start < 0 || h.Start >= h.End || h.End > len(e.RawLine) {
				t.Errorf("line %d: span [%d,%d) out of bounds for %q",
					e.LineNumber, h.Start, h.End, e.RawLine)
			}
		}
	}
}

func TestParse_Idempotent(t *testing.T) {
	content := "Sep 23 22:40:00 server kernel: out of memory\n[2025-09-23 22:40:00.123] [ERROR] db failed"

	for _, e := range Parse(content, "").Entries {
		again := ParseLine(e.LineNumber, e.RawLine, "")
		if again.Level != e.Level || again.Source != e.Source || again.Message != e.Message ||
			!again.Timestamp.Equal(e.Timestamp) {
			t.Errorf("re-parsing %q changed fields: %+v vs %+v", e.RawLine, again, e)
		}
	}
}

func TestParse_Deterministic(t *testing.T) {
	content := "2025-09-23 10:00:00 [ERROR] db: connection lost\nplain text line\n<worker> INFO done"

	a := Parse(content, "")
	b := Parse(content, "")

	if a.Format != b.Format || a.Lines != b.Lines || len(a.Entries) != len(b.Entries) {
		t.Fatal("Parse is not deterministic at the document level")
	}
	for i := range a.Entries {
		ae, be := a.Entries[i], b.Entries[i]
		if ae.Level != be.Level || ae.Source != be.Source || ae.Message != be.Message ||
			!ae.Timestamp.Equal(be.Timestamp) || len(ae.Highlights) != len(be.Highlights) {
			t.Errorf("Entries[%d] differs between runs", i)
		}
	}
}
