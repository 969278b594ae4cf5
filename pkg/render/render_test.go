package render

import (
	"testing"

	"loglens/pkg/entry"
)

func TestLine_PassThroughWithoutColor(t *testing.T) {
	raw := "2025-09-23 10:00:00 ERROR boom"
	spans := []entry.Highlight{
		{Start: 0, End: 19, Category: "timestamp"},
		{Start: 20, End: 25, Category: "error"},
	}

	if got := New(false).Line(raw, spans); got != raw {
		t.Errorf("Line() = %q, want the raw line unchanged", got)
	}
}

func TestLine_NoSpans(t *testing.T) {
	raw := "nothing to see"
	if got := New(true).Line(raw, nil); got != raw {
		t.Errorf("Line() = %q, want the raw line unchanged", got)
	}
}

func TestLine_PreservesText(t *testing.T) {
	// Styling may or may not emit escape codes depending on the terminal
	// profile, but the visible text always survives in order.
	raw := "ERROR boom at 10.0.0.5"
	spans := []entry.Highlight{
		{Start: 0, End: 5, Category: "error"},
		{Start: 14, End: 22, Category: "ip"},
	}

	got := New(true).Line(raw, spans)
	if stripped := stripEscapes(got); stripped != raw {
		t.Errorf("Line() visible text = %q, want %q", stripped, raw)
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		spans []entry.Highlight
		want  []segment
	}{
		{
			name: "disjoint spans with gaps",
			raw:  "ab cd ef",
			spans: []entry.Highlight{
				{Start: 0, End: 2, Category: "error"},
				{Start: 6, End: 8, Category: "ip"},
			},
			want: []segment{
				{0, 2, "error"},
				{2, 6, ""},
				{6, 8, "ip"},
			},
		},
		{
			name: "first emitted span owns overlap",
			raw:  "abcdef",
			spans: []entry.Highlight{
				{Start: 0, End: 4, Category: "timestamp"},
				{Start: 2, End: 6, Category: "number"},
			},
			want: []segment{
				{0, 4, "timestamp"},
				{4, 6, "number"},
			},
		},
		{
			name: "contained span fully shadowed",
			raw:  "abcdef",
			spans: []entry.Highlight{
				{Start: 0, End: 6, Category: "string"},
				{Start: 2, End: 4, Category: "number"},
			},
			want: []segment{
				{0, 6, "string"},
			},
		},
		{
			name: "out-of-range span ignored",
			raw:  "abc",
			spans: []entry.Highlight{
				{Start: 1, End: 9, Category: "error"},
			},
			want: []segment{
				{0, 3, ""},
			},
		},
		{
			name: "inverted span ignored",
			raw:  "abc",
			spans: []entry.Highlight{
				{Start: 2, End: 2, Category: "error"},
			},
			want: []segment{
				{0, 3, ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segments(tt.raw, tt.spans)
			if len(got) != len(tt.want) {
				t.Fatalf("segments = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segments[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSegments_CoverWholeLine(t *testing.T) {
	raw := "Sep 23 22:40:00 kernel: out of memory"
	spans := []entry.Highlight{
		{Start: 0, End: 15, Category: "timestamp"},
		{Start: 16, End: 22, Category: "path"},
	}

	var covered int
	for _, s := range segments(raw, spans) {
		covered += s.end - s.start
	}
	if covered != len(raw) {
		t.Errorf("segments cover %d bytes, want %d", covered, len(raw))
	}
}

// stripEscapes removes ANSI SGR sequences from a rendered line.
func stripEscapes(s string) string {
	var out []byte
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
