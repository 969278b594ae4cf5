// Package render colorizes raw log lines using their highlight spans.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"loglens/pkg/entry"
)

// styles maps highlight categories to terminal styles.
func styles() map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"timestamp": lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		"error":     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		"warning":   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		"info":      lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		"debug":     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		"level":     lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
		"ip":        lipgloss.NewStyle().Foreground(lipgloss.Color("41")),
		"url":       lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		"path":      lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
		"number":    lipgloss.NewStyle().Foreground(lipgloss.Color("170")),
		"string":    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	}
}

// Renderer applies category styles to highlight spans. With color disabled
// it returns lines unchanged.
type Renderer struct {
	styles map[string]lipgloss.Style
	color  bool
}

// New creates a Renderer. color=false yields a pass-through renderer.
func New(color bool) *Renderer {
	r := &Renderer{color: color}
	if color {
		r.styles = styles()
	}
	return r
}

// Line renders a raw line with its highlight spans colorized. Overlapping
// spans resolve to the first-emitted span per byte.
func (r *Renderer) Line(raw string, spans []entry.Highlight) string {
	if !r.color || len(spans) == 0 {
		return raw
	}

	var b strings.Builder
	for _, seg := range segments(raw, spans) {
		text := raw[seg.start:seg.end]
		style, ok := r.styles[seg.category]
		if seg.category == "" || !ok {
			b.WriteString(text)
			continue
		}
		b.WriteString(style.Render(text))
	}
	return b.String()
}

type segment struct {
	start, end int
	category   string
}

// segments splits a line into runs each owned by at most one span. A byte
// covered by several spans belongs to the earliest-emitted one. Spans with
// out-of-range offsets are ignored.
func segments(raw string, spans []entry.Highlight) []segment {
	owner := make([]int, len(raw))
	for i := range owner {
		owner[i] = -1
	}
	for i, sp := range spans {
		if sp.Start < 0 || sp.End > len(raw) || sp.Start >= sp.End {
			continue
		}
		for b := sp.Start; b < sp.End; b++ {
			if owner[b] == -1 {
				owner[b] = i
			}
		}
	}

	var segs []segment
	for b := 0; b < len(raw); {
		o := owner[b]
		end := b + 1
		for end < len(raw) && owner[end] == o {
			end++
		}
		category := ""
		if o >= 0 {
			category = spans[o].Category
		}
		segs = append(segs, segment{start: b, end: end, category: category})
		b = end
	}
	return segs
}
