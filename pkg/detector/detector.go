// Package detector infers the format family of a log document from a small
// sample of its leading lines.
package detector

import (
	"bufio"
	"context"
	"os"
	"strings"
)

// DefaultSampleSize is the number of leading lines scored during detection.
// Leading lines are assumed representative of the document.
const DefaultSampleSize = 10

// Score is the accumulated score for one format label.
type Score struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Detector scores log lines against per-format signal tables.
type Detector struct {
	signals    []formatSignals
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of leading lines to score.
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a Detector with the built-in signal tables.
func New(opts ...Option) *Detector {
	d := &Detector{
		signals:    defaultSignals(),
		sampleSize: DefaultSampleSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect returns the highest-scoring format label for the given lines.
// Ties break toward the earlier label in declaration order. An empty sample
// scores zero everywhere and degrades to "generic"; Detect never fails.
func (d *Detector) Detect(lines []string) string {
	scores := d.Scores(lines)

	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	if best.Score == 0 {
		return FormatGeneric
	}
	return best.Label
}

// Scores returns the per-format scores for the given lines, in label
// declaration order. Only the first sampleSize lines are scored; blank lines
// count toward the sample and still feed the generic floor.
func (d *Detector) Scores(lines []string) []Score {
	sample := lines
	if len(sample) > d.sampleSize {
		sample = sample[:d.sampleSize]
	}

	scores := make([]Score, len(d.signals))
	for i, fs := range d.signals {
		scores[i].Label = fs.label
	}

	for _, line := range sample {
		lower := strings.ToLower(line)
		for i, fs := range d.signals {
			for _, c := range fs.checks {
				if c.matches(line, lower) {
					scores[i].Score += c.weight
				}
			}
		}
	}

	return scores
}

// DetectFile samples a file's leading lines and detects its format.
func (d *Detector) DetectFile(ctx context.Context, path string) (string, []Score, error) {
	lines, err := d.sampleFile(ctx, path)
	if err != nil {
		return "", nil, err
	}
	return d.Detect(lines), d.Scores(lines), nil
}

// sampleFile reads up to sampleSize lines from the head of a file.
func (d *Detector) sampleFile(ctx context.Context, path string) ([]string, error) {
	file, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() && len(lines) < d.sampleSize {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// Detect classifies lines with a default Detector.
func Detect(lines []string) string {
	return New().Detect(lines)
}
