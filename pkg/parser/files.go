package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExpandGlobs resolves file paths and glob patterns into a sorted list of
// unique paths. A pattern that matches nothing stays in the list as-is, so
// the caller reports it as a missing file instead of silently skipping it.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			add(pattern)
			continue
		}
		for _, m := range matches {
			add(m)
		}
	}

	sort.Strings(files)
	return files, nil
}

// DefaultMaxLineSize caps a single scanned line at 1 MiB. The engine's cost
// on a long line is proportional to line length times pattern count, so the
// reading layer bounds line length before the engine sees the text.
const DefaultMaxLineSize = 1024 * 1024

// ReadLines reads all lines from r with a bounded scanner. maxLineSize <= 0
// uses DefaultMaxLineSize. Context cancellation is checked between lines.
func ReadLines(ctx context.Context, r io.Reader, maxLineSize int) ([]string, error) {
	if maxLineSize <= 0 {
		maxLineSize = DefaultMaxLineSize
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
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

// ParseReader reads a whole document from r and parses it.
func ParseReader(ctx context.Context, r io.Reader, formatHint string, maxLineSize int) (*Result, error) {
	lines, err := ReadLines(ctx, r, maxLineSize)
	if err != nil {
		return nil, err
	}
	return Parse(strings.Join(lines, "\n"), formatHint), nil
}

// ParseFile reads and parses a single log file.
func ParseFile(ctx context.Context, path string, formatHint string, maxLineSize int) (*Result, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	defer f.Close()

	result, err := ParseReader(ctx, f, formatHint, maxLineSize)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return result, nil
}
