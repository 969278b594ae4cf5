package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loglens/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output     string
	SampleSize int
	ShowScores bool
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <log-file>",
		Short: "Detect the format family of a log file",
		Long: `Analyze a log file to detect its format family.

Samples leading lines and scores them against per-format signal patterns
and keyword sets. Candidates: syslog, dmesg, kubernetes, mysql, nginx,
apache, docker, application, generic. Absence of any signal degrades to
generic; detection never fails.

The filename is also checked for hints (e.g. "nginx" or "dmesg" in the
name), reported separately from the content-based result.

Example:
  loglens detect /var/log/syslog
  loglens detect --scores app.log
  loglens detect --sample 50 --output json /var/log/large.log`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", detector.DefaultSampleSize, "Number of leading lines to sample")
	cmd.Flags().BoolVar(&opts.ShowScores, "scores", false, "Show the score for every candidate format")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	logFile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		return fmt.Errorf("log file not found: %s", logFile)
	}

	d := detector.New(detector.WithSampleSize(opts.SampleSize))

	label, scores, err := d.DetectFile(ctx, logFile)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	hint := detector.FromFilename(logFile)

	switch opts.Output {
	case "json":
		return outputDetectJSON(logFile, label, hint, scores, opts)
	default:
		return outputDetectText(logFile, label, hint, scores, opts)
	}
}

func outputDetectText(logFile, label, hint string, scores []detector.Score, opts *DetectOptions) error {
	fmt.Println("=== Log Format Detection ===")
	fmt.Println()
	fmt.Printf("File: %s\n", logFile)
	fmt.Printf("Detected format: %s\n", label)
	if hint != "" {
		fmt.Printf("Filename hint: %s\n", hint)
	}
	fmt.Println()

	if opts.ShowScores {
		fmt.Println("--- Scores ---")
		for _, s := range scores {
			fmt.Printf("  %-12s %d\n", s.Label, s.Score)
		}
		fmt.Println()
	}

	return nil
}

// detectJSON is the JSON output shape for the detect command.
type detectJSON struct {
	File         string           `json:"file"`
	Format       string           `json:"format"`
	FilenameHint string           `json:"filename_hint,omitempty"`
	Scores       []detector.Score `json:"scores,omitempty"`
}

func outputDetectJSON(logFile, label, hint string, scores []detector.Score, opts *DetectOptions) error {
	out := detectJSON{
		File:         logFile,
		Format:       label,
		FilenameHint: hint,
	}
	if opts.ShowScores {
		out.Scores = scores
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
