package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loglens/pkg/config"
	"loglens/pkg/detector"
	"loglens/pkg/output"
	"loglens/pkg/parser"
)

// ExitCode is set by commands to indicate the result. The parse command sets
// it to 1 when any parsed file contained error-level entries, so scripts can
// branch on the exit status without reading the report.
var ExitCode = 0

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	Output      string
	Format      string
	Level       string
	Color       bool
	Verbose     bool
	Quiet       bool
	MaxLineSize int
	ConfigFile  string
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <log-file|glob>...",
		Short: "Parse log files into structured entries",
		Long: `Parse log files into structured entries.

Each non-blank line yields one entry with a best-effort timestamp, severity
level, source token, residual message, and highlight spans. Line numbers
refer to the original file; blank lines are skipped but keep their slot.

The format family is detected from the filename and leading content unless
forced with --format. Forcing a format does not change extraction behavior.

Sources may also come from a config file: with no positional arguments the
files and globs listed under the config's "sources" key are parsed instead.

Example:
  loglens parse /var/log/syslog
  loglens parse --output json app.log
  loglens parse --level ERROR --color '/var/log/myapp/*.log'
  loglens parse --config loglens.yaml`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Force a format label, skipping detection")
	cmd.Flags().StringVarP(&opts.Level, "level", "l", "", "Show only entries with this severity level")
	cmd.Flags().BoolVar(&opts.Color, "color", false, "Colorize highlight spans in text output")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show extracted fields per entry")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no entries")
	cmd.Flags().IntVar(&opts.MaxLineSize, "max-line-size", 0, "Maximum line size in bytes (0 = default 1MiB)")
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Config file with defaults")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	sources := args
	if len(sources) == 0 {
		sources = cfg.Sources
	}
	if len(sources) == 0 {
		return fmt.Errorf("no log sources: pass files or globs, or list them under sources in the config")
	}

	files, err := parser.ExpandGlobs(sources)
	if err != nil {
		return fmt.Errorf("expanding log sources: %w", err)
	}

	formatter, err := newFormatter(cfg.Output, opts.Quiet)
	if err != nil {
		return err
	}

	d := detector.New(detector.WithSampleSize(cfg.SampleSize))

	for _, file := range files {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			return fmt.Errorf("log file not found: %s", file)
		}

		hint := cfg.Format
		if hint == "" {
			hint = detector.FromFilename(file)
		}
		if hint == "" {
			label, _, err := d.DetectFile(ctx, file)
			if err != nil {
				return fmt.Errorf("detecting format of %s: %w", file, err)
			}
			hint = label
		}

		result, err := parser.ParseFile(ctx, file, hint, cfg.MaxLineSize)
		if err != nil {
			return err
		}

		report := output.NewReport(file, result)
		report.Entries = output.FilterLevel(report.Entries, cfg.Output.Level)

		if report.HasErrors() {
			ExitCode = 1
		}

		if err := formatter.Format(ctx, report, os.Stdout); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
	}

	return nil
}

// resolveConfig loads the config file if given and overlays any flags the
// user set explicitly.
func resolveConfig(ctx context.Context, cmd *cobra.Command, opts *ParseOptions) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(ctx, opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Format = opts.Output
	}
	if flags.Changed("format") {
		cfg.Format = opts.Format
	}
	if flags.Changed("level") {
		cfg.Output.Level = opts.Level
	}
	if flags.Changed("color") {
		cfg.Output.Color = opts.Color
	}
	if flags.Changed("verbose") {
		cfg.Output.Verbose = opts.Verbose
	}
	if flags.Changed("max-line-size") {
		cfg.MaxLineSize = opts.MaxLineSize
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	// Quiet is CLI-only and wins over verbose.
	if opts.Quiet {
		cfg.Output.Verbose = false
	}

	return cfg, nil
}

func newFormatter(cfg config.OutputConfig, quiet bool) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: cfg.Verbose,
		Quiet:   quiet,
		Color:   cfg.Color,
	}

	switch cfg.Format {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", cfg.Format)
	}
}
