// Package cli provides the command-line interface for LogLens.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loglens/internal/cli/commands"
	"loglens/internal/cli/plugins"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	// Check if the first argument might be a plugin command
	if len(os.Args) > 1 {
		potentialCommand := os.Args[1]
		if len(potentialCommand) > 0 && potentialCommand[0] != '-' {
			if !isBuiltinCommand(rootCmd, potentialCommand) {
				if pluginPath, err := plugins.FindPlugin(potentialCommand); err == nil {
					return plugins.Execute(pluginPath, os.Args[2:])
				}
			}
		}
	}

	if err := rootCmd.Execute(); err != nil {
		if len(os.Args) > 1 {
			potentialCommand := os.Args[1]
			if len(potentialCommand) > 0 && potentialCommand[0] != '-' {
				if !isBuiltinCommand(rootCmd, potentialCommand) {
					_, _ = fmt.Fprintln(os.Stderr, plugins.FormatNotFoundError(potentialCommand))
					return 2
				}
			}
		}
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return commands.ExitCode
}

// isBuiltinCommand checks if a command name is a built-in cobra command.
func isBuiltinCommand(rootCmd *cobra.Command, name string) bool {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	return name == "help" || name == "completion"
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "loglens",
		Short: "Classify and structure unlabeled log files",
		Long: `LogLens turns arbitrary, unlabeled log text into structured records.

For every line it extracts:
  - timestamp (ISO, syslog, Apache/Nginx, RFC3339 shapes)
  - severity level (TRACE through CRITICAL)
  - source/component token
  - residual message
  - highlight spans (timestamps, levels, IPs, URLs, paths, numbers, strings)

The overall format family (syslog, dmesg, kubernetes, mysql, nginx, apache,
docker, application, generic) is inferred from a sample of leading lines.
Parsing is best-effort: unrecognized fields are left empty and the raw line
is never discarded.

PLUGINS:
  LogLens supports plugins for extended functionality. Plugins are standalone
  binaries named loglens-<command> that are automatically discovered and
  invoked.

  Plugin locations (searched in order):
    1. Same directory as the loglens binary
    2. ~/.loglens/plugins/
    3. Anywhere in PATH`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
