// LogLens - Log Classification and Extraction Tool
//
// LogLens ingests arbitrary, unlabeled log text and turns it into structured
// records: per-line timestamp, severity level, source, message, and
// highlight spans for rendering. The format family is inferred from the
// content; no prior knowledge of the log's origin is required.
package main

import (
	"os"

	"loglens/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
