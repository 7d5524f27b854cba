// Package cli implements the aquaindex command-line interface: batch
// calculation, capability detection, template generation and an interactive
// results browser. The CLI is orchestration glue around internal/engine;
// all index semantics live in internal/indices.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aquametrics/aquaindex/internal/config"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration.

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root Cobra command for the aquaindex CLI.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "aquaindex",
		Short:   "Water-quality pollution index calculator",
		Long:    "aquaindex: compute HPI, MI, WQI and supplementary pollution indices from tabular water-quality measurements",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := "info"
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				level = "debug"
			}
			if err := config.InitLogger(level); err != nil {
				return err
			}
			logger = log.With().Str("component", "cli").Logger()
			logger.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			config.CloseLogFile()
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newCalculateCmd(), newDetectCmd(), newTemplateCmd(), newResultsCmd())

	return cmd
}

const rootCmdExample = `  # Calculate all indices from a CSV of station measurements
  aquaindex calculate --input samples.csv

  # Measurements recorded in mg/L instead of ppb
  aquaindex calculate --input samples.csv --unit mg/L

  # Use custom standards and emit JSON
  aquaindex calculate --input samples.csv --standards bis.yaml --output json

  # Check which indices a dataset supports before uploading
  aquaindex detect --input samples.csv

  # Generate a blank submission template
  aquaindex template --output template.csv

  # Browse per-station results interactively
  aquaindex results --input samples.csv`
