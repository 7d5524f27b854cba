package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aquametrics/aquaindex/internal/config"
	"github.com/aquametrics/aquaindex/internal/engine"
	"github.com/aquametrics/aquaindex/internal/ingest"
)

// calculateParams holds the flag values for the calculate command.
type calculateParams struct {
	input     string
	unit      string
	standards string
	output    string
	workers   int
	skipWQI   bool
	skipHPI   bool
	skipMI    bool
}

// newCalculateCmd creates the "calculate" subcommand: run the full batch
// pipeline over a CSV and print per-station results plus the batch summary.
func newCalculateCmd() *cobra.Command {
	var params calculateParams

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute pollution indices for every station in a CSV",
		Long: `Compute pollution indices for every row of a CSV dataset.

Each row is one monitoring station. Columns are matched to chemical
parameters by name, tolerating spelling variants; metal concentrations are
normalized to ppb before any formula is applied. Rows that cannot be
processed are reported individually and never stop the batch.`,
		Example: calculateExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.input, "input", "", "Path to the CSV dataset (required)")
	cmd.Flags().StringVar(&params.unit, "unit", "", "Declared unit of metal concentrations: ppb (default), ug/L, mg/L or ppm")
	cmd.Flags().StringVar(&params.standards, "standards", "", "Path to a YAML standards override file")
	cmd.Flags().StringVar(&params.output, "output", "table", "Output format: table or json")
	cmd.Flags().IntVar(&params.workers, "workers", engine.DefaultWorkers, "Concurrent row calculations")
	cmd.Flags().BoolVar(&params.skipWQI, "skip-wqi", false, "Skip the Water Quality Index")
	cmd.Flags().BoolVar(&params.skipHPI, "skip-hpi", false, "Skip HPI and the supplementary CDEG/HEI/PIG indices")
	cmd.Flags().BoolVar(&params.skipMI, "skip-mi", false, "Skip the Metal Index")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

const calculateExample = `  # All indices, concentrations already in ppb
  aquaindex calculate --input samples.csv

  # mg/L measurements, metals only
  aquaindex calculate --input samples.csv --unit mg/L --skip-wqi

  # JSON output for downstream tooling
  aquaindex calculate --input samples.csv --output json > results.json`

func runCalculate(cmd *cobra.Command, params calculateParams) error {
	table, err := readTable(params.input)
	if err != nil {
		return err
	}

	opts := engine.DefaultOptions()
	opts.CalculateWQI = !params.skipWQI
	opts.CalculateHPI = !params.skipHPI
	opts.CalculateMI = !params.skipMI
	opts.Unit = params.unit
	opts.Workers = params.workers

	if params.standards != "" {
		overrides, err := config.LoadStandardsOverrides(params.standards)
		if err != nil {
			return err
		}
		opts.Standards = overrides
	}

	result, err := engine.NewProcessor().Run(cmd.Context(), table, opts)
	if err != nil {
		return err
	}

	switch params.output {
	case "json":
		if err := renderJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	case "table":
		renderBatchTable(cmd.OutOrStdout(), result)
	default:
		return fmt.Errorf("unknown output format %q (want table or json)", params.output)
	}

	// Zero processed stations is a hard failure for the calling workflow.
	if result.ProcessedStations == 0 {
		return fmt.Errorf("no station could be processed (%d rows failed)", result.FailedStations)
	}
	return nil
}

// readTable opens and decodes the input CSV.
func readTable(path string) (*ingest.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	table, err := ingest.ReadCSV(f)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("input", path).Int("rows", len(table.Rows)).Msg("dataset loaded")
	return table, nil
}
