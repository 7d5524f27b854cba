package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aquametrics/aquaindex/internal/config"
	"github.com/aquametrics/aquaindex/internal/engine"
	"github.com/aquametrics/aquaindex/internal/tui"
)

// newResultsCmd creates the "results" subcommand: run a batch and browse
// the per-station results in an interactive table.
func newResultsCmd() *cobra.Command {
	var input string
	var unit string
	var standardsPath string

	cmd := &cobra.Command{
		Use:     "results",
		Short:   "Browse per-station results interactively",
		Example: `  aquaindex results --input samples.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return fmt.Errorf("results requires an interactive terminal; use 'calculate --output json' instead")
			}

			table, err := readTable(input)
			if err != nil {
				return err
			}

			opts := engine.DefaultOptions()
			opts.Unit = unit
			if standardsPath != "" {
				overrides, err := config.LoadStandardsOverrides(standardsPath)
				if err != nil {
					return err
				}
				opts.Standards = overrides
			}

			result, err := engine.NewProcessor().Run(cmd.Context(), table, opts)
			if err != nil {
				return err
			}
			if result.ProcessedStations == 0 {
				return fmt.Errorf("no station could be processed (%d rows failed)", result.FailedStations)
			}

			model := tui.NewResultsModel(result)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Path to the CSV dataset (required)")
	cmd.Flags().StringVar(&unit, "unit", "", "Declared unit of metal concentrations")
	cmd.Flags().StringVar(&standardsPath, "standards", "", "Path to a YAML standards override file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
