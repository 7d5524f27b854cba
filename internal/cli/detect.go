package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aquametrics/aquaindex/internal/detect"
)

// newDetectCmd creates the "detect" subcommand: pre-flight capability
// detection from column headers alone, no calculation performed.
func newDetectCmd() *cobra.Command {
	var input string
	var output string

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Report which indices a dataset can support",
		Long: `Inspect the column headers of a CSV dataset and report, per index,
whether enough recognized parameters are present to compute it. No row data
is read beyond the header; missing-parameter lists are informational only.`,
		Example: `  aquaindex detect --input samples.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := readTable(input)
			if err != nil {
				return err
			}

			caps := detect.DetectCapabilities(table.Headers)
			if output == "json" {
				return renderJSON(cmd.OutOrStdout(), caps)
			}
			renderCapabilities(cmd.OutOrStdout(), caps)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Path to the CSV dataset (required)")
	cmd.Flags().StringVar(&output, "output", "table", "Output format: table or json")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// renderCapabilities prints a per-index availability summary.
func renderCapabilities(w io.Writer, caps detect.Capabilities) {
	for _, avail := range []struct {
		a detect.IndexAvailability
	}{{caps.HPI}, {caps.MI}, {caps.WQI}} {
		verdict := "not available"
		if avail.a.Available {
			verdict = "available"
		}
		fmt.Fprintf(w, "%-4s %s (%d parameters matched)\n", avail.a.Index, verdict, len(avail.a.Matched))
		if len(avail.a.Matched) > 0 {
			fmt.Fprintf(w, "     matched: %s\n", strings.Join(avail.a.Matched, ", "))
		}
		if len(avail.a.Missing) > 0 {
			fmt.Fprintf(w, "     missing: %s\n", strings.Join(avail.a.Missing, ", "))
		}
	}
}
