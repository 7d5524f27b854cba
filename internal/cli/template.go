package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aquametrics/aquaindex/internal/config"
	"github.com/aquametrics/aquaindex/internal/ingest"
	"github.com/aquametrics/aquaindex/internal/standards"
)

// newTemplateCmd creates the "template" subcommand: emit a blank CSV
// submission template covering every registered parameter.
func newTemplateCmd() *cobra.Command {
	var output string
	var standardsPath string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Generate a blank CSV submission template",
		Long: `Write a CSV template with the metadata columns and one column per
registered chemical parameter, plus one example row. Datasets filled from
the template pass capability detection for every index.`,
		Example: `  aquaindex template --output template.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := standards.Default()
			if standardsPath != "" {
				overrides, err := config.LoadStandardsOverrides(standardsPath)
				if err != nil {
					return err
				}
				reg = reg.WithOverrides(overrides)
			}

			if output == "" || output == "-" {
				return ingest.WriteTemplate(cmd.OutOrStdout(), reg)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating template file: %w", err)
			}
			defer f.Close()

			if err := ingest.WriteTemplate(f, reg); err != nil {
				return err
			}
			cmd.Printf("Template written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "-", "Destination file (- for stdout)")
	cmd.Flags().StringVar(&standardsPath, "standards", "", "Path to a YAML standards override file")

	return cmd
}
