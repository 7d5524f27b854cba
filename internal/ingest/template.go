package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/aquametrics/aquaindex/internal/standards"
)

// TemplateMetadataColumns are the identity columns emitted ahead of the
// parameter columns in generated templates.
//
//nolint:gochecknoglobals // Static column list.
var TemplateMetadataColumns = []string{"Station", "State", "City", "Latitude", "Longitude", "Year"}

// WriteTemplate writes a blank CSV template for data submission: the
// metadata columns, one column per registered parameter symbol, and one
// example row. A template's headers always pass capability detection for
// every index.
func WriteTemplate(w io.Writer, reg *standards.Registry) error {
	if reg == nil {
		reg = standards.Default()
	}

	writer := csv.NewWriter(w)

	header := make([]string, 0, len(TemplateMetadataColumns)+reg.Len())
	header = append(header, TemplateMetadataColumns...)
	header = append(header, reg.Symbols()...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing template header: %w", err)
	}

	example := make([]string, len(header))
	copy(example, []string{"STN-001", "Example State", "Example City", "12.9716", "77.5946", "2026"})
	if err := writer.Write(example); err != nil {
		return fmt.Errorf("writing template example row: %w", err)
	}

	writer.Flush()
	return writer.Error()
}
