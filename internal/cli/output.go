package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aquametrics/aquaindex/internal/engine"
	"github.com/aquametrics/aquaindex/internal/indices"
)

// Rendering styles. Colors only apply on terminals; lipgloss degrades to
// plain text elsewhere.
//
//nolint:gochecknoglobals // Static style definitions.
var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// renderJSON writes v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderBatchTable prints per-station index values followed by the batch
// summary and, when present, the row error list.
func renderBatchTable(w io.Writer, result *engine.BatchCalculationResult) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf(
		"%-18s %10s %8s %10s %9s %8s %8s  %s",
		"STATION", "HPI", "MI", "WQI", "CDEG", "HEI", "PIG", "CLASSIFICATION")))

	for i := range result.Calculations {
		calc := &result.Calculations[i]
		fmt.Fprintf(w, "%-18s %10s %8s %10s %9s %8s %8s  %s\n",
			truncate(calc.Station.ID, 18),
			cell(calc.HPI), cell(calc.MI), cell(calc.WQI),
			cell(calc.CDEG), cell(calc.HEI), cell(calc.PIG),
			dominantClassification(calc))

		for _, warn := range calc.Warnings {
			fmt.Fprintf(w, "  %s\n", warningStyle.Render(
				fmt.Sprintf("warning: %s: %s", warn.Symbol, warn.Message)))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %d total, %d processed, %d failed\n",
		headerStyle.Render("SUMMARY"),
		result.TotalStations, result.ProcessedStations, result.FailedStations)
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("batch %s completed in %s",
		result.ID, result.CompletedAt.Sub(result.StartedAt).Round(time.Millisecond))))

	if len(result.Errors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("ERRORS"))
		for _, rowErr := range result.Errors {
			id := rowErr.StationID
			if id == "" {
				id = "(unknown station)"
			}
			fmt.Fprintln(w, errorStyle.Render(
				fmt.Sprintf("  row %d %s: %s", rowErr.Row, id, rowErr.Message)))
		}
	}
}

// cell formats an index value or a dash for an absent result.
func cell(r *indices.IndexResult) string {
	if r == nil {
		return "-"
	}
	return indices.FormatValue(r.Value)
}

// dominantClassification picks the most severe classification across the
// station's computed indices for the summary column.
func dominantClassification(calc *engine.StationCalculation) string {
	var worst *indices.IndexResult
	for _, r := range []*indices.IndexResult{calc.HPI, calc.MI, calc.WQI, calc.CDEG, calc.HEI, calc.PIG} {
		if r == nil {
			continue
		}
		if worst == nil || r.Severity > worst.Severity {
			worst = r
		}
	}
	if worst == nil {
		return "-"
	}
	return worst.Classification
}

// truncate shortens s to at most max runes, ellipsized.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	const suffix = "..."
	return string(runes[:max-len(suffix)]) + suffix
}
