// Package tui implements the interactive station-results browser shown by
// "aquaindex results".
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aquametrics/aquaindex/internal/engine"
	"github.com/aquametrics/aquaindex/internal/indices"
)

// Layout constants.
const (
	stationColWidth = 18
	valueColWidth   = 10
	classColWidth   = 32
	tableHeight     = 20
)

//nolint:gochecknoglobals // Static style definitions.
var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// ResultsModel is the bubbletea model for the batch results browser: a
// scrollable station table with a detail pane for the selected station.
type ResultsModel struct {
	result *engine.BatchCalculationResult
	table  table.Model
}

// NewResultsModel builds the browser model from a completed batch.
func NewResultsModel(result *engine.BatchCalculationResult) ResultsModel {
	columns := []table.Column{
		{Title: "Station", Width: stationColWidth},
		{Title: "HPI", Width: valueColWidth},
		{Title: "MI", Width: valueColWidth},
		{Title: "WQI", Width: valueColWidth},
		{Title: "PIG", Width: valueColWidth},
		{Title: "Classification", Width: classColWidth},
	}

	rows := make([]table.Row, 0, len(result.Calculations))
	for i := range result.Calculations {
		calc := &result.Calculations[i]
		rows = append(rows, table.Row{
			calc.Station.ID,
			valueCell(calc.HPI),
			valueCell(calc.MI),
			valueCell(calc.WQI),
			valueCell(calc.PIG),
			worstClassification(calc),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return ResultsModel{result: result, table: t}
}

// Init implements tea.Model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(min(msg.Height-8, len(m.result.Calculations)+1))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table, the selected station's detail line and a footer.
func (m ResultsModel) View() string {
	title := titleStyle.Render(fmt.Sprintf("Batch %s — %d processed, %d failed",
		m.result.ID, m.result.ProcessedStations, m.result.FailedStations))

	detail := ""
	if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.result.Calculations) {
		detail = m.detailLine(&m.result.Calculations[cursor])
	}

	footer := footerStyle.Render("↑/↓ navigate · q quit")

	return title + "\n" + baseStyle.Render(m.table.View()) + "\n" + detail + "\n" + footer
}

// detailLine summarizes every computed index for the selected station.
func (m ResultsModel) detailLine(calc *engine.StationCalculation) string {
	line := " " + calc.Station.ID + ":"
	for _, entry := range []struct {
		name   string
		result *indices.IndexResult
	}{
		{"HPI", calc.HPI}, {"MI", calc.MI}, {"WQI", calc.WQI},
		{"CDEG", calc.CDEG}, {"HEI", calc.HEI}, {"PIG", calc.PIG},
	} {
		if entry.result == nil {
			continue
		}
		line += fmt.Sprintf(" %s %s (%s)", entry.name,
			indices.FormatValue(entry.result.Value), entry.result.Classification)
	}
	return footerStyle.Render(line)
}

func valueCell(r *indices.IndexResult) string {
	if r == nil {
		return "-"
	}
	return indices.FormatValue(r.Value)
}

// worstClassification picks the most severe label across computed indices.
func worstClassification(calc *engine.StationCalculation) string {
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
