package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"Station, As ,Pb,TDS",
		"STN-001,30,5,450",
		"",
		"STN-002,12,,380",
		"STN-003,8,2",
	}, "\n")

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Station", "As", "Pb", "TDS"}, table.Headers, "headers are trimmed")
	require.Len(t, table.Rows, 3, "blank record skipped")

	assert.Equal(t, "30", table.Rows[0]["As"])
	assert.Equal(t, "", table.Rows[1]["Pb"])

	_, ok := table.Rows[2]["TDS"]
	assert.False(t, ok, "short record leaves trailing cells absent")
}

func TestReadCSVEmptyInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = ReadCSV(strings.NewReader("Station,As\n"))
	assert.ErrorIs(t, err, ErrEmptyTable, "header without data rows")
}

func TestReadCSVQuotedCells(t *testing.T) {
	input := "Station,City,As\n\"STN-001\",\"Bengaluru, Urban\",30\n"

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Bengaluru, Urban", table.Rows[0]["City"])
}
