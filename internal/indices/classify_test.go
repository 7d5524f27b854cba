package indices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyBoundaryOwnership(t *testing.T) {
	tests := []struct {
		name     string
		classify func(float64) ClassificationRange
		value    float64
		want     string
	}{
		// HPI and WQI bands own their upper endpoint.
		{name: "hpi 25 is excellent", classify: ClassifyHPI, value: 25.0, want: "Excellent - Very low pollution"},
		{name: "hpi 50 is good", classify: ClassifyHPI, value: 50.0, want: "Good - Low to medium pollution"},
		{name: "hpi just above 50 is poor", classify: ClassifyHPI, value: 50.01, want: "Poor - Medium to high pollution"},
		{name: "hpi 100 is very poor", classify: ClassifyHPI, value: 100.0, want: "Very Poor - High pollution"},
		{name: "wqi 50 is excellent", classify: ClassifyWQI, value: 50.0, want: "Excellent"},
		{name: "wqi 100 is good", classify: ClassifyWQI, value: 100.0, want: "Good"},
		{name: "wqi 300 is very poor", classify: ClassifyWQI, value: 300.0, want: "Very Poor"},

		// The remaining indices own their lower endpoint.
		{name: "mi 1 is class three", classify: ClassifyMI, value: 1.0, want: "Slightly Affected"},
		{name: "mi just below 1 is pure", classify: ClassifyMI, value: 0.99, want: "Pure"},
		{name: "mi 6 is seriously affected", classify: ClassifyMI, value: 6.0, want: "Seriously Affected"},
		{name: "cdeg 1 is medium", classify: ClassifyCDEG, value: 1.0, want: "Medium contamination"},
		{name: "cdeg 3 is high", classify: ClassifyCDEG, value: 3.0, want: "High contamination"},
		{name: "cdeg negative is low", classify: ClassifyCDEG, value: -2.5, want: "Low contamination"},
		{name: "hei 10 is medium", classify: ClassifyHEI, value: 10.0, want: "Medium contamination"},
		{name: "hei 20 is high", classify: ClassifyHEI, value: 20.0, want: "High contamination"},
		{name: "pig 2 is high", classify: ClassifyPIG, value: 2.0, want: "High pollution"},
		{name: "pig 5 is very high", classify: ClassifyPIG, value: 5.0, want: "Very high pollution"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.classify(tt.value).Label)
		})
	}
}

func TestClassifyRoundsToReportedPrecision(t *testing.T) {
	// Accumulated floating-point error must not flip a value that renders
	// equal to a boundary onto the wrong side of it.
	tests := []struct {
		name     string
		classify func(float64) ClassificationRange
		value    float64
		want     string
	}{
		{name: "wqi hair above 50", classify: ClassifyWQI, value: 50.000000000000007, want: "Excellent"},
		{name: "hpi hair below 50", classify: ClassifyHPI, value: 49.999999999999993, want: "Good - Low to medium pollution"},
		{name: "mi hair below 1", classify: ClassifyMI, value: 0.9999999999999999, want: "Slightly Affected"},
		{name: "hei hair above 10", classify: ClassifyHEI, value: 10.000000000000002, want: "Medium contamination"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.classify(tt.value).Label)
		})
	}
}

func TestClassificationTablesAreWellFormed(t *testing.T) {
	tables := []classificationTable{hpiTable, miTable, wqiTable, cdegTable, heiTable, pigTable}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			require.NotEmpty(t, table.ranges)

			first := table.ranges[0]
			last := table.ranges[len(table.ranges)-1]
			assert.Nil(t, first.Min, "scale is open at the bottom")
			assert.Nil(t, last.Max, "scale is open at the top")

			for i := 1; i < len(table.ranges); i++ {
				prev := table.ranges[i-1]
				cur := table.ranges[i]
				require.NotNil(t, prev.Max)
				require.NotNil(t, cur.Min)
				assert.InDelta(t, *prev.Max, *cur.Min, 0, "adjacent bands share their boundary")
				assert.Greater(t, cur.Severity, prev.Severity, "severity increases along the scale")
			}
		})
	}
}

func TestClassifyMatchesExactlyOneBand(t *testing.T) {
	tables := []classificationTable{hpiTable, miTable, wqiTable, cdegTable, heiTable, pigTable}
	samples := []float64{-1e6, -3.0, -0.5, 0.0, 0.3, 0.9999, 1.0, 2.0, 3.0, 4.0,
		5.0, 6.0, 10.0, 20.0, 25.0, 50.0, 75.0, 100.0, 200.0, 300.0, 1e6}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			for _, v := range samples {
				matched := 0
				for _, r := range table.ranges {
					if table.contains(r, v) {
						matched++
					}
				}
				assert.Equal(t, 1, matched, "value %g", v)
			}
		})
	}
}

func TestClassifyMISeverityOrdering(t *testing.T) {
	values := []float64{0.1, 0.5, 1.5, 3.0, 5.0, 7.0}
	classes := []string{"Class I", "Class II", "Class III", "Class IV", "Class V", "Class VI"}
	for i, v := range values {
		band := ClassifyMI(v)
		assert.Equal(t, classes[i], band.Class)
		assert.Equal(t, i+1, band.Severity)
	}
}
