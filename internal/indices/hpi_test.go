package indices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquametrics/aquaindex/internal/standards"
)

func concMap(pairs ...any) *ConcentrationMap {
	m := NewConcentrationMap()
	for i := 0; i < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1].(float64))
	}
	return m
}

func TestCalculateHPI(t *testing.T) {
	tests := []struct {
		name           string
		conc           *ConcentrationMap
		wantValue      float64
		wantLabel      string
		wantSeverity   int
		wantParameters []string
	}{
		{
			name:           "single arsenic at boundary",
			conc:           concMap("As", 30.0),
			wantValue:      50.0,
			wantLabel:      "Good - Low to medium pollution",
			wantSeverity:   2,
			wantParameters: []string{"As"},
		},
		{
			name: "arsenic and lead",
			// As: Wi=0.02 Qi=50; Pb: Wi=0.1 Qi=200.
			// HPI = (0.02*50 + 0.1*200) / 0.12 = 175.
			conc:           concMap("As", 30.0, "Pb", 20.0),
			wantValue:      175.0,
			wantLabel:      "Unsuitable - Critical pollution",
			wantSeverity:   5,
			wantParameters: []string{"As", "Pb"},
		},
		{
			name:           "ideal concentrations give zero",
			conc:           concMap("As", 10.0, "Cu", 50.0),
			wantValue:      0.0,
			wantLabel:      "Excellent - Very low pollution",
			wantSeverity:   1,
			wantParameters: []string{"As", "Cu"},
		},
		{
			name:           "wqi parameters are ignored",
			conc:           concMap("pH", 7.2, "TDS", 450.0, "As", 30.0),
			wantValue:      50.0,
			wantLabel:      "Good - Low to medium pollution",
			wantSeverity:   2,
			wantParameters: []string{"As"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateHPI(tt.conc, nil)
			require.NotNil(t, result)
			assert.InDelta(t, tt.wantValue, result.Value, 1e-9)
			assert.Equal(t, tt.wantLabel, result.Classification)
			assert.Equal(t, tt.wantSeverity, result.Severity)
			assert.Equal(t, tt.wantParameters, result.ParametersAnalyzed)
		})
	}
}

func TestCalculateHPINilOnNoUsableMetal(t *testing.T) {
	assert.Nil(t, CalculateHPI(nil, nil))
	assert.Nil(t, CalculateHPI(NewConcentrationMap(), nil))
	assert.Nil(t, CalculateHPI(concMap("pH", 7.0, "TDS", 300.0), nil), "wqi-only input")
	assert.Nil(t, CalculateHPI(concMap("Xx", 5.0), nil), "unknown symbol")
}

func TestCalculateHPIExcludesDegenerateStandards(t *testing.T) {
	reg := standards.Default().WithOverrides(map[string]standards.ParameterStandard{
		"As": {Name: "Arsenic", Kind: standards.KindMetal, Si: 10, Ii: 10, MAC: 50},
	})

	// As alone cannot contribute when Si == Ii.
	assert.Nil(t, CalculateHPI(concMap("As", 30.0), reg))

	// With Pb present, As is skipped and Pb carries the index.
	result := CalculateHPI(concMap("As", 30.0, "Pb", 5.0), reg)
	require.NotNil(t, result)
	assert.Equal(t, []string{"Pb"}, result.ParametersAnalyzed)
	assert.InDelta(t, 50.0, result.Value, 1e-9)
}

func TestCalculateHPIIsIdempotent(t *testing.T) {
	conc := concMap("As", 30.0, "Pb", 20.0, "Cd", 1.5)
	first := CalculateHPI(conc, nil)
	second := CalculateHPI(conc, nil)
	require.NotNil(t, first)
	assert.Equal(t, first, second)
}

func TestCalculateHPIBatch(t *testing.T) {
	stations := []StationConcentrations{
		{StationID: "W-001", Concentrations: concMap("As", 30.0)},
		{StationID: "W-002", Concentrations: concMap("pH", 7.0)},
		{StationID: "W-003", Concentrations: concMap("Pb", 20.0)},
	}

	results := CalculateHPIBatch(stations, nil)
	require.Len(t, results, 3)

	assert.Equal(t, "W-001", results[0].StationID)
	require.NotNil(t, results[0].Result)
	assert.InDelta(t, 50.0, results[0].Result.Value, 1e-9)

	assert.Equal(t, "W-002", results[1].StationID)
	assert.Nil(t, results[1].Result, "station without metals yields nil, not an error")

	require.NotNil(t, results[2].Result)
	assert.InDelta(t, 200.0, results[2].Result.Value, 1e-9)
}

func TestValidateHPIInput(t *testing.T) {
	warnings := ValidateHPIInput(concMap("As", -5.0, "Pb", 150.0, "Cd", 1.0), nil)
	require.Len(t, warnings, 2)
	assert.Equal(t, "As", warnings[0].Symbol)
	assert.Contains(t, warnings[0].Message, "negative")
	assert.Equal(t, "Pb", warnings[1].Symbol)
	assert.Contains(t, warnings[1].Message, "Si")
}

func TestAnalyzeHPI(t *testing.T) {
	contributions := AnalyzeHPI(concMap("As", 30.0, "Pb", 20.0), nil)
	require.Len(t, contributions, 2)

	// Pb dominates: contribution 0.1*200/0.12 vs As 0.02*50/0.12.
	assert.Equal(t, "Pb", contributions[0].Symbol)
	assert.Equal(t, "As", contributions[1].Symbol)
	assert.Greater(t, contributions[0].Contribution, contributions[1].Contribution)

	var total, shares float64
	for _, c := range contributions {
		total += c.Contribution
		shares += c.SharePercent
	}
	assert.InDelta(t, 175.0, total, 1e-9, "contributions sum to the index value")
	assert.InDelta(t, 100.0, shares, 1e-9)
}
