package indices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCDEG(t *testing.T) {
	tests := []struct {
		name           string
		conc           *ConcentrationMap
		wantValue      float64
		wantLabel      string
		wantParameters []string
	}{
		{
			name: "sub-threshold concentration is negative",
			// 25/50 - 1 = -0.5.
			conc:           concMap("As", 25.0),
			wantValue:      -0.5,
			wantLabel:      "Low contamination",
			wantParameters: []string{"As"},
		},
		{
			name: "high contamination boundary",
			// (100/50 - 1) + (30/10 - 1) = 1 + 2 = 3; band [3, ∞) owns 3.
			conc:           concMap("As", 100.0, "Pb", 30.0),
			wantValue:      3.0,
			wantLabel:      "High contamination",
			wantParameters: []string{"As", "Pb"},
		},
		{
			name: "mixed over and under threshold",
			// (75/50 - 1) + (5/10 - 1) = 0.5 - 0.5 = 0.
			conc:           concMap("As", 75.0, "Pb", 5.0),
			wantValue:      0.0,
			wantLabel:      "Low contamination",
			wantParameters: []string{"As", "Pb"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateCDEG(tt.conc, nil)
			require.NotNil(t, result)
			assert.InDelta(t, tt.wantValue, result.Value, 1e-9)
			assert.Equal(t, tt.wantLabel, result.Classification)
			assert.Equal(t, tt.wantParameters, result.ParametersAnalyzed)
		})
	}
}

func TestCalculateCDEGHeavyMetalsOnly(t *testing.T) {
	// Ba has a registered metal standard but is not a canonical heavy metal.
	assert.Nil(t, CalculateCDEG(concMap("Ba", 700.0), nil))

	result := CalculateCDEG(concMap("Ba", 700.0, "As", 100.0), nil)
	require.NotNil(t, result)
	assert.Equal(t, []string{"As"}, result.ParametersAnalyzed)
	assert.InDelta(t, 1.0, result.Value, 1e-9)
}

func TestCalculateCDEGNilOnNoUsableMetal(t *testing.T) {
	assert.Nil(t, CalculateCDEG(nil, nil))
	assert.Nil(t, CalculateCDEG(NewConcentrationMap(), nil))
	assert.Nil(t, CalculateCDEG(concMap("TDS", 400.0), nil))
}

func TestAnalyzeCDEG(t *testing.T) {
	contributions := AnalyzeCDEG(concMap("As", 25.0, "Pb", 30.0), nil)
	require.Len(t, contributions, 2)
	assert.Equal(t, "Pb", contributions[0].Symbol)
	assert.InDelta(t, 2.0, contributions[0].Contribution, 1e-9)
	assert.Equal(t, "As", contributions[1].Symbol)
	assert.InDelta(t, -0.5, contributions[1].Contribution, 1e-9)
}
