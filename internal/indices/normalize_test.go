package indices

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPpb(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  string
		want  float64
	}{
		{name: "empty unit defaults to ppb", value: 30, unit: "", want: 30},
		{name: "ppb passthrough", value: 30, unit: "ppb", want: 30},
		{name: "micrograms per litre", value: 30, unit: "µg/L", want: 30},
		{name: "ascii micrograms per litre", value: 30, unit: "ug/L", want: 30},
		{name: "milligrams per litre", value: 0.03, unit: "mg/L", want: 30},
		{name: "ppm", value: 0.03, unit: "ppm", want: 30},
		{name: "case insensitive", value: 0.03, unit: "MG/L", want: 30},
		{name: "whitespace trimmed", value: 0.03, unit: " mg/l ", want: 30},
		{name: "negative preserved", value: -5, unit: "mg/L", want: -5000},
		{name: "zero", value: 0, unit: "mg/L", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToPpb(tt.value, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestToPpbErrors(t *testing.T) {
	_, err := ToPpb(30, "gallons")
	assert.ErrorIs(t, err, ErrInvalidUnit)

	_, err = ToPpb(math.Inf(1), "ppb")
	assert.ErrorIs(t, err, ErrNotFinite)

	_, err = ToPpb(math.NaN(), "mg/L")
	assert.ErrorIs(t, err, ErrNotFinite)
}

func TestIsRecognizedUnit(t *testing.T) {
	for _, unit := range []string{"", "ppb", "ppm", "mg/L", "µg/L", "ug/l", "PPB"} {
		assert.True(t, IsRecognizedUnit(unit), "unit %q", unit)
	}
	for _, unit := range []string{"gallons", "mol/L", "%", "ng/L"} {
		assert.False(t, IsRecognizedUnit(unit), "unit %q", unit)
	}
}
