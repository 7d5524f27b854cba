package indices

import (
	"math"
	"strings"
)

// unitFactor returns the conversion factor to ppb for a declared unit.
// The empty unit defaults to ppb. Matching is case-insensitive.
func unitFactor(unit string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "", "ppb", "µg/l", "ug/l":
		return PpbToPpb, true
	case "mg/l", "ppm":
		return MgPerLToPpb, true
	default:
		return 0, false
	}
}

// ToPpb converts a raw concentration from the declared unit to ppb.
//
// Negative inputs are converted as-is: the normalizer does not enforce
// domain validity, only unit conversion. Validation flags negatives
// separately without blocking calculation.
//
// Returns ErrInvalidUnit for an unrecognized unit and ErrNotFinite for
// Inf/NaN inputs.
func ToPpb(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrNotFinite
	}
	factor, ok := unitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}
	return value * factor, nil
}

// IsRecognizedUnit reports whether unit can be normalized to ppb.
func IsRecognizedUnit(unit string) bool {
	_, ok := unitFactor(unit)
	return ok
}
