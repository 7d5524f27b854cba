package indices

import (
	"math"

	"github.com/rs/zerolog/log"
)

// CalculatePIG computes the Pollution Index of Groundwater, a derived index
// combining two already-computed indices:
//
//	PIG = √((HPI/100)² + HEI²) / √2
//
// Returns nil if either input index is nil. ParametersAnalyzed is the union
// of the input indices' analyzed parameters, HPI order first.
func CalculatePIG(hpi, hei *IndexResult) *IndexResult {
	if hpi == nil || hei == nil {
		return nil
	}

	hpiNorm := hpi.Value / percentMultiplier
	value := math.Sqrt(hpiNorm*hpiNorm+hei.Value*hei.Value) / math.Sqrt2

	band := ClassifyPIG(value)

	log.Debug().
		Str("index", "PIG").
		Float64("value", value).
		Float64("hpi", hpi.Value).
		Float64("hei", hei.Value).
		Msg("index calculated")

	return &IndexResult{
		Value:              value,
		Classification:     band.Label,
		Severity:           band.Severity,
		ParametersAnalyzed: mergeSymbols(hpi.ParametersAnalyzed, hei.ParametersAnalyzed),
	}
}

// PIGInput pairs the two source indices for the batch variant.
type PIGInput struct {
	StationID string
	HPI       *IndexResult
	HEI       *IndexResult
}

// CalculatePIGBatch applies CalculatePIG to each station independently.
func CalculatePIGBatch(inputs []PIGInput) []StationIndexResult {
	results := make([]StationIndexResult, 0, len(inputs))
	for _, in := range inputs {
		results = append(results, StationIndexResult{
			StationID: in.StationID,
			Result:    CalculatePIG(in.HPI, in.HEI),
		})
	}
	return results
}

// ValidatePIGInput reports which source indices are missing. PIG carries no
// raw concentrations of its own, so this is the whole validation surface.
func ValidatePIGInput(hpi, hei *IndexResult) []Warning {
	var warnings []Warning
	if hpi == nil {
		warnings = append(warnings, Warning{Symbol: "HPI", Message: "source index HPI is absent, PIG cannot be computed"})
	}
	if hei == nil {
		warnings = append(warnings, Warning{Symbol: "HEI", Message: "source index HEI is absent, PIG cannot be computed"})
	}
	return warnings
}

// AnalyzePIG breaks a PIG value into its two squared components, sorted by
// contribution descending.
func AnalyzePIG(hpi, hei *IndexResult) []ParameterContribution {
	if hpi == nil || hei == nil {
		return nil
	}

	hpiNorm := hpi.Value / percentMultiplier
	hpiComponent := hpiNorm * hpiNorm
	heiComponent := hei.Value * hei.Value
	total := hpiComponent + heiComponent

	contributions := []ParameterContribution{
		{Symbol: "HPI", Name: "Heavy-metal Pollution Index", Concentration: hpi.Value,
			SubIndex: hpiNorm, Contribution: hpiComponent},
		{Symbol: "HEI", Name: "Heavy-metal Evaluation Index", Concentration: hei.Value,
			SubIndex: hei.Value, Contribution: heiComponent},
	}
	return finalizeContributions(contributions, total)
}

// mergeSymbols returns the union of two symbol lists, preserving the order
// of the first list and appending unseen symbols from the second.
func mergeSymbols(first, second []string) []string {
	seen := make(map[string]struct{}, len(first)+len(second))
	out := make([]string, 0, len(first)+len(second))
	for _, s := range first {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for _, s := range second {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
