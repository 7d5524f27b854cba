package indices

import (
	"github.com/rs/zerolog/log"

	"github.com/aquametrics/aquaindex/internal/standards"
)

// CalculateCDEG computes the Contamination Degree:
//
//	Cfi  = (Ci / Si) - 1
//	CDEG = Σ(Cfi)
//
// Only the canonical HeavyMetals set counts; other symbols are ignored even
// when standards exist for them. CDEG can be negative, indicating overall
// sub-threshold contamination. Returns nil when no usable metal is present.
func CalculateCDEG(conc *ConcentrationMap, reg *standards.Registry) *IndexResult {
	if conc == nil {
		return nil
	}
	if reg == nil {
		reg = standards.Default()
	}

	var value float64
	var analyzed []string

	for _, sym := range conc.Symbols() {
		if _, ok := heavyMetalSet[sym]; !ok {
			continue
		}
		std, ok := reg.Get(sym)
		if !ok || std.Kind != standards.KindMetal || std.Si <= 0 {
			continue
		}
		c, _ := conc.Get(sym)
		value += c/std.Si - 1
		analyzed = append(analyzed, sym)
	}

	if len(analyzed) == 0 {
		return nil
	}

	band := ClassifyCDEG(value)

	log.Debug().
		Str("index", "CDEG").
		Float64("value", value).
		Int("metals", len(analyzed)).
		Msg("index calculated")

	return &IndexResult{
		Value:              value,
		Classification:     band.Label,
		Severity:           band.Severity,
		ParametersAnalyzed: analyzed,
	}
}

// CalculateCDEGBatch applies CalculateCDEG to each station independently.
func CalculateCDEGBatch(stations []StationConcentrations, reg *standards.Registry) []StationIndexResult {
	results := make([]StationIndexResult, 0, len(stations))
	for _, st := range stations {
		results = append(results, StationIndexResult{
			StationID: st.StationID,
			Result:    CalculateCDEG(st.Concentrations, reg),
		})
	}
	return results
}

// ValidateCDEGInput returns advisory warnings for the heavy metals the CDEG
// calculator would consider.
func ValidateCDEGInput(conc *ConcentrationMap, reg *standards.Registry) []Warning {
	return validateAgainst(conc, reg, heavyMetalSet, standards.KindMetal, "Si",
		func(std standards.ParameterStandard) float64 { return std.Si })
}

// AnalyzeCDEG returns the per-metal contamination factors, sorted by
// contribution descending.
func AnalyzeCDEG(conc *ConcentrationMap, reg *standards.Registry) []ParameterContribution {
	if conc == nil {
		return nil
	}
	if reg == nil {
		reg = standards.Default()
	}

	var total float64
	var contributions []ParameterContribution

	for _, sym := range conc.Symbols() {
		if _, ok := heavyMetalSet[sym]; !ok {
			continue
		}
		std, ok := reg.Get(sym)
		if !ok || std.Kind != standards.KindMetal || std.Si <= 0 {
			continue
		}
		c, _ := conc.Get(sym)
		cfi := c/std.Si - 1
		total += cfi
		contributions = append(contributions, ParameterContribution{
			Symbol:        std.Symbol,
			Name:          std.Name,
			Concentration: c,
			Standard:      std,
			SubIndex:      cfi,
			Contribution:  cfi,
		})
	}
	return finalizeContributions(contributions, total)
}
