package indices

import (
	"github.com/rs/zerolog/log"

	"github.com/aquametrics/aquaindex/internal/standards"
)

// CalculateHEI computes the Heavy-metal Evaluation Index:
//
//	HEI = Σ(Ci / Si)
//
// Structurally the same ratio sum as MI but over the permissible limit Si
// and restricted to the canonical HeavyMetals set. Kept as its own
// calculator because both the parameter set and the classification bands
// differ. Returns nil when no usable metal is present.
func CalculateHEI(conc *ConcentrationMap, reg *standards.Registry) *IndexResult {
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
		value += c / std.Si
		analyzed = append(analyzed, sym)
	}

	if len(analyzed) == 0 {
		return nil
	}

	band := ClassifyHEI(value)

	log.Debug().
		Str("index", "HEI").
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

// CalculateHEIBatch applies CalculateHEI to each station independently.
func CalculateHEIBatch(stations []StationConcentrations, reg *standards.Registry) []StationIndexResult {
	results := make([]StationIndexResult, 0, len(stations))
	for _, st := range stations {
		results = append(results, StationIndexResult{
			StationID: st.StationID,
			Result:    CalculateHEI(st.Concentrations, reg),
		})
	}
	return results
}

// ValidateHEIInput returns advisory warnings for the heavy metals the HEI
// calculator would consider.
func ValidateHEIInput(conc *ConcentrationMap, reg *standards.Registry) []Warning {
	return validateAgainst(conc, reg, heavyMetalSet, standards.KindMetal, "Si",
		func(std standards.ParameterStandard) float64 { return std.Si })
}

// AnalyzeHEI returns the per-metal Ci/Si ratios, sorted by contribution
// descending.
func AnalyzeHEI(conc *ConcentrationMap, reg *standards.Registry) []ParameterContribution {
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
		ratio := c / std.Si
		total += ratio
		contributions = append(contributions, ParameterContribution{
			Symbol:        std.Symbol,
			Name:          std.Name,
			Concentration: c,
			Standard:      std,
			SubIndex:      ratio,
			Contribution:  ratio,
		})
	}
	return finalizeContributions(contributions, total)
}
