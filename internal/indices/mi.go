package indices

import (
	"github.com/rs/zerolog/log"

	"github.com/aquametrics/aquaindex/internal/standards"
)

// CalculateMI computes the Metal Index:
//
//	MI = Σ(Ci / MACi)
//
// A plain normalized sum over the metals in MIMetals, no weighting. Returns
// nil when no usable metal is present. A nil registry falls back to the
// defaults.
func CalculateMI(conc *ConcentrationMap, reg *standards.Registry) *IndexResult {
	if conc == nil {
		return nil
	}
	if reg == nil {
		reg = standards.Default()
	}

	var value float64
	var analyzed []string

	for _, sym := range conc.Symbols() {
		if _, ok := miMetalSet[sym]; !ok {
			continue
		}
		std, ok := reg.Get(sym)
		if !ok || std.Kind != standards.KindMetal || std.MAC <= 0 {
			continue
		}
		c, _ := conc.Get(sym)
		value += c / std.MAC
		analyzed = append(analyzed, sym)
	}

	if len(analyzed) == 0 {
		return nil
	}

	band := ClassifyMI(value)

	log.Debug().
		Str("index", "MI").
		Float64("value", value).
		Int("metals", len(analyzed)).
		Msg("index calculated")

	return &IndexResult{
		Value:              value,
		Classification:     band.Label,
		Class:              band.Class,
		Severity:           band.Severity,
		ParametersAnalyzed: analyzed,
	}
}

// CalculateMIBatch applies CalculateMI to each station independently.
func CalculateMIBatch(stations []StationConcentrations, reg *standards.Registry) []StationIndexResult {
	results := make([]StationIndexResult, 0, len(stations))
	for _, st := range stations {
		results = append(results, StationIndexResult{
			StationID: st.StationID,
			Result:    CalculateMI(st.Concentrations, reg),
		})
	}
	return results
}

// ValidateMIInput returns advisory warnings for the metals the MI calculator
// would consider, measured against the maximum allowable concentration.
func ValidateMIInput(conc *ConcentrationMap, reg *standards.Registry) []Warning {
	return validateAgainst(conc, reg, miMetalSet, standards.KindMetal, "MAC",
		func(std standards.ParameterStandard) float64 { return std.MAC })
}

// AnalyzeMI returns the per-metal breakdown of an MI calculation, sorted by
// contribution descending. Each metal's contribution is its Ci/MACi ratio.
func AnalyzeMI(conc *ConcentrationMap, reg *standards.Registry) []ParameterContribution {
	if conc == nil {
		return nil
	}
	if reg == nil {
		reg = standards.Default()
	}

	var total float64
	var contributions []ParameterContribution

	for _, sym := range conc.Symbols() {
		if _, ok := miMetalSet[sym]; !ok {
			continue
		}
		std, ok := reg.Get(sym)
		if !ok || std.Kind != standards.KindMetal || std.MAC <= 0 {
			continue
		}
		c, _ := conc.Get(sym)
		ratio := c / std.MAC
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
