package indices

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/aquametrics/aquaindex/internal/standards"
)

// CalculateHPI computes the Heavy-metal Pollution Index:
//
//	Wi  = 1 / Si
//	Qi  = |Ci - Ii| / (Si - Ii) × 100
//	HPI = Σ(Wi·Qi) / Σ(Wi)
//
// Only metals in HPIMetals with a registered metal standard count. Metals
// whose Si equals Ii have an undefined Qi and are excluded. Returns nil when
// no usable metal is present. A nil registry falls back to the defaults.
func CalculateHPI(conc *ConcentrationMap, reg *standards.Registry) *IndexResult {
	if conc == nil {
		return nil
	}
	if reg == nil {
		reg = standards.Default()
	}

	var weightSum, weightedQiSum float64
	var analyzed []string

	for _, sym := range conc.Symbols() {
		if _, ok := hpiMetalSet[sym]; !ok {
			continue
		}
		std, ok := reg.Get(sym)
		if !ok || std.Kind != standards.KindMetal || std.Si <= 0 {
			continue
		}
		if std.Si == std.Ii {
			// Qi denominator is zero, the metal cannot contribute.
			continue
		}

		c, _ := conc.Get(sym)
		wi := 1 / std.Si
		qi := math.Abs(c-std.Ii) / (std.Si - std.Ii) * percentMultiplier

		weightedQiSum += wi * qi
		weightSum += wi
		analyzed = append(analyzed, sym)
	}

	if len(analyzed) == 0 {
		return nil
	}

	value := weightedQiSum / weightSum
	band := ClassifyHPI(value)

	log.Debug().
		Str("index", "HPI").
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

// CalculateHPIBatch applies CalculateHPI to each station independently.
// Stations without usable metals yield a nil Result rather than an error.
func CalculateHPIBatch(stations []StationConcentrations, reg *standards.Registry) []StationIndexResult {
	results := make([]StationIndexResult, 0, len(stations))
	for _, st := range stations {
		results = append(results, StationIndexResult{
			StationID: st.StationID,
			Result:    CalculateHPI(st.Concentrations, reg),
		})
	}
	return results
}

// ValidateHPIInput returns advisory warnings for the metals the HPI
// calculator would consider: negative concentrations and values grossly
// exceeding the permissible limit Si.
func ValidateHPIInput(conc *ConcentrationMap, reg *standards.Registry) []Warning {
	return validateAgainst(conc, reg, hpiMetalSet, standards.KindMetal, "Si",
		func(std standards.ParameterStandard) float64 { return std.Si })
}

// AnalyzeHPI returns the per-metal breakdown of an HPI calculation, sorted
// by contribution to the index value, descending.
func AnalyzeHPI(conc *ConcentrationMap, reg *standards.Registry) []ParameterContribution {
	if conc == nil {
		return nil
	}
	if reg == nil {
		reg = standards.Default()
	}

	type term struct {
		std standards.ParameterStandard
		c   float64
		wi  float64
		qi  float64
	}
	var terms []term
	var weightSum float64

	for _, sym := range conc.Symbols() {
		if _, ok := hpiMetalSet[sym]; !ok {
			continue
		}
		std, ok := reg.Get(sym)
		if !ok || std.Kind != standards.KindMetal || std.Si <= 0 || std.Si == std.Ii {
			continue
		}
		c, _ := conc.Get(sym)
		wi := 1 / std.Si
		qi := math.Abs(c-std.Ii) / (std.Si - std.Ii) * percentMultiplier
		terms = append(terms, term{std: std, c: c, wi: wi, qi: qi})
		weightSum += wi
	}

	if len(terms) == 0 {
		return nil
	}

	var total float64
	contributions := make([]ParameterContribution, 0, len(terms))
	for _, t := range terms {
		contribution := t.wi * t.qi / weightSum
		total += contribution
		contributions = append(contributions, ParameterContribution{
			Symbol:        t.std.Symbol,
			Name:          t.std.Name,
			Concentration: t.c,
			Standard:      t.std,
			SubIndex:      t.qi,
			Contribution:  contribution,
		})
	}
	return finalizeContributions(contributions, total)
}
