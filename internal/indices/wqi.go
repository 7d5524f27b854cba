package indices

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/aquametrics/aquaindex/internal/standards"
)

// CalculateWQI computes the Water Quality Index over the WQIParameters set,
// structurally the same weighted sub-index form as HPI but against the
// {Sn, Vo} standard fields:
//
//	Wi  = 1 / Sn
//	Qi  = |Ci - Vo| / (Sn - Vo) × 100
//	WQI = Σ(Wi·Qi) / Σ(Wi)
//
// Parameters whose Sn equals Vo are excluded. Returns nil when no usable
// parameter is present. A nil registry falls back to the defaults.
func CalculateWQI(conc *ConcentrationMap, reg *standards.Registry) *IndexResult {
	if conc == nil {
		return nil
	}
	if reg == nil {
		reg = standards.Default()
	}

	var weightSum, weightedQiSum float64
	var analyzed []string

	for _, sym := range conc.Symbols() {
		if _, ok := wqiParameterSet[sym]; !ok {
			continue
		}
		std, ok := reg.Get(sym)
		if !ok || std.Kind != standards.KindWQI || std.Sn <= 0 {
			continue
		}
		if std.Sn == std.Vo {
			continue
		}

		c, _ := conc.Get(sym)
		wi := 1 / std.Sn
		qi := math.Abs(c-std.Vo) / (std.Sn - std.Vo) * percentMultiplier

		weightedQiSum += wi * qi
		weightSum += wi
		analyzed = append(analyzed, sym)
	}

	if len(analyzed) == 0 {
		return nil
	}

	value := weightedQiSum / weightSum
	band := ClassifyWQI(value)

	log.Debug().
		Str("index", "WQI").
		Float64("value", value).
		Int("parameters", len(analyzed)).
		Msg("index calculated")

	return &IndexResult{
		Value:              value,
		Classification:     band.Label,
		Severity:           band.Severity,
		ParametersAnalyzed: analyzed,
	}
}

// CalculateWQIBatch applies CalculateWQI to each station independently.
func CalculateWQIBatch(stations []StationConcentrations, reg *standards.Registry) []StationIndexResult {
	results := make([]StationIndexResult, 0, len(stations))
	for _, st := range stations {
		results = append(results, StationIndexResult{
			StationID: st.StationID,
			Result:    CalculateWQI(st.Concentrations, reg),
		})
	}
	return results
}

// ValidateWQIInput returns advisory warnings for the parameters the WQI
// calculator would consider, measured against the standard value Sn.
func ValidateWQIInput(conc *ConcentrationMap, reg *standards.Registry) []Warning {
	return validateAgainst(conc, reg, wqiParameterSet, standards.KindWQI, "Sn",
		func(std standards.ParameterStandard) float64 { return std.Sn })
}

// AnalyzeWQI returns the per-parameter breakdown of a WQI calculation,
// sorted by contribution descending.
func AnalyzeWQI(conc *ConcentrationMap, reg *standards.Registry) []ParameterContribution {
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
		if _, ok := wqiParameterSet[sym]; !ok {
			continue
		}
		std, ok := reg.Get(sym)
		if !ok || std.Kind != standards.KindWQI || std.Sn <= 0 || std.Sn == std.Vo {
			continue
		}
		c, _ := conc.Get(sym)
		wi := 1 / std.Sn
		qi := math.Abs(c-std.Vo) / (std.Sn - std.Vo) * percentMultiplier
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
