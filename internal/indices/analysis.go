package indices

import (
	"fmt"
	"math"
	"sort"

	"github.com/aquametrics/aquaindex/internal/standards"
)

// ParameterContribution is one row of a detailed index analysis: the raw
// concentration, the standard it was measured against, its sub-index, its
// additive contribution to the index value and its share of the total.
// Used for audit and debugging, never for the index value itself.
type ParameterContribution struct {
	Symbol        string                      `json:"symbol"`
	Name          string                      `json:"name"`
	Concentration float64                     `json:"concentration"`
	Standard      standards.ParameterStandard `json:"standard"`

	// SubIndex is the per-parameter intermediate (Qi, Ci/MACi ratio, Cfi...).
	SubIndex float64 `json:"sub_index"`

	// Contribution is the additive share of the final index value.
	Contribution float64 `json:"contribution"`

	// SharePercent is Contribution relative to the index total, in percent.
	SharePercent float64 `json:"share_percent"`
}

// finalizeContributions fills SharePercent and sorts by contribution
// descending. Shares are left zero when the total is zero.
func finalizeContributions(contributions []ParameterContribution, total float64) []ParameterContribution {
	if total != 0 {
		for i := range contributions {
			contributions[i].SharePercent = contributions[i].Contribution / total * percentMultiplier
		}
	}
	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].Contribution > contributions[j].Contribution
	})
	return contributions
}

// validateAgainst produces advisory warnings for every symbol in the allow
// set that has both a concentration and a standard of the expected kind:
// negative concentrations and concentrations exceeding the reference limit
// by more than GrossExceedanceFactor. Warnings never block calculation.
func validateAgainst(
	conc *ConcentrationMap,
	reg *standards.Registry,
	allow map[string]struct{},
	kind standards.Kind,
	limitName string,
	limitOf func(standards.ParameterStandard) float64,
) []Warning {
	if conc == nil {
		return nil
	}
	if reg == nil {
		reg = standards.Default()
	}

	var warnings []Warning
	for _, sym := range conc.Symbols() {
		if _, ok := allow[sym]; !ok {
			continue
		}
		std, ok := reg.Get(sym)
		if !ok || std.Kind != kind {
			continue
		}
		c, _ := conc.Get(sym)

		if math.IsInf(c, 0) || math.IsNaN(c) {
			warnings = append(warnings, Warning{
				Symbol:  sym,
				Message: "concentration is not a finite number",
			})
			continue
		}
		if c < 0 {
			warnings = append(warnings, Warning{
				Symbol:  sym,
				Message: fmt.Sprintf("negative concentration %g", c),
			})
			continue
		}
		limit := limitOf(std)
		if limit > 0 && c > limit*GrossExceedanceFactor {
			warnings = append(warnings, Warning{
				Symbol: sym,
				Message: fmt.Sprintf("concentration %g exceeds %s (%g) more than %g-fold",
					c, limitName, limit, GrossExceedanceFactor),
			})
		}
	}
	return warnings
}
