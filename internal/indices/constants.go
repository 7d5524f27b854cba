package indices

// Unit conversion constants for normalizing concentrations to ppb (µg/L).
const (
	// MgPerLToPpb converts mg/L (and the equivalent ppm) to ppb.
	MgPerLToPpb = 1000.0

	// PpbToPpb is the identity conversion for values already in ppb.
	PpbToPpb = 1.0
)

// percentMultiplier converts a ratio to a percentage sub-index.
const percentMultiplier = 100.0

// GrossExceedanceFactor is the multiple of the relevant standard above which
// a concentration is flagged by validation as grossly exceeding it.
const GrossExceedanceFactor = 10.0

// Per-calculator allow-lists. These are deliberately enumerated constants
// rather than being derived from registry contents, so the exact membership
// of each index family is testable and stable under registry overrides.
//
//nolint:gochecknoglobals // Static allow-lists, read-only after init.
var (
	// HeavyMetals is the canonical heavy-metal set considered by CDEG and
	// HEI. Symbols outside this set are ignored by those calculators even
	// when standards exist for them.
	HeavyMetals = []string{"As", "Cd", "Cr", "Cu", "Fe", "Hg", "Mn", "Ni", "Pb", "Zn"}

	// HPIMetals is the metal set considered by the HPI calculator.
	HPIMetals = []string{
		"As", "Cd", "Cr", "Cu", "Fe", "Hg", "Mn", "Ni", "Pb", "Zn",
		"Al", "B", "Ba", "Se", "Ag", "U", "Co", "Mo", "Sb",
	}

	// MIMetals is the metal set considered by the MI calculator.
	MIMetals = []string{
		"As", "Cd", "Cr", "Cu", "Fe", "Hg", "Mn", "Ni", "Pb", "Zn",
		"Al", "B", "Ba", "Se", "Ag", "U", "Co", "Mo", "Sb",
	}

	// WQIParameters is the parameter set considered by the WQI calculator.
	WQIParameters = []string{"pH", "TDS", "TH", "Cl", "SO4", "NO3", "F", "Mg"}
)

// symbolSet builds a membership set from an allow-list.
func symbolSet(symbols []string) map[string]struct{} {
	set := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	return set
}

//nolint:gochecknoglobals // Derived membership sets for the allow-lists above.
var (
	heavyMetalSet   = symbolSet(HeavyMetals)
	hpiMetalSet     = symbolSet(HPIMetals)
	miMetalSet      = symbolSet(MIMetals)
	wqiParameterSet = symbolSet(WQIParameters)
)
