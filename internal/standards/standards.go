// Package standards holds the reference values used by the pollution index
// calculators and the alias dictionary that maps spreadsheet column headers
// to canonical parameter symbols.
//
// The default registry is seeded from BIS 10500 drinking-water limits. Metal
// limits are expressed in ppb (µg/L); WQI parameters carry their own unit.
// Registries are immutable after construction, so a single registry can be
// shared by concurrent batch runs without locking.
package standards

// Kind distinguishes metal standards from general WQI parameter standards.
type Kind int

const (
	// KindMetal marks a parameter carrying {Si, Ii, MAC} reference values.
	KindMetal Kind = iota

	// KindWQI marks a parameter carrying {Sn, Vo, Unit} reference values.
	KindWQI
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindMetal:
		return "metal"
	case KindWQI:
		return "wqi"
	default:
		return "unknown"
	}
}

// ParameterStandard describes the reference values for one chemical parameter.
//
// A metal entry (KindMetal) uses Si/Ii/MAC, all in ppb. A WQI entry (KindWQI)
// uses Sn/Vo with Unit naming the measurement unit of the standard value.
// Unused fields are left zero.
type ParameterStandard struct {
	// Symbol is the canonical parameter symbol, e.g. "As".
	Symbol string `yaml:"symbol"`

	// Name is the full parameter name, e.g. "Arsenic".
	Name string `yaml:"name"`

	// Kind selects which field set is meaningful.
	Kind Kind `yaml:"-"`

	// Si is the standard permissible limit in ppb (metals).
	Si float64 `yaml:"si,omitempty"`

	// Ii is the ideal value in ppb (metals).
	Ii float64 `yaml:"ii,omitempty"`

	// MAC is the maximum allowable concentration in ppb (metals).
	MAC float64 `yaml:"mac,omitempty"`

	// Sn is the standard value (WQI parameters).
	Sn float64 `yaml:"sn,omitempty"`

	// Vo is the ideal (optimum) value (WQI parameters).
	Vo float64 `yaml:"vo,omitempty"`

	// Unit is the unit of Sn/Vo (WQI parameters).
	Unit string `yaml:"unit,omitempty"`
}

// Registry is an immutable symbol -> ParameterStandard lookup.
// Symbol order is preserved from construction for deterministic iteration.
type Registry struct {
	order  []string
	params map[string]ParameterStandard
}

// NewRegistry builds a registry from the given entries. Later entries with a
// duplicate symbol replace earlier ones without changing position.
func NewRegistry(entries []ParameterStandard) *Registry {
	r := &Registry{
		order:  make([]string, 0, len(entries)),
		params: make(map[string]ParameterStandard, len(entries)),
	}
	for _, e := range entries {
		if _, seen := r.params[e.Symbol]; !seen {
			r.order = append(r.order, e.Symbol)
		}
		r.params[e.Symbol] = e
	}
	return r
}

// Default returns a registry seeded with the built-in reference tables.
func Default() *Registry {
	return NewRegistry(defaultStandards)
}

// Get returns the standard registered for symbol, if any.
func (r *Registry) Get(symbol string) (ParameterStandard, bool) {
	std, ok := r.params[symbol]
	return std, ok
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int {
	return len(r.order)
}

// Symbols returns all registered symbols in registration order.
func (r *Registry) Symbols() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// WithOverrides returns a new registry where every symbol present in
// overrides fully replaces the corresponding entry (no field-level merge).
// Symbols unknown to the receiver are appended. The receiver is not modified.
func (r *Registry) WithOverrides(overrides map[string]ParameterStandard) *Registry {
	if len(overrides) == 0 {
		return r
	}

	next := &Registry{
		order:  make([]string, len(r.order), len(r.order)+len(overrides)),
		params: make(map[string]ParameterStandard, len(r.params)+len(overrides)),
	}
	copy(next.order, r.order)
	for sym, std := range r.params {
		next.params[sym] = std
	}
	for sym, std := range overrides {
		std.Symbol = sym
		if _, seen := next.params[sym]; !seen {
			next.order = append(next.order, sym)
		}
		next.params[sym] = std
	}
	return next
}

// defaultStandards is the built-in reference table: 19 metals (BIS 10500
// acceptable limits, ppb) and 8 WQI parameters.
//
//nolint:gochecknoglobals // Static reference data, read-only after init.
var defaultStandards = []ParameterStandard{
	// Metals {Si, Ii, MAC} in ppb.
	{Symbol: "As", Name: "Arsenic", Kind: KindMetal, Si: 50, Ii: 10, MAC: 50},
	{Symbol: "Cd", Name: "Cadmium", Kind: KindMetal, Si: 3, Ii: 0, MAC: 3},
	{Symbol: "Cr", Name: "Chromium", Kind: KindMetal, Si: 50, Ii: 0, MAC: 50},
	{Symbol: "Cu", Name: "Copper", Kind: KindMetal, Si: 1500, Ii: 50, MAC: 1500},
	{Symbol: "Fe", Name: "Iron", Kind: KindMetal, Si: 300, Ii: 0, MAC: 200},
	{Symbol: "Hg", Name: "Mercury", Kind: KindMetal, Si: 1, Ii: 0, MAC: 1},
	{Symbol: "Mn", Name: "Manganese", Kind: KindMetal, Si: 100, Ii: 0, MAC: 100},
	{Symbol: "Ni", Name: "Nickel", Kind: KindMetal, Si: 20, Ii: 0, MAC: 20},
	{Symbol: "Pb", Name: "Lead", Kind: KindMetal, Si: 10, Ii: 0, MAC: 10},
	{Symbol: "Zn", Name: "Zinc", Kind: KindMetal, Si: 5000, Ii: 0, MAC: 5000},
	{Symbol: "Al", Name: "Aluminium", Kind: KindMetal, Si: 30, Ii: 0, MAC: 200},
	{Symbol: "B", Name: "Boron", Kind: KindMetal, Si: 500, Ii: 0, MAC: 2400},
	{Symbol: "Ba", Name: "Barium", Kind: KindMetal, Si: 700, Ii: 0, MAC: 700},
	{Symbol: "Se", Name: "Selenium", Kind: KindMetal, Si: 10, Ii: 0, MAC: 10},
	{Symbol: "Ag", Name: "Silver", Kind: KindMetal, Si: 100, Ii: 0, MAC: 100},
	{Symbol: "U", Name: "Uranium", Kind: KindMetal, Si: 30, Ii: 0, MAC: 30},
	{Symbol: "Co", Name: "Cobalt", Kind: KindMetal, Si: 50, Ii: 0, MAC: 50},
	{Symbol: "Mo", Name: "Molybdenum", Kind: KindMetal, Si: 70, Ii: 0, MAC: 70},
	{Symbol: "Sb", Name: "Antimony", Kind: KindMetal, Si: 20, Ii: 0, MAC: 20},

	// WQI parameters {Sn, Vo, Unit}.
	{Symbol: "pH", Name: "pH", Kind: KindWQI, Sn: 8.5, Vo: 7.0, Unit: "pH"},
	{Symbol: "TDS", Name: "Total Dissolved Solids", Kind: KindWQI, Sn: 500, Vo: 0, Unit: "mg/L"},
	{Symbol: "TH", Name: "Total Hardness", Kind: KindWQI, Sn: 300, Vo: 0, Unit: "mg/L"},
	{Symbol: "Cl", Name: "Chloride", Kind: KindWQI, Sn: 250, Vo: 0, Unit: "mg/L"},
	{Symbol: "SO4", Name: "Sulphate", Kind: KindWQI, Sn: 200, Vo: 0, Unit: "mg/L"},
	{Symbol: "NO3", Name: "Nitrate", Kind: KindWQI, Sn: 45, Vo: 0, Unit: "mg/L"},
	{Symbol: "F", Name: "Fluoride", Kind: KindWQI, Sn: 1.0, Vo: 0, Unit: "mg/L"},
	{Symbol: "Mg", Name: "Magnesium", Kind: KindWQI, Sn: 30, Vo: 0, Unit: "mg/L"},
}
