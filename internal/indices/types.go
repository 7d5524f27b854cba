// Package indices implements the pollution index calculators: HPI, MI, WQI
// and the supplementary CDEG, HEI and PIG indices.
//
// Every calculator is a pure function over a ConcentrationMap (symbol ->
// concentration in ppb) and a standards registry. A calculator returns nil
// when no usable parameter is present — a result is never zero by default,
// it is either a real value or an explicit absence.
package indices

// ConcentrationMap holds unit-normalized concentrations keyed by canonical
// parameter symbol. Insertion order is preserved: the ParametersAnalyzed list
// of every index result follows it.
type ConcentrationMap struct {
	order  []string
	values map[string]float64
}

// NewConcentrationMap returns an empty concentration map.
func NewConcentrationMap() *ConcentrationMap {
	return &ConcentrationMap{values: make(map[string]float64)}
}

// Set records a concentration for symbol. Re-setting an existing symbol
// overwrites the value but keeps its original position.
func (m *ConcentrationMap) Set(symbol string, value float64) {
	if _, seen := m.values[symbol]; !seen {
		m.order = append(m.order, symbol)
	}
	m.values[symbol] = value
}

// Get returns the concentration recorded for symbol, if any.
func (m *ConcentrationMap) Get(symbol string) (float64, bool) {
	v, ok := m.values[symbol]
	return v, ok
}

// Symbols returns the recorded symbols in insertion order.
func (m *ConcentrationMap) Symbols() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of recorded symbols.
func (m *ConcentrationMap) Len() int {
	return len(m.order)
}

// IndexResult is the outcome of one index calculation for one station.
type IndexResult struct {
	// Value is the computed index value. CDEG may be negative.
	Value float64 `json:"value"`

	// Classification is the severity label for Value, e.g.
	// "Good - Low to medium pollution".
	Classification string `json:"classification"`

	// Class is the Roman-numeral class tag where the index defines one
	// (MI only), e.g. "Class III".
	Class string `json:"class,omitempty"`

	// Severity is the ordinal position of the matched band, 1 = least severe.
	Severity int `json:"severity"`

	// ParametersAnalyzed lists the symbols that contributed to Value, in
	// concentration-map insertion order.
	ParametersAnalyzed []string `json:"parameters_analyzed"`
}

// StationConcentrations pairs a station identifier with its concentration
// map for the batch calculator variants.
type StationConcentrations struct {
	StationID      string
	Concentrations *ConcentrationMap
}

// StationIndexResult is the per-station outcome of a batch calculator
// variant. Result is nil when the station had no usable parameters.
type StationIndexResult struct {
	StationID string
	Result    *IndexResult
}

// Warning is an advisory validation finding. Warnings never block
// calculation; they are returned alongside results for display to the
// data submitter.
type Warning struct {
	Symbol  string `json:"symbol"`
	Message string `json:"message"`
}
