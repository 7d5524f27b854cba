// Package detect implements pre-flight dataset capability detection: given
// only a set of column headers, it reports which pollution indices a dataset
// can support, without performing any calculation.
package detect

import (
	"github.com/rs/zerolog/log"

	"github.com/aquametrics/aquaindex/internal/indices"
	"github.com/aquametrics/aquaindex/internal/standards"
)

// Minimum matched-parameter counts per index family.
const (
	// MinWQIParameters is the matched-parameter floor for WQI availability.
	MinWQIParameters = 3

	// MinMetals is the matched-metal floor for HPI and MI availability.
	MinMetals = 2
)

// IndexAvailability reports whether one index is computable for a header
// set. Missing is purely informational: it never blocks calculation, it only
// explains the availability judgement.
type IndexAvailability struct {
	Index     string   `json:"index"`
	Available bool     `json:"available"`
	Matched   []string `json:"matched"`
	Missing   []string `json:"missing"`
}

// Capabilities is the detector's report for one header set.
type Capabilities struct {
	WQI IndexAvailability `json:"wqi"`
	HPI IndexAvailability `json:"hpi"`
	MI  IndexAvailability `json:"mi"`
}

// DetectCapabilities inspects column headers and decides, per index family,
// whether enough canonical parameters have a matching column. Header
// matching goes through the same alias resolution used by row extraction,
// so an index reported available here will compute for rows whose
// recognized cells hold numeric values.
func DetectCapabilities(headers []string) Capabilities {
	caps := Capabilities{
		WQI: availability("WQI", headers, indices.WQIParameters, MinWQIParameters),
		HPI: availability("HPI", headers, indices.HPIMetals, MinMetals),
		MI:  availability("MI", headers, indices.MIMetals, MinMetals),
	}

	log.Debug().
		Int("headers", len(headers)).
		Bool("wqi", caps.WQI.Available).
		Bool("hpi", caps.HPI.Available).
		Bool("mi", caps.MI.Available).
		Msg("dataset capabilities detected")

	return caps
}

// availability counts required parameters with at least one matching header.
func availability(index string, headers, required []string, minimum int) IndexAvailability {
	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))

	for _, sym := range required {
		if headerFor(headers, sym) {
			matched = append(matched, sym)
		} else {
			missing = append(missing, sym)
		}
	}

	return IndexAvailability{
		Index:     index,
		Available: len(matched) >= minimum,
		Matched:   matched,
		Missing:   missing,
	}
}

func headerFor(headers []string, symbol string) bool {
	for _, h := range headers {
		if standards.Matches(h, symbol) {
			return true
		}
	}
	return false
}
