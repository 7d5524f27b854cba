// Package ingest converts decoded tabular input into the typed structures
// the calculation engine works on: station identity records and
// unit-normalized concentration maps. It also provides the CSV adapter and
// template writer used by the CLI; the engine itself never touches files.
package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aquametrics/aquaindex/internal/indices"
	"github.com/aquametrics/aquaindex/internal/standards"
)

// Table is a decoded tabular dataset: ordered column headers plus one
// header->raw value map per row. Producing it (CSV/XLSX decoding) is the
// caller's concern.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// Station is the identity portion of one row. Latitude/Longitude are nil
// when the dataset carries no coordinate columns or the cells are blank.
type Station struct {
	ID        string   `json:"station_id"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	State     string   `json:"state,omitempty"`
	City      string   `json:"city,omitempty"`
}

// constError mirrors the sentinel error style used across the module.
type constError string

func (e constError) Error() string { return string(e) }

// ErrMissingStationID indicates a row without a resolvable station
// identifier. This is a row-level data error.
const ErrMissingStationID = constError("row has no station identifier")

// ExtractStation resolves the identity fields of one row using the shared
// alias dictionary. A missing or blank station identifier is an error;
// every other identity field is optional.
func ExtractStation(headers []string, row map[string]string) (Station, error) {
	st := Station{}

	if col, ok := standards.ResolveIdentityColumn(headers, standards.FieldStation); ok {
		st.ID = strings.TrimSpace(row[col])
	}
	if st.ID == "" {
		return Station{}, ErrMissingStationID
	}

	if col, ok := standards.ResolveIdentityColumn(headers, standards.FieldLatitude); ok {
		if v, err := parseCell(row[col]); err == nil {
			st.Latitude = &v
		}
	}
	if col, ok := standards.ResolveIdentityColumn(headers, standards.FieldLongitude); ok {
		if v, err := parseCell(row[col]); err == nil {
			st.Longitude = &v
		}
	}
	if col, ok := standards.ResolveIdentityColumn(headers, standards.FieldState); ok {
		st.State = strings.TrimSpace(row[col])
	}
	if col, ok := standards.ResolveIdentityColumn(headers, standards.FieldCity); ok {
		st.City = strings.TrimSpace(row[col])
	}

	return st, nil
}

// ExtractConcentrations builds the concentration map for one row. Columns
// are visited in header order, resolved through the shared alias dictionary,
// and parsed as numbers; blank and non-numeric cells are skipped. Metal
// concentrations are normalized from the declared unit to ppb; WQI
// parameters are taken as supplied, since their standards carry their own
// units.
//
// An unrecognized declared unit is a configuration error, returned as
// indices.ErrInvalidUnit.
func ExtractConcentrations(
	headers []string,
	row map[string]string,
	reg *standards.Registry,
	unit string,
) (*indices.ConcentrationMap, error) {
	if !indices.IsRecognizedUnit(unit) {
		return nil, fmt.Errorf("%w: %q", indices.ErrInvalidUnit, unit)
	}
	if reg == nil {
		reg = standards.Default()
	}

	conc := indices.NewConcentrationMap()
	for _, header := range headers {
		sym, ok := standards.ResolveHeader(header)
		if !ok {
			continue
		}
		if _, dup := conc.Get(sym); dup {
			continue
		}
		raw, ok := row[header]
		if !ok {
			continue
		}
		value, err := parseCell(raw)
		if err != nil {
			continue
		}

		if std, ok := reg.Get(sym); ok && std.Kind == standards.KindMetal {
			value, err = indices.ToPpb(value, unit)
			if err != nil {
				continue
			}
		}
		conc.Set(sym, value)
	}
	return conc, nil
}

// parseCell parses one raw cell into a float. Blank cells and the common
// not-available markers are rejected.
func parseCell(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "", "-", "na", "n/a", "nd", "bdl", "nil":
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, 64)
}
