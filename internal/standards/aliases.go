package standards

import "strings"

// IdentityField names a non-chemical column resolved from row data.
type IdentityField string

// Identity fields recognized during row extraction.
const (
	FieldStation   IdentityField = "station"
	FieldLatitude  IdentityField = "latitude"
	FieldLongitude IdentityField = "longitude"
	FieldState     IdentityField = "state"
	FieldCity      IdentityField = "city"
)

// unitSuffixes are trailing unit markers, in normalized form, stripped from
// normalized headers so "Lead (ppb)" and "Fe mg/L" identify their parameter
// columns.
//
//nolint:gochecknoglobals // Static suffix list.
var unitSuffixes = []string{"ppb", "ppm", "µgl", "ugl", "mgl"}

// NormalizeHeader produces the comparison key for a column header: it
// lowercases, trims, removes space/underscore/hyphen/dot separators so that
// "Total_Dissolved Solids" and "total-dissolved-solids" compare equal, and
// drops a trailing unit marker so that "Lead (ppb)" compares as "lead".
//
// This function is the single source of truth for column identification.
// Capability detection and row extraction both resolve headers through it,
// which keeps "detected as available" and "extracted for calculation" in
// lockstep.
func NormalizeHeader(header string) string {
	var b strings.Builder
	b.Grow(len(header))
	for _, r := range strings.ToLower(strings.TrimSpace(header)) {
		switch r {
		case ' ', '_', '-', '.', '(', ')', '/':
			continue
		default:
			b.WriteRune(r)
		}
	}

	key := b.String()
	for _, suffix := range unitSuffixes {
		stripped := strings.TrimSuffix(key, suffix)
		if stripped != key && stripped != "" {
			return stripped
		}
	}
	return key
}

// Matches reports whether header identifies the canonical parameter symbol,
// either directly or through a registered alias.
func Matches(header, symbol string) bool {
	key := NormalizeHeader(header)
	if key == "" {
		return false
	}
	if key == NormalizeHeader(symbol) {
		return true
	}
	for _, alias := range parameterAliases[symbol] {
		if key == NormalizeHeader(alias) {
			return true
		}
	}
	return false
}

// ResolveHeader maps a raw column header to the canonical parameter symbol it
// spells, if any. Symbols are checked in default-registry order so alias
// collisions resolve deterministically.
func ResolveHeader(header string) (string, bool) {
	for _, std := range defaultStandards {
		if Matches(header, std.Symbol) {
			return std.Symbol, true
		}
	}
	return "", false
}

// MatchesIdentity reports whether header identifies the given identity field.
func MatchesIdentity(header string, field IdentityField) bool {
	key := NormalizeHeader(header)
	if key == "" {
		return false
	}
	for _, alias := range identityAliases[field] {
		if key == NormalizeHeader(alias) {
			return true
		}
	}
	return false
}

// ResolveIdentityColumn finds the first header that identifies field.
func ResolveIdentityColumn(headers []string, field IdentityField) (string, bool) {
	for _, h := range headers {
		if MatchesIdentity(h, field) {
			return h, true
		}
	}
	return "", false
}

// parameterAliases maps canonical symbols to accepted header spellings.
// The symbol itself always matches and is not repeated here. Spellings are
// compared after NormalizeHeader, so entries are given in readable form.
//
//nolint:gochecknoglobals // Static alias dictionary, never mutated at request time.
var parameterAliases = map[string][]string{
	"As":  {"arsenic"},
	"Cd":  {"cadmium"},
	"Cr":  {"chromium", "total chromium", "cr6", "cr vi"},
	"Cu":  {"copper"},
	"Fe":  {"iron", "total iron"},
	"Hg":  {"mercury"},
	"Mn":  {"manganese"},
	"Ni":  {"nickel"},
	"Pb":  {"lead"},
	"Zn":  {"zinc"},
	"Al":  {"aluminium", "aluminum"},
	"B":   {"boron"},
	"Ba":  {"barium"},
	"Se":  {"selenium"},
	"Ag":  {"silver"},
	"U":   {"uranium"},
	"Co":  {"cobalt"},
	"Mo":  {"molybdenum"},
	"Sb":  {"antimony"},
	"pH":  {"ph value", "ph level"},
	"TDS": {"total dissolved solids", "dissolved solids"},
	"TH":  {"total hardness", "hardness", "hardness as caco3"},
	"Cl":  {"chloride", "chlorides"},
	"SO4": {"sulphate", "sulfate", "so42"},
	"NO3": {"nitrate", "nitrates", "no3n"},
	"F":   {"fluoride", "fluorides"},
	"Mg":  {"magnesium"},
}

// identityAliases maps identity fields to accepted header spellings.
//
//nolint:gochecknoglobals // Static alias dictionary, never mutated at request time.
var identityAliases = map[IdentityField][]string{
	FieldStation: {
		"station", "station id", "station code", "location", "site",
		"sample id", "sample no", "s no", "id", "name", "well id",
	},
	FieldLatitude:  {"latitude", "lat"},
	FieldLongitude: {"longitude", "lon", "lng", "long"},
	FieldState:     {"state", "province"},
	FieldCity:      {"city", "district", "town"},
}
