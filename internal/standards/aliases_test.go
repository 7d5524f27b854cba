package standards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "lowercase passthrough", header: "arsenic", want: "arsenic"},
		{name: "mixed case", header: "Arsenic", want: "arsenic"},
		{name: "spaces stripped", header: "Total Dissolved Solids", want: "totaldissolvedsolids"},
		{name: "underscores stripped", header: "total_dissolved_solids", want: "totaldissolvedsolids"},
		{name: "hyphens stripped", header: "total-dissolved-solids", want: "totaldissolvedsolids"},
		{name: "parens and unit suffix stripped", header: "As (ppb)", want: "as"},
		{name: "unit suffix stripped", header: "Lead (ppb)", want: "lead"},
		{name: "mg per litre suffix", header: "Iron mg/L", want: "iron"},
		{name: "micrograms suffix", header: "Arsenic (µg/L)", want: "arsenic"},
		{name: "bare unit kept", header: "ppb", want: "ppb"},
		{name: "surrounding whitespace", header: "  Lead  ", want: "lead"},
		{name: "empty", header: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHeader(tt.header))
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name   string
		header string
		symbol string
		want   bool
	}{
		{name: "symbol exact", header: "As", symbol: "As", want: true},
		{name: "symbol lowercase", header: "as", symbol: "As", want: true},
		{name: "symbol with unit suffix", header: "As (ppb)", symbol: "As", want: true},
		{name: "name with unit suffix", header: "Iron mg/L", symbol: "Fe", want: true},
		{name: "bare unit header", header: "ppb", symbol: "Pb", want: false},
		{name: "full name alias", header: "Arsenic", symbol: "As", want: true},
		{name: "alias with separators", header: "Total_Dissolved-Solids", symbol: "TDS", want: true},
		{name: "american spelling", header: "Aluminum", symbol: "Al", want: true},
		{name: "sulfate variant", header: "Sulfate", symbol: "SO4", want: true},
		{name: "wrong symbol", header: "Arsenic", symbol: "Pb", want: false},
		{name: "empty header", header: "", symbol: "As", want: false},
		{name: "unrelated column", header: "Year", symbol: "As", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.header, tt.symbol))
		})
	}
}

func TestResolveHeader(t *testing.T) {
	sym, ok := ResolveHeader("Lead (ppb)")
	require.True(t, ok)
	assert.Equal(t, "Pb", sym)

	sym, ok = ResolveHeader("hardness as CaCO3")
	require.True(t, ok)
	assert.Equal(t, "TH", sym)

	_, ok = ResolveHeader("Collected By")
	assert.False(t, ok)
}

func TestResolveHeaderCoversEveryDefaultSymbol(t *testing.T) {
	// Every registered symbol must resolve from its own spelling and from
	// its full name, or detection and extraction would disagree.
	for _, std := range defaultStandards {
		sym, ok := ResolveHeader(std.Symbol)
		require.True(t, ok, "symbol %q", std.Symbol)
		assert.Equal(t, std.Symbol, sym)

		sym, ok = ResolveHeader(std.Name)
		require.True(t, ok, "name %q", std.Name)
		assert.Equal(t, std.Symbol, sym)
	}
}

func TestResolveIdentityColumn(t *testing.T) {
	headers := []string{"S.No", "Location", "State", "As", "Pb"}

	col, ok := ResolveIdentityColumn(headers, FieldStation)
	require.True(t, ok)
	assert.Equal(t, "S.No", col, "first matching header wins")

	col, ok = ResolveIdentityColumn(headers, FieldState)
	require.True(t, ok)
	assert.Equal(t, "State", col)

	_, ok = ResolveIdentityColumn(headers, FieldLatitude)
	assert.False(t, ok)
}

func TestMatchesIdentity(t *testing.T) {
	assert.True(t, MatchesIdentity("Station_ID", FieldStation))
	assert.True(t, MatchesIdentity("Well ID", FieldStation))
	assert.True(t, MatchesIdentity("LONG", FieldLongitude))
	assert.False(t, MatchesIdentity("As", FieldStation))
	assert.False(t, MatchesIdentity("", FieldStation))
}
