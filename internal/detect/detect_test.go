package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquametrics/aquaindex/internal/indices"
	"github.com/aquametrics/aquaindex/internal/standards"
)

func TestDetectCapabilities(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		wantWQI bool
		wantHPI bool
		wantMI  bool
	}{
		{
			name:    "metals only",
			headers: []string{"Station", "As", "Pb"},
			wantWQI: false,
			wantHPI: true,
			wantMI:  true,
		},
		{
			name:    "wqi only",
			headers: []string{"Location", "pH", "TDS", "Chloride"},
			wantWQI: true,
			wantHPI: false,
			wantMI:  false,
		},
		{
			name:    "full names and alias spellings",
			headers: []string{"Sample ID", "Arsenic", "Lead (ppb)", "total_dissolved_solids", "Sulfate", "Nitrates"},
			wantWQI: true,
			wantHPI: true,
			wantMI:  true,
		},
		{
			name:    "single metal is below the floor",
			headers: []string{"Station", "As"},
			wantWQI: false,
			wantHPI: false,
			wantMI:  false,
		},
		{
			name:    "two wqi parameters are below the floor",
			headers: []string{"Station", "pH", "TDS"},
			wantWQI: false,
			wantHPI: false,
			wantMI:  false,
		},
		{
			name:    "no recognized columns",
			headers: []string{"Station", "Year", "Collected By"},
			wantWQI: false,
			wantHPI: false,
			wantMI:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := DetectCapabilities(tt.headers)
			assert.Equal(t, tt.wantWQI, caps.WQI.Available, "WQI")
			assert.Equal(t, tt.wantHPI, caps.HPI.Available, "HPI")
			assert.Equal(t, tt.wantMI, caps.MI.Available, "MI")
		})
	}
}

func TestDetectCapabilitiesMatchedAndMissing(t *testing.T) {
	caps := DetectCapabilities([]string{"Station", "Arsenic", "Pb", "Hg"})

	assert.Equal(t, []string{"As", "Hg", "Pb"}, caps.HPI.Matched,
		"matched follows allow-list order")
	assert.Len(t, caps.HPI.Missing, len(indices.HPIMetals)-3)
	assert.NotContains(t, caps.HPI.Missing, "As")
	assert.Contains(t, caps.HPI.Missing, "Cd")

	assert.Empty(t, caps.WQI.Matched)
	assert.Equal(t, indices.WQIParameters, caps.WQI.Missing)
}

func TestDetectionAgreesWithExtraction(t *testing.T) {
	// Every header the detector counts as matched must also resolve during
	// row extraction, and vice versa.
	headers := []string{"Arsenic", "lead", "Total Hardness", "SO4", "Year"}
	for _, h := range headers {
		sym, resolved := standards.ResolveHeader(h)
		if !resolved {
			continue
		}
		require.True(t, standards.Matches(h, sym), "header %q", h)
	}

	caps := DetectCapabilities(headers)
	assert.Equal(t, []string{"As", "Pb"}, caps.HPI.Matched)
	assert.Equal(t, []string{"TH", "SO4"}, caps.WQI.Matched)
}
