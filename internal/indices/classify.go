package indices

import "math"

// ClassificationRange is one threshold band of an index classification
// table. Min/Max are nil at the open ends of the scale.
type ClassificationRange struct {
	Min         *float64
	Max         *float64
	Label       string
	Class       string
	Severity    int
	Description string
}

// boundaryMode selects which endpoint a band owns.
type boundaryMode int

const (
	// lowerInclusive matches value in [Min, Max).
	lowerInclusive boundaryMode = iota

	// upperInclusive matches value in (Min, Max].
	upperInclusive
)

// classificationTable is an ordered, mutually exclusive and exhaustive set
// of ranges covering the whole real line for one index.
type classificationTable struct {
	name   string
	mode   boundaryMode
	ranges []ClassificationRange
}

// classifyPrecision is the decimal precision index values are reported at.
// Band lookup rounds to it first, so a value that renders equal to a
// boundary classifies with that boundary regardless of accumulated
// floating-point error.
const classifyPrecision = 100

// Classify returns the band containing value, rounded to the reported
// precision. Tables are exhaustive, so a band always matches; the final band
// is returned as a safety net should a table ever be edited into a gap.
func (t classificationTable) Classify(value float64) ClassificationRange {
	rounded := math.Round(value*classifyPrecision) / classifyPrecision
	for _, r := range t.ranges {
		if t.contains(r, rounded) {
			return r
		}
	}
	return t.ranges[len(t.ranges)-1]
}

func (t classificationTable) contains(r ClassificationRange, value float64) bool {
	switch t.mode {
	case upperInclusive:
		if r.Min != nil && value <= *r.Min {
			return false
		}
		if r.Max != nil && value > *r.Max {
			return false
		}
	default:
		if r.Min != nil && value < *r.Min {
			return false
		}
		if r.Max != nil && value >= *r.Max {
			return false
		}
	}
	return true
}

func bound(v float64) *float64 { return &v }

// Classification tables. HPI and WQI bands own their upper endpoint
// (HPI = 50.00 classifies "Good"); the remaining indices own the lower
// endpoint (MI = 1.00 classifies Class III).
//
//nolint:gochecknoglobals // Static threshold tables, read-only after init.
var (
	hpiTable = classificationTable{
		name: "HPI",
		mode: upperInclusive,
		ranges: []ClassificationRange{
			{Max: bound(25), Label: "Excellent - Very low pollution", Severity: 1,
				Description: "Heavy metal pollution well below concern levels"},
			{Min: bound(25), Max: bound(50), Label: "Good - Low to medium pollution", Severity: 2,
				Description: "Heavy metal pollution within acceptable limits"},
			{Min: bound(50), Max: bound(75), Label: "Poor - Medium to high pollution", Severity: 3,
				Description: "Heavy metal pollution approaching critical levels"},
			{Min: bound(75), Max: bound(100), Label: "Very Poor - High pollution", Severity: 4,
				Description: "Heavy metal pollution at critical levels"},
			{Min: bound(100), Label: "Unsuitable - Critical pollution", Severity: 5,
				Description: "Water unsuitable for drinking"},
		},
	}

	miTable = classificationTable{
		name: "MI",
		mode: lowerInclusive,
		ranges: []ClassificationRange{
			{Max: bound(0.3), Label: "Very Pure", Class: "Class I", Severity: 1},
			{Min: bound(0.3), Max: bound(1), Label: "Pure", Class: "Class II", Severity: 2},
			{Min: bound(1), Max: bound(2), Label: "Slightly Affected", Class: "Class III", Severity: 3},
			{Min: bound(2), Max: bound(4), Label: "Moderately Affected", Class: "Class IV", Severity: 4},
			{Min: bound(4), Max: bound(6), Label: "Strongly Affected", Class: "Class V", Severity: 5},
			{Min: bound(6), Label: "Seriously Affected", Class: "Class VI", Severity: 6},
		},
	}

	wqiTable = classificationTable{
		name: "WQI",
		mode: upperInclusive,
		ranges: []ClassificationRange{
			{Max: bound(50), Label: "Excellent", Severity: 1,
				Description: "Water of excellent quality"},
			{Min: bound(50), Max: bound(100), Label: "Good", Severity: 2,
				Description: "Water of good quality"},
			{Min: bound(100), Max: bound(200), Label: "Poor", Severity: 3,
				Description: "Water of poor quality"},
			{Min: bound(200), Max: bound(300), Label: "Very Poor", Severity: 4,
				Description: "Water of very poor quality"},
			{Min: bound(300), Label: "Unfit", Severity: 5,
				Description: "Water unfit for drinking"},
		},
	}

	cdegTable = classificationTable{
		name: "CDEG",
		mode: lowerInclusive,
		ranges: []ClassificationRange{
			{Max: bound(1), Label: "Low contamination", Severity: 1},
			{Min: bound(1), Max: bound(3), Label: "Medium contamination", Severity: 2},
			{Min: bound(3), Label: "High contamination", Severity: 3},
		},
	}

	heiTable = classificationTable{
		name: "HEI",
		mode: lowerInclusive,
		ranges: []ClassificationRange{
			{Max: bound(10), Label: "Low contamination", Severity: 1},
			{Min: bound(10), Max: bound(20), Label: "Medium contamination", Severity: 2},
			{Min: bound(20), Label: "High contamination", Severity: 3},
		},
	}

	pigTable = classificationTable{
		name: "PIG",
		mode: lowerInclusive,
		ranges: []ClassificationRange{
			{Max: bound(1), Label: "Low pollution", Severity: 1},
			{Min: bound(1), Max: bound(2), Label: "Moderate pollution", Severity: 2},
			{Min: bound(2), Max: bound(5), Label: "High pollution", Severity: 3},
			{Min: bound(5), Label: "Very high pollution", Severity: 4},
		},
	}
)

// ClassifyHPI returns the classification band for an HPI value.
func ClassifyHPI(value float64) ClassificationRange { return hpiTable.Classify(value) }

// ClassifyMI returns the classification band for an MI value.
func ClassifyMI(value float64) ClassificationRange { return miTable.Classify(value) }

// ClassifyWQI returns the classification band for a WQI value.
func ClassifyWQI(value float64) ClassificationRange { return wqiTable.Classify(value) }

// ClassifyCDEG returns the classification band for a CDEG value.
func ClassifyCDEG(value float64) ClassificationRange { return cdegTable.Classify(value) }

// ClassifyHEI returns the classification band for an HEI value.
func ClassifyHEI(value float64) ClassificationRange { return heiTable.Classify(value) }

// ClassifyPIG returns the classification band for a PIG value.
func ClassifyPIG(value float64) ClassificationRange { return pigTable.Classify(value) }
