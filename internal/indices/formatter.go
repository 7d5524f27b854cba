package indices

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps thousand separators consistent across hosts.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatValue formats an index value with two decimals and thousand
// separators, e.g. FormatValue(7106.437) returns "7,106.44".
func FormatValue(v float64) string {
	return FormatFloat(v, 2)
}

// FormatFloat formats a float with the given precision and thousand
// separators on the integer part.
func FormatFloat(f float64, precision int) string {
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier

	if precision == 0 {
		return printer.Sprintf("%d", int64(rounded))
	}

	intPart, frac := math.Modf(math.Abs(rounded))
	sign := ""
	if rounded < 0 {
		sign = "-"
	}
	fracDigits := fmt.Sprintf("%.*f", precision, frac)
	// Drop the leading "0." from the fraction rendering.
	return sign + printer.Sprintf("%d", int64(intPart)) + fracDigits[1:]
}
