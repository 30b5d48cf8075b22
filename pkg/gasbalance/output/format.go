// Package output renders analysis results as terminal text tables.
package output

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable stands in for undefined statistics.
const NotAvailable = "n/a"

var printer = message.NewPrinter(language.English)

// Volume formats v as a whole number with thousands separators.
func Volume(v float64) string {
	return format("%.0f", v)
}

// Signed formats v like Volume with an explicit sign.
func Signed(v float64) string {
	return format("%+.0f", v)
}

// Percent formats v with one decimal, an explicit sign and a percent mark.
func Percent(v float64) string {
	return format("%+.1f%%", v)
}

// Ratio formats v with three decimals.
func Ratio(v float64) string {
	return format("%.3f", v)
}

func format(layout string, v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	return printer.Sprintf(layout, v)
}
