package display

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Number formats.
const (
	Scientific = "scientific"
	Comma      = "comma"
	SI         = "si"
)

// FormatNumber renders v for people. Large values switch to the chosen
// format; small ones keep enough decimals to be useful.
func FormatNumber(v float64, format string) string {
	switch {
	case math.IsInf(v, 0):
		if v < 0 {
			return "-∞ (Infinity)"
		}
		return "∞ (Infinity)"
	case math.IsNaN(v):
		return "NaN (Invalid)"
	}
	a := math.Abs(v)
	if a >= 1000 {
		switch format {
		case Comma:
			// CommafWithDigits truncates, so round to cents first
			if a < 1e15 {
				v = math.Round(v*100) / 100
			}
			return humanize.CommafWithDigits(v, 2)
		case SI:
			return humanize.SIWithDigits(v, 2, "")
		}
	}
	switch {
	case a >= 1e6:
		return fmt.Sprintf("%.2e", v)
	case a >= 1000:
		return fmt.Sprintf("%.2f", v)
	case a >= 1:
		return fmt.Sprintf("%.6f", v)
	default:
		return fmt.Sprintf("%.8f", v)
	}
}

// FormatProbability renders a [0,1] probability as a percentage.
func FormatProbability(p float64, decimals int) string {
	if math.IsNaN(p) {
		return "NaN (Invalid)"
	}
	return FormatPercent(p*100, decimals)
}

// FormatPercent renders a value already in percent.
func FormatPercent(pct float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, pct)
}
