package rarity

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// OneIn converts a probability to its "1 in N" denominator.
func OneIn(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return 1 / p
}

// FormatOneIn renders p as "1 in 139,810", keeping at most two decimals.
// Non-positive probabilities have no rendering and yield "".
func FormatOneIn(p float64) string {
	if p <= 0 {
		return ""
	}
	printer := message.NewPrinter(language.English)
	return printer.Sprintf(displayPrefix, number.Decimal(OneIn(p), number.MaxFractionDigits(displayFractionDigits)))
}
