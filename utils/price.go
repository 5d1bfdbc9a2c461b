package utils

import (
	"strconv"
	"strings"
)

// ParsePrice converts a scraped price string ("2,50 €") to its numeric value.
// It strips the currency symbol, trims, and converts the decimal comma.
// ok is false when nothing parseable remains; callers decide whether that
// means exclusion (active price filter) or a zero value (sorts, totals).
func ParsePrice(raw string) (float64, bool) {
	s := strings.ReplaceAll(raw, "€", "")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// PriceOrZero is ParsePrice with the unparseable case collapsed to 0, the
// value used by price sorting and shopping-list totals.
func PriceOrZero(raw string) float64 {
	v, _ := ParsePrice(raw)
	return v
}

// FormatPrice renders a euro amount the way the store displays it: comma
// decimal separator and a trailing symbol ("2,50 €").
func FormatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	return strings.ReplaceAll(s, ".", ",") + " €"
}
