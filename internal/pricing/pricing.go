// Package pricing implements the markup coefficient model of the storefront.
//
// Coefficients are stored and transported as percentages (25 means +25% over
// base cost). Calculations happen on multiplicative factors. PercentToFactor
// and FactorToPercent are the only conversion points between the two.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// DefaultMarkupPercent applies when no configuration exists for a user.
const DefaultMarkupPercent = 25.0

// PercentToFactor converts a markup percentage into a price factor.
// PercentToFactor(25) == 1.25.
func PercentToFactor(percent float64) float64 {
	return 1 + percent/100
}

// FactorToPercent converts a price factor back into a markup percentage.
// FactorToPercent(1.25) == 25.
func FactorToPercent(factor float64) float64 {
	return (factor - 1) * 100
}

// ParsePercent parses user-entered percent text. A trailing % sign and
// surrounding whitespace are tolerated.
func ParsePercent(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	return strconv.ParseFloat(s, 64)
}

// FinalPrice computes the selling price from a base cost and a factor.
// No rounding happens here; renderers round at the display boundary.
func FinalPrice(baseCost, factor float64) float64 {
	return baseCost * factor
}

// LineSubtotal computes the subtotal for a quantity of units at unitPrice.
func LineSubtotal(unitPrice float64, quantity int) float64 {
	return unitPrice * float64(quantity)
}

// ValidPercent reports whether p is usable as a markup percentage.
// Negative values, NaN and infinities are rejected.
func ValidPercent(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0
}
