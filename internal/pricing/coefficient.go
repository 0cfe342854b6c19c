package pricing

import "math"

// Mode selects how the markup coefficient is chosen for a product.
type Mode string

const (
	ModeGeneral       Mode = "general"        // One percentage for the whole catalog
	ModeByCategory    Mode = "by_category"    // Percentage per category, general as fallback
	ModeBySubcategory Mode = "by_subcategory" // Percentage per subcategory, general as fallback
)

// CoefficientConfig is a user's markup configuration. PerKeyPercents is keyed
// by category or subcategory name depending on Mode.
type CoefficientConfig struct {
	Mode           Mode
	GeneralPercent float64
	PerKeyPercents map[string]float64
}

// ClassificationKey returns the product attribute the per-key lookup uses
// under the config's mode.
func (c *CoefficientConfig) ClassificationKey(category, subcategory string) string {
	if c == nil {
		return ""
	}
	switch c.Mode {
	case ModeByCategory:
		return category
	case ModeBySubcategory:
		return subcategory
	}
	return ""
}

// ResolveEffectivePercent returns the markup percentage that applies to the
// given classification key.
//
// A nil config resolves to DefaultMarkupPercent. In the per-key modes a
// present entry wins, zero included; a missing key falls back silently to the
// general percentage. A general percentage that is absent or unusable
// resolves to the default.
func ResolveEffectivePercent(cfg *CoefficientConfig, classificationKey string) float64 {
	if cfg == nil {
		return DefaultMarkupPercent
	}

	if cfg.Mode == ModeByCategory || cfg.Mode == ModeBySubcategory {
		if p, ok := cfg.PerKeyPercents[classificationKey]; ok && !math.IsNaN(p) && !math.IsInf(p, 0) {
			return p
		}
	}

	return coerceGeneral(cfg.GeneralPercent)
}

// coerceGeneral guards the general percentage. Zero means "not configured"
// for the general value, unlike per-key entries where zero is deliberate.
func coerceGeneral(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return DefaultMarkupPercent
	}
	return p
}
