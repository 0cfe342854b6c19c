package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEffectivePercent_NilConfig(t *testing.T) {
	assert.Equal(t, DefaultMarkupPercent, ResolveEffectivePercent(nil, "Frenos"))
}

func TestResolveEffectivePercent_GeneralMode(t *testing.T) {
	cfg := &CoefficientConfig{Mode: ModeGeneral, GeneralPercent: 40}
	assert.Equal(t, 40.0, ResolveEffectivePercent(cfg, "Frenos"))

	// Unusable general values coerce to the default.
	for _, bad := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		cfg := &CoefficientConfig{Mode: ModeGeneral, GeneralPercent: bad}
		assert.Equal(t, DefaultMarkupPercent, ResolveEffectivePercent(cfg, "Frenos"))
	}
}

func TestResolveEffectivePercent_ByCategoryFallback(t *testing.T) {
	cfg := &CoefficientConfig{
		Mode:           ModeByCategory,
		GeneralPercent: 25,
		PerKeyPercents: map[string]float64{"Frenos": 30},
	}

	// Configured category uses its own percentage, others fall back to general.
	assert.Equal(t, 30.0, ResolveEffectivePercent(cfg, "Frenos"))
	assert.Equal(t, 25.0, ResolveEffectivePercent(cfg, "Motor"))
}

func TestResolveEffectivePercent_PerKeyZeroIsDeliberate(t *testing.T) {
	cfg := &CoefficientConfig{
		Mode:           ModeBySubcategory,
		GeneralPercent: 25,
		PerKeyPercents: map[string]float64{"Pastillas": 0},
	}

	// An explicit zero entry sells at cost; it must not fall back.
	assert.Equal(t, 0.0, ResolveEffectivePercent(cfg, "Pastillas"))
}

func TestResolveEffectivePercent_CrossModePricing(t *testing.T) {
	cfg := &CoefficientConfig{
		Mode:           ModeByCategory,
		GeneralPercent: 25,
		PerKeyPercents: map[string]float64{"Frenos": 30},
	}

	brakePrice := FinalPrice(10000, PercentToFactor(ResolveEffectivePercent(cfg, "Frenos")))
	enginePrice := FinalPrice(10000, PercentToFactor(ResolveEffectivePercent(cfg, "Motor")))

	assert.Equal(t, 13000.0, brakePrice)
	assert.Equal(t, 12500.0, enginePrice)
}

func TestClassificationKey(t *testing.T) {
	byCat := &CoefficientConfig{Mode: ModeByCategory}
	bySub := &CoefficientConfig{Mode: ModeBySubcategory}
	general := &CoefficientConfig{Mode: ModeGeneral}

	assert.Equal(t, "Frenos", byCat.ClassificationKey("Frenos", "Pastillas"))
	assert.Equal(t, "Pastillas", bySub.ClassificationKey("Frenos", "Pastillas"))
	assert.Equal(t, "", general.ClassificationKey("Frenos", "Pastillas"))

	var nilCfg *CoefficientConfig
	assert.Equal(t, "", nilCfg.ClassificationKey("Frenos", "Pastillas"))
}
