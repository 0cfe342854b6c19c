package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentFactorRoundTrip(t *testing.T) {
	for _, p := range []float64{0, 10, 25, 30, 33.5, 100, 250} {
		factor := PercentToFactor(p)
		assert.InDelta(t, p, FactorToPercent(factor), 1e-9, "percent %v should survive the round trip", p)
	}

	assert.Equal(t, 1.25, PercentToFactor(25))
	assert.Equal(t, 25.0, FactorToPercent(1.25))
}

func TestParsePercent(t *testing.T) {
	cases := map[string]float64{
		"30":     30,
		"30%":    30,
		" 30.5 ": 30.5,
		"0":      0,
	}
	for in, want := range cases {
		got, err := ParsePercent(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParsePercent("abc")
	assert.Error(t, err)
}

func TestFinalPriceAndSubtotal(t *testing.T) {
	// 15000 base cost with a 25% markup sells at 18750; three units total 56250.
	unit := FinalPrice(15000, PercentToFactor(25))
	assert.Equal(t, 18750.0, unit)
	assert.Equal(t, 56250.0, LineSubtotal(unit, 3))
}

func TestValidPercent(t *testing.T) {
	assert.True(t, ValidPercent(0))
	assert.True(t, ValidPercent(25))
	assert.False(t, ValidPercent(-1))
	assert.False(t, ValidPercent(math.NaN()))
	assert.False(t, ValidPercent(math.Inf(1)))
}
