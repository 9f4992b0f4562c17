package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Run("LiquidUnits_ShouldPadAndShowDecimals", func(t *testing.T) {
		assert.Equal(t, "01.50 oz", Format(1.5, "oz"))
		assert.Equal(t, "00.75 oz", Format(0.75, "oz"))
		assert.Equal(t, "30.00 ml", Format(30, "ml"))
	})

	t.Run("CountUnits_ShouldPadWithoutDecimals", func(t *testing.T) {
		assert.Equal(t, "03 dash", Format(3, "dash"))
		assert.Equal(t, "01 piece", Format(1, "piece"))
		assert.Equal(t, "02 egg", Format(2, "eggs"))
	})

	t.Run("SpoonUnits_ShouldShowDecimals", func(t *testing.T) {
		assert.Equal(t, "00.50 tsp", Format(0.5, "tsp"))
		assert.Equal(t, "01.00 tbsp", Format(1, "tbsp"))
	})

	t.Run("UnitSpellings_ShouldNormalizeToCanonicalDisplay", func(t *testing.T) {
		assert.Equal(t, Format(0.5, "tsp"), Format(0.5, "teaspoon"))
		assert.Equal(t, Format(0.5, "tsp"), Format(0.5, "Teaspoons"))
		assert.Equal(t, Format(1.5, "oz"), Format(1.5, "ounces"))
		assert.Equal(t, Format(2, "dash"), Format(2, "dashes"))
	})

	t.Run("UnknownUnit_ShouldPassThroughWithLiquidDefaults", func(t *testing.T) {
		assert.Equal(t, "01.00 jigger", Format(1, "jigger"))
	})

	t.Run("Options_ShouldOverrideDefaults", func(t *testing.T) {
		one := 1
		three := 3
		hide := false
		show := true

		assert.Equal(t, "01.5 oz", Format(1.5, "oz", FormatOptions{Decimals: &one}))
		assert.Equal(t, "012.50 oz", Format(12.5, "oz", FormatOptions{LeadingDigits: &three}))
		assert.Equal(t, "03 oz", Format(3, "oz", FormatOptions{ShowDecimals: &hide}))
		assert.Equal(t, "02.00 dash", Format(2, "dash", FormatOptions{ShowDecimals: &show}))
	})
}

func TestClassOf(t *testing.T) {
	assert.Equal(t, ClassLiquid, ClassOf("oz"))
	assert.Equal(t, ClassLiquid, ClassOf("ML"))
	assert.Equal(t, ClassWholeCount, ClassOf("dash"))
	assert.Equal(t, ClassWholeCount, ClassOf("wedges"))
	assert.Equal(t, ClassSpoon, ClassOf("teaspoon"))
	assert.Equal(t, ClassLiquid, ClassOf("jigger"))
}
