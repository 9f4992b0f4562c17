package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompile(t *testing.T) {
	c := NewCompiler(nil)

	t.Run("ClassicManhattan_ShouldRenderSymbolsWithSubscripts", func(t *testing.T) {
		lines := []IngredientLine{
			{Name: "Rye Whiskey", Amount: 2, Unit: "oz"},
			{Name: "Sweet Vermouth", Amount: 1, Unit: "oz"},
			{Name: "Angostura Bitters", Amount: 2, Unit: "dash"},
			{Name: "Maraschino Cherry", Amount: 1, Unit: "piece"},
		}

		assert.Equal(t, "Ry₂ · Sv · An₂", c.Compile(lines))
	})

	t.Run("QuantityOne_ShouldOmitSubscript", func(t *testing.T) {
		assert.Equal(t, "Gn", c.Compile([]IngredientLine{
			{Name: "Gin", Amount: 1, Unit: "oz"},
		}))
	})

	t.Run("FractionalAmounts_ShouldRoundHalfUp", func(t *testing.T) {
		lines := []IngredientLine{
			{Name: "Lime Juice", Amount: 0.5, Unit: "oz"},   // rounds to 1
			{Name: "Simple Syrup", Amount: 2.5, Unit: "oz"}, // rounds to 3
			{Name: "Rum", Amount: 1.4, Unit: "oz"},          // rounds to 1
		}

		assert.Equal(t, "Li · Sy₃ · Rm", c.Compile(lines))
	})

	t.Run("GarnishLines_ShouldBeDropped", func(t *testing.T) {
		lines := []IngredientLine{
			{Name: "Vodka", Amount: 2, Unit: "oz"},
			{Name: "Lime Wheel", Amount: 1, Unit: "piece"},
			{Name: "Orange Twist", Amount: 1, Unit: "piece"},
			{Name: "Olives", Amount: 3, Unit: "piece"},
			{Name: "Sugar Cube", Amount: 1, Unit: "piece"},
			{Name: "Cherries", Amount: 2, Unit: "piece"},
			{Name: "Crushed Ice", Amount: 0, Unit: ""},
		}

		assert.Equal(t, "Vk₂", c.Compile(lines))
	})

	t.Run("DenylistWords_ShouldMatchWholeWordsOnly", func(t *testing.T) {
		// "juice" contains "ice" and "rimmed" contains "rim" as substrings;
		// neither names a garnish line.
		lines := []IngredientLine{
			{Name: "Lime Juice", Amount: 1, Unit: "oz"},
		}
		assert.Equal(t, "Li", c.Compile(lines))
	})

	t.Run("OnlyGarnish_ShouldRenderEmpty", func(t *testing.T) {
		assert.Equal(t, "", c.Compile([]IngredientLine{
			{Name: "Lemon Twist", Amount: 1, Unit: "piece"},
		}))
	})

	t.Run("EmptyList_ShouldRenderEmpty", func(t *testing.T) {
		assert.Equal(t, "", c.Compile(nil))
	})

	t.Run("IngredientOrder_ShouldBePreserved", func(t *testing.T) {
		lines := []IngredientLine{
			{Name: "Angostura Bitters", Amount: 2, Unit: "dash"},
			{Name: "Rye Whiskey", Amount: 2, Unit: "oz"},
		}

		assert.Equal(t, "An₂ · Ry₂", c.Compile(lines))
	})
}

func TestComponents(t *testing.T) {
	c := NewCompiler(nil)

	lines := []IngredientLine{
		{Name: "Rye Whiskey", Amount: 2, Unit: "oz"},
		{Name: "Lemon Twist", Amount: 1, Unit: "piece"},
		{Name: "Sweet Vermouth", Amount: 1, Unit: "oz"},
	}

	components := c.Components(lines)
	assert.Equal(t, []Component{
		{Code: "Ry", Subscript: 2},
		{Code: "Sv", Subscript: 1},
	}, components)
}
