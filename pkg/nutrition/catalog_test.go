package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupExactName(t *testing.T) {
	catalog := DefaultCatalog()

	n := catalog.Lookup("banana")
	assert.Equal(t, 105.0, n.Calories)
	assert.Equal(t, 1.3, n.Protein)
	assert.Equal(t, 27.0, n.Carbs)
	assert.Equal(t, 0.4, n.Fats)
	assert.Equal(t, 3.1, n.Fiber)
}

func TestLookupSubstringMatch(t *testing.T) {
	catalog := DefaultCatalog()

	// "grilled salmon fillet" contains "salmon"
	n := catalog.Lookup("grilled salmon fillet")
	assert.Equal(t, 206.0, n.Calories)

	// "egg" is contained in "eggs"
	n = catalog.Lookup("egg")
	assert.Equal(t, 72.0, n.Calories)
}

func TestLookupFirstMatchWins(t *testing.T) {
	catalog := DefaultCatalog()

	// "chicken breast" precedes "rice" in the table, so a compound name
	// resolves to the chicken entry even though both keys match.
	n := catalog.Lookup("chicken breast and rice")
	assert.Equal(t, 165.0, n.Calories)
	assert.Equal(t, 31.0, n.Protein)
}

func TestLookupNormalizesInput(t *testing.T) {
	catalog := DefaultCatalog()

	n := catalog.Lookup("  Chicken Breast  ")
	assert.Equal(t, 165.0, n.Calories)
}

func TestLookupFallback(t *testing.T) {
	catalog := DefaultCatalog()

	n := catalog.Lookup("dragonfruit smoothie")
	assert.Equal(t, Nutrients{Calories: 150, Protein: 5, Carbs: 20, Fats: 5, Fiber: 2}, n)
}

func TestScaleLinearity(t *testing.T) {
	catalog := DefaultCatalog()
	base := catalog.Lookup("apple")

	for _, q := range []float64{0.5, 1, 2, 3.5, 10} {
		scaled := base.Scale(q)
		assert.InDelta(t, base.Calories*q, scaled.Calories, 1e-9)
		assert.InDelta(t, base.Protein*q, scaled.Protein, 1e-9)
		assert.InDelta(t, base.Carbs*q, scaled.Carbs, 1e-9)
		assert.InDelta(t, base.Fats*q, scaled.Fats, 1e-9)
		assert.InDelta(t, base.Fiber*q, scaled.Fiber, 1e-9)
	}
}
