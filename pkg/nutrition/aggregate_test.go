package nutrition

import (
	"testing"

	"nutritrack-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmptyRejected(t *testing.T) {
	_, _, err := Aggregate(DefaultCatalog(), nil)
	assert.ErrorIs(t, err, domain.ErrFoodItemsRequired)

	_, _, err = Aggregate(DefaultCatalog(), []FoodItem{})
	assert.ErrorIs(t, err, domain.ErrFoodItemsRequired)
}

func TestAggregateSingleItem(t *testing.T) {
	totals, processed, err := Aggregate(DefaultCatalog(), []FoodItem{
		{Name: "banana", Quantity: 2, Unit: "pieces"},
	})
	require.NoError(t, err)

	assert.InDelta(t, 210, totals.Calories, 1e-9)
	assert.InDelta(t, 2.6, totals.Protein, 1e-9)
	assert.InDelta(t, 54, totals.Carbs, 1e-9)

	require.Len(t, processed, 1)
	assert.Equal(t, "Banana", processed[0].Name)
	assert.Equal(t, 2.0, processed[0].Quantity)
	assert.Equal(t, "pieces", processed[0].Unit)
	assert.InDelta(t, 210, processed[0].Nutrition.Calories, 1e-9)
}

func TestAggregateDefaults(t *testing.T) {
	_, processed, err := Aggregate(DefaultCatalog(), []FoodItem{{Name: "rice"}})
	require.NoError(t, err)

	assert.Equal(t, 1.0, processed[0].Quantity)
	assert.Equal(t, "serving", processed[0].Unit)
}

func TestAggregateQuantityLinearity(t *testing.T) {
	catalog := DefaultCatalog()

	single, _, err := Aggregate(catalog, []FoodItem{{Name: "beans", Quantity: 1}})
	require.NoError(t, err)

	for _, q := range []float64{0.25, 2, 7} {
		scaled, _, err := Aggregate(catalog, []FoodItem{{Name: "beans", Quantity: q}})
		require.NoError(t, err)
		assert.InDelta(t, single.Calories*q, scaled.Calories, 1e-9)
		assert.InDelta(t, single.Protein*q, scaled.Protein, 1e-9)
		assert.InDelta(t, single.Carbs*q, scaled.Carbs, 1e-9)
		assert.InDelta(t, single.Fats*q, scaled.Fats, 1e-9)
		assert.InDelta(t, single.Fiber*q, scaled.Fiber, 1e-9)
	}
}

func TestAggregateSumsAcrossItems(t *testing.T) {
	totals, processed, err := Aggregate(DefaultCatalog(), []FoodItem{
		{Name: "chicken breast", Quantity: 1},
		{Name: "rice", Quantity: 2},
		{Name: "broccoli", Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, processed, 3)

	// 165 + 2*130 + 34
	assert.InDelta(t, 459, totals.Calories, 1e-9)
	// 31 + 2*2.7 + 2.8
	assert.InDelta(t, 39.2, totals.Protein, 1e-9)
}

func TestAggregateSodiumSugarEstimates(t *testing.T) {
	totals, _, err := Aggregate(DefaultCatalog(), []FoodItem{
		{Name: "nuts", Quantity: 1},
	})
	require.NoError(t, err)

	assert.InDelta(t, totals.Fats*0.1, totals.Sodium, 1e-9)
	assert.InDelta(t, totals.Carbs*0.2, totals.Sugar, 1e-9)
}

func TestAggregateUnknownFoodUsesDefault(t *testing.T) {
	totals, processed, err := Aggregate(DefaultCatalog(), []FoodItem{
		{Name: "mystery stew", Quantity: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 150.0, totals.Calories)
	assert.Equal(t, "Mystery Stew", processed[0].Name)
}
