package nutrition

import (
	"strings"

	"nutritrack-backend/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	// FoodItem is one raw entry of a meal as the client submits it.
	FoodItem struct {
		Name     string
		Quantity float64
		Unit     string
	}

	// ProcessedFoodItem is a FoodItem after lookup and quantity scaling.
	ProcessedFoodItem struct {
		Name      string
		Quantity  float64
		Unit      string
		Nutrition Nutrients
	}

	// Totals are meal-wide nutrient sums. The catalog does not track sodium
	// or sugar directly, so both are estimated as fixed fractions of fats
	// and carbs.
	Totals struct {
		Calories float64
		Protein  float64
		Carbs    float64
		Fats     float64
		Fiber    float64
		Sodium   float64
		Sugar    float64
	}
)

var titleCaser = cases.Title(language.English)

// Aggregate resolves every item against the catalog, scales it by quantity
// and accumulates meal totals. Quantity defaults to 1 and unit to "serving".
func Aggregate(catalog *Catalog, items []FoodItem) (Totals, []ProcessedFoodItem, error) {
	if len(items) == 0 {
		return Totals{}, nil, domain.ErrFoodItemsRequired
	}

	var totals Totals
	processed := make([]ProcessedFoodItem, 0, len(items))

	for _, item := range items {
		name := strings.ToLower(strings.TrimSpace(item.Name))
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		unit := item.Unit
		if unit == "" {
			unit = "serving"
		}

		scaled := catalog.Lookup(name).Scale(quantity)

		totals.Calories += scaled.Calories
		totals.Protein += scaled.Protein
		totals.Carbs += scaled.Carbs
		totals.Fats += scaled.Fats
		totals.Fiber += scaled.Fiber

		processed = append(processed, ProcessedFoodItem{
			Name:      titleCaser.String(name),
			Quantity:  quantity,
			Unit:      unit,
			Nutrition: scaled,
		})
	}

	totals.Sodium = totals.Fats * 0.1
	totals.Sugar = totals.Carbs * 0.2

	return totals, processed, nil
}
