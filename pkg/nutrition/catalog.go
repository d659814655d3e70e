package nutrition

import "strings"

type (
	// Nutrients is a per-serving nutrient vector.
	Nutrients struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fats     float64 `json:"fats"`
		Fiber    float64 `json:"fiber"`
	}

	Entry struct {
		Name      string
		Nutrients Nutrients
	}

	// Catalog resolves free-text food names against an ordered reference
	// table. The order is significant: several keys can match the same input
	// and the first one wins, so the table is a slice rather than a map.
	Catalog struct {
		entries []Entry
	}
)

// defaultNutrients is returned when nothing in the table matches.
var defaultNutrients = Nutrients{Calories: 150, Protein: 5, Carbs: 20, Fats: 5, Fiber: 2}

func NewCatalog(entries []Entry) *Catalog {
	return &Catalog{entries: entries}
}

// DefaultCatalog returns the built-in reference table. The entry order must
// not change: existing clients rely on the tie-break it produces.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Entry{
		{"apple", Nutrients{95, 0.5, 25, 0.3, 4.4}},
		{"banana", Nutrients{105, 1.3, 27, 0.4, 3.1}},
		{"chicken breast", Nutrients{165, 31, 0, 3.6, 0}},
		{"rice", Nutrients{130, 2.7, 28, 0.3, 0.4}},
		{"pasta", Nutrients{131, 5, 25, 1.1, 1.2}},
		{"salad", Nutrients{15, 1, 3, 0.1, 1.5}},
		{"salmon", Nutrients{206, 22, 0, 13, 0}},
		{"eggs", Nutrients{72, 6.3, 0.4, 4.8, 0}},
		{"bread", Nutrients{79, 3.1, 15, 0.9, 0.9}},
		{"milk", Nutrients{42, 3.4, 5, 1, 0}},
		{"yogurt", Nutrients{59, 3.5, 4.7, 3.3, 0}},
		{"broccoli", Nutrients{34, 2.8, 7, 0.4, 2.6}},
		{"carrot", Nutrients{41, 0.9, 10, 0.2, 2.8}},
		{"potato", Nutrients{77, 2, 17, 0.1, 2.2}},
		{"cheese", Nutrients{113, 7, 0.4, 9, 0}},
		{"beef", Nutrients{250, 26, 0, 17, 0}},
		{"fish", Nutrients{206, 22, 0, 13, 0}},
		{"tofu", Nutrients{76, 8, 1.9, 4.8, 0.3}},
		{"beans", Nutrients{132, 8.7, 25, 0.5, 8.7}},
		{"nuts", Nutrients{607, 20, 21, 54, 7}},
	})
}

// Lookup returns the per-serving nutrients for a free-text food name. The
// first entry whose key contains the input or is contained in it wins; when
// nothing matches the fixed default vector is returned. Lookup never fails.
func (c *Catalog) Lookup(name string) Nutrients {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range c.entries {
		if strings.Contains(name, e.Name) || strings.Contains(e.Name, name) {
			return e.Nutrients
		}
	}
	return defaultNutrients
}

// Scale multiplies every field by the given quantity.
func (n Nutrients) Scale(quantity float64) Nutrients {
	return Nutrients{
		Calories: n.Calories * quantity,
		Protein:  n.Protein * quantity,
		Carbs:    n.Carbs * quantity,
		Fats:     n.Fats * quantity,
		Fiber:    n.Fiber * quantity,
	}
}
