package entities

import (
	"time"

	"github.com/google/uuid"
)

// MealRecord freezes the full analysis computed at logging time. It is never
// recomputed, even when the owner's targets change later.
type MealRecord struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	MealType string    `json:"meal_type"`
	Notes    string    `json:"notes"`
	Location string    `json:"location,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`

	// Nutrition totals. Calories rounded to an integer, the rest to 1 decimal.
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
	Sugar    float64 `json:"sugar"`

	RiskScore   int    `json:"risk_score"`
	RiskLevel   string `json:"risk_level"`
	RiskFactors string `json:"risk_factors" gorm:"type:text"` // JSON array
	MealScore   int    `json:"meal_score"`
	MealGrade   string `json:"meal_grade"`

	BMIValue    float64 `json:"bmi_value"`
	BMICategory string  `json:"bmi_category"`

	// Snapshot of the owner's goal and daily targets at logging time. History
	// keeps reflecting these even after the profile changes.
	Goal           string  `json:"goal"`
	TargetCalories int     `json:"target_calories"`
	TargetProtein  int     `json:"target_protein"`
	TargetCarbs    int     `json:"target_carbs"`
	TargetFats     int     `json:"target_fats"`
	TargetFiber    float64 `json:"target_fiber"`

	Recommendations string `json:"recommendations" gorm:"type:text"` // JSON array

	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User  *User       `gorm:"foreignKey:UserID"`
	Foods []*MealFood `gorm:"foreignKey:MealID"`
}

// MealFood is one processed food item of a meal, nutrition already scaled by
// quantity.
type MealFood struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MealID   uuid.UUID `json:"meal_id"`
	Name     string    `json:"name"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`

	Meal *MealRecord `gorm:"foreignKey:MealID"`
}
