package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`

	// Physiological profile. Zero values mean "never provided"; the target
	// calculator substitutes documented defaults.
	Age           int     `json:"age"`
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	Gender        string  `json:"gender"`         // male, female, other
	ActivityLevel string  `json:"activity_level"` // sedentary .. extremely_active
	Goal          string  `json:"goal"`           // weight_loss, muscle_gain, maintain_weight

	// Cached daily targets, recomputed whenever a relevant profile field changes.
	TargetCalories int     `json:"target_calories"`
	TargetProtein  int     `json:"target_protein"`
	TargetCarbs    int     `json:"target_carbs"`
	TargetFats     int     `json:"target_fats"`
	TargetFiber    float64 `json:"target_fiber"`

	// Cached 7-day rolling statistics, refreshed after every meal write.
	AvgDailyCalories int        `json:"avg_daily_calories"`
	MealsLogged7d    int        `json:"meals_logged_7d"`
	AvgMealScore     int        `json:"avg_meal_score"`
	StatsUpdatedAt   *time.Time `json:"stats_updated_at,omitempty"`

	Meals []*MealRecord `gorm:"foreignKey:UserID"`
	Timestamp
}
