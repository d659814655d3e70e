package nutrition

import "math"

const (
	GoalWeightLoss = "weight_loss"
	GoalMuscleGain = "muscle_gain"
	GoalMaintain   = "maintain_weight"
)

// Profile fallback defaults, applied field by field when the value is unset.
const (
	DefaultWeightKg      = 70.0
	DefaultHeightCm      = 170.0
	DefaultAge           = 30
	DefaultGender        = "male"
	DefaultActivityLevel = "moderately_active"
	DefaultGoal          = GoalMaintain
)

type (
	// Profile is the physiological input of the target calculation. Zero
	// values are substituted with the documented defaults.
	Profile struct {
		WeightKg      float64
		HeightCm      float64
		Age           int
		Gender        string
		ActivityLevel string
		Goal          string
	}

	// Targets are daily nutrient targets. Fiber is a fixed recommendation and
	// the only field that is not derived from the profile.
	Targets struct {
		Calories int     `json:"calories"`
		Protein  int     `json:"protein"`
		Carbs    int     `json:"carbs"`
		Fats     int     `json:"fats"`
		Fiber    float64 `json:"fiber"`
	}

	// TargetCalculator derives daily targets via Mifflin-St Jeor. The
	// activity multiplier table is injected so tests and alternative
	// configurations stay deterministic.
	TargetCalculator struct {
		multipliers map[string]float64
	}
)

const dailyFiberGrams = 30

func DefaultActivityMultipliers() map[string]float64 {
	return map[string]float64{
		"sedentary":         1.2,
		"lightly_active":    1.375,
		"moderately_active": 1.55,
		"very_active":       1.725,
		"extremely_active":  1.9,
	}
}

func NewTargetCalculator(multipliers map[string]float64) *TargetCalculator {
	return &TargetCalculator{multipliers: multipliers}
}

// Calculate is total: missing profile fields fall back to defaults and an
// unrecognized activity level uses the moderately-active multiplier. All
// outputs are strictly positive.
func (tc *TargetCalculator) Calculate(p Profile) Targets {
	if p.WeightKg <= 0 {
		p.WeightKg = DefaultWeightKg
	}
	if p.HeightCm <= 0 {
		p.HeightCm = DefaultHeightCm
	}
	if p.Age <= 0 {
		p.Age = DefaultAge
	}
	if p.Gender == "" {
		p.Gender = DefaultGender
	}
	if p.ActivityLevel == "" {
		p.ActivityLevel = DefaultActivityLevel
	}
	if p.Goal == "" {
		p.Goal = DefaultGoal
	}

	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := tc.multipliers[p.ActivityLevel]
	if !ok {
		mult = 1.55
	}
	maintenance := bmr * mult

	target := maintenance
	switch p.Goal {
	case GoalWeightLoss:
		target = maintenance * 0.85
	case GoalMuscleGain:
		target = maintenance * 1.15
	}

	// 30% protein / 40% carbs / 30% fat split.
	return Targets{
		Calories: int(math.Round(target)),
		Protein:  int(math.Round(target * 0.3 / 4)),
		Carbs:    int(math.Round(target * 0.4 / 4)),
		Fats:     int(math.Round(target * 0.3 / 9)),
		Fiber:    dailyFiberGrams,
	}
}
