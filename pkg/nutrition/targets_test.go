package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultCalc() *TargetCalculator {
	return NewTargetCalculator(DefaultActivityMultipliers())
}

func TestCalculateFollowsMifflinStJeor(t *testing.T) {
	calc := defaultCalc()

	got := calc.Calculate(Profile{
		WeightKg:      70,
		HeightCm:      170,
		Age:           30,
		Gender:        "male",
		ActivityLevel: "moderately_active",
		Goal:          GoalMaintain,
	})

	// Derive expectations from the documented formula rather than magic
	// numbers, so a deliberate constant change fails loudly in one place.
	bmr := 10*70.0 + 6.25*170.0 - 5*30.0 + 5
	maintenance := bmr * 1.55

	assert.Equal(t, int(math.Round(maintenance)), got.Calories)
	assert.Equal(t, int(math.Round(maintenance*0.3/4)), got.Protein)
	assert.Equal(t, int(math.Round(maintenance*0.4/4)), got.Carbs)
	assert.Equal(t, int(math.Round(maintenance*0.3/9)), got.Fats)
	assert.Equal(t, 30.0, got.Fiber)
}

func TestCalculateFemaleConstant(t *testing.T) {
	calc := defaultCalc()

	male := calc.Calculate(Profile{WeightKg: 70, HeightCm: 170, Age: 30, Gender: "male", ActivityLevel: "sedentary"})
	other := calc.Calculate(Profile{WeightKg: 70, HeightCm: 170, Age: 30, Gender: "other", ActivityLevel: "sedentary"})

	// The non-male constant is 166 kcal of BMR lower (+5 vs -161).
	assert.Equal(t, int(math.Round(166*1.2)), male.Calories-other.Calories)
}

func TestCalculateGoalAdjustments(t *testing.T) {
	calc := defaultCalc()
	base := Profile{WeightKg: 80, HeightCm: 180, Age: 25, Gender: "male", ActivityLevel: "very_active"}

	maintain := calc.Calculate(base)

	loss := base
	loss.Goal = GoalWeightLoss
	assert.InDelta(t, float64(maintain.Calories)*0.85, float64(calc.Calculate(loss).Calories), 1.0)

	gain := base
	gain.Goal = GoalMuscleGain
	assert.InDelta(t, float64(maintain.Calories)*1.15, float64(calc.Calculate(gain).Calories), 1.0)
}

func TestCalculateDefaults(t *testing.T) {
	calc := defaultCalc()

	// Zero-value profile falls back to the documented defaults.
	got := calc.Calculate(Profile{})
	want := calc.Calculate(Profile{
		WeightKg:      DefaultWeightKg,
		HeightCm:      DefaultHeightCm,
		Age:           DefaultAge,
		Gender:        DefaultGender,
		ActivityLevel: DefaultActivityLevel,
		Goal:          DefaultGoal,
	})
	assert.Equal(t, want, got)
}

func TestCalculateUnknownActivityLevel(t *testing.T) {
	calc := defaultCalc()

	unknown := calc.Calculate(Profile{WeightKg: 70, HeightCm: 170, Age: 30, Gender: "male", ActivityLevel: "astronaut"})
	moderate := calc.Calculate(Profile{WeightKg: 70, HeightCm: 170, Age: 30, Gender: "male", ActivityLevel: "moderately_active"})

	assert.Equal(t, moderate, unknown)
}

func TestCalculateOutputsPositive(t *testing.T) {
	calc := defaultCalc()

	got := calc.Calculate(Profile{WeightKg: 40, HeightCm: 140, Age: 90, Gender: "other", ActivityLevel: "sedentary", Goal: GoalWeightLoss})
	assert.Greater(t, got.Calories, 0)
	assert.Greater(t, got.Protein, 0)
	assert.Greater(t, got.Carbs, 0)
	assert.Greater(t, got.Fats, 0)
}
