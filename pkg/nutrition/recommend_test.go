package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func standardTargets() Targets {
	return Targets{Calories: 2000, Protein: 150, Carbs: 200, Fats: 67, Fiber: 30}
}

func TestPercentOfTargets(t *testing.T) {
	pct := PercentOfTargets(
		Totals{Calories: 500, Protein: 75, Carbs: 50, Fats: 33.5},
		standardTargets(),
	)

	assert.Equal(t, 25, pct.Calories)
	assert.Equal(t, 50, pct.Protein)
	assert.Equal(t, 25, pct.Carbs)
	assert.Equal(t, 50, pct.Fats)
}

func TestPercentOfTargetsRounds(t *testing.T) {
	pct := PercentOfTargets(Totals{Calories: 333}, Targets{Calories: 2000, Protein: 150, Carbs: 200, Fats: 67})
	// 16.65 rounds to 17.
	assert.Equal(t, 17, pct.Calories)
}

func TestRecommendLowProtein(t *testing.T) {
	recs := Recommend(Totals{Calories: 600, Protein: 10, Fiber: 8}, standardTargets(), 3, GoalMaintain)
	assert.Contains(t, recs, "Consider adding lean protein like chicken, fish, or tofu")
}

func TestRecommendHighProtein(t *testing.T) {
	recs := Recommend(Totals{Calories: 900, Protein: 240, Fiber: 8}, standardTargets(), 3, GoalMaintain)
	assert.Contains(t, recs, "High protein intake - ensure adequate hydration")
	assert.NotContains(t, recs, "Consider adding lean protein like chicken, fish, or tofu")
}

func TestRecommendGoalRules(t *testing.T) {
	// 50% of daily calories on a weight-loss goal.
	recs := Recommend(Totals{Calories: 1000, Protein: 80, Fiber: 8}, standardTargets(), 3, GoalWeightLoss)
	assert.Contains(t, recs, "For weight loss, consider smaller portions or lower-calorie alternatives")

	// Muscle gain with protein under 30% of target.
	recs = Recommend(Totals{Calories: 400, Protein: 40, Fiber: 8}, standardTargets(), 3, GoalMuscleGain)
	assert.Contains(t, recs, "For muscle gain, increase protein intake with this meal")

	// Muscle gain rule is skipped once protein clears 30%.
	recs = Recommend(Totals{Calories: 400, Protein: 100, Fiber: 8}, standardTargets(), 3, GoalMuscleGain)
	assert.NotContains(t, recs, "For muscle gain, increase protein intake with this meal")
}

func TestRecommendFiberAndVariety(t *testing.T) {
	recs := Recommend(Totals{Calories: 600, Protein: 80, Fiber: 2}, standardTargets(), 2, GoalMaintain)
	assert.Contains(t, recs, "Add more fiber-rich foods like vegetables, fruits, or whole grains")
	assert.Contains(t, recs, "Include more food variety for balanced nutrition")
}

func TestRecommendPositiveReinforcement(t *testing.T) {
	// 30% calories, 53% protein, plenty of fiber, three foods.
	recs := Recommend(Totals{Calories: 600, Protein: 80, Fiber: 8}, standardTargets(), 3, GoalMaintain)
	assert.Equal(t, []string{"Great meal composition! Well balanced and nutritious."}, recs)
}

func TestRecommendPositiveCanCoexist(t *testing.T) {
	// A lean low-variety meal earns both the variety nudge and the praise.
	recs := Recommend(Totals{Calories: 500, Protein: 80, Fiber: 9}, standardTargets(), 2, GoalMaintain)
	assert.Contains(t, recs, "Include more food variety for balanced nutrition")
	assert.Contains(t, recs, "Great meal composition! Well balanced and nutritious.")
}

func TestRecommendOrderIsStable(t *testing.T) {
	recs := Recommend(Totals{Calories: 1200, Protein: 20, Fiber: 1}, standardTargets(), 1, GoalWeightLoss)
	assert.Equal(t, []string{
		"Consider adding lean protein like chicken, fish, or tofu",
		"For weight loss, consider smaller portions or lower-calorie alternatives",
		"Add more fiber-rich foods like vegetables, fruits, or whole grains",
		"Include more food variety for balanced nutrition",
	}, recs)
}
