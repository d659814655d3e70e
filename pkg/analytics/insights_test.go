package analytics

import (
	"testing"
	"time"

	"nutritrack-backend/entities"
	"nutritrack-backend/pkg/nutrition"

	"github.com/stretchr/testify/assert"
)

func scoredMeal(created time.Time, score int) *entities.MealRecord {
	return &entities.MealRecord{MealScore: score, CreatedAt: created}
}

func TestInsightsBMIVersusGoal(t *testing.T) {
	insights := Insights(nutrition.GoalWeightLoss, 28.5, nil)
	assert.Contains(t, insights, "Your BMI suggests weight loss could benefit your health. Target 0.5-1kg per week.")

	insights = Insights(nutrition.GoalMuscleGain, 22.0, nil)
	assert.Contains(t, insights, "Good baseline for muscle gain. Focus on strength training and protein intake.")

	// Muscle gain on an overweight BMI earns neither observation.
	insights = Insights(nutrition.GoalMuscleGain, 27.0, nil)
	assert.Empty(t, insights)
}

func TestInsightsMealFrequency(t *testing.T) {
	now := time.Now()

	sparse := []*entities.MealRecord{
		scoredMeal(now.Add(-time.Hour), 70),
		scoredMeal(now.AddDate(0, 0, -2), 70),
	}
	insights := Insights(nutrition.GoalMaintain, 22.0, sparse)
	assert.Contains(t, insights, "Consider eating more frequent, smaller meals for better metabolism.")

	var dense []*entities.MealRecord
	for i := 0; i < 40; i++ {
		dense = append(dense, scoredMeal(now.Add(-time.Duration(i)*time.Hour), 70))
	}
	insights = Insights(nutrition.GoalMaintain, 22.0, dense)
	assert.Contains(t, insights, "You're eating frequently. Ensure meals are appropriately portioned.")
}

func TestInsightsRecentQuality(t *testing.T) {
	now := time.Now()

	excellent := []*entities.MealRecord{
		scoredMeal(now.Add(-1*time.Hour), 85),
		scoredMeal(now.Add(-2*time.Hour), 90),
		scoredMeal(now.Add(-3*time.Hour), 80),
		scoredMeal(now.Add(-4*time.Hour), 10), // older than the latest three
	}
	insights := Insights(nutrition.GoalMaintain, 22.0, excellent)
	assert.Contains(t, insights, "Excellent recent meal choices! Keep up the great work.")

	poor := []*entities.MealRecord{
		scoredMeal(now.Add(-1*time.Hour), 85),
		scoredMeal(now.Add(-2*time.Hour), 55),
		scoredMeal(now.Add(-3*time.Hour), 80),
	}
	insights = Insights(nutrition.GoalMaintain, 22.0, poor)
	assert.Contains(t, insights, "Some recent meals could be improved. Focus on balanced nutrition.")

	// Mixed but not poor: no quality insight either way.
	mixed := []*entities.MealRecord{
		scoredMeal(now.Add(-1*time.Hour), 85),
		scoredMeal(now.Add(-2*time.Hour), 70),
		scoredMeal(now.Add(-3*time.Hour), 80),
	}
	insights = Insights(nutrition.GoalMaintain, 22.0, mixed)
	assert.NotContains(t, insights, "Excellent recent meal choices! Keep up the great work.")
	assert.NotContains(t, insights, "Some recent meals could be improved. Focus on balanced nutrition.")
}

func TestInsightsCappedAtThree(t *testing.T) {
	now := time.Now()

	// Weight-loss goal + overweight BMI, sparse meals, and poor quality
	// would yield three observations at most.
	meals := []*entities.MealRecord{
		scoredMeal(now.Add(-1*time.Hour), 40),
		scoredMeal(now.Add(-2*time.Hour), 40),
		scoredMeal(now.Add(-3*time.Hour), 40),
	}
	insights := Insights(nutrition.GoalWeightLoss, 31.0, meals)
	assert.LessOrEqual(t, len(insights), 3)
	assert.Len(t, insights, 3)
}

func TestRecommendedActions(t *testing.T) {
	actions := RecommendedActions(nutrition.GoalWeightLoss)
	assert.Len(t, actions, 3)
	assert.Equal(t, "Log Breakfast", actions[0].Title)
	assert.Equal(t, "high", actions[0].Priority)
	assert.Equal(t, "Add Vegetables", actions[1].Title)
	assert.Equal(t, "Review Recent Meals", actions[2].Title)

	actions = RecommendedActions(nutrition.GoalMaintain)
	assert.Len(t, actions, 1)
	assert.Equal(t, "Review Recent Meals", actions[0].Title)
	assert.Equal(t, "low", actions[0].Priority)
}

func TestAverageBMI(t *testing.T) {
	users := []*entities.User{
		{WeightKg: 70, HeightCm: 170},  // 24.2
		{WeightKg: 90, HeightCm: 170},  // 31.1
		{WeightKg: 80},                 // missing height, skipped
	}

	avg, bmis := AverageBMI(users)
	assert.Len(t, bmis, 2)
	assert.InDelta(t, 27.7, avg, 0.1)
}

func TestAverageBMIFallback(t *testing.T) {
	avg, bmis := AverageBMI([]*entities.User{{WeightKg: 80}})
	assert.Equal(t, 25.8, avg)
	assert.Nil(t, bmis)
}

func TestBMIDistribution(t *testing.T) {
	dist := BMIDistribution([]float64{17.0, 22.0, 23.0, 27.0})
	assert.Equal(t, map[string]int{
		"Underweight": 25,
		"Normal":      50,
		"Overweight":  25,
		"Obese":       0,
	}, dist)

	empty := BMIDistribution(nil)
	assert.Equal(t, map[string]int{
		"Underweight": 0,
		"Normal":      0,
		"Overweight":  0,
		"Obese":       0,
	}, empty)
}

func TestGoalDistribution(t *testing.T) {
	users := []*entities.User{
		{Goal: nutrition.GoalWeightLoss},
		{Goal: nutrition.GoalWeightLoss},
		{Goal: nutrition.GoalMuscleGain},
		{}, // unset defaults to maintain_weight
	}

	dist := GoalDistribution(users)
	assert.Equal(t, map[string]int{
		"weight_loss":     2,
		"muscle_gain":     1,
		"maintain_weight": 1,
	}, dist)
}

func TestActiveUsers(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	mealsByUser := map[string][]*entities.MealRecord{
		"a": {scoredMeal(now.AddDate(0, 0, -1), 70)},
		"b": {scoredMeal(now.AddDate(0, 0, -10), 70)},
		"c": {
			scoredMeal(now.AddDate(0, 0, -9), 70),
			scoredMeal(now.AddDate(0, 0, -2), 70),
		},
	}

	assert.Equal(t, 2, ActiveUsers(mealsByUser, now))
}
