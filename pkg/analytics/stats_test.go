package analytics

import (
	"testing"
	"time"

	"nutritrack-backend/entities"

	"github.com/stretchr/testify/assert"
)

func mealAt(created time.Time, calories float64, score int) *entities.MealRecord {
	return &entities.MealRecord{Calories: calories, MealScore: score, CreatedAt: created}
}

func TestComputeSevenDayStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	meals := []*entities.MealRecord{
		mealAt(now.AddDate(0, 0, -1), 600, 80),
		mealAt(now.AddDate(0, 0, -2), 400, 90),
		mealAt(now.AddDate(0, 0, -10), 2000, 10), // outside the window
	}

	stats, ok := ComputeSevenDayStats(meals, now)
	assert.True(t, ok)
	assert.Equal(t, 2, stats.MealsLogged)
	assert.Equal(t, 500, stats.AvgDailyCalories)
	assert.Equal(t, 85, stats.AvgMealScore)
}

func TestComputeSevenDayStatsDivisorCapsAtSeven(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	var meals []*entities.MealRecord
	for i := 0; i < 14; i++ {
		meals = append(meals, mealAt(now.Add(-time.Duration(i+1)*time.Hour), 700, 75))
	}

	stats, ok := ComputeSevenDayStats(meals, now)
	assert.True(t, ok)
	assert.Equal(t, 14, stats.MealsLogged)
	// 14 meals divided over at most 7 days.
	assert.Equal(t, 1400, stats.AvgDailyCalories)
}

func TestComputeSevenDayStatsEmptyWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	meals := []*entities.MealRecord{mealAt(now.AddDate(0, 0, -8), 500, 70)}

	_, ok := ComputeSevenDayStats(meals, now)
	assert.False(t, ok)

	_, ok = ComputeSevenDayStats(nil, now)
	assert.False(t, ok)
}

func TestStreakStopsAtFirstGap(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)

	// Meals today, yesterday, and 3 days ago but not 2 days ago.
	meals := []*entities.MealRecord{
		mealAt(now.Add(-time.Hour), 500, 80),
		mealAt(now.AddDate(0, 0, -1), 500, 80),
		mealAt(now.AddDate(0, 0, -3), 500, 80),
	}

	assert.Equal(t, 2, Streak(meals, now))
}

func TestStreakZeroWithoutMealToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)

	meals := []*entities.MealRecord{mealAt(now.AddDate(0, 0, -1), 500, 80)}
	assert.Equal(t, 0, Streak(meals, now))
	assert.Equal(t, 0, Streak(nil, now))
}

func TestStreakMultipleMealsPerDayCountOnce(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)

	meals := []*entities.MealRecord{
		mealAt(now.Add(-time.Hour), 500, 80),
		mealAt(now.Add(-3*time.Hour), 300, 70),
		mealAt(now.AddDate(0, 0, -1), 500, 80),
	}

	assert.Equal(t, 2, Streak(meals, now))
}

func TestProgressNoHistory(t *testing.T) {
	now := time.Now()

	report := Progress(nil, "maintain_weight", now)
	assert.Equal(t, 0, report.Percentage)
	assert.Equal(t, "Start logging meals to track progress", report.Description)
}

func TestProgressStaleHistory(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	meals := []*entities.MealRecord{mealAt(now.AddDate(0, 0, -40), 500, 80)}
	report := Progress(meals, "maintain_weight", now)
	assert.Equal(t, 0, report.Percentage)
	assert.Equal(t, "No recent meals logged", report.Description)
}

func TestProgressWeightLossWeighting(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	var meals []*entities.MealRecord
	for i := 0; i < 15; i++ {
		meals = append(meals, mealAt(now.AddDate(0, 0, -i), 500, 80))
	}

	report := Progress(meals, "weight_loss", now)
	// 15/30 days = 50%, weighted by 0.7.
	assert.Equal(t, 35, report.Percentage)
	assert.Equal(t, "Logged meals on 15 of last 30 days", report.Description)

	report = Progress(meals, "maintain_weight", now)
	assert.Equal(t, 50, report.Percentage)
	assert.Equal(t, "Consistent logging on 15 days", report.Description)
}

func TestMealsOnDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)

	meals := []*entities.MealRecord{
		mealAt(now.Add(-time.Hour), 500, 80),
		mealAt(now.Add(-12*time.Hour), 300, 70),
		mealAt(now.AddDate(0, 0, -1), 400, 60),
	}

	assert.Equal(t, 2, MealsOnDay(meals, now))
}

func TestMealsSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	meals := []*entities.MealRecord{
		mealAt(now.AddDate(0, 0, -1), 500, 80),
		mealAt(now.AddDate(0, 0, -9), 300, 70),
	}

	recent := MealsSince(meals, now.AddDate(0, 0, -7))
	assert.Len(t, recent, 1)
	assert.Equal(t, 500.0, recent[0].Calories)
}

func TestAverageMealScore(t *testing.T) {
	meals := []*entities.MealRecord{
		{MealScore: 80},
		{MealScore: 85},
		{MealScore: 92},
	}
	// 257/3 = 85.666..., rounded to 1 decimal.
	assert.Equal(t, 85.7, AverageMealScore(meals))
	assert.Equal(t, 0.0, AverageMealScore(nil))
}

func TestAverageCalories(t *testing.T) {
	meals := []*entities.MealRecord{
		{Calories: 600},
		{Calories: 451},
	}
	assert.Equal(t, 526, AverageCalories(meals))
	assert.Equal(t, 0, AverageCalories(nil))
}

func TestTopFoods(t *testing.T) {
	meals := []*entities.MealRecord{
		{Foods: []*entities.MealFood{{Name: "Rice"}, {Name: "Chicken Breast"}}},
		{Foods: []*entities.MealFood{{Name: "Rice"}, {Name: "Broccoli"}}},
		{Foods: []*entities.MealFood{{Name: "Chicken Breast"}, {Name: ""}}},
	}

	top := TopFoods(meals, 2)
	assert.Equal(t, []FoodCount{
		{Name: "Rice", Count: 2},
		{Name: "Chicken Breast", Count: 2},
	}, top)

	all := TopFoods(meals, 10)
	assert.Len(t, all, 3)
	assert.Equal(t, FoodCount{Name: "Broccoli", Count: 1}, all[2])
}
