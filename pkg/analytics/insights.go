package analytics

import (
	"math"
	"sort"
	"time"

	"nutritrack-backend/entities"
	"nutritrack-backend/pkg/nutrition"
)

// Insights builds up to three personalized observations from the user's goal,
// BMI and the trailing week of meals. Rule order mirrors the dashboard
// contract: BMI-vs-goal first, then meal frequency, then recent quality.
func Insights(goal string, bmi float64, recentMeals []*entities.MealRecord) []string {
	var insights []string

	category := nutrition.BMICategory(bmi)
	if goal == nutrition.GoalWeightLoss && (category == "Overweight" || category == "Obese") {
		insights = append(insights, "Your BMI suggests weight loss could benefit your health. Target 0.5-1kg per week.")
	} else if goal == nutrition.GoalMuscleGain && category == "Normal" {
		insights = append(insights, "Good baseline for muscle gain. Focus on strength training and protein intake.")
	}

	if len(recentMeals) > 0 {
		avgDailyMeals := float64(len(recentMeals)) / 7
		if avgDailyMeals < 2 {
			insights = append(insights, "Consider eating more frequent, smaller meals for better metabolism.")
		} else if avgDailyMeals > 5 {
			insights = append(insights, "You're eating frequently. Ensure meals are appropriately portioned.")
		}
	}

	if len(recentMeals) >= 3 {
		latest := latestScores(recentMeals, 3)
		allGood := true
		anyPoor := false
		for _, s := range latest {
			if s < 80 {
				allGood = false
			}
			if s < 60 {
				anyPoor = true
			}
		}
		if allGood {
			insights = append(insights, "Excellent recent meal choices! Keep up the great work.")
		} else if anyPoor {
			insights = append(insights, "Some recent meals could be improved. Focus on balanced nutrition.")
		}
	}

	if len(insights) > 3 {
		insights = insights[:3]
	}
	return insights
}

func latestScores(meals []*entities.MealRecord, n int) []int {
	sorted := make([]*entities.MealRecord, len(meals))
	copy(sorted, meals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	scores := make([]int, len(sorted))
	for i, m := range sorted {
		scores[i] = m.MealScore
	}
	return scores
}

// Action is a goal-driven suggestion card for the dashboard.
type Action struct {
	Title       string
	Description string
	Priority    string
}

func RecommendedActions(goal string) []Action {
	var actions []Action
	if goal == nutrition.GoalWeightLoss {
		actions = append(actions,
			Action{Title: "Log Breakfast", Description: "Start your day with tracked nutrition", Priority: "high"},
			Action{Title: "Add Vegetables", Description: "Include veggies in your next meal", Priority: "medium"},
		)
	}
	actions = append(actions, Action{
		Title:       "Review Recent Meals",
		Description: "Check your meal history for patterns",
		Priority:    "low",
	})
	return actions
}

// AverageBMI averages over users that have both weight and height set,
// falling back to a fixed community baseline when nobody qualifies.
const fallbackCommunityBMI = 25.8

func AverageBMI(users []*entities.User) (float64, []float64) {
	var bmis []float64
	for _, u := range users {
		if u.WeightKg > 0 && u.HeightCm > 0 {
			bmis = append(bmis, nutrition.BMI(u.WeightKg, u.HeightCm))
		}
	}
	if len(bmis) == 0 {
		return fallbackCommunityBMI, nil
	}
	var sum float64
	for _, b := range bmis {
		sum += b
	}
	return round1(sum / float64(len(bmis))), bmis
}

// BMIDistribution converts per-user BMIs into rounded category percentages.
// Every category is present, defaulting to zero.
func BMIDistribution(bmis []float64) map[string]int {
	counts := map[string]int{"Underweight": 0, "Normal": 0, "Overweight": 0, "Obese": 0}
	for _, b := range bmis {
		counts[nutrition.BMICategory(b)]++
	}

	total := len(bmis)
	dist := map[string]int{"Underweight": 0, "Normal": 0, "Overweight": 0, "Obese": 0}
	if total == 0 {
		return dist
	}
	for category, n := range counts {
		dist[category] = int(math.Round(float64(n) / float64(total) * 100))
	}
	return dist
}

// GoalDistribution counts users per goal, defaulting unset goals to
// maintain_weight.
func GoalDistribution(users []*entities.User) map[string]int {
	goals := map[string]int{}
	for _, u := range users {
		goal := u.Goal
		if goal == "" {
			goal = nutrition.GoalMaintain
		}
		goals[goal]++
	}
	return goals
}

// ActiveUsers counts users with at least one meal inside the trailing week.
func ActiveUsers(mealsByUser map[string][]*entities.MealRecord, now time.Time) int {
	weekAgo := now.AddDate(0, 0, -7)
	active := 0
	for _, meals := range mealsByUser {
		for _, m := range meals {
			if m.CreatedAt.After(weekAgo) {
				active++
				break
			}
		}
	}
	return active
}
