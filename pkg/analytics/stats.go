// Package analytics derives rolling statistics from stored meal records. All
// functions are pure: they scan the slices they are given and never touch the
// store, so services load once and compute here.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"nutritrack-backend/entities"
)

const dateLayout = "2006-01-02"

// SevenDayStats summarizes the meals of the trailing 7-day window. The second
// return value is false when the window is empty, in which case cached stats
// must be left untouched.
type SevenDayStats struct {
	AvgDailyCalories int
	MealsLogged      int
	AvgMealScore     int
}

func ComputeSevenDayStats(meals []*entities.MealRecord, now time.Time) (SevenDayStats, bool) {
	weekAgo := now.AddDate(0, 0, -7)

	var (
		count         int
		totalCalories float64
		totalScore    int
	)
	for _, m := range meals {
		if !m.CreatedAt.After(weekAgo) {
			continue
		}
		count++
		totalCalories += m.Calories
		totalScore += m.MealScore
	}

	if count == 0 {
		return SevenDayStats{}, false
	}

	days := count
	if days > 7 {
		days = 7
	}
	return SevenDayStats{
		AvgDailyCalories: int(math.Round(totalCalories / float64(days))),
		MealsLogged:      count,
		AvgMealScore:     int(math.Round(float64(totalScore) / float64(count))),
	}, true
}

// Streak counts consecutive calendar days ending today with at least one
// logged meal. The first missing day stops the walk.
func Streak(meals []*entities.MealRecord, now time.Time) int {
	dates := make(map[string]struct{}, len(meals))
	for _, m := range meals {
		dates[m.CreatedAt.Format(dateLayout)] = struct{}{}
	}

	streak := 0
	for i := 0; i < len(dates); i++ {
		day := now.AddDate(0, 0, -i).Format(dateLayout)
		if _, ok := dates[day]; !ok {
			break
		}
		streak++
	}
	return streak
}

// ProgressReport describes 30-day logging consistency, weighted down for the
// weight-loss goal.
type ProgressReport struct {
	Percentage  int
	Description string
}

func Progress(meals []*entities.MealRecord, goal string, now time.Time) ProgressReport {
	monthAgo := now.AddDate(0, 0, -30)

	days := make(map[string]struct{})
	any := false
	for _, m := range meals {
		if !m.CreatedAt.After(monthAgo) {
			continue
		}
		any = true
		days[m.CreatedAt.Format(dateLayout)] = struct{}{}
	}

	if len(meals) == 0 {
		return ProgressReport{Percentage: 0, Description: "Start logging meals to track progress"}
	}
	if !any {
		return ProgressReport{Percentage: 0, Description: "No recent meals logged"}
	}

	consistency := math.Min(100, float64(len(days))/30*100)

	if goal == "weight_loss" {
		return ProgressReport{
			Percentage:  int(math.Round(consistency * 0.7)),
			Description: fmt.Sprintf("Logged meals on %d of last 30 days", len(days)),
		}
	}
	return ProgressReport{
		Percentage:  int(math.Round(consistency)),
		Description: fmt.Sprintf("Consistent logging on %d days", len(days)),
	}
}

// MealsOnDay counts meals logged on the same calendar day as now.
func MealsOnDay(meals []*entities.MealRecord, now time.Time) int {
	today := now.Format(dateLayout)
	count := 0
	for _, m := range meals {
		if m.CreatedAt.Format(dateLayout) == today {
			count++
		}
	}
	return count
}

// MealsSince filters records with created_at inside the trailing window.
func MealsSince(meals []*entities.MealRecord, since time.Time) []*entities.MealRecord {
	var out []*entities.MealRecord
	for _, m := range meals {
		if m.CreatedAt.After(since) {
			out = append(out, m)
		}
	}
	return out
}

// AverageMealScore is the arithmetic mean rounded to 1 decimal, 0 when empty.
func AverageMealScore(meals []*entities.MealRecord) float64 {
	if len(meals) == 0 {
		return 0
	}
	total := 0
	for _, m := range meals {
		total += m.MealScore
	}
	return round1(float64(total) / float64(len(meals)))
}

// AverageCalories is the mean calorie count per meal, rounded, 0 when empty.
func AverageCalories(meals []*entities.MealRecord) int {
	if len(meals) == 0 {
		return 0
	}
	var total float64
	for _, m := range meals {
		total += m.Calories
	}
	return int(math.Round(total / float64(len(meals))))
}

// TopFoods ranks food names by frequency across the given meals.
type FoodCount struct {
	Name  string
	Count int
}

func TopFoods(meals []*entities.MealRecord, n int) []FoodCount {
	counts := map[string]int{}
	var order []string
	for _, m := range meals {
		for _, f := range m.Foods {
			if f.Name == "" {
				continue
			}
			if _, seen := counts[f.Name]; !seen {
				order = append(order, f.Name)
			}
			counts[f.Name]++
		}
	}

	ranked := make([]FoodCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, FoodCount{Name: name, Count: counts[name]})
	}
	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
