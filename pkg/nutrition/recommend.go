package nutrition

import "math"

// Percentages expresses meal totals as integer percentages of daily targets.
type Percentages struct {
	Calories int
	Protein  int
	Carbs    int
	Fats     int
}

// PercentOfTargets assumes targets are strictly positive, which the target
// calculator guarantees by construction.
func PercentOfTargets(t Totals, targets Targets) Percentages {
	return Percentages{
		Calories: int(math.Round(t.Calories / float64(targets.Calories) * 100)),
		Protein:  int(math.Round(t.Protein / float64(targets.Protein) * 100)),
		Carbs:    int(math.Round(t.Carbs / float64(targets.Carbs) * 100)),
		Fats:     int(math.Round(t.Fats / float64(targets.Fats) * 100)),
	}
}

// Recommend evaluates the rule groups in fixed order, each contributing at
// most one suggestion. Targets must be strictly positive (see
// PercentOfTargets).
func Recommend(t Totals, targets Targets, foodCount int, goal string) []string {
	var recommendations []string

	proteinPct := t.Protein / float64(targets.Protein) * 100
	caloriePct := t.Calories / float64(targets.Calories) * 100

	if proteinPct < 50 {
		recommendations = append(recommendations, "Consider adding lean protein like chicken, fish, or tofu")
	} else if proteinPct > 150 {
		recommendations = append(recommendations, "High protein intake - ensure adequate hydration")
	}

	if goal == GoalWeightLoss && caloriePct > 40 {
		recommendations = append(recommendations, "For weight loss, consider smaller portions or lower-calorie alternatives")
	} else if goal == GoalMuscleGain && proteinPct < 30 {
		recommendations = append(recommendations, "For muscle gain, increase protein intake with this meal")
	}

	if t.Fiber < 5 {
		recommendations = append(recommendations, "Add more fiber-rich foods like vegetables, fruits, or whole grains")
	}

	if foodCount < 3 {
		recommendations = append(recommendations, "Include more food variety for balanced nutrition")
	}

	if caloriePct <= 35 && proteinPct >= 25 && t.Fiber >= 5 {
		recommendations = append(recommendations, "Great meal composition! Well balanced and nutritious.")
	}

	return recommendations
}
