package nutrition

import "math"

const (
	RiskLow      = "Low Risk"
	RiskModerate = "Moderate Risk"
	RiskHigh     = "High Risk"
	RiskVeryHigh = "Very High Risk"
)

// Risk is an additive dietary/BMI risk assessment. Score is bounded below by
// zero; factors list the triggered conditions in check order.
type Risk struct {
	Score   int      `json:"score"`
	Level   string   `json:"level"`
	Factors []string `json:"factors"`
}

// BMI expects weight in kilograms and height in centimeters.
func BMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100
	return weightKg / (h * h)
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BMIMessage pairs the category with the user's goal.
func BMIMessage(bmi float64, goal string) string {
	category := BMICategory(bmi)
	switch {
	case goal == GoalWeightLoss && (category == "Overweight" || category == "Obese"):
		return "Focus on calorie deficit and regular exercise for healthy weight loss"
	case goal == GoalMuscleGain && category == "Normal":
		return "Great BMI for muscle gain - focus on protein intake and strength training"
	case category == "Normal":
		return "Healthy BMI range - maintain with balanced nutrition and activity"
	case category == "Underweight":
		return "Your BMI indicates underweight. Consider consulting a nutritionist."
	case category == "Overweight":
		return "Your BMI indicates overweight. Consider consulting a nutritionist."
	default:
		return "Your BMI indicates obese. Consider consulting a nutritionist."
	}
}

// AssessRisk applies the fixed rule chain: calories, fats, carbs, BMI. The
// calorie and fat rules are two-tier and mutually exclusive within the tier.
func AssessRisk(calories, fats, carbs, bmi float64) Risk {
	score := 0
	var factors []string

	if calories > 1000 {
		score += 2
		factors = append(factors, "High calorie intake")
	} else if calories > 800 {
		score++
		factors = append(factors, "Moderate-high calorie intake")
	}

	if fats > 40 {
		score += 2
		factors = append(factors, "High fat content")
	} else if fats > 25 {
		score++
		factors = append(factors, "Moderate-high fat content")
	}

	if carbs > 100 {
		score++
		factors = append(factors, "High carbohydrate content")
	}

	if bmi > 30 {
		score += 2
		factors = append(factors, "Obesity BMI range")
	} else if bmi > 25 {
		score++
		factors = append(factors, "Overweight BMI range")
	}

	var level string
	switch {
	case score == 0:
		level = RiskLow
	case score <= 2:
		level = RiskModerate
	case score <= 4:
		level = RiskHigh
	default:
		level = RiskVeryHigh
	}

	return Risk{Score: score, Level: level, Factors: factors}
}

// MealScore rates macro/fiber balance on a 0-100 scale.
func MealScore(t Totals) int {
	score := 100.0

	if t.Calories > 800 {
		score -= math.Min(30, (t.Calories-800)/10)
	}
	if t.Protein > 20 {
		score += math.Min(10, (t.Protein-20)/2)
	}
	if t.Fiber > 5 {
		score += math.Min(10, t.Fiber)
	}
	if t.Fats > 30 && t.Protein < 15 {
		score -= 15
	}

	return int(math.Max(0, math.Min(100, math.Round(score))))
}

func MealGrade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
