package domain

var (
	MessageSuccessGetDashboard = "dashboard summary retrieved successfully"
	MessageSuccessGetCommunity = "community insights retrieved successfully"

	MessageFailedGetDashboard = "failed to retrieve dashboard summary"
	MessageFailedGetCommunity = "failed to retrieve community insights"
)

type (
	ProgressResponse struct {
		Percentage  int    `json:"percentage"`
		Description string `json:"description"`
	}

	HealthOverviewResponse struct {
		BMI         float64          `json:"bmi"`
		BMICategory string           `json:"bmi_category"`
		Goal        string           `json:"goal"`
		Progress    ProgressResponse `json:"progress"`
	}

	NutritionTrackingResponse struct {
		MealsLoggedToday   int     `json:"meals_logged_today"`
		AvgMealScore       float64 `json:"avg_meal_score"`
		AvgCaloriesPerMeal int     `json:"avg_calories_per_meal"`
		CurrentStreak      int     `json:"current_streak"`
	}

	FoodFrequencyResponse struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	RecommendedActionResponse struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
	}

	DashboardSummaryResponse struct {
		HealthOverview     HealthOverviewResponse      `json:"health_overview"`
		NutritionTracking  NutritionTrackingResponse   `json:"nutrition_tracking"`
		Insights           []string                    `json:"insights"`
		TopFoods           []FoodFrequencyResponse     `json:"top_foods"`
		RecommendedActions []RecommendedActionResponse `json:"recommended_actions"`
	}

	CommunityOverviewResponse struct {
		TotalUsers       int64   `json:"total_users"`
		TotalMealsLogged int64   `json:"total_meals_logged"`
		AvgMealsPerUser  float64 `json:"avg_meals_per_user"`
		ActiveUsers7d    int     `json:"active_users_7d"`
	}

	CommunityHealthStatsResponse struct {
		AvgBMI           float64                 `json:"avg_bmi"`
		BMIDistribution  map[string]int          `json:"bmi_distribution"`
		GoalDistribution map[string]int          `json:"goal_distribution"`
		MostCommonFoods  []FoodFrequencyResponse `json:"most_common_foods"`
	}

	GoalPopularityResponse struct {
		Goal  string `json:"goal"`
		Count int    `json:"count"`
	}

	CommunityTrendsResponse struct {
		AvgMealScore    float64                  `json:"avg_meal_score"`
		PopularGoals    []GoalPopularityResponse `json:"popular_goals"`
		ImprovementRate string                   `json:"improvement_rate"`
	}

	StreakLeaderResponse struct {
		Name        string `json:"name"`
		Streak      int    `json:"streak"`
		MealsLogged int    `json:"meals_logged"`
	}

	QualityLeaderResponse struct {
		Name        string  `json:"name"`
		AvgScore    float64 `json:"avg_score"`
		MealsLogged int     `json:"meals_logged"`
	}

	CommunityLeaderboardsResponse struct {
		Consistency []StreakLeaderResponse  `json:"consistency"`
		MealQuality []QualityLeaderResponse `json:"meal_quality"`
	}

	CommunityInsightsResponse struct {
		Overview     CommunityOverviewResponse     `json:"overview"`
		HealthStats  CommunityHealthStatsResponse  `json:"health_stats"`
		Trends       CommunityTrendsResponse       `json:"trends"`
		Leaderboards CommunityLeaderboardsResponse `json:"leaderboards"`
	}

	HealthCheckResponse struct {
		Status string `json:"status"`
		Users  int64  `json:"users"`
		Meals  int64  `json:"meals"`
	}
)
