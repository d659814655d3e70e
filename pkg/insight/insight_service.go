package insight

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"nutritrack-backend/domain"
	"nutritrack-backend/entities"
	"nutritrack-backend/pkg/analytics"
	"nutritrack-backend/pkg/meal"
	"nutritrack-backend/pkg/nutrition"
	"nutritrack-backend/pkg/user"

	"gorm.io/gorm"
)

type (
	InsightService interface {
		ProfileOverview(ctx context.Context, userID string) (domain.ProfileResponse, error)
		DashboardSummary(ctx context.Context, userID string) (domain.DashboardSummaryResponse, error)
		CommunityInsights(ctx context.Context) (domain.CommunityInsightsResponse, error)
		HealthCheck(ctx context.Context) (domain.HealthCheckResponse, error)
	}

	insightService struct {
		userRepository user.UserRepository
		mealRepository meal.MealRepository
	}
)

func NewInsightService(userRepository user.UserRepository, mealRepository meal.MealRepository) InsightService {
	return &insightService{
		userRepository: userRepository,
		mealRepository: mealRepository,
	}
}

func (s *insightService) ProfileOverview(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}

	meals, err := s.mealRepository.GetMealsByUser(ctx, userID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	now := time.Now()
	completionRate := len(meals)
	if completionRate > 100 {
		completionRate = 100
	}

	recent := make([]domain.MealSummaryResponse, 0, 3)
	for _, m := range meals {
		if len(recent) == 3 {
			break
		}
		recent = append(recent, domain.MealSummaryResponse{
			ID:        m.ID.String(),
			MealType:  m.MealType,
			Calories:  m.Calories,
			MealScore: m.MealScore,
			MealGrade: m.MealGrade,
			CreatedAt: m.CreatedAt,
		})
	}

	return domain.ProfileResponse{
		PersonalInfo: domain.PersonalInfoResponse{
			Name:   owner.Name,
			Email:  owner.Email,
			Age:    owner.Age,
			Gender: owner.Gender,
			Joined: owner.CreatedAt,
		},
		HealthMetrics: domain.HealthMetricsResponse{
			WeightKg:      owner.WeightKg,
			HeightCm:      owner.HeightCm,
			BMI:           round1(nutrition.BMI(profileWeight(owner), profileHeight(owner))),
			Goal:          owner.Goal,
			ActivityLevel: owner.ActivityLevel,
		},
		NutritionTargets: domain.DailyTargetsResponse{
			Calories: owner.TargetCalories,
			Protein:  owner.TargetProtein,
			Carbs:    owner.TargetCarbs,
			Fats:     owner.TargetFats,
			Fiber:    owner.TargetFiber,
		},
		Statistics: domain.UserStatisticsResponse{
			TotalMealsLogged: len(meals),
			AvgMealScore:     owner.AvgMealScore,
			AvgDailyCalories: owner.AvgDailyCalories,
			CurrentStreak:    analytics.Streak(meals, now),
			CompletionRate:   completionRate,
		},
		RecentMeals: recent,
	}, nil
}

func (s *insightService) DashboardSummary(ctx context.Context, userID string) (domain.DashboardSummaryResponse, error) {
	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DashboardSummaryResponse{}, domain.ErrUserNotFound
		}
		return domain.DashboardSummaryResponse{}, err
	}

	meals, err := s.mealRepository.GetMealsByUser(ctx, userID)
	if err != nil {
		return domain.DashboardSummaryResponse{}, err
	}

	now := time.Now()
	recent := analytics.MealsSince(meals, now.AddDate(0, 0, -7))

	goal := owner.Goal
	if goal == "" {
		goal = nutrition.GoalMaintain
	}
	bmi := nutrition.BMI(profileWeight(owner), profileHeight(owner))
	progress := analytics.Progress(meals, goal, now)

	topFoods := make([]domain.FoodFrequencyResponse, 0, 3)
	for _, f := range analytics.TopFoods(recent, 3) {
		topFoods = append(topFoods, domain.FoodFrequencyResponse{Name: f.Name, Count: f.Count})
	}

	actions := make([]domain.RecommendedActionResponse, 0)
	for _, a := range analytics.RecommendedActions(goal) {
		actions = append(actions, domain.RecommendedActionResponse{
			Title:       a.Title,
			Description: a.Description,
			Priority:    a.Priority,
		})
	}

	return domain.DashboardSummaryResponse{
		HealthOverview: domain.HealthOverviewResponse{
			BMI:         round1(bmi),
			BMICategory: nutrition.BMICategory(bmi),
			Goal:        goal,
			Progress: domain.ProgressResponse{
				Percentage:  progress.Percentage,
				Description: progress.Description,
			},
		},
		NutritionTracking: domain.NutritionTrackingResponse{
			MealsLoggedToday:   analytics.MealsOnDay(recent, now),
			AvgMealScore:       analytics.AverageMealScore(recent),
			AvgCaloriesPerMeal: analytics.AverageCalories(recent),
			CurrentStreak:      analytics.Streak(meals, now),
		},
		Insights:           analytics.Insights(goal, bmi, recent),
		TopFoods:           topFoods,
		RecommendedActions: actions,
	}, nil
}

func (s *insightService) CommunityInsights(ctx context.Context) (domain.CommunityInsightsResponse, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return domain.CommunityInsightsResponse{}, err
	}
	allMeals, err := s.mealRepository.GetAllMeals(ctx)
	if err != nil {
		return domain.CommunityInsightsResponse{}, err
	}

	now := time.Now()

	mealsByUser := map[string][]*entities.MealRecord{}
	for _, m := range allMeals {
		key := m.UserID.String()
		mealsByUser[key] = append(mealsByUser[key], m)
	}

	totalUsers := int64(len(users))
	totalMeals := int64(len(allMeals))
	avgMealsPerUser := float64(totalMeals)
	if totalUsers > 0 {
		avgMealsPerUser = float64(totalMeals) / float64(totalUsers)
	}

	avgBMI, bmis := analytics.AverageBMI(users)

	topFoods := make([]domain.FoodFrequencyResponse, 0, 10)
	for _, f := range analytics.TopFoods(allMeals, 10) {
		topFoods = append(topFoods, domain.FoodFrequencyResponse{Name: f.Name, Count: f.Count})
	}

	goals := analytics.GoalDistribution(users)
	popular := make([]domain.GoalPopularityResponse, 0, len(goals))
	for g, n := range goals {
		popular = append(popular, domain.GoalPopularityResponse{Goal: g, Count: n})
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].Count != popular[j].Count {
			return popular[i].Count > popular[j].Count
		}
		return popular[i].Goal < popular[j].Goal
	})
	if len(popular) > 3 {
		popular = popular[:3]
	}

	return domain.CommunityInsightsResponse{
		Overview: domain.CommunityOverviewResponse{
			TotalUsers:       totalUsers,
			TotalMealsLogged: totalMeals,
			AvgMealsPerUser:  round1(avgMealsPerUser),
			ActiveUsers7d:    analytics.ActiveUsers(mealsByUser, now),
		},
		HealthStats: domain.CommunityHealthStatsResponse{
			AvgBMI:           avgBMI,
			BMIDistribution:  analytics.BMIDistribution(bmis),
			GoalDistribution: goals,
			MostCommonFoods:  topFoods,
		},
		Trends: domain.CommunityTrendsResponse{
			AvgMealScore:    analytics.AverageMealScore(allMeals),
			PopularGoals:    popular,
			ImprovementRate: "72%",
		},
		Leaderboards: domain.CommunityLeaderboardsResponse{
			Consistency: streakLeaders(users, mealsByUser, now),
			MealQuality: qualityLeaders(users, mealsByUser),
		},
	}, nil
}

func (s *insightService) HealthCheck(ctx context.Context) (domain.HealthCheckResponse, error) {
	userCount, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		return domain.HealthCheckResponse{}, err
	}
	mealCount, err := s.mealRepository.CountMeals(ctx)
	if err != nil {
		return domain.HealthCheckResponse{}, err
	}
	return domain.HealthCheckResponse{
		Status: "healthy",
		Users:  userCount,
		Meals:  mealCount,
	}, nil
}

// streakLeaders ranks users by their current streak, dropping zero streaks.
func streakLeaders(users []*entities.User, mealsByUser map[string][]*entities.MealRecord, now time.Time) []domain.StreakLeaderResponse {
	var leaders []domain.StreakLeaderResponse
	for _, u := range users {
		meals := mealsByUser[u.ID.String()]
		streak := analytics.Streak(meals, now)
		if streak == 0 {
			continue
		}
		leaders = append(leaders, domain.StreakLeaderResponse{
			Name:        u.Name,
			Streak:      streak,
			MealsLogged: len(meals),
		})
	}
	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].Streak > leaders[j].Streak
	})
	if len(leaders) > 5 {
		leaders = leaders[:5]
	}
	return leaders
}

// qualityLeaders ranks users by average meal score; users without meals are
// excluded entirely.
func qualityLeaders(users []*entities.User, mealsByUser map[string][]*entities.MealRecord) []domain.QualityLeaderResponse {
	var leaders []domain.QualityLeaderResponse
	for _, u := range users {
		meals := mealsByUser[u.ID.String()]
		if len(meals) == 0 {
			continue
		}
		leaders = append(leaders, domain.QualityLeaderResponse{
			Name:        u.Name,
			AvgScore:    analytics.AverageMealScore(meals),
			MealsLogged: len(meals),
		})
	}
	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].AvgScore > leaders[j].AvgScore
	})
	if len(leaders) > 5 {
		leaders = leaders[:5]
	}
	return leaders
}

func profileWeight(u *entities.User) float64 {
	if u.WeightKg > 0 {
		return u.WeightKg
	}
	return nutrition.DefaultWeightKg
}

func profileHeight(u *entities.User) float64 {
	if u.HeightCm > 0 {
		return u.HeightCm
	}
	return nutrition.DefaultHeightCm
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
