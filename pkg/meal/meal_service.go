package meal

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"nutritrack-backend/domain"
	"nutritrack-backend/entities"
	"nutritrack-backend/internal/utils/storage"
	"nutritrack-backend/pkg/analytics"
	"nutritrack-backend/pkg/nutrition"
	"nutritrack-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealService interface {
		AnalyzeMeal(ctx context.Context, req domain.AnalyzeMealRequest, userID string) (domain.AnalyzeMealResponse, error)
		GetMeals(ctx context.Context, userID string, filter domain.MealFilter) ([]domain.MealResponse, int64, error)
		GetMealByID(ctx context.Context, id string, userID string) (domain.MealResponse, error)
		DeleteMeal(ctx context.Context, id string, userID string) error
		UploadMealPhoto(ctx context.Context, req domain.UploadMealPhotoRequest, userID string) (string, error)
	}

	mealService struct {
		mealRepository MealRepository
		userRepository user.UserRepository
		catalog        *nutrition.Catalog
		targetCalc     *nutrition.TargetCalculator
		s3             storage.AwsS3
	}
)

func NewMealService(
	mealRepository MealRepository,
	userRepository user.UserRepository,
	catalog *nutrition.Catalog,
	targetCalc *nutrition.TargetCalculator,
	s3 storage.AwsS3,
) MealService {
	return &mealService{
		mealRepository: mealRepository,
		userRepository: userRepository,
		catalog:        catalog,
		targetCalc:     targetCalc,
		s3:             s3,
	}
}

func (s *mealService) AnalyzeMeal(ctx context.Context, req domain.AnalyzeMealRequest, userID string) (domain.AnalyzeMealResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AnalyzeMealResponse{}, domain.ErrParseUUID
	}

	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AnalyzeMealResponse{}, domain.ErrUserNotFound
		}
		return domain.AnalyzeMealResponse{}, err
	}

	items := make([]nutrition.FoodItem, 0, len(req.FoodItems))
	for _, it := range req.FoodItems {
		items = append(items, nutrition.FoodItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Unit:     it.Unit,
		})
	}

	totals, processed, err := nutrition.Aggregate(s.catalog, items)
	if err != nil {
		return domain.AnalyzeMealResponse{}, err
	}

	weight, height := owner.WeightKg, owner.HeightCm
	if weight <= 0 {
		weight = nutrition.DefaultWeightKg
	}
	if height <= 0 {
		height = nutrition.DefaultHeightCm
	}
	bmi := nutrition.BMI(weight, height)

	risk := nutrition.AssessRisk(totals.Calories, totals.Fats, totals.Carbs, bmi)
	score := nutrition.MealScore(totals)

	goal := owner.Goal
	if goal == "" {
		goal = nutrition.DefaultGoal
	}
	targets := s.targetsFor(owner)

	recommendations := nutrition.Recommend(totals, targets, len(req.FoodItems), goal)

	factorsJSON, _ := json.Marshal(risk.Factors)
	recsJSON, _ := json.Marshal(recommendations)

	mealType := req.MealType
	if mealType == "" {
		mealType = "other"
	}

	record := &entities.MealRecord{
		ID:       uuid.New(),
		UserID:   userUUID,
		MealType: mealType,
		Notes:    req.Notes,
		Location: req.Location,

		Calories: math.Round(totals.Calories),
		Protein:  round1(totals.Protein),
		Carbs:    round1(totals.Carbs),
		Fats:     round1(totals.Fats),
		Fiber:    round1(totals.Fiber),
		Sodium:   round1(totals.Sodium),
		Sugar:    round1(totals.Sugar),

		RiskScore:   risk.Score,
		RiskLevel:   risk.Level,
		RiskFactors: string(factorsJSON),
		MealScore:   score,
		MealGrade:   nutrition.MealGrade(score),

		BMIValue:    round1(bmi),
		BMICategory: nutrition.BMICategory(bmi),

		Goal:           goal,
		TargetCalories: targets.Calories,
		TargetProtein:  targets.Protein,
		TargetCarbs:    targets.Carbs,
		TargetFats:     targets.Fats,
		TargetFiber:    targets.Fiber,

		Recommendations: string(recsJSON),
		CreatedAt:       time.Now(),
	}

	for _, p := range processed {
		record.Foods = append(record.Foods, &entities.MealFood{
			ID:       uuid.New(),
			MealID:   record.ID,
			Name:     p.Name,
			Quantity: p.Quantity,
			Unit:     p.Unit,
			Calories: round1(p.Nutrition.Calories),
			Protein:  round1(p.Nutrition.Protein),
			Carbs:    round1(p.Nutrition.Carbs),
			Fats:     round1(p.Nutrition.Fats),
			Fiber:    round1(p.Nutrition.Fiber),
		})
	}

	if err := s.mealRepository.CreateMeal(ctx, record); err != nil {
		return domain.AnalyzeMealResponse{}, err
	}

	if err := s.refreshUserStats(ctx, owner); err != nil {
		return domain.AnalyzeMealResponse{}, err
	}

	return domain.AnalyzeMealResponse{
		MealID:   record.ID.String(),
		Analysis: analysisFromRecord(record),
	}, nil
}

func (s *mealService) GetMeals(ctx context.Context, userID string, filter domain.MealFilter) ([]domain.MealResponse, int64, error) {
	meals, count, err := s.mealRepository.GetMeals(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.MealResponse, 0, len(meals))
	for _, m := range meals {
		responses = append(responses, toMealResponse(m))
	}
	return responses, count, nil
}

func (s *mealService) GetMealByID(ctx context.Context, id string, userID string) (domain.MealResponse, error) {
	record, err := s.ownedMeal(ctx, id, userID)
	if err != nil {
		return domain.MealResponse{}, err
	}
	return toMealResponse(record), nil
}

func (s *mealService) DeleteMeal(ctx context.Context, id string, userID string) error {
	record, err := s.ownedMeal(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.mealRepository.DeleteMeal(ctx, record.ID.String()); err != nil {
		return err
	}

	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	return s.refreshUserStats(ctx, owner)
}

func (s *mealService) UploadMealPhoto(ctx context.Context, req domain.UploadMealPhotoRequest, userID string) (string, error) {
	record, err := s.ownedMeal(ctx, req.MealID, userID)
	if err != nil {
		return "", err
	}

	url, err := s.s3.UploadFile(ctx, "meal-photos", req.Image)
	if err != nil {
		return "", err
	}

	record.ImageURL = url
	if err := s.mealRepository.UpdateMeal(ctx, record); err != nil {
		return "", err
	}
	return url, nil
}

func (s *mealService) ownedMeal(ctx context.Context, id string, userID string) (*entities.MealRecord, error) {
	record, err := s.mealRepository.GetMealByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealNotFound
		}
		return nil, err
	}
	if record.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedMealAccess
	}
	return record, nil
}

// targetsFor reads the cached daily targets, falling back to a fresh
// calculation for users that were created before targets were cached.
func (s *mealService) targetsFor(owner *entities.User) nutrition.Targets {
	if owner.TargetCalories > 0 {
		return nutrition.Targets{
			Calories: owner.TargetCalories,
			Protein:  owner.TargetProtein,
			Carbs:    owner.TargetCarbs,
			Fats:     owner.TargetFats,
			Fiber:    owner.TargetFiber,
		}
	}
	return s.targetCalc.Calculate(nutrition.Profile{
		WeightKg:      owner.WeightKg,
		HeightCm:      owner.HeightCm,
		Age:           owner.Age,
		Gender:        owner.Gender,
		ActivityLevel: owner.ActivityLevel,
		Goal:          owner.Goal,
	})
}

// refreshUserStats recomputes the cached 7-day stats after a meal write. An
// empty window leaves the cache untouched.
func (s *mealService) refreshUserStats(ctx context.Context, owner *entities.User) error {
	now := time.Now()
	meals, err := s.mealRepository.GetMealsSince(ctx, owner.ID.String(), now.AddDate(0, 0, -7))
	if err != nil {
		return err
	}

	stats, ok := analytics.ComputeSevenDayStats(meals, now)
	if !ok {
		return nil
	}

	owner.AvgDailyCalories = stats.AvgDailyCalories
	owner.MealsLogged7d = stats.MealsLogged
	owner.AvgMealScore = stats.AvgMealScore
	owner.StatsUpdatedAt = &now
	return s.userRepository.UpdateUser(ctx, owner)
}

// analysisFromRecord rebuilds the analysis payload from the frozen record, so
// the analyze response and every later history read agree byte for byte.
func analysisFromRecord(record *entities.MealRecord) domain.MealAnalysisResponse {
	var factors []string
	_ = json.Unmarshal([]byte(record.RiskFactors), &factors)
	if factors == nil {
		factors = []string{}
	}

	var recommendations []string
	_ = json.Unmarshal([]byte(record.Recommendations), &recommendations)
	if recommendations == nil {
		recommendations = []string{}
	}

	targets := nutrition.Targets{
		Calories: record.TargetCalories,
		Protein:  record.TargetProtein,
		Carbs:    record.TargetCarbs,
		Fats:     record.TargetFats,
		Fiber:    record.TargetFiber,
	}
	totals := nutrition.Totals{
		Calories: record.Calories,
		Protein:  record.Protein,
		Carbs:    record.Carbs,
		Fats:     record.Fats,
		Fiber:    record.Fiber,
	}
	pcts := nutrition.PercentOfTargets(totals, targets)

	return domain.MealAnalysisResponse{
		Nutrition: domain.NutritionResponse{
			Calories: record.Calories,
			Protein:  record.Protein,
			Carbs:    record.Carbs,
			Fats:     record.Fats,
			Fiber:    record.Fiber,
			Sodium:   record.Sodium,
			Sugar:    record.Sugar,
		},
		HealthAssessment: domain.HealthAssessmentResponse{
			RiskLevel:   record.RiskLevel,
			RiskScore:   record.RiskScore,
			RiskFactors: factors,
			MealScore:   record.MealScore,
			MealGrade:   record.MealGrade,
		},
		BMIContext: domain.BMIContextResponse{
			Value:    record.BMIValue,
			Category: record.BMICategory,
			Message:  nutrition.BMIMessage(record.BMIValue, record.Goal),
		},
		Comparison: domain.ComparisonResponse{
			DailyTargets: domain.DailyTargetsResponse{
				Calories: targets.Calories,
				Protein:  targets.Protein,
				Carbs:    targets.Carbs,
				Fats:     targets.Fats,
				Fiber:    targets.Fiber,
			},
			PercentageOfDaily: domain.PercentageOfDailyResponse{
				Calories: pcts.Calories,
				Protein:  pcts.Protein,
				Carbs:    pcts.Carbs,
				Fats:     pcts.Fats,
			},
		},
		Recommendations: recommendations,
		FoodDetails:     foodDetails(record),
		Timestamp:       record.CreatedAt,
	}
}

func foodDetails(record *entities.MealRecord) []domain.ProcessedFoodResponse {
	details := make([]domain.ProcessedFoodResponse, 0, len(record.Foods))
	for _, f := range record.Foods {
		details = append(details, domain.ProcessedFoodResponse{
			Name:     f.Name,
			Quantity: f.Quantity,
			Unit:     f.Unit,
			Nutrition: domain.NutritionResponse{
				Calories: f.Calories,
				Protein:  f.Protein,
				Carbs:    f.Carbs,
				Fats:     f.Fats,
				Fiber:    f.Fiber,
			},
		})
	}
	return details
}

func toMealResponse(record *entities.MealRecord) domain.MealResponse {
	return domain.MealResponse{
		ID:        record.ID.String(),
		MealType:  record.MealType,
		Notes:     record.Notes,
		Location:  record.Location,
		ImageURL:  record.ImageURL,
		Foods:     foodDetails(record),
		Analysis:  analysisFromRecord(record),
		CreatedAt: record.CreatedAt,
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
