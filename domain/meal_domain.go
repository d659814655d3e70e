package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAnalyzeMeal     = "meal analyzed successfully"
	MessageSuccessGetMeals        = "meals retrieved successfully"
	MessageSuccessGetMealDetails  = "meal retrieved successfully"
	MessageSuccessDeleteMeal      = "meal deleted successfully"
	MessageSuccessUploadMealPhoto = "meal photo uploaded successfully"

	MessageFailedAnalyzeMeal     = "failed to analyze meal"
	MessageFailedGetMeals        = "failed to retrieve meals"
	MessageFailedDeleteMeal      = "failed to delete meal"
	MessageFailedUploadMealPhoto = "failed to upload meal photo"

	ErrFoodItemsRequired      = errors.New("at least one food item is required")
	ErrMealNotFound           = errors.New("meal not found")
	ErrUnauthorizedMealAccess = errors.New("unauthorized access to meal")
	ErrInvalidImageFormat     = errors.New("invalid image format")
	ErrInvalidDateFilter      = errors.New("invalid date filter")
)

type (
	FoodItemRequest struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit     string  `json:"unit" validate:"omitempty"`
	}

	AnalyzeMealRequest struct {
		FoodItems []FoodItemRequest `json:"food_items" validate:"required,min=1,dive"`
		MealType  string            `json:"meal_type" validate:"omitempty"`
		Notes     string            `json:"notes" validate:"omitempty"`
		Location  string            `json:"location" validate:"omitempty"`
	}

	ProcessedFoodResponse struct {
		Name      string            `json:"name"`
		Quantity  float64           `json:"quantity"`
		Unit      string            `json:"unit"`
		Nutrition NutritionResponse `json:"nutrition"`
	}

	NutritionResponse struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fats     float64 `json:"fats"`
		Fiber    float64 `json:"fiber"`
		Sodium   float64 `json:"sodium,omitempty"`
		Sugar    float64 `json:"sugar,omitempty"`
	}

	HealthAssessmentResponse struct {
		RiskLevel   string   `json:"risk_level"`
		RiskScore   int      `json:"risk_score"`
		RiskFactors []string `json:"risk_factors"`
		MealScore   int      `json:"meal_score"`
		MealGrade   string   `json:"meal_grade"`
	}

	BMIContextResponse struct {
		Value    float64 `json:"value"`
		Category string  `json:"category"`
		Message  string  `json:"message"`
	}

	PercentageOfDailyResponse struct {
		Calories int `json:"calories"`
		Protein  int `json:"protein"`
		Carbs    int `json:"carbs"`
		Fats     int `json:"fats"`
	}

	ComparisonResponse struct {
		DailyTargets      DailyTargetsResponse      `json:"daily_targets"`
		PercentageOfDaily PercentageOfDailyResponse `json:"percentage_of_daily"`
	}

	MealAnalysisResponse struct {
		Nutrition        NutritionResponse        `json:"nutrition"`
		HealthAssessment HealthAssessmentResponse `json:"health_assessment"`
		BMIContext       BMIContextResponse       `json:"bmi_context"`
		Comparison       ComparisonResponse       `json:"comparison"`
		Recommendations  []string                 `json:"recommendations"`
		FoodDetails      []ProcessedFoodResponse  `json:"food_details"`
		Timestamp        time.Time                `json:"timestamp"`
	}

	AnalyzeMealResponse struct {
		MealID   string               `json:"meal_id"`
		Analysis MealAnalysisResponse `json:"analysis"`
	}

	MealResponse struct {
		ID        string                  `json:"id"`
		MealType  string                  `json:"meal_type"`
		Notes     string                  `json:"notes"`
		Location  string                  `json:"location,omitempty"`
		ImageURL  string                  `json:"image_url,omitempty"`
		Foods     []ProcessedFoodResponse `json:"foods"`
		Analysis  MealAnalysisResponse    `json:"analysis"`
		CreatedAt time.Time               `json:"created_at"`
	}

	MealSummaryResponse struct {
		ID        string    `json:"id"`
		MealType  string    `json:"meal_type"`
		Calories  float64   `json:"calories"`
		MealScore int       `json:"meal_score"`
		MealGrade string    `json:"meal_grade"`
		CreatedAt time.Time `json:"created_at"`
	}

	MealFilter struct {
		StartDate *time.Time
		EndDate   *time.Time
		MealType  string
		Limit     int
		Offset    int
	}

	UploadMealPhotoRequest struct {
		MealID string                `json:"meal_id" form:"meal_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
