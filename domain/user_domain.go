package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessLogout        = "logged out successfully"
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrPasswordTooShort       = errors.New("password must be at least 8 characters long")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Name     string `json:"name" validate:"omitempty"`

		Age           int     `json:"age" validate:"omitempty,min=1,max=130"`
		WeightKg      float64 `json:"weight_kg" validate:"omitempty,gt=0"`
		HeightCm      float64 `json:"height_cm" validate:"omitempty,gt=0"`
		Gender        string  `json:"gender" validate:"omitempty,oneof=male female other"`
		ActivityLevel string  `json:"activity_level" validate:"omitempty,oneof=sedentary lightly_active moderately_active very_active extremely_active"`
		Goal          string  `json:"goal" validate:"omitempty,oneof=weight_loss muscle_gain maintain_weight"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token string      `json:"token"`
		User  UserPayload `json:"user"`
	}

	UserPayload struct {
		ID            string  `json:"id"`
		Email         string  `json:"email"`
		Name          string  `json:"name"`
		Age           int     `json:"age"`
		WeightKg      float64 `json:"weight_kg"`
		HeightCm      float64 `json:"height_cm"`
		Gender        string  `json:"gender"`
		ActivityLevel string  `json:"activity_level"`
		Goal          string  `json:"goal"`
	}

	UpdateProfileRequest struct {
		Name          string  `json:"name" validate:"omitempty"`
		Age           int     `json:"age" validate:"omitempty,min=1,max=130"`
		WeightKg      float64 `json:"weight_kg" validate:"omitempty,gt=0"`
		HeightCm      float64 `json:"height_cm" validate:"omitempty,gt=0"`
		Gender        string  `json:"gender" validate:"omitempty,oneof=male female other"`
		ActivityLevel string  `json:"activity_level" validate:"omitempty,oneof=sedentary lightly_active moderately_active very_active extremely_active"`
		Goal          string  `json:"goal" validate:"omitempty,oneof=weight_loss muscle_gain maintain_weight"`
	}

	DailyTargetsResponse struct {
		Calories int     `json:"calories"`
		Protein  int     `json:"protein"`
		Carbs    int     `json:"carbs"`
		Fats     int     `json:"fats"`
		Fiber    float64 `json:"fiber"`
	}

	PersonalInfoResponse struct {
		Name   string    `json:"name"`
		Email  string    `json:"email"`
		Age    int       `json:"age"`
		Gender string    `json:"gender"`
		Joined time.Time `json:"joined"`
	}

	HealthMetricsResponse struct {
		WeightKg      float64 `json:"weight_kg"`
		HeightCm      float64 `json:"height_cm"`
		BMI           float64 `json:"bmi"`
		Goal          string  `json:"goal"`
		ActivityLevel string  `json:"activity_level"`
	}

	UserStatisticsResponse struct {
		TotalMealsLogged int `json:"total_meals_logged"`
		AvgMealScore     int `json:"avg_meal_score"`
		AvgDailyCalories int `json:"avg_daily_calories"`
		CurrentStreak    int `json:"current_streak"`
		CompletionRate   int `json:"completion_rate"`
	}

	ProfileResponse struct {
		PersonalInfo     PersonalInfoResponse   `json:"personal_info"`
		HealthMetrics    HealthMetricsResponse  `json:"health_metrics"`
		NutritionTargets DailyTargetsResponse   `json:"nutrition_targets"`
		Statistics       UserStatisticsResponse `json:"statistics"`
		RecentMeals      []MealSummaryResponse  `json:"recent_meals"`
	}
)
