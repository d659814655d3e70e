package user

import (
	"context"
	"errors"
	"log"
	"strings"

	"nutritrack-backend/domain"
	"nutritrack-backend/entities"
	"nutritrack-backend/internal/utils/mailing"
	"nutritrack-backend/pkg/jwt"
	"nutritrack-backend/pkg/nutrition"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.UserPayload, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		targetCalc     *nutrition.TargetCalculator
	}
)

var nameCaser = cases.Title(language.English)

func NewUserService(
	userRepository UserRepository,
	jwtService jwt.JWTService,
	targetCalc *nutrition.TargetCalculator,
) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		targetCalc:     targetCalc,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = nameCaser.String(strings.SplitN(email, "@", 2)[0])
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user := &entities.User{
		ID:            uuid.New(),
		Email:         email,
		Name:          name,
		PasswordHash:  string(hash),
		Age:           req.Age,
		WeightKg:      req.WeightKg,
		HeightCm:      req.HeightCm,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
	}

	if user.Age == 0 {
		user.Age = 25
	}
	if user.WeightKg == 0 {
		user.WeightKg = nutrition.DefaultWeightKg
	}
	if user.HeightCm == 0 {
		user.HeightCm = nutrition.DefaultHeightCm
	}
	if user.Gender == "" {
		user.Gender = nutrition.DefaultGender
	}
	if user.ActivityLevel == "" {
		user.ActivityLevel = nutrition.DefaultActivityLevel
	}
	if user.Goal == "" {
		user.Goal = nutrition.DefaultGoal
	}

	applyTargets(user, s.targetCalc)

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.AuthResponse{}, err
	}

	if err := mailing.SendWelcomeEmail(user.Email, user.Name); err != nil {
		log.Printf("welcome email to %s failed: %v", user.Email, err)
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)

	return domain.AuthResponse{Token: token, User: toUserPayload(user)}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrUserNotFound
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)

	return domain.AuthResponse{Token: token, User: toUserPayload(user)}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.UserPayload, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserPayload{}, domain.ErrUserNotFound
		}
		return domain.UserPayload{}, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	targetsStale := false
	if req.Age > 0 {
		user.Age = req.Age
		targetsStale = true
	}
	if req.WeightKg > 0 {
		user.WeightKg = req.WeightKg
		targetsStale = true
	}
	if req.HeightCm > 0 {
		user.HeightCm = req.HeightCm
		targetsStale = true
	}
	if req.Gender != "" {
		user.Gender = req.Gender
		targetsStale = true
	}
	if req.ActivityLevel != "" {
		user.ActivityLevel = req.ActivityLevel
		targetsStale = true
	}
	if req.Goal != "" {
		user.Goal = req.Goal
		targetsStale = true
	}

	if targetsStale {
		applyTargets(user, s.targetCalc)
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserPayload{}, err
	}

	return toUserPayload(user), nil
}

func applyTargets(user *entities.User, calc *nutrition.TargetCalculator) {
	targets := calc.Calculate(nutrition.Profile{
		WeightKg:      user.WeightKg,
		HeightCm:      user.HeightCm,
		Age:           user.Age,
		Gender:        user.Gender,
		ActivityLevel: user.ActivityLevel,
		Goal:          user.Goal,
	})
	user.TargetCalories = targets.Calories
	user.TargetProtein = targets.Protein
	user.TargetCarbs = targets.Carbs
	user.TargetFats = targets.Fats
	user.TargetFiber = targets.Fiber
}

func toUserPayload(user *entities.User) domain.UserPayload {
	return domain.UserPayload{
		ID:            user.ID.String(),
		Email:         user.Email,
		Name:          user.Name,
		Age:           user.Age,
		WeightKg:      user.WeightKg,
		HeightCm:      user.HeightCm,
		Gender:        user.Gender,
		ActivityLevel: user.ActivityLevel,
		Goal:          user.Goal,
	}
}
