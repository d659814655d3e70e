package config

import (
	"os"
	"time"

	"nutritrack-backend/internal/api/handlers"
	"nutritrack-backend/internal/api/routes"
	"nutritrack-backend/internal/middleware"
	"nutritrack-backend/internal/utils"
	"nutritrack-backend/internal/utils/storage"
	"nutritrack-backend/pkg/insight"
	"nutritrack-backend/pkg/jwt"
	"nutritrack-backend/pkg/meal"
	"nutritrack-backend/pkg/nutrition"
	"nutritrack-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// reference data
	catalog := nutrition.DefaultCatalog()
	targetCalc := nutrition.NewTargetCalculator(nutrition.DefaultActivityMultipliers())

	// Repository
	userRepository := user.NewUserRepository(db)
	mealRepository := meal.NewMealRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, targetCalc)
	mealService := meal.NewMealService(mealRepository, userRepository, catalog, targetCalc, s3)
	insightService := insight.NewInsightService(userRepository, mealRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, insightService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	insightHandler := handlers.NewInsightHandler(insightService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		MealHandler:    mealHandler,
		InsightHandler: insightHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
