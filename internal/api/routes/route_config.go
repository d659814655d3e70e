package routes

import (
	"nutritrack-backend/internal/api/handlers"
	"nutritrack-backend/internal/middleware"
	"nutritrack-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	MealHandler    handlers.MealHandler
	InsightHandler handlers.InsightHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Users()
	c.Meals()
	c.Insights()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users", c.Middleware.AuthMiddleware(c.JWTService))
	{
		users.Get("/me", c.UserHandler.Me)
		users.Patch("/update", c.UserHandler.UpdateProfile)
	}
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/v1/meals", c.Middleware.AuthMiddleware(c.JWTService))
	{
		meals.Post("/analyze", c.MealHandler.AnalyzeMeal)
		meals.Get("", c.MealHandler.GetMeals)
		meals.Get("/:id", c.MealHandler.GetMealDetails)
		meals.Delete("/:id", c.MealHandler.DeleteMeal)
		meals.Post("/photo", c.MealHandler.UploadMealPhoto)
	}
}

func (c *Config) Insights() {
	c.App.Get("/api/v1/dashboard/summary", c.Middleware.AuthMiddleware(c.JWTService), c.InsightHandler.GetDashboardSummary)
	c.App.Get("/api/v1/community/insights", c.InsightHandler.GetCommunityInsights)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/api/v1/health", c.InsightHandler.HealthCheck)
}
