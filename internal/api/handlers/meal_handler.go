package handlers

import (
	"errors"
	"strconv"
	"time"

	"nutritrack-backend/domain"
	"nutritrack-backend/internal/api/presenters"
	"nutritrack-backend/pkg/meal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		AnalyzeMeal(c *fiber.Ctx) error
		GetMeals(c *fiber.Ctx) error
		GetMealDetails(c *fiber.Ctx) error
		DeleteMeal(c *fiber.Ctx) error
		UploadMealPhoto(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

func (h *mealHandler) AnalyzeMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AnalyzeMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeMeal, err)
	}

	res, err := h.mealService.AnalyzeMeal(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAnalyzeMeal)
}

func (h *mealHandler) GetMeals(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	filter, err := parseMealFilter(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMeals, err)
	}

	meals, count, err := h.mealService.GetMeals(c.Context(), userID, filter)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"meals": meals,
		"pagination": fiber.Map{
			"total":    count,
			"limit":    filter.Limit,
			"offset":   filter.Offset,
			"has_more": int64(filter.Offset+filter.Limit) < count,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

func (h *mealHandler) GetMealDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealID := c.Params("id")

	res, err := h.mealService.GetMealByID(c.Context(), mealID, userID)
	if err != nil {
		return mealErrorResponse(c, domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealDetails)
}

func (h *mealHandler) DeleteMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealID := c.Params("id")

	if err := h.mealService.DeleteMeal(c.Context(), mealID, userID); err != nil {
		return mealErrorResponse(c, domain.MessageFailedDeleteMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMeal)
}

func (h *mealHandler) UploadMealPhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadMealPhotoRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMealPhoto, err)
	}

	url, err := h.mealService.UploadMealPhoto(c.Context(), *req, userID)
	if err != nil {
		return mealErrorResponse(c, domain.MessageFailedUploadMealPhoto, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"image_url": url}, fiber.StatusOK, domain.MessageSuccessUploadMealPhoto)
}

func mealErrorResponse(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrMealNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, domain.ErrUnauthorizedMealAccess):
		return presenters.ErrorResponse(c, fiber.StatusForbidden, message, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	}
}

func parseMealFilter(c *fiber.Ctx) (domain.MealFilter, error) {
	filter := domain.MealFilter{
		MealType: c.Query("meal_type"),
	}

	if raw := c.Query("start_date"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return domain.MealFilter{}, domain.ErrInvalidDateFilter
		}
		filter.StartDate = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return domain.MealFilter{}, domain.ErrInvalidDateFilter
		}
		filter.EndDate = &end
	}

	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	filter.Limit = limit
	filter.Offset = offset

	return filter, nil
}
