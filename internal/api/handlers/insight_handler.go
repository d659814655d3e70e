package handlers

import (
	"errors"

	"nutritrack-backend/domain"
	"nutritrack-backend/internal/api/presenters"
	"nutritrack-backend/pkg/insight"

	"github.com/gofiber/fiber/v2"
)

type (
	InsightHandler interface {
		GetDashboardSummary(c *fiber.Ctx) error
		GetCommunityInsights(c *fiber.Ctx) error
		HealthCheck(c *fiber.Ctx) error
	}

	insightHandler struct {
		insightService insight.InsightService
	}
)

func NewInsightHandler(insightService insight.InsightService) InsightHandler {
	return &insightHandler{insightService: insightService}
}

func (h *insightHandler) GetDashboardSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.insightService.DashboardSummary(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetDashboard, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *insightHandler) GetCommunityInsights(c *fiber.Ctx) error {
	res, err := h.insightService.CommunityInsights(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCommunity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCommunity)
}

func (h *insightHandler) HealthCheck(c *fiber.Ctx) error {
	res, err := h.insightService.HealthCheck(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, "service healthy")
}
