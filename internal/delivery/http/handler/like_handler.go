package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/curation-microservice/internal/delivery/http/middleware"
	"github.com/curation-microservice/internal/domain"
	"github.com/curation-microservice/internal/pkg/utils"
	"github.com/curation-microservice/internal/pkg/validator"
	"github.com/curation-microservice/internal/usecase"
	"github.com/curation-microservice/internal/usecase/dto"
)

// LikeHandler - HTTP boundary of the like aggregation engine
type LikeHandler struct {
	likeUC *usecase.LikeUseCase
	logger *zap.Logger
}

func NewLikeHandler(likeUC *usecase.LikeUseCase, logger *zap.Logger) *LikeHandler {
	return &LikeHandler{
		likeUC: likeUC,
		logger: logger,
	}
}

// Toggle - like or unlike exactly one target
func (h *LikeHandler) Toggle(c *fiber.Ctx) error {
	var req dto.ToggleLikeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.likeUC.Toggle(c.Context(), middleware.CallerID(c), req); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// PlaceInfo - like count and viewer-liked flag for one place
func (h *LikeHandler) PlaceInfo(c *fiber.Ctx) error {
	info, err := h.likeUC.InfoFor(c.Context(), domain.PlaceTarget(c.Params("id")), middleware.CallerID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, info, nil)
}

// RouteInfo - like count and viewer-liked flag for one route
func (h *LikeHandler) RouteInfo(c *fiber.Ctx) error {
	info, err := h.likeUC.InfoFor(c.Context(), domain.RouteTarget(c.Params("id")), middleware.CallerID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, info, nil)
}

// LikedPlaces - the caller's liked places, paginated
func (h *LikeHandler) LikedPlaces(c *fiber.Ctx) error {
	req := dto.LikedFeedRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
	}
	if district := c.Query("district"); district != "" {
		req.District = &district
	}
	if category := c.Query("category"); category != "" {
		req.Category = &category
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.likeUC.FeedLikedPlaces(c.Context(), middleware.CallerID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result.Places, &utils.Meta{
		Total:       result.Total,
		Limit:       req.Limit,
		TotalPages:  result.Page.TotalPages,
		CurrentPage: result.Page.CurrentPage,
	})
}

// LikedRoutes - the caller's liked routes, paginated
func (h *LikeHandler) LikedRoutes(c *fiber.Ctx) error {
	req := dto.LikedFeedRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
	}
	if district := c.Query("district_id"); district != "" {
		req.District = &district
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.likeUC.FeedLikedRoutes(c.Context(), middleware.CallerID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result.Routes, &utils.Meta{
		Total:       result.Total,
		Limit:       req.Limit,
		TotalPages:  result.Page.TotalPages,
		CurrentPage: result.Page.CurrentPage,
	})
}
