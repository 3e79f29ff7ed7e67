package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/curation-microservice/internal/delivery/http/middleware"
	"github.com/curation-microservice/internal/pkg/utils"
	"github.com/curation-microservice/internal/pkg/validator"
	"github.com/curation-microservice/internal/usecase"
	"github.com/curation-microservice/internal/usecase/dto"
)

// FeedHandler - HTTP boundary of the follow graph and the derived feed
type FeedHandler struct {
	feedUC *usecase.FeedUseCase
	logger *zap.Logger
}

func NewFeedHandler(feedUC *usecase.FeedUseCase, logger *zap.Logger) *FeedHandler {
	return &FeedHandler{
		feedUC: feedUC,
		logger: logger,
	}
}

// Follow - follow another creator
func (h *FeedHandler) Follow(c *fiber.Ctx) error {
	var req dto.FollowRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.feedUC.Follow(c.Context(), middleware.CallerID(c), req.FollowingID); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Unfollow - remove a follow edge
func (h *FeedHandler) Unfollow(c *fiber.Ctx) error {
	if err := h.feedUC.Unfollow(c.Context(), middleware.CallerID(c), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Following - ids the caller follows
func (h *FeedHandler) Following(c *fiber.Ctx) error {
	following, err := h.feedUC.ListFollowing(c.Context(), middleware.CallerID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.FollowingResponse{Following: following}, &utils.Meta{
		Total: len(following),
	})
}

// Feed - places created by followed users, newest first
func (h *FeedHandler) Feed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	result, err := h.feedUC.FeedFor(c.Context(), middleware.CallerID(c), page, limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result.Places, &utils.Meta{
		Total:       result.Total,
		Limit:       limit,
		TotalPages:  result.Page.TotalPages,
		CurrentPage: result.Page.CurrentPage,
	})
}
