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

// PlaceHandler - HTTP boundary of the place repository
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// Create - register a new place for the caller
func (h *PlaceHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	place, err := h.placeUC.Create(c.Context(), req, middleware.CallerID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: place})
}

// GetByID - fetch one place with like data for the viewer
func (h *PlaceHandler) GetByID(c *fiber.Ctx) error {
	place, err := h.placeUC.GetByID(c.Context(), c.Params("id"), middleware.CallerID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, place, nil)
}

// ListByDistrict - paginated district listing
func (h *PlaceHandler) ListByDistrict(c *fiber.Ctx) error {
	req := dto.ListPlacesRequest{
		Sort:  c.Query("sort", "recent"),
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

	result, err := h.placeUC.ListByDistrict(c.Context(), req, middleware.CallerID(c))
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

// ListByCreator - places registered by one creator
func (h *PlaceHandler) ListByCreator(c *fiber.Ctx) error {
	req := dto.ListByCreatorRequest{
		CreatorID: c.Params("creatorId"),
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 20),
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

	result, err := h.placeUC.ListByCreator(c.Context(), req, middleware.CallerID(c))
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

// Update - partial update by the owning creator
func (h *PlaceHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdatePlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	place, err := h.placeUC.Update(c.Context(), c.Params("id"), middleware.CallerID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, place, nil)
}

// Delete - delete by the owning creator, cascading stops and likes
func (h *PlaceHandler) Delete(c *fiber.Ctx) error {
	if err := h.placeUC.Delete(c.Context(), c.Params("id"), middleware.CallerID(c)); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Exists - duplicate-address probe for client-side pre-validation
func (h *PlaceHandler) Exists(c *fiber.Ctx) error {
	address := c.Query("address")
	if address == "" {
		return c.Status(400).JSON(fiber.Map{"error": "address query parameter is required"})
	}

	exists, err := h.placeUC.Exists(c.Context(), middleware.CallerID(c), address)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ExistsResponse{Exists: exists}, nil)
}
