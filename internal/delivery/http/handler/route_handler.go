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

// RouteHandler - HTTP boundary of the route repository
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// Create - create a route with its full ordered stop list
func (h *RouteHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.Create(c.Context(), req, middleware.CallerID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: route})
}

// GetByID - fetch a route with ordered stops and like data
func (h *RouteHandler) GetByID(c *fiber.Ctx) error {
	route, err := h.routeUC.GetByID(c.Context(), c.Params("id"), middleware.CallerID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, route, nil)
}

// Update - scalar patch, optionally replacing the whole stop set
func (h *RouteHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.Update(c.Context(), c.Params("id"), middleware.CallerID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, route, nil)
}

// Delete - delete by the owning creator
func (h *RouteHandler) Delete(c *fiber.Ctx) error {
	if err := h.routeUC.Delete(c.Context(), c.Params("id"), middleware.CallerID(c)); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListByCreator - routes curated by one creator
func (h *RouteHandler) ListByCreator(c *fiber.Ctx) error {
	req := dto.ListRoutesRequest{
		CreatorID: c.Params("creatorId"),
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 20),
	}
	if district := c.Query("district_id"); district != "" {
		req.DistrictID = &district
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.ListByCreator(c.Context(), req, middleware.CallerID(c))
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

// ListPublicByDistrict - public routes of one district
func (h *RouteHandler) ListPublicByDistrict(c *fiber.Ctx) error {
	districtID := c.Params("districtId")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	result, err := h.routeUC.ListPublicByDistrict(c.Context(), districtID, middleware.CallerID(c), page, limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result.Routes, &utils.Meta{
		Total:       result.Total,
		Limit:       limit,
		TotalPages:  result.Page.TotalPages,
		CurrentPage: result.Page.CurrentPage,
	})
}
