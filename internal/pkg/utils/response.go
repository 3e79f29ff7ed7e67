package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/curation-microservice/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total       int `json:"total,omitempty"`
	Page        int `json:"page,omitempty"`
	Limit       int `json:"limit,omitempty"`
	TotalPages  int `json:"total_pages,omitempty"`
	CurrentPage int `json:"current_page,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		details := make(map[string]interface{}, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Tag()
		}
		appErr := errors.ErrInvalidRequest.WithDetails(details)
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(500).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
