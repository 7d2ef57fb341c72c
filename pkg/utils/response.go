package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/samiullah014/stan-task/pkg/apperror"
)

// ========== Response Structures ==========

type ErrorBody struct {
	Error   string                `json:"error"`
	Details []apperror.FieldError `json:"details,omitempty"`
}

type MessageBody struct {
	Message string `json:"message"`
}

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, details []apperror.FieldError) error {
	return c.Status(statusCode).JSON(ErrorBody{
		Error:   message,
		Details: details,
	})
}

// AppErrorResponse writes a taxonomy error. Details are only sent for
// validation failures.
func AppErrorResponse(c *fiber.Ctx, err *apperror.Error) error {
	var details []apperror.FieldError
	if err.Kind == apperror.KindValidation {
		details = err.Details
	}
	return ErrorResponse(c, err.StatusCode(), err.PublicMessage(), details)
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, apperror.InternalMessage, nil)
}
