package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/samiullah014/stan-task/pkg/apperror"
	"github.com/samiullah014/stan-task/pkg/logger"
	"github.com/samiullah014/stan-task/pkg/utils"
)

// ErrorHandler is the only place failure responses are written. Internal
// failures are logged in full and answered with a generic message.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		ctx := c.UserContext()

		var appErr *apperror.Error
		if errors.As(err, &appErr) && appErr.Kind != apperror.KindInternal {
			logger.DebugContext(ctx, "Request rejected",
				"kind", appErr.Kind.String(),
				"message", appErr.Message,
				"path", c.Path(),
			)
			return utils.AppErrorResponse(c, appErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			if fiberErr.Code < fiber.StatusInternalServerError {
				return utils.ErrorResponse(c, fiberErr.Code, fiberErr.Message, nil)
			}
			logger.ErrorContext(ctx, "Request failed",
				"method", c.Method(),
				"path", c.Path(),
				"status", fiberErr.Code,
				"error", err,
			)
			return utils.InternalServerErrorResponse(c)
		}

		logger.ErrorContext(ctx, "Unhandled error",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
		return utils.InternalServerErrorResponse(c)
	}
}
