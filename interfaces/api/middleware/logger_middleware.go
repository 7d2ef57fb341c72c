package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/samiullah014/stan-task/pkg/logger"
)

// LoggerMiddleware structured logging สำหรับทุก request
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		logger.DebugContext(c.UserContext(), "Request started",
			"method", c.Method(),
			"path", c.Path(),
			"ip", c.IP(),
			"user_agent", c.Get(fiber.HeaderUserAgent),
		)

		// Errors are rendered here so the logged status is the one sent.
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()

		logFunc := logger.InfoContext
		if status >= 500 {
			logFunc = logger.ErrorContext
		} else if status >= 400 {
			logFunc = logger.WarnContext
		}

		logFunc(c.UserContext(), "Request completed",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start).String(),
			"bytes", len(c.Response().Body()),
		)

		return nil
	}
}
