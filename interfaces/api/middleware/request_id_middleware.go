package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/samiullah014/stan-task/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

const requestIDLocal = "request_id"

// RequestIDMiddleware สร้าง request ID สำหรับทุก request
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// ใช้ request ID จาก client ถ้ามี
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDHeader, requestID)

		ctx := logger.ContextWithRequestID(c.UserContext(), requestID)
		c.SetUserContext(ctx)
		c.Locals(requestIDLocal, requestID)

		return c.Next()
	}
}

// GetRequestIDFromContext ดึง request ID จาก fiber context
func GetRequestIDFromContext(c *fiber.Ctx) string {
	if requestID, ok := c.Locals(requestIDLocal).(string); ok {
		return requestID
	}
	return ""
}
