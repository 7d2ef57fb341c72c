package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allows the given origins. Credentials are only enabled for
// an explicit origin list since fiber refuses them together with "*".
func CorsMiddleware(allowOrigins string) fiber.Handler {
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,HEAD",
		AllowHeaders:     "Origin,Content-Type,Accept,X-Requested-With,X-Request-ID",
		ExposeHeaders:    "Content-Length,Content-Type,X-Request-ID",
		AllowCredentials: allowOrigins != "*",
	})
}
