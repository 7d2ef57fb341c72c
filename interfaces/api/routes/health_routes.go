package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/samiullah014/stan-task/interfaces/api/handlers"
)

func SetupHealthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/health", h.HealthHandler.Health)
	app.Get("/", h.HealthHandler.Index)
}
