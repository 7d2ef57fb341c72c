package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/samiullah014/stan-task/interfaces/api/handlers"
)

func SetupTaskFeedRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Use("/ws/tasks", h.TaskFeedHandler.Upgrade)
	app.Get("/ws/tasks", websocket.New(h.TaskFeedHandler.Stream))
}
