package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/samiullah014/stan-task/domain/dto"
	"github.com/samiullah014/stan-task/interfaces/api/handlers"
	"github.com/samiullah014/stan-task/interfaces/api/middleware"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, opts Options) {
	update := []fiber.Handler{middleware.ValidateBody[dto.UpdateTaskRequest]()}
	if opts.RejectEmptyUpdate {
		update = append(update, middleware.RejectEmptyUpdate())
	}
	update = append(update, h.TaskHandler.UpdateTask)

	tasks := api.Group("/tasks")
	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Post("/", middleware.ValidateBody[dto.CreateTaskRequest](), h.TaskHandler.CreateTask)
	tasks.Put("/:id", update...)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
}
