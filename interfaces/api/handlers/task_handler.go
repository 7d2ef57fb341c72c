package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/samiullah014/stan-task/domain/dto"
	"github.com/samiullah014/stan-task/domain/services"
	"github.com/samiullah014/stan-task/interfaces/api/middleware"
	"github.com/samiullah014/stan-task/pkg/utils"
)

const taskDeletedMessage = "Task deleted successfully"

// TaskHandler adapts HTTP to TaskService. Failures are returned to Fiber's
// error handler as they are.
type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks GET /api/tasks
func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.taskService.GetAllTasks(c.UserContext())
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

// GetTask GET /api/tasks/:id
func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	task, err := h.taskService.GetTaskByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

// CreateTask POST /api/tasks
// body ผ่าน ValidateBody[dto.CreateTaskRequest] มาแล้ว
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	req, err := middleware.ValidatedBody[dto.CreateTaskRequest](c)
	if err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.UserContext(), req)
	if err != nil {
		return err
	}
	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

// UpdateTask PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	req, err := middleware.ValidatedBody[dto.UpdateTaskRequest](c)
	if err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

// DeleteTask DELETE /api/tasks/:id
// ส่ง task ที่ถูกลบกลับไปด้วย
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	task, err := h.taskService.DeleteTask(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, dto.DeleteTaskResponse{
		Message: taskDeletedMessage,
		Task:    *dto.TaskToTaskResponse(task),
	})
}
