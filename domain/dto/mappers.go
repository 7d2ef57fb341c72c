package dto

import (
	"github.com/samiullah014/stan-task/domain/models"
)

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// TasksToTaskResponses never returns nil so an empty list encodes as [].
func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, *TaskToTaskResponse(task))
	}
	return responses
}

func CreateTaskRequestToTask(req *CreateTaskRequest) *models.Task {
	status := models.TaskStatusPending
	if req.Status != nil {
		status = *req.Status
	}
	return &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	}
}
