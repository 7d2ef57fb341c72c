package services

import (
	"context"

	"github.com/samiullah014/stan-task/domain/dto"
	"github.com/samiullah014/stan-task/domain/models"
)

// TaskService returns only *apperror.Error failures. Ids arrive as the raw
// path segment so that parsing is part of the use case.
type TaskService interface {
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, rawID string) (*models.Task, error)
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, rawID string, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, rawID string) (*models.Task, error)
}
