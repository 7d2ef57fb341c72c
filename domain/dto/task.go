package dto

import (
	"strings"
	"time"

	"github.com/samiullah014/stan-task/domain/models"
)

// CreateTaskRequest is the create schema. Normalize runs before validation.
type CreateTaskRequest struct {
	Title       string             `json:"title" validate:"required,max=255"`
	Description *string            `json:"description"`
	Status      *models.TaskStatus `json:"status" validate:"omitnil,task_status"`
}

// Normalize trims the title and applies the default status.
func (r *CreateTaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	if r.Status == nil {
		status := models.TaskStatusPending
		r.Status = &status
	}
}

// UpdateTaskRequest is the update schema: nil means leave unchanged.
type UpdateTaskRequest struct {
	Title       *string            `json:"title" validate:"omitnil,min=1,max=255"`
	Description *string            `json:"description"`
	Status      *models.TaskStatus `json:"status" validate:"omitnil,task_status"`
}

func (r *UpdateTaskRequest) Normalize() {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		r.Title = &title
	}
}

// IsEmpty reports whether no field was supplied.
func (r *UpdateTaskRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Status == nil
}

type TaskResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Status      models.TaskStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type DeleteTaskResponse struct {
	Message string       `json:"message"`
	Task    TaskResponse `json:"task"`
}
