package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/samiullah014/stan-task/domain/models"
)

// ErrTaskNotFound is returned when a lookup, update or delete matched no row.
var ErrTaskNotFound = errors.New("task not found")

// TaskUpdate holds the columns to change. Nil fields are left untouched;
// UpdatedAt is always written.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
	UpdatedAt   time.Time
}

type TaskRepository interface {
	List(ctx context.Context) ([]*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	UpdateByID(ctx context.Context, id int64, update TaskUpdate) (*models.Task, error)
	DeleteByID(ctx context.Context, id int64) (*models.Task, error)
	Ping(ctx context.Context) error
}
