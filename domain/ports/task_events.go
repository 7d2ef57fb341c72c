package ports

import (
	"context"
	"time"

	"github.com/samiullah014/stan-task/domain/models"
)

type TaskEventType string

const (
	TaskCreated TaskEventType = "created"
	TaskUpdated TaskEventType = "updated"
	TaskDeleted TaskEventType = "deleted"
)

// TaskEvent - plain struct (ไม่มี NATS dependency)
type TaskEvent struct {
	Type       TaskEventType
	Task       models.Task
	OccurredAt time.Time
}

// TaskEventPublisher announces committed task mutations. Delivery is best
// effort; callers log failures and carry on.
type TaskEventPublisher interface {
	PublishTaskEvent(ctx context.Context, event TaskEvent) error
}
