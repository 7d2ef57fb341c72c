package messaging

import (
	"context"

	"github.com/samiullah014/stan-task/domain/ports"
	"github.com/samiullah014/stan-task/pkg/logger"
)

// NoopTaskEventPublisher ใช้เมื่อไม่ได้ตั้งค่า NATS_URL
type NoopTaskEventPublisher struct{}

func NewNoopTaskEventPublisher() *NoopTaskEventPublisher {
	return &NoopTaskEventPublisher{}
}

func (p *NoopTaskEventPublisher) PublishTaskEvent(ctx context.Context, event ports.TaskEvent) error {
	logger.DebugContext(ctx, "Task event (noop)", "event", event.Type, "task_id", event.Task.ID)
	return nil
}

var _ ports.TaskEventPublisher = (*NoopTaskEventPublisher)(nil)
