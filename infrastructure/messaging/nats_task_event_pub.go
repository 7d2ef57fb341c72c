package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samiullah014/stan-task/domain/ports"
	natspkg "github.com/samiullah014/stan-task/infrastructure/nats"
)

// Publisher is the part of *nats.Conn the adapter needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSTaskEventPublisher implements TaskEventPublisher using NATS Pub/Sub
type NATSTaskEventPublisher struct {
	conn          Publisher
	subjectPrefix string
}

// NewNATSTaskEventPublisher สร้าง TaskEventPublisher adapter สำหรับ NATS
func NewNATSTaskEventPublisher(conn Publisher, subjectPrefix string) ports.TaskEventPublisher {
	return &NATSTaskEventPublisher{
		conn:          conn,
		subjectPrefix: subjectPrefix,
	}
}

// NewTaskEventMessage builds the wire form shared by every event transport.
func NewTaskEventMessage(event ports.TaskEvent) *natspkg.TaskEventMessage {
	task := event.Task
	return &natspkg.TaskEventMessage{
		Event:  string(event.Type),
		TaskID: task.ID,
		Task: natspkg.TaskPayload{
			ID:          task.ID,
			Title:       task.Title,
			Description: task.Description,
			Status:      string(task.Status),
			CreatedAt:   task.CreatedAt,
			UpdatedAt:   task.UpdatedAt,
		},
		OccurredAt: event.OccurredAt,
	}
}

func (p *NATSTaskEventPublisher) PublishTaskEvent(ctx context.Context, event ports.TaskEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if event.Type == "" {
		return fmt.Errorf("event type is required")
	}

	msg := NewTaskEventMessage(event)

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}

	subject := natspkg.Subject(p.subjectPrefix, string(event.Type))
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}
