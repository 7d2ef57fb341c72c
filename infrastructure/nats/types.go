package nats

import "time"

// DefaultSubjectPrefix: events go to "<prefix>.<event>", e.g. tasks.created
const DefaultSubjectPrefix = "tasks"

// TaskEventMessage - API → subscribers (via core Pub/Sub)
type TaskEventMessage struct {
	Event      string      `json:"event"`
	TaskID     int64       `json:"taskId"`
	Task       TaskPayload `json:"task"`
	OccurredAt time.Time   `json:"occurredAt"`
}

type TaskPayload struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func Subject(prefix, event string) string {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return prefix + "." + event
}
