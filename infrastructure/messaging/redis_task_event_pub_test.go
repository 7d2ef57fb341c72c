package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samiullah014/stan-task/domain/models"
	"github.com/samiullah014/stan-task/domain/ports"
	natspkg "github.com/samiullah014/stan-task/infrastructure/nats"
)

type published struct {
	channel string
	data    []byte
}

type recordingChannels struct {
	mu    sync.Mutex
	sent  []published
	err   error
	block chan struct{}
}

func (r *recordingChannels) Publish(_ context.Context, channel string, message interface{}) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	data, _ := message.([]byte)
	r.sent = append(r.sent, published{channel: channel, data: data})
	return r.err
}

func (r *recordingChannels) all() []published {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]published(nil), r.sent...)
}

func TestRedisTaskEventPublisher_Publish(t *testing.T) {
	rc := &recordingChannels{}
	pub := NewRedisTaskEventPublisher(rc, "")

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	event := ports.TaskEvent{
		Type:       ports.TaskCreated,
		Task:       models.Task{ID: 3, Title: "Buy milk", Status: models.TaskStatusPending, CreatedAt: at, UpdatedAt: at},
		OccurredAt: at,
	}
	require.NoError(t, pub.PublishTaskEvent(context.Background(), event))
	pub.Close()

	sent := rc.all()
	require.Len(t, sent, 1)
	assert.Equal(t, "tasks.created", sent[0].channel)

	var msg natspkg.TaskEventMessage
	require.NoError(t, json.Unmarshal(sent[0].data, &msg))
	assert.Equal(t, "created", msg.Event)
	assert.Equal(t, int64(3), msg.TaskID)
	assert.Equal(t, "Buy milk", msg.Task.Title)
}

func TestRedisTaskEventPublisher_CloseDrainsQueue(t *testing.T) {
	rc := &recordingChannels{}
	pub := NewRedisTaskEventPublisher(rc, "acme.tasks")

	for i := 1; i <= 5; i++ {
		event := ports.TaskEvent{Type: ports.TaskUpdated, Task: models.Task{ID: int64(i)}}
		require.NoError(t, pub.PublishTaskEvent(context.Background(), event))
	}
	pub.Close()
	pub.Close()

	sent := rc.all()
	require.Len(t, sent, 5)
	for _, p := range sent {
		assert.Equal(t, "acme.tasks.updated", p.channel)
	}

	err := pub.PublishTaskEvent(context.Background(), ports.TaskEvent{Type: ports.TaskDeleted})
	assert.Error(t, err)
}

func TestRedisTaskEventPublisher_NeverWaitsOnRedis(t *testing.T) {
	release := make(chan struct{})
	rc := &recordingChannels{block: release}
	pub := NewRedisTaskEventPublisher(rc, "")
	t.Cleanup(func() {
		close(release)
		pub.Close()
	})

	start := time.Now()
	var busy error
	for i := 0; i < redisQueueSize+2; i++ {
		if err := pub.PublishTaskEvent(context.Background(), ports.TaskEvent{Type: ports.TaskUpdated}); err != nil {
			busy = err
		}
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.ErrorIs(t, busy, ErrPublisherBusy)
}

func TestRedisTaskEventPublisher_Rejects(t *testing.T) {
	pub := NewRedisTaskEventPublisher(&recordingChannels{err: errors.New("unused")}, "")
	t.Cleanup(pub.Close)

	assert.Error(t, pub.PublishTaskEvent(context.Background(), ports.TaskEvent{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, pub.PublishTaskEvent(ctx, ports.TaskEvent{Type: ports.TaskCreated}), context.Canceled)
}
