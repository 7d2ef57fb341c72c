package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/samiullah014/stan-task/domain/ports"
	natspkg "github.com/samiullah014/stan-task/infrastructure/nats"
	"github.com/samiullah014/stan-task/pkg/logger"
)

const (
	redisQueueSize      = 256
	redisPublishTimeout = 2 * time.Second
)

// ErrPublisherBusy is returned when the outgoing queue is full.
var ErrPublisherBusy = errors.New("task event queue is full")

// ChannelPublisher is the part of the Redis client the adapter needs.
type ChannelPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
}

type redisOutgoing struct {
	channel string
	data    []byte
}

// RedisTaskEventPublisher implements TaskEventPublisher using Redis Pub/Sub.
// Events are queued and sent by one background worker, so callers never
// wait on Redis.
type RedisTaskEventPublisher struct {
	client        ChannelPublisher
	channelPrefix string

	queue     chan redisOutgoing
	done      chan struct{}
	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
}

// NewRedisTaskEventPublisher สร้าง TaskEventPublisher adapter สำหรับ Redis Pub/Sub
func NewRedisTaskEventPublisher(client ChannelPublisher, channelPrefix string) *RedisTaskEventPublisher {
	p := &RedisTaskEventPublisher{
		client:        client,
		channelPrefix: channelPrefix,
		queue:         make(chan redisOutgoing, redisQueueSize),
		done:          make(chan struct{}),
	}
	go p.run()
	return p
}

var _ ports.TaskEventPublisher = (*RedisTaskEventPublisher)(nil)

func (p *RedisTaskEventPublisher) PublishTaskEvent(ctx context.Context, event ports.TaskEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if event.Type == "" {
		return fmt.Errorf("event type is required")
	}

	data, err := json.Marshal(NewTaskEventMessage(event))
	if err != nil {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}
	out := redisOutgoing{
		channel: natspkg.Subject(p.channelPrefix, string(event.Type)),
		data:    data,
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return fmt.Errorf("redis task event publisher is closed")
	}

	select {
	case p.queue <- out:
		return nil
	default:
		return ErrPublisherBusy
	}
}

// Close stops accepting events, sends what is already queued and waits for
// the worker to finish.
func (p *RedisTaskEventPublisher) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.queue)
		p.mu.Unlock()
	})
	<-p.done
}

func (p *RedisTaskEventPublisher) run() {
	defer close(p.done)

	for out := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), redisPublishTimeout)
		err := p.client.Publish(ctx, out.channel, out.data)
		cancel()
		if err != nil {
			logger.Warn("Failed to publish task event to Redis", "channel", out.channel, "error", err)
		}
	}
}
