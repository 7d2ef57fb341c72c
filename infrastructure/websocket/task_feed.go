// Package websocket keeps the set of live task-feed subscribers and pushes
// task events to them.
package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/samiullah014/stan-task/domain/ports"
	"github.com/samiullah014/stan-task/infrastructure/messaging"
	natspkg "github.com/samiullah014/stan-task/infrastructure/nats"
	"github.com/samiullah014/stan-task/pkg/logger"
)

const (
	writeTimeout = 2 * time.Second
	// sendBuffer คือจำนวน event ที่ค้างได้ต่อ client ก่อนถูกตัดทิ้ง
	sendBuffer = 16
)

// Conn is the part of a websocket connection the feed writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

type client struct {
	conn Conn
	send chan *natspkg.TaskEventMessage
	quit chan struct{}
}

// TaskFeed broadcasts task events to every registered connection. Each
// connection has its own queue and writer goroutine; publishing only
// enqueues, and a client whose queue is full is dropped.
type TaskFeed struct {
	mu      sync.Mutex
	clients map[uuid.UUID]*client
	wg      sync.WaitGroup
}

func NewTaskFeed() *TaskFeed {
	return &TaskFeed{clients: make(map[uuid.UUID]*client)}
}

var _ ports.TaskEventPublisher = (*TaskFeed)(nil)

// Register adds conn and returns the id to unregister it with.
func (f *TaskFeed) Register(conn Conn) uuid.UUID {
	id := uuid.New()
	c := &client{
		conn: conn,
		send: make(chan *natspkg.TaskEventMessage, sendBuffer),
		quit: make(chan struct{}),
	}

	f.mu.Lock()
	f.clients[id] = c
	total := len(f.clients)
	f.wg.Add(1)
	f.mu.Unlock()

	go f.writePump(id, c)

	logger.Debug("Task feed client connected", "client_id", id.String(), "clients", total)
	return id
}

// Unregister removes the client; its writer closes the connection.
func (f *TaskFeed) Unregister(id uuid.UUID) {
	f.mu.Lock()
	removed := f.removeLocked(id)
	f.mu.Unlock()

	if removed {
		logger.Debug("Task feed client disconnected", "client_id", id.String())
	}
}

func (f *TaskFeed) ClientCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

// PublishTaskEvent queues the event for every client without waiting on
// any connection.
func (f *TaskFeed) PublishTaskEvent(ctx context.Context, event ports.TaskEvent) error {
	msg := messaging.NewTaskEventMessage(event)

	f.mu.Lock()
	defer f.mu.Unlock()

	for id, c := range f.clients {
		select {
		case c.send <- msg:
		default:
			logger.WarnContext(ctx, "Dropping slow task feed client", "client_id", id.String())
			f.removeLocked(id)
		}
	}
	return nil
}

// CloseAll disconnects every client and waits for the writers to exit, used
// on shutdown.
func (f *TaskFeed) CloseAll() {
	f.mu.Lock()
	for id := range f.clients {
		f.removeLocked(id)
	}
	f.mu.Unlock()

	f.wg.Wait()
}

// removeLocked must be called with f.mu held.
func (f *TaskFeed) removeLocked(id uuid.UUID) bool {
	c, ok := f.clients[id]
	if !ok {
		return false
	}
	delete(f.clients, id)
	close(c.quit)
	return true
}

func (f *TaskFeed) writePump(id uuid.UUID, c *client) {
	defer f.wg.Done()
	defer func() { _ = c.conn.Close() }()

	for {
		select {
		case <-c.quit:
			return
		case msg := <-c.send:
			// quit wins over anything still queued
			select {
			case <-c.quit:
				return
			default:
			}

			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteJSON(msg); err != nil {
				logger.Warn("Dropping task feed client", "client_id", id.String(), "error", err)
				f.mu.Lock()
				f.removeLocked(id)
				f.mu.Unlock()
				return
			}
		}
	}
}
