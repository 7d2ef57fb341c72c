package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	wsfeed "github.com/samiullah014/stan-task/infrastructure/websocket"
	"github.com/samiullah014/stan-task/pkg/logger"
)

// TaskFeedHandler streams task events to websocket clients.
type TaskFeedHandler struct {
	feed *wsfeed.TaskFeed
}

func NewTaskFeedHandler(feed *wsfeed.TaskFeed) *TaskFeedHandler {
	return &TaskFeedHandler{feed: feed}
}

// Upgrade rejects plain HTTP requests to the feed endpoint.
func (h *TaskFeedHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Stream GET /ws/tasks
// client ไม่ต้องส่งอะไร อ่านไว้เพื่อรู้ว่าปิด connection เมื่อไหร่
func (h *TaskFeedHandler) Stream(conn *websocket.Conn) {
	id := h.feed.Register(conn)
	defer h.feed.Unregister(id)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			logger.Debug("Task feed read ended", "client_id", id.String(), "error", err)
			return
		}
	}
}
