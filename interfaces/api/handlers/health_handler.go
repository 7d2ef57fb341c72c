package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/samiullah014/stan-task/domain/services"
	"github.com/samiullah014/stan-task/pkg/utils"
)

type HealthHandler struct {
	monitor       services.StoreMonitorService
	appName       string
	eventsEnabled bool
}

func NewHealthHandler(monitor services.StoreMonitorService, appName string, eventsEnabled bool) *HealthHandler {
	return &HealthHandler{
		monitor:       monitor,
		appName:       appName,
		eventsEnabled: eventsEnabled,
	}
}

type HealthResponse struct {
	Status  string               `json:"status"`
	Service string               `json:"service"`
	Store   services.StoreHealth `json:"store"`
	Events  bool                 `json:"events"`
}

// Health GET /health
// ตอบ 503 เมื่อ ping ครั้งล่าสุดไปที่ store ล้มเหลว
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := HealthResponse{
		Status:  "ok",
		Service: h.appName,
		Store:   services.StoreHealth{State: services.StoreStateUnknown},
		Events:  h.eventsEnabled,
	}
	if h.monitor != nil {
		resp.Store = h.monitor.Snapshot()
	}

	if resp.Store.State == services.StoreStateDown {
		resp.Status = "degraded"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return utils.SuccessResponse(c, resp)
}

type IndexResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// Index GET /
func (h *HealthHandler) Index(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, IndexResponse{
		Message: "Welcome to the CRUD API",
		Endpoints: map[string]string{
			"tasks":          "/api/tasks",
			"get all tasks":  "GET /api/tasks",
			"get task by id": "GET /api/tasks/:id",
			"create task":    "POST /api/tasks",
			"update task":    "PUT /api/tasks/:id",
			"delete task":    "DELETE /api/tasks/:id",
		},
	})
}
