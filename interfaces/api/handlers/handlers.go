package handlers

import (
	"github.com/samiullah014/stan-task/domain/services"
	wsfeed "github.com/samiullah014/stan-task/infrastructure/websocket"
)

// Services contains all the services needed for handlers
type Services struct {
	TaskService         services.TaskService
	StoreMonitorService services.StoreMonitorService
	AppName             string
	EventsEnabled       bool             // task events go out over NATS or Redis
	TaskFeed            *wsfeed.TaskFeed // nil = no /ws/tasks
}

// Handlers contains all HTTP handlers
type Handlers struct {
	TaskHandler     *TaskHandler
	HealthHandler   *HealthHandler
	TaskFeedHandler *TaskFeedHandler
}

func NewHandlers(services *Services) *Handlers {
	h := &Handlers{
		TaskHandler:   NewTaskHandler(services.TaskService),
		HealthHandler: NewHealthHandler(services.StoreMonitorService, services.AppName, services.EventsEnabled),
	}
	if services.TaskFeed != nil {
		h.TaskFeedHandler = NewTaskFeedHandler(services.TaskFeed)
	}
	return h
}
