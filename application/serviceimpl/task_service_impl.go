package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/samiullah014/stan-task/domain/dto"
	"github.com/samiullah014/stan-task/domain/models"
	"github.com/samiullah014/stan-task/domain/ports"
	"github.com/samiullah014/stan-task/domain/repositories"
	"github.com/samiullah014/stan-task/domain/services"
	"github.com/samiullah014/stan-task/pkg/apperror"
	"github.com/samiullah014/stan-task/pkg/logger"
)

const (
	msgInvalidTaskID = "Invalid task ID"
	msgTaskNotFound  = "Task not found"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	events   ports.TaskEventPublisher
	now      func() time.Time
}

func NewTaskService(taskRepo repositories.TaskRepository, events ports.TaskEventPublisher) services.TaskService {
	return NewTaskServiceWithClock(taskRepo, events, nil)
}

// NewTaskServiceWithClock lets callers control the updated_at source.
func NewTaskServiceWithClock(taskRepo repositories.TaskRepository, events ports.TaskEventPublisher, now func() time.Time) services.TaskService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
	}
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		events:   events,
		now:      now,
	}
}

// ParseTaskID accepts any base-10 integer that fits in int64. Zero and
// negative ids parse fine and are left to the store, which reports them as
// not found.
func ParseTaskID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.BadRequest(msgInvalidTaskID)
	}
	return id, nil
}

func (s *TaskServiceImpl) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("list tasks: %w", err))
	}
	return tasks, nil
}

func (s *TaskServiceImpl) GetTaskByID(ctx context.Context, rawID string) (*models.Task, error) {
	id, err := ParseTaskID(rawID)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, "get task", id, err)
	}
	return task, nil
}

// CreateTask expects a request that already passed the create schema.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	task := dto.CreateTaskRequestToTask(req)
	// both timestamps come from the same clock UpdateTask uses
	now := s.now()
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, apperror.Internal(fmt.Errorf("create task: %w", err))
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "status", task.Status)
	s.publish(ctx, ports.TaskCreated, task)
	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, rawID string, req *dto.UpdateTaskRequest) (*models.Task, error) {
	id, err := ParseTaskID(rawID)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.UpdateByID(ctx, id, repositories.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		UpdatedAt:   s.now(),
	})
	if err != nil {
		return nil, s.translate(ctx, "update task", id, err)
	}

	logger.InfoContext(ctx, "Task updated", "task_id", task.ID)
	s.publish(ctx, ports.TaskUpdated, task)
	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, rawID string) (*models.Task, error) {
	id, err := ParseTaskID(rawID)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, "delete task", id, err)
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", task.ID)
	s.publish(ctx, ports.TaskDeleted, task)
	return task, nil
}

// translate maps zero-row outcomes to NotFound and everything else to Internal.
func (s *TaskServiceImpl) translate(ctx context.Context, op string, id int64, err error) error {
	if errors.Is(err, repositories.ErrTaskNotFound) {
		logger.DebugContext(ctx, "Task not found", "op", op, "task_id", id)
		return apperror.NotFound(msgTaskNotFound)
	}
	return apperror.Internal(fmt.Errorf("%s %d: %w", op, id, err))
}

func (s *TaskServiceImpl) publish(ctx context.Context, eventType ports.TaskEventType, task *models.Task) {
	if s.events == nil {
		return
	}
	event := ports.TaskEvent{Type: eventType, Task: *task, OccurredAt: s.now()}
	if err := s.events.PublishTaskEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish task event",
			"event", eventType,
			"task_id", task.ID,
			"error", err,
		)
	}
}
