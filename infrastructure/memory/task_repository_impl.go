// Package memory is an in-process TaskRepository. It mirrors the PostgreSQL
// repository's semantics (sequential ids, store-assigned timestamps, one
// atomic step per operation) and backs STORE_DRIVER=memory and the tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/samiullah014/stan-task/domain/models"
	"github.com/samiullah014/stan-task/domain/repositories"
)

type TaskRepositoryImpl struct {
	mu     sync.RWMutex
	tasks  map[int64]models.Task
	nextID int64
	now    func() time.Time
}

// NewTaskRepository creates an empty store. now stamps created_at/updated_at
// on insert when the caller leaves them zero; nil means UTC wall clock at
// microsecond precision.
func NewTaskRepository(now func() time.Time) *TaskRepositoryImpl {
	if now == nil {
		now = func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
	}
	return &TaskRepositoryImpl{
		tasks:  make(map[int64]models.Task),
		nextID: 1,
		now:    now,
	}
}

var _ repositories.TaskRepository = (*TaskRepositoryImpl)(nil)

func (r *TaskRepositoryImpl) List(ctx context.Context) ([]*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, cloneTask(task))
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, repositories.ErrTaskNotFound
	}
	return cloneTask(task), nil
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	stored := *cloneTask(*task)
	stored.ID = r.nextID
	if stored.Status == "" {
		stored.Status = models.TaskStatusPending
	}
	// caller-supplied timestamps win, like explicit values over column defaults
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = now
	}

	r.tasks[stored.ID] = stored
	r.nextID++

	*task = *cloneTask(stored)
	return nil
}

func (r *TaskRepositoryImpl) UpdateByID(ctx context.Context, id int64, update repositories.TaskUpdate) (*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, repositories.ErrTaskNotFound
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		description := *update.Description
		task.Description = &description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.UpdatedAt.After(task.UpdatedAt) {
		task.UpdatedAt = update.UpdatedAt
	}

	r.tasks[id] = task
	return cloneTask(task), nil
}

func (r *TaskRepositoryImpl) DeleteByID(ctx context.Context, id int64) (*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, repositories.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return cloneTask(task), nil
}

func (r *TaskRepositoryImpl) Ping(ctx context.Context) error {
	return ctx.Err()
}

// cloneTask copies the description pointer so callers never share state
// with the store.
func cloneTask(task models.Task) *models.Task {
	if task.Description != nil {
		description := *task.Description
		task.Description = &description
	}
	return &task
}
