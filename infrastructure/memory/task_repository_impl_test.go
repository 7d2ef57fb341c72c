package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samiullah014/stan-task/domain/models"
	"github.com/samiullah014/stan-task/domain/repositories"
)

func fixedClock() func() time.Time {
	t0 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time { return t0 }
}

func TestCreateAssignsIDsAndTimestamps(t *testing.T) {
	repo := NewTaskRepository(fixedClock())
	ctx := context.Background()

	first := &models.Task{Title: "first"}
	second := &models.Task{Title: "second", Status: models.TaskStatusCompleted}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, models.TaskStatusPending, first.Status)
	assert.Equal(t, models.TaskStatusCompleted, second.Status)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
}

func TestCreateKeepsCallerTimestamps(t *testing.T) {
	repo := NewTaskRepository(fixedClock())
	at := time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)

	task := &models.Task{Title: "stamped", CreatedAt: at, UpdatedAt: at}
	require.NoError(t, repo.Create(context.Background(), task))

	assert.True(t, task.CreatedAt.Equal(at))
	assert.True(t, task.UpdatedAt.Equal(at))
}

func TestListIsOrderedByID(t *testing.T) {
	repo := NewTaskRepository(nil)
	ctx := context.Background()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, &models.Task{Title: title}))
	}

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for i, task := range tasks {
		assert.Equal(t, int64(i+1), task.ID)
	}
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	repo := NewTaskRepository(fixedClock())
	ctx := context.Background()

	description := "two litres"
	task := &models.Task{Title: "Buy milk", Description: &description}
	require.NoError(t, repo.Create(ctx, task))

	status := models.TaskStatusInProgress
	later := task.UpdatedAt.Add(time.Minute)
	updated, err := repo.UpdateByID(ctx, task.ID, repositories.TaskUpdate{Status: &status, UpdatedAt: later})
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "two litres", *updated.Description)
	assert.Equal(t, models.TaskStatusInProgress, updated.Status)
	assert.Equal(t, task.CreatedAt, updated.CreatedAt)
	assert.Equal(t, later, updated.UpdatedAt)

	_, err = repo.UpdateByID(ctx, 42, repositories.TaskUpdate{UpdatedAt: later})
	assert.ErrorIs(t, err, repositories.ErrTaskNotFound)
}

func TestDeleteReturnsRemovedRow(t *testing.T) {
	repo := NewTaskRepository(nil)
	ctx := context.Background()

	task := &models.Task{Title: "temporary"}
	require.NoError(t, repo.Create(ctx, task))

	deleted, err := repo.DeleteByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "temporary", deleted.Title)

	_, err = repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, repositories.ErrTaskNotFound)

	_, err = repo.DeleteByID(ctx, task.ID)
	assert.ErrorIs(t, err, repositories.ErrTaskNotFound)
}

func TestReturnedTasksAreCopies(t *testing.T) {
	repo := NewTaskRepository(nil)
	ctx := context.Background()

	description := "original"
	task := &models.Task{Title: "t", Description: &description}
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	*got.Description = "mutated"
	got.Title = "mutated"

	again, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", again.Title)
	assert.Equal(t, "original", *again.Description)
}

func TestCanceledContext(t *testing.T) {
	repo := NewTaskRepository(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repo.Ping(ctx), context.Canceled)
}

func TestConcurrentCreatesGetUniqueIDs(t *testing.T) {
	repo := NewTaskRepository(nil)
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			task := &models.Task{Title: "parallel"}
			if err := repo.Create(ctx, task); err == nil {
				ids <- task.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestUpdateKeepsUpdatedAtMonotonic(t *testing.T) {
	repo := NewTaskRepository(fixedClock())
	ctx := context.Background()

	task := &models.Task{Title: "clock skew"}
	require.NoError(t, repo.Create(ctx, task))

	title := "still here"
	earlier := task.UpdatedAt.Add(-time.Hour)
	updated, err := repo.UpdateByID(ctx, task.ID, repositories.TaskUpdate{Title: &title, UpdatedAt: earlier})
	require.NoError(t, err)
	assert.Equal(t, "still here", updated.Title)
	assert.Equal(t, task.UpdatedAt, updated.UpdatedAt)
}
