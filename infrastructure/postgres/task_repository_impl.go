package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/samiullah014/stan-task/domain/models"
	"github.com/samiullah014/stan-task/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) List(ctx context.Context) ([]*models.Task, error) {
	tasks := []*models.Task{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Create inserts the row and reads every column back, so store defaults and
// the generated id are visible to the caller.
func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(task).Error
}

func (r *TaskRepositoryImpl) UpdateByID(ctx context.Context, id int64, update repositories.TaskUpdate) (*models.Task, error) {
	// updated_at never moves backwards, even if the app clock does
	values := map[string]any{
		"updated_at": gorm.Expr("GREATEST(?::timestamptz, updated_at)", update.UpdatedAt),
	}
	if update.Title != nil {
		values["title"] = *update.Title
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if update.Status != nil {
		values["status"] = *update.Status
	}

	// UPDATE ... WHERE id = ? RETURNING * (one statement)
	var updated []models.Task
	err := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(values).Error
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, repositories.ErrTaskNotFound
	}
	return &updated[0], nil
}

func (r *TaskRepositoryImpl) DeleteByID(ctx context.Context, id int64) (*models.Task, error) {
	var deleted []models.Task
	err := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&deleted).Error
	if err != nil {
		return nil, err
	}
	if len(deleted) == 0 {
		return nil, repositories.ErrTaskNotFound
	}
	return &deleted[0], nil
}

func (r *TaskRepositoryImpl) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
