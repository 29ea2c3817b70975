package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todoapp/internal/model"
)

// TaskRepository owns all task persistence. Every query filters by owner ID,
// independently of the guard at the HTTP boundary.
type TaskRepository struct {
	db *gorm.DB
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, ownerID string, id int64) (*model.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, ownerID string, id int64) error
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task; the database assigns the ID and timestamps.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task only if both ID and owner match.
func (r *TaskRepository) GetByID(ctx context.Context, ownerID string, id int64) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// ListByOwner retrieves all tasks for an owner in insertion order.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("id").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Update persists field changes and refreshes updated_at. Concurrent updates
// to the same row resolve last-write-wins at the database.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).Save(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task permanently, scoped by owner.
func (r *TaskRepository) Delete(ctx context.Context, ownerID string, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
