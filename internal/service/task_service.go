package service

import (
	"context"

	"go.uber.org/zap"

	"todoapp/internal/logger"
	"todoapp/internal/model"
	"todoapp/internal/repository"
)

// TaskService implements the task lifecycle rules on top of the repository.
// The verified owner ID is passed explicitly on every call; no task is ever
// visible outside its owner.
type TaskService struct {
	repo  repository.TaskRepositoryInterface
	users repository.UserRepositoryInterface
}

func NewTaskService(repo repository.TaskRepositoryInterface, users repository.UserRepositoryInterface) *TaskService {
	return &TaskService{repo: repo, users: users}
}

// Create validates and sanitizes the input, then inserts a new incomplete
// task for the owner. The owner's user row must already exist; the identity
// provider writes it at registration, so a missing row means the token's
// subject has no account here yet.
func (s *TaskService) Create(ctx context.Context, ownerID, title string, description *string) (*model.Task, error) {
	cleanTitle, err := SanitizeTitle(title)
	if err != nil {
		return nil, err
	}

	var cleanDesc *string
	if description != nil {
		cleanDesc, err = SanitizeDescription(*description)
		if err != nil {
			return nil, err
		}
	}

	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	task := &model.Task{
		UserID:      ownerID,
		Title:       cleanTitle,
		Description: cleanDesc,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	logger.Info("task created", zap.Int64("task_id", task.ID), zap.String("user_id", ownerID))
	return task, nil
}

// List returns all of the owner's tasks in insertion order.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]model.Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Get returns the owner's task or repository.ErrTaskNotFound. A task that
// exists under another owner is reported identically to one that does not
// exist at all.
func (s *TaskService) Get(ctx context.Context, ownerID string, id int64) (*model.Task, error) {
	return s.repo.GetByID(ctx, ownerID, id)
}

// Update applies only the provided fields. A provided description that
// sanitizes to empty clears the stored description.
func (s *TaskService) Update(ctx context.Context, ownerID string, id int64, title, description *string) (*model.Task, error) {
	task, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if title != nil {
		cleanTitle, err := SanitizeTitle(*title)
		if err != nil {
			return nil, err
		}
		task.Title = cleanTitle
	}
	if description != nil {
		cleanDesc, err := SanitizeDescription(*description)
		if err != nil {
			return nil, err
		}
		task.Description = cleanDesc
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	logger.Info("task updated", zap.Int64("task_id", id), zap.String("user_id", ownerID))
	return task, nil
}

// ToggleCompletion flips the completed flag. Each call inverts the current
// state; there is no fixed-value set.
func (s *TaskService) ToggleCompletion(ctx context.Context, ownerID string, id int64) (*model.Task, error) {
	task, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	logger.Info("task completion toggled",
		zap.Int64("task_id", id),
		zap.Bool("completed", task.Completed),
		zap.String("user_id", ownerID))
	return task, nil
}

// Delete removes the owner's task permanently. Ownership is checked by the
// fetch before the delete runs.
func (s *TaskService) Delete(ctx context.Context, ownerID string, id int64) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	logger.Info("task deleted", zap.Int64("task_id", id), zap.String("user_id", ownerID))
	return nil
}
