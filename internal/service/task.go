package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/taskdeck/internal/domain"
)

// TaskService enforces per-owner scoping over the task repository. Every
// operation takes the verified requester identity explicitly; the service
// never trusts an owner reference supplied in a request body.
type TaskService struct {
	tasks domain.TaskRepository
	users domain.UserRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks domain.TaskRepository, users domain.UserRepository) *TaskService {
	return &TaskService{tasks: tasks, users: users}
}

// List returns the requester's tasks in insertion order.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	return s.tasks.ListByOwner(ctx, ownerID)
}

// Get returns the task matching (taskID AND ownerID). A task owned by
// another user is ErrNotFound, same as a missing one.
func (s *TaskService) Get(ctx context.Context, ownerID, taskID int64) (*domain.Task, error) {
	return s.tasks.GetByOwner(ctx, taskID, ownerID)
}

// Create inserts a new task owned by ownerID. The owner is resolved first
// so a stale token for a deleted account cannot create orphaned rows.
func (s *TaskService) Create(ctx context.Context, ownerID int64, title, description string, done bool) (*domain.Task, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("resolve owner: %w", err)
	}

	task := &domain.Task{
		Title:       title,
		Description: description,
		Done:        done,
		AuthorID:    owner.ID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		if domain.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Update replaces title, description, and done on the task matching
// (taskID AND ownerID). Zero matched rows is ErrNotFound.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID int64, patch domain.TaskPatch) (*domain.Task, error) {
	if patch.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	task, err := s.tasks.Update(ctx, taskID, ownerID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || domain.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Remove deletes the task matching (taskID AND ownerID). Zero matched
// rows is ErrNotFound, so a second Remove of the same task fails.
func (s *TaskService) Remove(ctx context.Context, ownerID, taskID int64) error {
	if err := s.tasks.Delete(ctx, taskID, ownerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
