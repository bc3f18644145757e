package domain

import (
	"context"
	"time"
)

// Task is a to-do item owned by exactly one user. AuthorID is set at
// creation and never reassigned.
type Task struct {
	ID          int64
	Title       string
	Description string
	Done        bool
	AuthorID    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskPatch is a full replacement of a task's mutable columns.
type TaskPatch struct {
	Title       string
	Description string
	Done        bool
}

// TaskRepository defines persistence operations for tasks. Every read and
// write except Create matches on (id AND author_id), so a task owned by
// someone else is indistinguishable from a missing one: both return
// ErrNotFound.
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	GetByOwner(ctx context.Context, id, authorID int64) (*Task, error)
	ListByOwner(ctx context.Context, authorID int64) ([]Task, error)
	Update(ctx context.Context, id, authorID int64, patch TaskPatch) (*Task, error)
	Delete(ctx context.Context, id, authorID int64) error
}
