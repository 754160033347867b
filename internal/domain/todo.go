package domain

import (
	"context"
	"time"
)

// Todo is a short text task owned by exactly one user.
type Todo struct {
	ID        string
	UserID    string
	Text      string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TodoPatch carries the fields of an update. Nil fields are left untouched.
type TodoPatch struct {
	Text      *string
	Completed *bool
}

// TodoRepository persists todos. Every method is scoped to an owner: a todo
// that exists but belongs to someone else is reported as ErrNotFound.
//
// UpdateOwned and DeleteOwned must match by (id, owner) and mutate in a single
// atomic step.
type TodoRepository interface {
	ListByUser(ctx context.Context, userID string) ([]Todo, error)
	Create(ctx context.Context, todo *Todo) error
	UpdateOwned(ctx context.Context, userID, id string, patch TodoPatch) (*Todo, error)
	DeleteOwned(ctx context.Context, userID, id string) error
}
