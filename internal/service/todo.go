package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/msomdec/todo-api/internal/domain"
)

// TodoService validates todo operations and hands them to the owner-scoped
// repository. Every method takes the caller's user ID.
type TodoService struct {
	todos domain.TodoRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(todos domain.TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

// List returns the owner's todos, newest first. Never nil.
func (s *TodoService) List(ctx context.Context, userID string) ([]domain.Todo, error) {
	todos, err := s.todos.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	if todos == nil {
		todos = []domain.Todo{}
	}
	return todos, nil
}

// Create adds a todo for userID.
func (s *TodoService) Create(ctx context.Context, userID, text string) (*domain.Todo, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}

	todo := &domain.Todo{
		ID:     uuid.NewString(),
		UserID: userID,
		Text:   text,
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return todo, nil
}

// Update applies patch to the todo if userID owns it.
func (s *TodoService) Update(ctx context.Context, userID, id string, patch domain.TodoPatch) (*domain.Todo, error) {
	if patch.Text != nil {
		if err := validateText(*patch.Text); err != nil {
			return nil, err
		}
	}
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	return s.todos.UpdateOwned(ctx, userID, id, patch)
}

// Delete removes the todo if userID owns it.
func (s *TodoService) Delete(ctx context.Context, userID, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	return s.todos.DeleteOwned(ctx, userID, id)
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: text is required", domain.ErrInvalidInput)
	}
	return nil
}

// validID rejects ids that could never have been issued, so they read as
// missing rather than reaching the database.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}
