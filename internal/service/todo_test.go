package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/msomdec/todo-api/internal/domain"
	"github.com/msomdec/todo-api/internal/repository/sqlite"
	"github.com/msomdec/todo-api/internal/service"
)

func newTestTodoService(t *testing.T) (*service.TodoService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	return service.NewTodoService(db.Todos()), db
}

func createTestUser(t *testing.T, db *sqlite.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{ID: uuid.NewString(), Email: email, PasswordHash: "hash"}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestTodoService_CreateAndList(t *testing.T) {
	svc, db := newTestTodoService(t)
	user := createTestUser(t, db, "owner@example.com")
	ctx := context.Background()

	empty, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", empty)
	}

	todo, err := svc.Create(ctx, user.ID, "buy milk")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if uuid.Validate(todo.ID) != nil {
		t.Fatalf("expected uuid id, got %q", todo.ID)
	}
	if todo.UserID != user.ID || todo.Completed {
		t.Fatalf("unexpected todo: %+v", todo)
	}

	todos, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(todos) != 1 || todos[0].ID != todo.ID {
		t.Fatalf("expected created todo in list, got %+v", todos)
	}
}

func TestTodoService_Create_BlankText(t *testing.T) {
	svc, db := newTestTodoService(t)
	user := createTestUser(t, db, "owner@example.com")

	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Create(context.Background(), user.ID, text); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("text %q: expected ErrInvalidInput, got %v", text, err)
		}
	}
}

func TestTodoService_Update(t *testing.T) {
	svc, db := newTestTodoService(t)
	user := createTestUser(t, db, "owner@example.com")
	ctx := context.Background()

	todo, err := svc.Create(ctx, user.ID, "draft")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	done := true
	updated, err := svc.Update(ctx, user.ID, todo.ID, domain.TodoPatch{Completed: &done})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Completed || updated.Text != "draft" {
		t.Fatalf("unexpected todo: %+v", updated)
	}

	blank := " "
	if _, err := svc.Update(ctx, user.ID, todo.ID, domain.TodoPatch{Text: &blank}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTodoService_MalformedIDIsNotFound(t *testing.T) {
	svc, db := newTestTodoService(t)
	user := createTestUser(t, db, "owner@example.com")
	ctx := context.Background()

	done := true
	if _, err := svc.Update(ctx, user.ID, "not-a-uuid", domain.TodoPatch{Completed: &done}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, user.ID, "not-a-uuid"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Delete: expected ErrNotFound, got %v", err)
	}
}

func TestTodoService_OwnerIsolation(t *testing.T) {
	svc, db := newTestTodoService(t)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	ctx := context.Background()

	todo, err := svc.Create(ctx, alice.ID, "private")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	bobs, err := svc.List(ctx, bob.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(bobs) != 0 {
		t.Fatalf("bob sees alice's todos: %+v", bobs)
	}

	text := "hijacked"
	if _, err := svc.Update(ctx, bob.ID, todo.ID, domain.TodoPatch{Text: &text}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, bob.ID, todo.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Delete: expected ErrNotFound, got %v", err)
	}

	if err := svc.Delete(ctx, alice.ID, todo.ID); err != nil {
		t.Fatalf("owner Delete: %v", err)
	}
}
