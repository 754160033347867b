package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/todo-api/internal/domain"
	"github.com/msomdec/todo-api/internal/service"
	"github.com/msomdec/todo-api/internal/view"
	datastar "github.com/starfederation/datastar-go/datastar"
)

// TodoHandler serves the caller's todos. Every route sits behind RequireAuth.
type TodoHandler struct {
	todos *service.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todos *service.TodoService) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// HandleList returns the caller's todos, newest first.
// GET /api/todos
func (h *TodoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todos.List(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeInternalError(w, "list todos", err)
		return
	}
	writeJSON(w, http.StatusOK, toTodoDTOs(todos))
}

// HandleCreate adds a todo.
// POST /api/todos
// Request: {"text":"..."}
func (h *TodoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	todo, err := h.todos.Create(r.Context(), UserIDFromContext(r.Context()), req.Text)
	if err != nil {
		writeServiceError(w, "create todo", err)
		return
	}
	writeJSON(w, http.StatusCreated, toTodoDTO(todo))
}

// HandleUpdate applies a partial update. Fields absent from the body are
// left as they are.
// PUT|PATCH /api/todos/{id}
// Request: {"text":"...","completed":true}
func (h *TodoHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text      *string `json:"text"`
		Completed *bool   `json:"completed"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	patch := domain.TodoPatch{Text: req.Text, Completed: req.Completed}
	todo, err := h.todos.Update(r.Context(), UserIDFromContext(r.Context()), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, "update todo", err)
		return
	}
	writeJSON(w, http.StatusOK, toTodoDTO(todo))
}

// HandleDelete removes a todo.
// DELETE /api/todos/{id}
func (h *TodoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.todos.Delete(r.Context(), UserIDFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, "delete todo", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Todo deleted"})
}

// HandleFeed patches the #todo-list element of the home page with the
// caller's todos via SSE.
// GET /api/todos/feed
func (h *TodoHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todos.List(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeInternalError(w, "list todos for feed", err)
		return
	}

	sse := datastar.NewSSE(w, r)
	err = sse.PatchElementTempl(
		view.TodoList(todos),
		datastar.WithSelectorID("todo-list"),
		datastar.WithModeInner(),
	)
	if err != nil {
		slog.Error("patch todo list", "error", err)
	}
}
