package handler

import (
	"net/http"

	"github.com/msomdec/todo-api/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, todos *service.TodoService) {
	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.HandleFunc("GET /", HandleHome)

	authHandler := NewAuthHandler(auth)
	mux.HandleFunc("POST /api/auth/signup", authHandler.HandleSignup)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.Handle("GET /api/auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))

	todoHandler := NewTodoHandler(todos)
	protect := func(h http.HandlerFunc) http.Handler { return RequireAuth(auth, h) }
	mux.Handle("GET /api/todos", protect(todoHandler.HandleList))
	mux.Handle("POST /api/todos", protect(todoHandler.HandleCreate))
	mux.Handle("GET /api/todos/feed", protect(todoHandler.HandleFeed))
	mux.Handle("PUT /api/todos/{id}", protect(todoHandler.HandleUpdate))
	mux.Handle("PATCH /api/todos/{id}", protect(todoHandler.HandleUpdate))
	mux.Handle("DELETE /api/todos/{id}", protect(todoHandler.HandleDelete))
}
