package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/todo-api/internal/view"
)

// HandleHome renders the home page.
func HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.HomePage().Render(r.Context(), w); err != nil {
		slog.Error("render home page", "error", err)
	}
}
