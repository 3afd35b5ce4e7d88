package http

import (
	"net/http"

	"github.com/microlearn/microlearn/internal/lesson"
)

// ArchiveHandler lists every stored lesson, newest first. Store trouble
// degrades to an empty list, never an error status.
func ArchiveHandler(store lesson.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, lesson.Archive(r.Context(), store))
	}
}

// HistoryHandler lists topic, date and score per stored lesson, newest
// first. Same degraded behavior as ArchiveHandler.
func HistoryHandler(store lesson.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, lesson.History(r.Context(), store))
	}
}
