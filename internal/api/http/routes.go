package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/microlearn/microlearn/internal/generate"
	"github.com/microlearn/microlearn/internal/lesson"
)

// Mount attaches the API routes to r.
func Mount(r chi.Router, daily *lesson.Service, store lesson.Store, gen *generate.Service) {
	r.Get("/lesson", DailyLessonHandler(daily))
	r.Get("/archive", ArchiveHandler(store))
	r.Get("/history", HistoryHandler(store))
	r.Post("/custom-summary", CustomSummaryHandler(gen))
	r.Post("/followup", FollowUpHandler(gen))
}
