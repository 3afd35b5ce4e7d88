package http

import (
	"log"
	"net/http"

	"github.com/microlearn/microlearn/internal/lesson"
)

// DailyLessonHandler serves today's lesson record, cached or freshly
// generated. A stored {"error": ...} fallback record is served as-is
// with status 200.
func DailyLessonHandler(svc *lesson.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Today(r.Context())
		if err != nil {
			log.Printf("lesson: %v", err)
			writeError(w, http.StatusInternalServerError, "Error generating lesson")
			return
		}
		writeRaw(w, http.StatusOK, rec)
	}
}
