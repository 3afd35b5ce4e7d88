package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/microlearn/microlearn/internal/generate"
)

// FollowUpHandler answers a free-form question about an earlier lesson.
// Stateless: the lesson context travels in the request body.
func FollowUpHandler(gen *generate.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Topic    string `json:"topic"`
			Summary  string `json:"summary"`
			Question string `json:"question"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}

		answer, err := gen.Answer(r.Context(), req.Topic, req.Summary, req.Question)
		if err != nil {
			if errors.Is(err, generate.ErrMissingInput) {
				writeError(w, http.StatusBadRequest, "Missing topic, summary, or question.")
				return
			}
			log.Printf("followup: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to generate follow-up answer.")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
	}
}
