package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/microlearn/microlearn/internal/generate"
)

// CustomSummaryHandler generates a summary plus a ten-question quiz for
// arbitrary user input. Nothing is persisted.
func CustomSummaryHandler(gen *generate.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}

		res, err := gen.Summarize(r.Context(), req.Input)
		if err != nil {
			var unparsable *generate.UnparsableError
			switch {
			case errors.Is(err, generate.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Input is required")
			case errors.As(err, &unparsable):
				log.Printf("custom-summary: %v", err)
				writeError(w, http.StatusInternalServerError, "Failed to parse AI response.")
			default:
				log.Printf("custom-summary: %v", err)
				writeError(w, http.StatusInternalServerError, "Server error while generating summary/quiz.")
			}
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
