package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/solfege-app/solfege/pkg/score"
)

// scoreRequest carries the reference text and what the assessment service
// heard.
type scoreRequest struct {
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// scoreResponse is the accuracy verdict plus its derived display copy.
type scoreResponse struct {
	Accuracy    float64 `json:"accuracy"`
	Tier        string  `json:"tier"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

// handleScore handles POST /v1/score. Scoring never fails: empty or
// malformed text degrades to defined numeric edge cases.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	start := time.Now()
	accuracy := score.Accuracy(req.Expected, req.Actual)
	tier := s.classifier.Classify(accuracy)
	feedback := s.classifier.Feedback(accuracy)
	s.metrics.ScoreDuration.Record(r.Context(), time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, scoreResponse{
		Accuracy:    accuracy,
		Tier:        tier.String(),
		Title:       feedback.Title,
		Description: feedback.Description,
	})
}
