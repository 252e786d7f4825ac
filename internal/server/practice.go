package server

import (
	"encoding/json"
	"net/http"

	"github.com/solfege-app/solfege/internal/observe"
	"github.com/solfege-app/solfege/internal/practice"
)

// startSessionRequest opens a practice session for one lyric line.
type startSessionRequest struct {
	Text          string `json:"text"`
	PhoneticGuide string `json:"phonetic_guide"`
}

// wordStateResponse is the API shape of one word's practice state.
type wordStateResponse struct {
	Word      string  `json:"word"`
	Phonetic  string  `json:"phonetic,omitempty"`
	Status    string  `json:"status"`
	Attempts  uint32  `json:"attempts"`
	BestScore float64 `json:"best_score"`
}

// sessionResponse is the full session view returned on start and get.
type sessionResponse struct {
	SessionID string              `json:"session_id"`
	Text      string              `json:"text"`
	Words     []wordStateResponse `json:"words"`
}

func wordStates(words []practice.WordState) []wordStateResponse {
	out := make([]wordStateResponse, len(words))
	for i, w := range words {
		out[i] = wordStateResponse{
			Word:      w.Word,
			Phonetic:  w.Phonetic,
			Status:    w.Status.String(),
			Attempts:  w.Attempts,
			BestScore: w.BestScore,
		}
	}
	return out
}

// handleStartSession handles POST /v1/practice/sessions.
func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" && req.PhoneticGuide == "" {
		writeError(w, http.StatusBadRequest, "text or phonetic_guide is required")
		return
	}

	sess := s.sessions.Start(req.Text, req.PhoneticGuide)
	writeJSON(w, http.StatusCreated, sessionResponse{
		SessionID: sess.ID,
		Text:      sess.Text,
		Words:     wordStates(sess.Words()),
	})
}

// handleGetSession handles GET /v1/practice/sessions/{sessionID}.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("sessionID")
	sess, err := s.sessions.Get(id)
	if err != nil {
		writeError(w, sessionErrorStatus(err), err.Error())
		return
	}
	words, err := s.sessions.Words(id)
	if err != nil {
		writeError(w, sessionErrorStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		SessionID: sess.ID,
		Text:      sess.Text,
		Words:     wordStates(words),
	})
}

// attemptRequest scores one spoken attempt against a word of the line.
type attemptRequest struct {
	WordIndex int    `json:"word_index"`
	Spoken    string `json:"spoken"`
}

// attemptResponse reports the outcome of the attempt.
type attemptResponse struct {
	Accuracy    float64 `json:"accuracy"`
	Tier        string  `json:"tier"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

// handleAttempt handles POST /v1/practice/sessions/{sessionID}/attempts.
func (s *Server) handleAttempt(w http.ResponseWriter, r *http.Request) {
	var req attemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	att, err := s.sessions.RecordAttempt(r.PathValue("sessionID"), req.WordIndex, req.Spoken)
	if err != nil {
		writeError(w, sessionErrorStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, attemptResponse{
		Accuracy:    att.Accuracy,
		Tier:        att.Tier.String(),
		Title:       att.Feedback.Title,
		Description: att.Feedback.Description,
	})
}

// skipRequest names the word to move past.
type skipRequest struct {
	WordIndex int `json:"word_index"`
}

// handleSkip handles POST /v1/practice/sessions/{sessionID}/skips.
func (s *Server) handleSkip(w http.ResponseWriter, r *http.Request) {
	var req skipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := r.PathValue("sessionID")
	if err := s.sessions.Skip(id, req.WordIndex); err != nil {
		writeError(w, sessionErrorStatus(err), err.Error())
		return
	}
	words, err := s.sessions.Words(id)
	if err != nil {
		writeError(w, sessionErrorStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Words []wordStateResponse `json:"words"`
	}{Words: wordStates(words)})
}

// summaryResponse closes out a session with its tallies.
type summaryResponse struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Retrying  int `json:"retrying"`
	Skipped   int `json:"skipped"`
	Pending   int `json:"pending"`
}

// handleEndSession handles DELETE /v1/practice/sessions/{sessionID}. The
// summary is computed before the session is discarded so the client gets a
// final report in the same round trip.
func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("sessionID")

	sum, err := s.sessions.Summary(id)
	if err != nil {
		writeError(w, sessionErrorStatus(err), err.Error())
		return
	}
	if err := s.sessions.End(id); err != nil {
		writeError(w, sessionErrorStatus(err), err.Error())
		return
	}

	observe.Logger(r.Context()).Info("practice session ended",
		"session_id", id, "succeeded", sum.Succeeded, "total", sum.Total)
	writeJSON(w, http.StatusOK, summaryResponse{
		Total:     sum.Total,
		Succeeded: sum.Succeeded,
		Retrying:  sum.Retrying,
		Skipped:   sum.Skipped,
		Pending:   sum.Pending,
	})
}
