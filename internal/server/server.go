// Package server exposes the normalization and scoring pipelines over a
// small JSON HTTP API, together with the operational endpoints (/metrics,
// /healthz, /readyz). The consumer app's full routing, authentication and UI
// layers live elsewhere; this surface exists for the mobile client's
// recording flow and for operations.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/solfege-app/solfege/internal/config"
	"github.com/solfege-app/solfege/internal/health"
	"github.com/solfege-app/solfege/internal/observe"
	"github.com/solfege-app/solfege/internal/practice"
	"github.com/solfege-app/solfege/pkg/audio"
	"github.com/solfege-app/solfege/pkg/score"
)

// userSafeProcessingError is what a learner sees when a recording cannot be
// parsed or converted. The internal cause goes to the log, never to the
// client.
const userSafeProcessingError = "could not process the recording, please try again"

// Server owns the HTTP API over the two pipelines.
type Server struct {
	optimizer  *audio.Optimizer
	validator  *audio.Validator
	classifier *score.Classifier
	sessions   *practice.Manager
	metrics    *observe.Metrics
	health     *health.Handler
}

// New wires a Server from the loaded config. metrics may not be nil;
// checkers become the /readyz probes.
func New(cfg *config.Config, metrics *observe.Metrics, checkers ...health.Checker) *Server {
	classifier := score.NewClassifier(
		score.WithSuccessThreshold(cfg.Scoring.SuccessThreshold),
		score.WithCloseThreshold(cfg.Scoring.CloseThreshold),
	)

	s := &Server{
		optimizer: &audio.Optimizer{
			TargetRate:       cfg.Audio.TargetSampleRate,
			SilenceThreshold: cfg.Audio.SilenceThreshold,
		},
		validator: &audio.Validator{
			SampleRate: cfg.Audio.TargetSampleRate,
			MinSeconds: cfg.Audio.MinClipSeconds,
			MaxSeconds: cfg.Audio.MaxClipSeconds,
		},
		classifier: classifier,
		metrics:    metrics,
		health:     health.New(checkers...),
	}
	s.sessions = practice.NewManager(classifier, func(delta int) {
		metrics.ActivePracticeSessions.Add(context.Background(), int64(delta))
	})
	return s
}

// Handler returns the fully routed handler, wrapped in the observability
// middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	s.health.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /v1/audio/optimize", s.handleOptimize)
	mux.HandleFunc("POST /v1/score", s.handleScore)

	mux.HandleFunc("POST /v1/practice/sessions", s.handleStartSession)
	mux.HandleFunc("GET /v1/practice/sessions/{sessionID}", s.handleGetSession)
	mux.HandleFunc("POST /v1/practice/sessions/{sessionID}/attempts", s.handleAttempt)
	mux.HandleFunc("POST /v1/practice/sessions/{sessionID}/skips", s.handleSkip)
	mux.HandleFunc("DELETE /v1/practice/sessions/{sessionID}", s.handleEndSession)

	return observe.Middleware(s.metrics)(mux)
}

// writeJSON encodes v with the given status. Encoding failures fall back to
// a plain 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error":"encoding failure"}`, http.StatusInternalServerError)
	}
}

// errorBody is the uniform JSON error envelope.
type errorBody struct {
	Error string `json:"error"`
}

// writeError sends the envelope with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// sessionStatus maps practice lookups onto 404 vs 400.
func sessionErrorStatus(err error) int {
	if errors.Is(err, practice.ErrSessionNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
