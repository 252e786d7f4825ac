package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/solfege-app/solfege/internal/observe"
	"github.com/solfege-app/solfege/pkg/audio"
)

// optimizeRequest is the JSON body for the optimize endpoint. Audio carries
// the recorded clip as base64, with or without a data-URI prefix.
type optimizeRequest struct {
	Audio string `json:"audio"`
}

// optimizeResponse reports the normalized clip and its diagnostics.
type optimizeResponse struct {
	Audio                   string   `json:"audio"`
	SampleRate              int      `json:"sample_rate"`
	Channels                int      `json:"channels"`
	BitDepth                uint16   `json:"bit_depth"`
	DurationSeconds         float64  `json:"duration_seconds"`
	SizeBytes               int      `json:"size_bytes"`
	CompressionRatioPercent float64  `json:"compression_ratio_percent"`
	Valid                   bool     `json:"valid"`
	ValidationErrors        []string `json:"validation_errors,omitempty"`
}

// handleOptimize handles POST /v1/audio/optimize. Pipeline failures are
// reported with a user-safe message; the internal cause is logged, and
// validation problems ride along in the response rather than failing it —
// the caller may choose to retry with relaxed constraints.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Audio == "" {
		writeError(w, http.StatusBadRequest, "audio is required")
		return
	}

	start := time.Now()
	res, err := s.optimizer.Optimize(req.Audio)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		observe.Logger(ctx).Warn("audio optimization failed", "err", err)
		s.metrics.RecordOptimize(ctx, elapsed, optimizeStatus(err), 0)
		writeError(w, http.StatusUnprocessableEntity, userSafeProcessingError)
		return
	}

	outcome := s.validator.Validate(res.Buffer)
	if !outcome.Valid {
		// Not fatal: log and surface alongside the optimized clip.
		observe.Logger(ctx).Warn("optimized clip failed validation", "errors", outcome.Errors)
		s.metrics.ValidationFailures.Add(ctx, 1)
	}

	saved := 0
	if p := res.CompressionRatioPercent / 100; p > 0 && p < 1 {
		originalSize := float64(res.Metadata.SizeBytes) / (1 - p)
		saved = int(originalSize) - res.Metadata.SizeBytes
	}
	s.metrics.RecordOptimize(ctx, elapsed, "ok", saved)

	writeJSON(w, http.StatusOK, optimizeResponse{
		Audio:                   base64.StdEncoding.EncodeToString(res.Buffer),
		SampleRate:              res.Metadata.SampleRate,
		Channels:                res.Metadata.Channels,
		BitDepth:                res.Metadata.Depth.Bits(),
		DurationSeconds:         res.Metadata.DurationSeconds,
		SizeBytes:               res.Metadata.SizeBytes,
		CompressionRatioPercent: res.CompressionRatioPercent,
		Valid:                   outcome.Valid,
		ValidationErrors:        outcome.Errors,
	})
}

// optimizeStatus labels a pipeline error for the request counter.
func optimizeStatus(err error) string {
	switch {
	case errors.Is(err, audio.ErrMalformedContainer):
		return "malformed"
	case errors.Is(err, audio.ErrUnsupportedChannelLayout), errors.Is(err, audio.ErrUnsupportedBitDepth):
		return "unsupported"
	default:
		return "error"
	}
}
