// Package assess defines the Provider interface for remote
// pronunciation-assessment backends.
//
// A provider receives an optimized WAV clip (16 kHz, mono, 16-bit PCM — see
// the audio package) together with the reference text the learner was asked
// to read, and returns what the service heard. The actual HTTP/SDK clients
// live outside this repository; this package only fixes the contract and
// ships a mock for tests.
//
// Implementations must be safe for concurrent use.
package assess

import "context"

// Result is a provider's verdict on a single clip.
type Result struct {
	// Transcript is the text the service heard in the clip.
	Transcript string

	// Confidence is the provider's own confidence in the transcript
	// (0.0–1.0). Zero when the provider does not report confidence.
	Confidence float64
}

// Provider assesses a spoken clip against reference text. Blocking network
// calls happen inside Assess, so it takes a context for caller-level
// timeout and cancellation; the scoring core itself has no cancellation
// points.
type Provider interface {
	// Assess submits the WAV clip and reference text and returns the
	// service's transcription. wav must be a complete container, not bare
	// PCM. Returns an error for transport or service failures; an empty
	// transcript with no error means the service heard nothing.
	Assess(ctx context.Context, wav []byte, referenceText string) (Result, error)
}
