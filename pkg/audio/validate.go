package audio

import "fmt"

// Duration bounds the assessment API accepts, in seconds.
const (
	MinClipSeconds = 0.1
	MaxClipSeconds = 30
)

// Validator checks a container against the assessment API's hard format
// requirements. Violations are accumulated, never raised as errors, so the
// caller can show every problem at once instead of one per retry.
//
// The zero value checks the API defaults: 16 kHz, mono, 16-bit, 0.1–30 s.
type Validator struct {
	// SampleRate is the required rate in Hz. Zero means [TargetSampleRate].
	SampleRate int

	// Channels is the required channel count. Zero means mono.
	Channels int

	// MinSeconds and MaxSeconds bound the clip duration. Zero means
	// [MinClipSeconds] and [MaxClipSeconds] respectively.
	MinSeconds float64
	MaxSeconds float64
}

// Validate checks buf and reports every violated constraint. A header that
// cannot be parsed short-circuits: the outcome carries the parse failure as
// its single error, since the remaining constraints are meaningless without
// format metadata.
func (v *Validator) Validate(buf []byte) ValidationOutcome {
	wantRate := v.SampleRate
	if wantRate == 0 {
		wantRate = TargetSampleRate
	}
	wantChannels := v.Channels
	if wantChannels == 0 {
		wantChannels = 1
	}
	minSec := v.MinSeconds
	if minSec == 0 {
		minSec = MinClipSeconds
	}
	maxSec := v.MaxSeconds
	if maxSec == 0 {
		maxSec = MaxClipSeconds
	}

	meta, err := ParseHeader(buf)
	if err != nil {
		return ValidationOutcome{Errors: []string{err.Error()}}
	}

	var errs []string
	if meta.SampleRate != wantRate {
		errs = append(errs, fmt.Sprintf("Sample rate must be %dkHz (got %dHz)", wantRate/1000, meta.SampleRate))
	}
	if meta.Channels != wantChannels {
		errs = append(errs, fmt.Sprintf("Audio must have %d channel(s) (got %d)", wantChannels, meta.Channels))
	}
	if meta.Depth != Depth16 {
		errs = append(errs, fmt.Sprintf("Bit depth must be 16-bit (got %d-bit)", meta.Depth.Bits()))
	}
	if meta.DurationSeconds < minSec {
		errs = append(errs, fmt.Sprintf("Clip must be at least %.1fs (got %.2fs)", minSec, meta.DurationSeconds))
	}
	if meta.DurationSeconds > maxSec {
		errs = append(errs, fmt.Sprintf("Clip must be at most %.0fs (got %.2fs)", maxSec, meta.DurationSeconds))
	}

	return ValidationOutcome{Valid: len(errs) == 0, Errors: errs}
}
