package audio

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
)

// TargetSampleRate is the sample rate the assessment API requires.
const TargetSampleRate = 16000

// Optimizer runs the normalization pipeline in a fixed order:
// downmix to mono, resample to the target rate, trim silence. The order is
// load-bearing — downmixing first halves the resample workload and keeps the
// channel average bit-exact before any interpolation touches the samples.
//
// The zero value is ready to use with the API defaults. An Optimizer is
// stateless and safe for concurrent use.
type Optimizer struct {
	// TargetRate is the output sample rate in Hz. Zero means
	// [TargetSampleRate].
	TargetRate int

	// SilenceThreshold is the trim amplitude cutoff. Zero means
	// [DefaultSilenceThreshold].
	SilenceThreshold int
}

// Optimize decodes a base64-encoded WAV clip and normalizes it. The input
// may carry a "data:audio/...;base64," URI prefix, which is stripped before
// decoding.
func (o *Optimizer) Optimize(encoded string) (OptimizationResult, error) {
	if strings.HasPrefix(encoded, "data:") {
		if _, rest, ok := strings.Cut(encoded, ","); ok {
			encoded = rest
		}
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return OptimizationResult{}, fmt.Errorf("audio: decode base64 clip: %w", err)
	}
	return o.OptimizeBuffer(raw)
}

// OptimizeBuffer normalizes a raw WAV container. Each stage re-parses the
// metadata from its own output before the next stage runs; metadata is never
// carried over stale.
func (o *Optimizer) OptimizeBuffer(raw []byte) (OptimizationResult, error) {
	targetRate := o.TargetRate
	if targetRate == 0 {
		targetRate = TargetSampleRate
	}

	originalSize := len(raw)

	meta, err := ParseHeader(raw)
	if err != nil {
		return OptimizationResult{}, err
	}

	buf := raw
	if meta.Channels > 1 {
		if buf, err = ToMono(buf, meta); err != nil {
			return OptimizationResult{}, err
		}
		if meta, err = ParseHeader(buf); err != nil {
			return OptimizationResult{}, err
		}
	}

	if meta.SampleRate != targetRate {
		if buf, err = Resample(buf, meta, targetRate); err != nil {
			return OptimizationResult{}, err
		}
		if meta, err = ParseHeader(buf); err != nil {
			return OptimizationResult{}, err
		}
	}

	buf = TrimSilence(buf, meta, o.SilenceThreshold)
	if meta, err = ParseHeader(buf); err != nil {
		return OptimizationResult{}, err
	}

	ratio := 0.0
	if originalSize > 0 {
		ratio = (1 - float64(meta.SizeBytes)/float64(originalSize)) * 100
	}

	slog.Debug("audio clip optimized",
		"original_bytes", originalSize,
		"final_bytes", meta.SizeBytes,
		"sample_rate", meta.SampleRate,
		"duration_s", meta.DurationSeconds,
		"compression_pct", ratio,
	)

	return OptimizationResult{
		Buffer:                  buf,
		Metadata:                meta,
		CompressionRatioPercent: ratio,
	}, nil
}
