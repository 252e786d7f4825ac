// Package audio implements the recording-normalization pipeline that prepares
// a spoken-word WAV clip for the external pronunciation-assessment service.
//
// The pipeline operates on uncompressed linear PCM in a RIFF/WAVE container
// and is composed of small pure stages: channel downmix, linear-interpolation
// resampling, and silence trimming, orchestrated by [Optimizer] and checked by
// [Validator]. Every stage either returns its input unchanged or allocates a
// fresh output buffer, so the package is safe to call from any number of
// goroutines without locking.
package audio

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pipeline. Wrap with fmt.Errorf("audio: ...: %w")
// when adding detail; callers match with errors.Is.
var (
	// ErrMalformedContainer indicates a buffer that is too short or is
	// missing the RIFF/WAVE magic bytes. Fatal for the current buffer.
	ErrMalformedContainer = errors.New("malformed WAV container")

	// ErrUnsupportedChannelLayout indicates a channel count outside {1, 2}.
	ErrUnsupportedChannelLayout = errors.New("unsupported channel layout")

	// ErrUnsupportedBitDepth indicates a PCM bit depth a stage does not
	// implement. Only 8-bit and 16-bit linear PCM are handled.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)

func errChannels(channels int) error {
	return fmt.Errorf("audio: %d channels: %w", channels, ErrUnsupportedChannelLayout)
}

func errDepth(d Depth) error {
	return fmt.Errorf("audio: %d-bit PCM: %w", d.Bits(), ErrUnsupportedBitDepth)
}

// Depth is the PCM sample bit depth. It is a closed set: only the two depths
// the pipeline implements exist as values, so stage code can switch over it
// exhaustively instead of branching on raw bytes-per-sample counts.
type Depth uint16

const (
	// Depth8 is 8-bit unsigned linear PCM.
	Depth8 Depth = 8

	// Depth16 is 16-bit signed little-endian linear PCM.
	Depth16 Depth = 16
)

// DepthFromBits converts a raw bits-per-sample header field into a [Depth].
// Returns [ErrUnsupportedBitDepth] for anything other than 8 or 16.
func DepthFromBits(bits uint16) (Depth, error) {
	switch bits {
	case 8:
		return Depth8, nil
	case 16:
		return Depth16, nil
	}
	return 0, fmt.Errorf("audio: %d bits per sample: %w", bits, ErrUnsupportedBitDepth)
}

// Bits returns the depth as a bits-per-sample count.
func (d Depth) Bits() uint16 { return uint16(d) }

// Bytes returns the number of bytes occupied by one sample.
func (d Depth) Bytes() int { return int(d) / 8 }

// Metadata describes a parsed WAV container. It is derived from the header
// and payload length, never persisted, and must be recomputed after every
// structural transformation since duration and size change.
type Metadata struct {
	// SampleRate in Hz.
	SampleRate int

	// Channels is the interleaved channel count.
	Channels int

	// Depth is the PCM sample bit depth.
	Depth Depth

	// DurationSeconds is derived: dataBytes / (rate * channels * bytesPerSample).
	DurationSeconds float64

	// SizeBytes is the total container size including the 44-byte header.
	SizeBytes int
}

// OptimizationResult is the output of [Optimizer.Optimize]: the normalized
// container, its freshly parsed metadata, and how much smaller it became.
type OptimizationResult struct {
	// Buffer is the optimized WAV container, ready to hand byte-for-byte to
	// the assessment API.
	Buffer []byte

	// Metadata is parsed from Buffer after the final stage.
	Metadata Metadata

	// CompressionRatioPercent is (1 - finalSize/originalSize) * 100, relative
	// to the decoded input size.
	CompressionRatioPercent float64
}

// ValidationOutcome reports every constraint a buffer violates. It is a plain
// diagnostic value, not an error channel: callers surface all violations in a
// single response instead of discovering them one retry at a time.
type ValidationOutcome struct {
	// Valid is true when Errors is empty.
	Valid bool

	// Errors holds one human-readable message per violated constraint.
	Errors []string
}
