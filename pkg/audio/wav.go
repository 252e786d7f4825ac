package audio

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the size of the canonical RIFF/WAVE/fmt/data header this
// package reads and writes. Containers with extra chunks before "data" are
// out of scope; the recorder upstream always produces the canonical layout.
const HeaderSize = 44

// Fixed byte offsets of the header fields we read. Direct indexed access into
// the flat buffer is the natural representation for a binary codec; there is
// no object graph to build here.
const (
	offChannels   = 22
	offSampleRate = 24
	offBitDepth   = 34
)

// ParseHeader reads the format metadata out of a WAV container. The buffer
// must be at least [HeaderSize] bytes and carry the RIFF/WAVE magic;
// otherwise [ErrMalformedContainer] is returned. Bit depths outside 8/16
// yield [ErrUnsupportedBitDepth].
func ParseHeader(buf []byte) (Metadata, error) {
	if len(buf) < HeaderSize {
		return Metadata{}, fmt.Errorf("audio: container is %d bytes, need at least %d: %w",
			len(buf), HeaderSize, ErrMalformedContainer)
	}
	if string(buf[0:4]) != "RIFF" {
		return Metadata{}, fmt.Errorf("audio: missing RIFF chunk descriptor: %w", ErrMalformedContainer)
	}
	if string(buf[8:12]) != "WAVE" {
		return Metadata{}, fmt.Errorf("audio: missing WAVE format identifier: %w", ErrMalformedContainer)
	}

	channels := int(binary.LittleEndian.Uint16(buf[offChannels:]))
	sampleRate := int(binary.LittleEndian.Uint32(buf[offSampleRate:]))
	depth, err := DepthFromBits(binary.LittleEndian.Uint16(buf[offBitDepth:]))
	if err != nil {
		return Metadata{}, err
	}

	dataBytes := len(buf) - HeaderSize
	var duration float64
	if sampleRate > 0 && channels > 0 {
		duration = float64(dataBytes) / float64(sampleRate*channels*depth.Bytes())
	}

	return Metadata{
		SampleRate:      sampleRate,
		Channels:        channels,
		Depth:           depth,
		DurationSeconds: duration,
		SizeBytes:       len(buf),
	}, nil
}

// WriteHeader emits a canonical 44-byte RIFF/WAVE header for a PCM payload of
// dataSize bytes. ChunkSize, ByteRate and BlockAlign follow directly from the
// format fields; AudioFormat is always 1 (linear PCM).
func WriteHeader(dataSize, sampleRate, channels int, depth Depth) []byte {
	h := make([]byte, HeaderSize)

	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:], uint32(36+dataSize))
	copy(h[8:12], "WAVE")

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:], 16) // Subchunk1Size for PCM
	binary.LittleEndian.PutUint16(h[20:], 1)  // AudioFormat: PCM
	binary.LittleEndian.PutUint16(h[offChannels:], uint16(channels))
	binary.LittleEndian.PutUint32(h[offSampleRate:], uint32(sampleRate))
	byteRate := sampleRate * channels * depth.Bytes()
	binary.LittleEndian.PutUint32(h[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(h[32:], uint16(channels*depth.Bytes()))
	binary.LittleEndian.PutUint16(h[offBitDepth:], depth.Bits())

	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:], uint32(dataSize))

	return h
}

// wrap prepends a fresh canonical header to payload. Used by every stage that
// produces a structurally different buffer.
func wrap(payload []byte, sampleRate, channels int, depth Depth) []byte {
	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, WriteHeader(len(payload), sampleRate, channels, depth)...)
	return append(out, payload...)
}
