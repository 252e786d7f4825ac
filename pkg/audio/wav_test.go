package audio_test

import (
	"errors"
	"testing"

	"github.com/solfege-app/solfege/pkg/audio"
)

func TestParseHeader_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		dataSize   int
		sampleRate int
		channels   int
		depth      audio.Depth
	}{
		{"16k mono 16-bit", 32000, 16000, 1, audio.Depth16},
		{"44.1k stereo 16-bit", 176400, 44100, 2, audio.Depth16},
		{"8k mono 8-bit", 8000, 8000, 1, audio.Depth8},
		{"48k stereo 8-bit", 96000, 48000, 2, audio.Depth8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			buf := audio.WriteHeader(tc.dataSize, tc.sampleRate, tc.channels, tc.depth)
			buf = append(buf, make([]byte, tc.dataSize)...)

			meta, err := audio.ParseHeader(buf)
			if err != nil {
				t.Fatalf("ParseHeader: unexpected error: %v", err)
			}
			if meta.SampleRate != tc.sampleRate {
				t.Errorf("SampleRate = %d, want %d", meta.SampleRate, tc.sampleRate)
			}
			if meta.Channels != tc.channels {
				t.Errorf("Channels = %d, want %d", meta.Channels, tc.channels)
			}
			if meta.Depth != tc.depth {
				t.Errorf("Depth = %d, want %d", meta.Depth, tc.depth)
			}
			if meta.SizeBytes != audio.HeaderSize+tc.dataSize {
				t.Errorf("SizeBytes = %d, want %d", meta.SizeBytes, audio.HeaderSize+tc.dataSize)
			}

			wantDuration := float64(tc.dataSize) / float64(tc.sampleRate*tc.channels*tc.depth.Bytes())
			if diff := meta.DurationSeconds - wantDuration; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("DurationSeconds = %f, want %f", meta.DurationSeconds, wantDuration)
			}
		})
	}
}

func TestParseHeader_TooShort(t *testing.T) {
	t.Parallel()

	_, err := audio.ParseHeader(make([]byte, 43))
	if !errors.Is(err, audio.ErrMalformedContainer) {
		t.Fatalf("ParseHeader(43 bytes): err = %v, want ErrMalformedContainer", err)
	}
}

func TestParseHeader_BadMagic(t *testing.T) {
	t.Parallel()

	buf := audio.WriteHeader(100, 16000, 1, audio.Depth16)
	buf = append(buf, make([]byte, 100)...)

	riffless := append([]byte(nil), buf...)
	copy(riffless[0:4], "RIFX")
	if _, err := audio.ParseHeader(riffless); !errors.Is(err, audio.ErrMalformedContainer) {
		t.Errorf("ParseHeader without RIFF: err = %v, want ErrMalformedContainer", err)
	}

	waveless := append([]byte(nil), buf...)
	copy(waveless[8:12], "AVI ")
	if _, err := audio.ParseHeader(waveless); !errors.Is(err, audio.ErrMalformedContainer) {
		t.Errorf("ParseHeader without WAVE: err = %v, want ErrMalformedContainer", err)
	}
}

func TestParseHeader_UnsupportedDepth(t *testing.T) {
	t.Parallel()

	buf := audio.WriteHeader(100, 16000, 1, audio.Depth16)
	buf[34] = 24 // 24-bit PCM
	buf = append(buf, make([]byte, 100)...)

	if _, err := audio.ParseHeader(buf); !errors.Is(err, audio.ErrUnsupportedBitDepth) {
		t.Fatalf("ParseHeader(24-bit): err = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestWriteHeader_Fields(t *testing.T) {
	t.Parallel()

	h := audio.WriteHeader(1000, 16000, 1, audio.Depth16)

	if got := string(h[12:16]); got != "fmt " {
		t.Errorf("fmt chunk id = %q, want %q", got, "fmt ")
	}
	if got := string(h[36:40]); got != "data" {
		t.Errorf("data chunk id = %q, want %q", got, "data")
	}
	// ChunkSize = 36 + dataSize.
	if got := int(h[4]) | int(h[5])<<8 | int(h[6])<<16 | int(h[7])<<24; got != 1036 {
		t.Errorf("ChunkSize = %d, want 1036", got)
	}
	// AudioFormat = 1 (PCM).
	if got := int(h[20]) | int(h[21])<<8; got != 1 {
		t.Errorf("AudioFormat = %d, want 1", got)
	}
	// ByteRate = rate * channels * bytesPerSample = 32000.
	if got := int(h[28]) | int(h[29])<<8 | int(h[30])<<16 | int(h[31])<<24; got != 32000 {
		t.Errorf("ByteRate = %d, want 32000", got)
	}
	// BlockAlign = channels * bytesPerSample = 2.
	if got := int(h[32]) | int(h[33])<<8; got != 2 {
		t.Errorf("BlockAlign = %d, want 2", got)
	}
}

func TestDepthFromBits(t *testing.T) {
	t.Parallel()

	if d, err := audio.DepthFromBits(8); err != nil || d != audio.Depth8 {
		t.Errorf("DepthFromBits(8) = %v, %v; want Depth8, nil", d, err)
	}
	if d, err := audio.DepthFromBits(16); err != nil || d != audio.Depth16 {
		t.Errorf("DepthFromBits(16) = %v, %v; want Depth16, nil", d, err)
	}
	if _, err := audio.DepthFromBits(32); !errors.Is(err, audio.ErrUnsupportedBitDepth) {
		t.Errorf("DepthFromBits(32): err = %v, want ErrUnsupportedBitDepth", err)
	}
}
