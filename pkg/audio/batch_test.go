package audio_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/solfege-app/solfege/pkg/audio"
)

func TestOptimizeAll_PreservesOrder(t *testing.T) {
	t.Parallel()

	// Three clips with distinct sample rates so the results are
	// distinguishable by their original duration.
	clips := []string{
		base64.StdEncoding.EncodeToString(wav16(16000, 1, repeat16(3000, 1600))),
		base64.StdEncoding.EncodeToString(wav16(32000, 1, repeat16(3000, 6400))),
		base64.StdEncoding.EncodeToString(wav16(16000, 2, repeat16(3000, 6400))),
	}

	var opt audio.Optimizer
	results, err := opt.OptimizeAll(context.Background(), clips, 2)
	if err != nil {
		t.Fatalf("OptimizeAll: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("result count = %d, want 3", len(results))
	}
	for i, res := range results {
		if res.Metadata.SampleRate != 16000 {
			t.Errorf("clip %d: SampleRate = %d, want 16000", i, res.Metadata.SampleRate)
		}
		if res.Metadata.Channels != 1 {
			t.Errorf("clip %d: Channels = %d, want 1", i, res.Metadata.Channels)
		}
	}
}

func TestOptimizeAll_FirstErrorAborts(t *testing.T) {
	t.Parallel()

	clips := []string{
		base64.StdEncoding.EncodeToString(wav16(16000, 1, repeat16(3000, 1600))),
		base64.StdEncoding.EncodeToString([]byte("not a wav container!!")),
	}

	var opt audio.Optimizer
	_, err := opt.OptimizeAll(context.Background(), clips, 0)
	if !errors.Is(err, audio.ErrMalformedContainer) {
		t.Fatalf("OptimizeAll: err = %v, want ErrMalformedContainer", err)
	}
}

func TestOptimizeAll_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	clips := []string{
		base64.StdEncoding.EncodeToString(wav16(16000, 1, repeat16(3000, 1600))),
	}

	var opt audio.Optimizer
	if _, err := opt.OptimizeAll(ctx, clips, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("OptimizeAll on cancelled ctx: err = %v, want context.Canceled", err)
	}
}
