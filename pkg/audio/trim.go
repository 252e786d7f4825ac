package audio

// DefaultSilenceThreshold is the absolute 16-bit sample amplitude below which
// a sample counts as silence for [TrimSilence].
const DefaultSilenceThreshold = 500

// preRollSamples is how many samples of lead-in and tail are preserved around
// the detected loud region so the trim never clips a soft onset.
const preRollSamples = 100

// TrimSilence removes low-amplitude regions from the start and end of a
// 16-bit PCM container. Other bit depths are an explicit pass-through: the
// input is returned unchanged rather than guessed at.
//
// The trim is conservative: a pre-roll of 100 samples is kept on both sides,
// and a clip that is entirely silent (or too short for a sensible range)
// comes back unchanged. Trimming never produces an empty or inverted range.
func TrimSilence(buf []byte, meta Metadata, threshold int) []byte {
	if meta.Depth != Depth16 {
		// Unsupported depth: pass through by policy.
		return buf
	}
	if threshold <= 0 {
		threshold = DefaultSilenceThreshold
	}

	payload := buf[HeaderSize:]
	n := len(payload) / 2
	if n == 0 {
		return buf
	}

	sampleAt := func(i int) int {
		s := int(int16(payload[i*2]) | int16(payload[i*2+1])<<8)
		if s < 0 {
			s = -s
		}
		return s
	}

	firstLoud := -1
	for i := range n {
		if sampleAt(i) > threshold {
			firstLoud = i
			break
		}
	}
	if firstLoud == -1 {
		// Silence only.
		return buf
	}

	lastLoud := firstLoud
	for i := n - 1; i >= 0; i-- {
		if sampleAt(i) > threshold {
			lastLoud = i
			break
		}
	}

	start := firstLoud - preRollSamples
	if start < 0 {
		start = 0
	}
	end := lastLoud + preRollSamples
	if end > n-1 {
		end = n - 1
	}
	if start >= end {
		return buf
	}

	trimmed := make([]byte, (end-start)*2)
	copy(trimmed, payload[start*2:end*2])
	return wrap(trimmed, meta.SampleRate, meta.Channels, meta.Depth)
}
