package audio

import "math"

// Resample converts a container to targetRate using two-tap linear
// interpolation. When the container is already at targetRate the input is
// returned unchanged. Only 16-bit PCM is implemented; 8-bit input fails with
// [ErrUnsupportedBitDepth] rather than silently passing through un-resampled
// audio, so a caller can never mistake the wrong rate for success.
//
// Interpolation is not band-limited. Aliasing on downsampling is an accepted
// limitation of the two-tap filter, not a defect.
func Resample(buf []byte, meta Metadata, targetRate int) ([]byte, error) {
	if meta.SampleRate == targetRate {
		return buf, nil
	}
	if meta.Depth != Depth16 {
		return nil, errDepth(meta.Depth)
	}

	payload := buf[HeaderSize:]
	inSamples := len(payload) / 2
	if inSamples < 2 {
		return buf, nil
	}

	outSamples := inSamples * targetRate / meta.SampleRate
	if outSamples == 0 {
		return buf, nil
	}

	// ratio deliberately uses the sample counts, not the rates: the output
	// count was floored above, and indexing by inSamples/outSamples keeps
	// the last output sample anchored to the last input sample.
	ratio := float64(inSamples) / float64(outSamples)

	out := make([]byte, outSamples*2)
	for i := range outSamples {
		srcIndex := float64(i) * ratio
		floorIdx := int(srcIndex)
		if floorIdx > inSamples-1 {
			floorIdx = inSamples - 1
		}
		ceilIdx := floorIdx + 1
		if ceilIdx > inSamples-1 {
			ceilIdx = inSamples - 1
		}
		frac := srcIndex - float64(floorIdx)

		s0 := float64(int16(payload[floorIdx*2]) | int16(payload[floorIdx*2+1])<<8)
		s1 := float64(int16(payload[ceilIdx*2]) | int16(payload[ceilIdx*2+1])<<8)
		sample := int16(math.Floor(s0 + (s1-s0)*frac))

		out[i*2] = byte(sample)
		out[i*2+1] = byte(sample >> 8)
	}

	return wrap(out, targetRate, meta.Channels, Depth16), nil
}
