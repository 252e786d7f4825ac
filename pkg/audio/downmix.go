package audio

// ToMono collapses a stereo container to mono by averaging each left/right
// pair. Mono input is returned unchanged (same slice, zero allocation).
// Channel counts outside {1, 2} fail with [ErrUnsupportedChannelLayout].
//
// The average uses floor division (toward negative infinity, via an
// arithmetic shift for 16-bit samples) rather than Go's truncating integer
// division. Cached reference clips were produced with floor semantics, so
// rounding differently would change output bytes.
func ToMono(buf []byte, meta Metadata) ([]byte, error) {
	if meta.Channels == 1 {
		return buf, nil
	}
	if meta.Channels != 2 {
		return nil, errChannels(meta.Channels)
	}

	payload := buf[HeaderSize:]

	switch meta.Depth {
	case Depth8:
		// 8-bit PCM is unsigned; the sum of two bytes never goes negative,
		// so plain integer division already floors.
		frames := len(payload) / 2
		mono := make([]byte, frames)
		for i := range frames {
			mono[i] = byte((int(payload[i*2]) + int(payload[i*2+1])) / 2)
		}
		return wrap(mono, meta.SampleRate, 1, Depth8), nil

	case Depth16:
		frames := len(payload) / 4
		mono := make([]byte, frames*2)
		for i := range frames {
			left := int32(int16(payload[i*4]) | int16(payload[i*4+1])<<8)
			right := int32(int16(payload[i*4+2]) | int16(payload[i*4+3])<<8)
			avg := (left + right) >> 1 // floor, not truncate
			mono[i*2] = byte(avg)
			mono[i*2+1] = byte(avg >> 8)
		}
		return wrap(mono, meta.SampleRate, 1, Depth16), nil
	}

	// Depth is a closed set; unreachable with a Metadata from ParseHeader.
	return nil, errDepth(meta.Depth)
}
