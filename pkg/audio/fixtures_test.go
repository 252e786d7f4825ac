package audio_test

import (
	"github.com/solfege-app/solfege/pkg/audio"
)

// wav16 builds a WAV container around interleaved 16-bit samples.
func wav16(sampleRate, channels int, samples []int16) []byte {
	payload := make([]byte, len(samples)*2)
	for i, s := range samples {
		payload[i*2] = byte(s)
		payload[i*2+1] = byte(s >> 8)
	}
	buf := audio.WriteHeader(len(payload), sampleRate, channels, audio.Depth16)
	return append(buf, payload...)
}

// wav8 builds a WAV container around unsigned 8-bit samples.
func wav8(sampleRate, channels int, samples []byte) []byte {
	buf := audio.WriteHeader(len(samples), sampleRate, channels, audio.Depth8)
	return append(buf, samples...)
}

// samples16 decodes the payload of a 16-bit container back into samples.
func samples16(buf []byte) []int16 {
	payload := buf[audio.HeaderSize:]
	out := make([]int16, len(payload)/2)
	for i := range out {
		out[i] = int16(payload[i*2]) | int16(payload[i*2+1])<<8
	}
	return out
}

// repeat16 returns count copies of value.
func repeat16(value int16, count int) []int16 {
	out := make([]int16, count)
	for i := range out {
		out[i] = value
	}
	return out
}
