package llm

import (
	"context"
	"errors"
)

// ErrSpeechUnsupported is returned by NewSpeechProvider when the
// configured provider has no TTS capability.
var ErrSpeechUnsupported = errors.New("configured LLM provider does not support speech synthesis")

// SpeechProvider converts text to audio. Only Gemini implements it; the
// read-aloud feature degrades gracefully when it is absent.
type SpeechProvider interface {
	// Synthesize renders text as speech using the named prebuilt voice.
	// An empty voice falls back to the provider default.
	Synthesize(ctx context.Context, text, voice string) (*Audio, error)
}

// Audio is raw synthesized speech.
type Audio struct {
	// PCM is signed 16-bit little-endian mono samples.
	PCM []byte

	// SampleRate in Hz. Gemini TTS emits 24000.
	SampleRate int
}
