package speech

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dharmaretainer/AryaAI/internal/configuration"
)

func TestListenOnceReturnsTranscript(t *testing.T) {
	bridge := NewCommandBridge(&configuration.SpeechConfig{
		Language:           "en-US",
		RecognizerCommand:  []string{"echo", "plan a trip to goa"},
		SynthesizerCommand: []string{"true"},
	})

	transcript, err := bridge.ListenOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, "plan a trip to goa", transcript)
}

func TestListenOnceUnavailableWithoutRecognizer(t *testing.T) {
	bridge := NewCommandBridge(&configuration.SpeechConfig{Language: "en-US"})

	_, err := bridge.ListenOnce(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestListenOnceEmptyTranscript(t *testing.T) {
	bridge := NewCommandBridge(&configuration.SpeechConfig{
		RecognizerCommand: []string{"echo", ""},
	})

	_, err := bridge.ListenOnce(context.Background())
	require.ErrorIs(t, err, ErrEmptyTranscript)
}

func TestLanguagePlaceholderExpansion(t *testing.T) {
	bridge := NewCommandBridge(&configuration.SpeechConfig{
		Language:          "en-US",
		RecognizerCommand: []string{"echo", "{lang}"},
	})

	transcript, err := bridge.ListenOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, "en-US", transcript)
}

func TestSpeakCancelsPriorUtterance(t *testing.T) {
	bridge := NewCommandBridge(&configuration.SpeechConfig{
		SynthesizerCommand: []string{"sh", "-c", "sleep 10"},
	})

	require.NoError(t, bridge.Speak("first"))
	require.NoError(t, bridge.Speak("second"))

	bridge.mu.Lock()
	playing := bridge.playing
	bridge.mu.Unlock()
	require.NotNil(t, playing)

	bridge.StopSpeaking()
	// StopSpeaking is idempotent.
	bridge.StopSpeaking()

	require.Eventually(t, func() bool {
		bridge.mu.Lock()
		defer bridge.mu.Unlock()
		return bridge.playing == nil
	}, time.Second, 10*time.Millisecond)
}

func TestSpeakUnavailableWithoutSynthesizer(t *testing.T) {
	bridge := NewCommandBridge(nil)
	require.ErrorIs(t, bridge.Speak("hello"), ErrUnavailable)
}
