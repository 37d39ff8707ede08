// Package speech wraps the platform's speech capabilities behind a single
// boundary, so availability is checked in one place and tests can substitute
// a fake.
package speech

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrUnavailable signals that the platform lacks the capability.
	ErrUnavailable = errors.New("speech is not available on this platform")
	// ErrEmptyTranscript signals that recognition completed without speech.
	ErrEmptyTranscript = errors.New("no speech recognized")
)

// Bridge exposes the two speech operations.
type Bridge interface {
	// ListenOnce records a single utterance and returns its transcript.
	// It runs to its own completion, error, or platform timeout.
	ListenOnce(ctx context.Context) (string, error)
	// Speak cancels any in-flight utterance, then plays text aloud. The
	// audio output channel is shared: only the most recent call is audible.
	Speak(text string) error
	// StopSpeaking cancels in-flight speech output unconditionally.
	// It is an idempotent no-op when nothing is playing.
	StopSpeaking()
}
