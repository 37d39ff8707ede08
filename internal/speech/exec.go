package speech

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/dharmaretainer/AryaAI/internal/configuration"
)

// languagePlaceholder in a configured command is replaced with the language tag.
const languagePlaceholder = "{lang}"

// CommandBridge drives the platform's speech tooling through external
// commands: the recognizer prints one utterance's transcript to stdout, the
// synthesizer plays its final argument aloud.
type CommandBridge struct {
	language    string
	recognizer  []string
	synthesizer []string

	// Guards the single shared audio output channel.
	mu      sync.Mutex
	playing *exec.Cmd
}

// NewCommandBridge builds a bridge from configuration.
func NewCommandBridge(config *configuration.SpeechConfig) *CommandBridge {
	bridge := &CommandBridge{}
	if config != nil {
		bridge.language = config.Language
		bridge.recognizer = config.RecognizerCommand
		bridge.synthesizer = config.SynthesizerCommand
	}
	return bridge
}

// ListenOnce records a single utterance and returns its transcript.
func (b *CommandBridge) ListenOnce(ctx context.Context) (string, error) {
	args := b.expand(b.recognizer)
	if len(args) == 0 {
		return "", ErrUnavailable
	}
	if _, err := exec.LookPath(args[0]); err != nil {
		return "", ErrUnavailable
	}

	output, err := exec.CommandContext(ctx, args[0], args[1:]...).Output()
	if err != nil {
		return "", errors.Wrap(err, "running recognizer")
	}
	transcript := strings.TrimSpace(string(output))
	if transcript == "" {
		return "", ErrEmptyTranscript
	}
	return transcript, nil
}

// Speak cancels any in-flight utterance, then plays text aloud.
func (b *CommandBridge) Speak(text string) error {
	args := b.expand(b.synthesizer)
	if len(args) == 0 {
		return ErrUnavailable
	}
	if _, err := exec.LookPath(args[0]); err != nil {
		return ErrUnavailable
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()

	cmd := exec.Command(args[0], append(args[1:], text)...)
	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "starting synthesizer")
	}
	b.playing = cmd

	// Reap the process; clear the handle only if it is still the active one.
	go func() {
		_ = cmd.Wait()
		b.mu.Lock()
		if b.playing == cmd {
			b.playing = nil
		}
		b.mu.Unlock()
	}()
	return nil
}

// StopSpeaking cancels in-flight speech output unconditionally.
func (b *CommandBridge) StopSpeaking() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()
}

func (b *CommandBridge) stopLocked() {
	if b.playing == nil {
		return
	}
	if b.playing.Process != nil {
		_ = b.playing.Process.Kill()
	}
	b.playing = nil
}

func (b *CommandBridge) expand(command []string) []string {
	if len(command) == 0 {
		return nil
	}
	args := make([]string, len(command))
	for i, arg := range command {
		args[i] = strings.ReplaceAll(arg, languagePlaceholder, b.language)
	}
	return args
}
