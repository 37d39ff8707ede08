// Package session holds the in-memory transcript of the active session.
// The transcript is append-only and lives exactly as long as the process.
package session

import "sync"

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is a single transcript entry. Text may contain newlines and is
// never mutated after creation.
type Message struct {
	Sender Sender
	Text   string
}

// Store is the ordered transcript of exchanged messages. Position in the
// sequence is the display and playback order; messages are never reordered
// or deduplicated.
type Store struct {
	mu       sync.Mutex
	messages []Message
}

// NewStore returns an empty transcript store.
func NewStore() *Store {
	return &Store{}
}

// Append adds a message to the end of the transcript.
func (s *Store) Append(sender Sender, text string) Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	message := Message{Sender: sender, Text: text}
	s.messages = append(s.messages, message)
	return message
}

// Messages returns a copy of the transcript in order.
func (s *Store) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]Message, len(s.messages))
	copy(messages, s.messages)
	return messages
}

// Len returns the number of messages in the transcript.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}
