package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorePreservesOrder(t *testing.T) {
	store := NewStore()
	store.Append(SenderAssistant, "first")
	store.Append(SenderAssistant, "second")
	store.Append(SenderUser, "third")

	messages := store.Messages()
	require.Len(t, messages, 3)
	require.Equal(t, "first", messages[0].Text)
	require.Equal(t, "second", messages[1].Text)
	require.Equal(t, SenderUser, messages[2].Sender)
}

func TestStoreDoesNotDeduplicate(t *testing.T) {
	store := NewStore()
	store.Append(SenderAssistant, "same")
	store.Append(SenderAssistant, "same")
	require.Equal(t, 2, store.Len())
}

func TestMessagesReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Append(SenderAssistant, "original")

	messages := store.Messages()
	messages[0].Text = "mutated"
	require.Equal(t, "original", store.Messages()[0].Text)
}
