package plan

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"go.dalton.dog/bubbleup"
	"golang.design/x/clipboard"

	"github.com/dharmaretainer/AryaAI/cli/plan/types"
	"github.com/dharmaretainer/AryaAI/internal/session"
	"github.com/dharmaretainer/AryaAI/internal/speech"
)

// clipboardReady initializes the system clipboard once. The clipboard
// package panics when written to uninitialized, so copy stays disabled when
// initialization fails.
var clipboardReady = sync.OnceValue(func() bool {
	return clipboard.Init() == nil
})

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Always update the alert model with every message
	outAlert, alertCmd := m.alert.Update(msg)
	m.alert = outAlert.(bubbleup.AlertModel)
	if alertCmd != nil {
		cmds = append(cmds, alertCmd)
	}

	// Log for non-tick messages only
	defer func() {
		switch msg.(type) {
		case spinner.TickMsg, cursor.BlinkMsg, tea.MouseMsg:
		// Skip logging for spinner ticks
		default:
			log.Info("update completed", "msg_type", fmt.Sprintf("%T", msg), "focus", m.focus)
		}
	}()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalculateLayout()

	case types.ResponseMsg:
		m.loading = false
		m.store.Append(session.SenderAssistant, msg.Text)
		m.viewport.SetContent(m.renderMessages())
		m.viewport.GotoBottom()
		// Every appended assistant message is voiced exactly once.
		cmds = append(cmds, m.speak(msg.Text))
		return m, tea.Batch(cmds...)

	case types.TranscriptMsg:
		if msg.Token != m.captureToken {
			return m, tea.Batch(cmds...) // A newer capture superseded this one.
		}
		m.listeningField = -1
		m.captureToken = ""
		if msg.Field == fieldPrompt {
			m.prompt.SetValue(msg.Text)
		} else {
			m.inputs[msg.Field].SetValue(msg.Text)
		}
		return m, tea.Batch(cmds...)

	case types.CaptureErrorMsg:
		if msg.Token != m.captureToken {
			return m, tea.Batch(cmds...)
		}
		m.listeningField = -1
		m.captureToken = ""
		switch {
		case errors.Is(msg.Err, speech.ErrUnavailable):
			m.notice = "Speech recognition is unavailable on this system."
		case errors.Is(msg.Err, speech.ErrEmptyTranscript):
			m.notice = "Didn't catch that. Please try again."
		default:
			log.Error("voice capture failed", "error", msg.Err)
			m.notice = "Voice capture failed."
		}
		return m, tea.Batch(cmds...)

	case types.ExportResultMsg:
		if msg.Err != nil {
			log.Error("export failed", "error", msg.Err)
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.ErrorKey, "Export failed"))
		} else {
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.InfoKey, "Saved "+msg.Path))
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Route remaining messages to the focused input while idle.
	if !m.loading {
		var cmd tea.Cmd
		if m.focus == fieldPrompt {
			m.prompt, cmd = m.prompt.Update(msg)
		} else {
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes a key press. It reports whether the key was consumed;
// unconsumed keys fall through to the focused input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return tea.Quit, true
	}

	// All other controls are suppressed while a request is in flight.
	if m.loading {
		return nil, true
	}

	switch msg.Type {
	case tea.KeyTab:
		return m.setFocus((m.focus + 1) % fieldCount), true
	case tea.KeyShiftTab:
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount), true
	case tea.KeyCtrlJ:
		return m.submit(), true
	}

	switch msg.String() {
	case "alt+d":
		m.notice = ""
		return m.dictate(), true

	case "alt+s":
		m.speech.StopSpeaking()
		return nil, true

	case "alt+e":
		if m.store.Len() == 0 {
			m.notice = "Nothing to export yet."
			return nil, true
		}
		return m.exportTranscript(), true

	case "alt+g":
		if m.store.Len() > 0 {
			m.viewport.GotoBottom()
		}
		return nil, true

	case "alt+w":
		if !clipboardReady() {
			m.notice = "Clipboard is unavailable on this system."
			return nil, true
		}
		if text, ok := m.lastAssistantText(); ok {
			clipboard.Write(clipboard.FmtText, []byte(text))
			return m.alert.NewAlertCmd(bubbleup.InfoKey, "Copied to clipboard!"), true
		}
		return nil, true

	case "alt+p":
		if m.focus == fieldPrompt {
			if entry, ok := m.history.Previous(m.prompt.Value()); ok {
				m.prompt.SetValue(entry)
				m.historyNavigating = true
			}
			return nil, true
		}

	case "alt+n":
		if m.focus == fieldPrompt {
			if entry, ok := m.history.Next(); ok {
				m.prompt.SetValue(entry)
				m.historyNavigating = true
			}
			return nil, true
		}
	}

	if m.historyNavigating {
		switch msg.Type {
		case tea.KeyRunes, tea.KeyBackspace, tea.KeyDelete:
			m.history.Reset()
			m.historyNavigating = false
		}
	}

	return nil, false
}

// lastAssistantText returns the most recent assistant message, if any.
func (m *Model) lastAssistantText() (string, bool) {
	messages := m.store.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Sender == session.SenderAssistant {
			return messages[i].Text, true
		}
	}
	return "", false
}
