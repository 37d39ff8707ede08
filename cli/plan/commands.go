package plan

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/dharmaretainer/AryaAI/cli/plan/types"
)

// submit dispatches the submission matching the focused pane. The structured
// form and the free-text prompt are distinct request shapes and are never
// merged into one payload.
func (m *Model) submit() tea.Cmd {
	if m.focus == fieldPrompt {
		return m.submitPrompt()
	}
	return m.submitStructured()
}

// submitStructured validates the form locally and calls the trip endpoint.
// Validation failures never reach the network.
func (m *Model) submitStructured() tea.Cmd {
	request := m.tripRequest()
	if err := request.Validate(); err != nil {
		m.formError = err.Error()
		return nil
	}
	m.formError = ""
	m.loading = true

	ctx := m.ctx
	client := m.client
	return func() tea.Msg {
		response, err := client.PlanTrip(ctx, request)
		if err != nil {
			log.Error("trip request failed", "error", err)
			return types.ResponseMsg{Text: connectionErrorText}
		}
		return types.ResponseMsg{Text: response}
	}
}

// submitPrompt sends the free-text prompt as its own request shape.
func (m *Model) submitPrompt() tea.Cmd {
	prompt := m.prompt.Value()
	if strings.TrimSpace(prompt) == "" {
		m.formError = "Please speak your travel request first."
		return nil
	}
	m.formError = ""
	m.loading = true
	m.history.Add(prompt)
	m.historyNavigating = false

	ctx := m.ctx
	client := m.client
	return func() tea.Msg {
		response, err := client.Prompt(ctx, prompt)
		if err != nil {
			log.Error("prompt request failed", "error", err)
			return types.ResponseMsg{Text: connectionErrorText}
		}
		return types.ResponseMsg{Text: response}
	}
}

// dictate starts a voice capture for the focused field. Each capture gets a
// fresh token; starting a new capture invalidates results from any capture
// still in flight.
func (m *Model) dictate() tea.Cmd {
	field := m.focus
	token := uuid.New().String()
	m.captureToken = token
	m.listeningField = field

	ctx := m.ctx
	bridge := m.speech
	return func() tea.Msg {
		text, err := bridge.ListenOnce(ctx)
		if err != nil {
			return types.CaptureErrorMsg{Token: token, Field: field, Err: err}
		}
		return types.TranscriptMsg{Token: token, Field: field, Text: text}
	}
}

// speak voices an assistant reply, cancelling any playback in progress.
func (m *Model) speak(text string) tea.Cmd {
	bridge := m.speech
	return func() tea.Msg {
		if err := bridge.Speak(text); err != nil {
			log.Error("speech synthesis failed", "error", err)
		}
		return nil
	}
}

// exportTranscript renders the session into the travel plan document.
func (m *Model) exportTranscript() tea.Cmd {
	messages := m.store.Messages()
	documentExporter := m.exporter
	return func() tea.Msg {
		path, err := documentExporter.Export(messages)
		return types.ExportResultMsg{Path: path, Err: err}
	}
}
