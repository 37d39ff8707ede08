package plan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dharmaretainer/AryaAI/cli/plan/styles"
	"github.com/dharmaretainer/AryaAI/internal/session"
)

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n")

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderForm(),
		styles.ViewportStyle.Render(m.viewport.View()),
	)
	b.WriteString(body)
	b.WriteString("\n")

	b.WriteString(styles.HelpStyle.Render(
		"tab: next field │ ctrl+j: submit │ alt+d: speak │ alt+s: stop voice │ alt+e: export │ alt+w: copy │ ctrl+c: quit"))

	// Alerts only show up through the overlay.
	return m.alert.Render(b.String())
}

func (m *Model) renderTitle() string {
	return styles.TitleStyle.Width(m.width).Render(" ✈️ AryaAI │ Your AI Travel Planner ")
}

// renderForm draws the request pane: the four structured fields, the spoken
// prompt, and any inline status lines.
func (m *Model) renderForm() string {
	var b strings.Builder

	for i, label := range fieldLabels {
		b.WriteString(styles.FieldLabelStyle.Render(label))
		if m.listeningField == i {
			b.WriteString(styles.ListeningStyle.Render("  🎤 listening..."))
		}
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString(styles.FieldLabelStyle.Render("Or just ask"))
	if m.listeningField == fieldPrompt {
		b.WriteString(styles.ListeningStyle.Render("  🎤 listening..."))
	}
	b.WriteString("\n")
	b.WriteString(m.prompt.View())

	if m.loading {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s Generating...", m.spinner.View()))
	}
	if m.formError != "" {
		b.WriteString("\n")
		b.WriteString(styles.FormErrorStyle.Render(m.formError))
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(styles.NoticeStyle.Render(m.notice))
	}

	return styles.FormStyle.Render(b.String())
}

// renderMessages draws the transcript for the viewport. Assistant replies are
// rendered as markdown and cached per message index.
func (m *Model) renderMessages() string {
	messages := m.store.Messages()
	if len(messages) == 0 {
		return styles.HelpStyle.Render("Fill in the form or speak a request to start planning.")
	}

	var b strings.Builder
	for i, message := range messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if message.Sender == session.SenderUser {
			b.WriteString(styles.UserMessageStyle.Render(message.Text))
		} else {
			b.WriteString(styles.AIMessageStyle.Render(m.renderer.Render(message.Text, i)))
		}
	}
	return b.String()
}
