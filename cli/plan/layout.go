package plan

import (
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/dharmaretainer/AryaAI/cli/plan/styles"
)

// recalculateLayout adjusts the viewport to the space left of the form pane.
func (m *Model) recalculateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	formWidth := styles.FormStyle.GetWidth() + styles.FormStyle.GetHorizontalFrameSize()
	viewportWidth := m.width - formWidth
	if viewportWidth < 1 {
		viewportWidth = 1
	}

	viewportHeight := m.height - styles.HeaderHeight - styles.FooterHeight
	if viewportHeight < styles.MinViewportHeight {
		viewportHeight = styles.MinViewportHeight
	}

	if err := m.renderer.SetWidth(viewportWidth - styles.MessageHorizontalFrameSize()); err != nil {
		log.Error("resizing markdown renderer failed", "error", err)
	}

	if !m.ready {
		m.viewport = viewport.New(viewportWidth, viewportHeight)
		m.ready = true
		m.viewport.SetContent(m.renderMessages())
		m.viewport.GotoBottom()
	} else {
		m.viewport.Width = viewportWidth
		m.viewport.Height = viewportHeight
		m.viewport.SetContent(m.renderMessages())
	}
}
