package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	// Form pane
	FormWidth       = 42
	FormPaddingLeft = 1
	PromptHeight    = 3
	InputWidth      = 34

	// Viewport
	MinViewportHeight = 1

	// Layout
	HeaderHeight = 2
	FooterHeight = 2
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7C3AED") // Purple
	SecondaryColor = lipgloss.Color("#06B6D4") // Cyan
	AccentColor    = lipgloss.Color("#F59E0B") // Amber
	SuccessColor   = lipgloss.Color("#10B981") // Green
	ErrorColor     = lipgloss.Color("#EF4444") // Red
	MutedColor     = lipgloss.Color("#6B7280") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light gray
	DimTextColor   = lipgloss.Color("#9CA3AF") // Dim gray
	BorderColor    = lipgloss.Color("#4B5563")
)

// Title bar
var (
	TitleStyle = lipgloss.NewStyle().
			Background(PrimaryColor).
			Foreground(TextColor).
			Bold(true)
)

// Form pane
var (
	FormStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			PaddingLeft(FormPaddingLeft).
			Width(FormWidth)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	ListeningStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Italic(true)

	FormErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Italic(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Italic(true)
)

// Messages
var (
	messageStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	UserMessageStyle = lipgloss.NewStyle().
				Inherit(messageStyle).
				BorderForeground(PrimaryColor).
				MarginLeft(6)

	AIMessageStyle = lipgloss.NewStyle().
			Inherit(messageStyle).
			BorderForeground(SecondaryColor).
			MarginRight(6)
)

// Spinner
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)
)

// Help text
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)
)

// Viewport
var (
	ViewportStyle = lipgloss.NewStyle().Margin(0).Padding(0)
)

// MessageHorizontalFrameSize returns the horizontal frame size of AI messages.
func MessageHorizontalFrameSize() int {
	return AIMessageStyle.GetHorizontalFrameSize()
}
