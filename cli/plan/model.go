package plan

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"

	"github.com/dharmaretainer/AryaAI/cli/plan/styles"
	"github.com/dharmaretainer/AryaAI/internal/api"
	"github.com/dharmaretainer/AryaAI/internal/debug"
	"github.com/dharmaretainer/AryaAI/internal/history"
	"github.com/dharmaretainer/AryaAI/internal/markdown"
	"github.com/dharmaretainer/AryaAI/internal/session"
	"github.com/dharmaretainer/AryaAI/internal/speech"
)

var log = debug.GetLogger()

// connectionErrorText is appended as an assistant message whenever the
// backend call fails, regardless of the submission path.
const connectionErrorText = "Error: Could not connect to server."

// Form field indices. The prompt is a separate submission shape, never
// merged with the structured fields.
const (
	fieldDestination = iota
	fieldDays
	fieldBudget
	fieldPreferences
	fieldPrompt
	fieldCount
)

var fieldLabels = [...]string{"Destination", "Days", "Budget", "Preferences"}

// backend is the slice of the API client the planner needs.
type backend interface {
	PlanTrip(ctx context.Context, request *api.TripRequest) (string, error)
	Prompt(ctx context.Context, prompt string) (string, error)
}

// exporter is the slice of the document exporter the planner needs.
type exporter interface {
	Export(messages []session.Message) (string, error)
}

// Model represents the Bubble Tea model for the planner view: the request
// form on the left, the session transcript on the right.
type Model struct {
	// Core dependencies
	ctx      context.Context
	client   backend
	store    *session.Store
	speech   speech.Bridge
	exporter exporter

	// Form state
	inputs    []textinput.Model
	prompt    textarea.Model
	focus     int
	formError string

	// Dictation state. A new capture supersedes the active one; completions
	// carrying a stale token are dropped.
	listeningField int
	captureToken   string

	// In-flight guard: while true every input, submit key, and dictation
	// control is suppressed.
	loading bool

	// UI components
	viewport viewport.Model
	spinner  spinner.Model
	renderer *markdown.Renderer
	alert    bubbleup.AlertModel

	// UI state
	width    int
	height   int
	ready    bool
	notice   string
	quitting bool

	// Prompt input history
	history           *history.History
	historyNavigating bool
}

// New creates a new planner model.
func New(
	ctx context.Context,
	client backend,
	store *session.Store,
	bridge speech.Bridge,
	documentExporter exporter,
) (*Model, error) {
	inputs := make([]textinput.Model, len(fieldLabels))
	for i, label := range fieldLabels {
		input := textinput.New()
		input.Placeholder = label
		input.CharLimit = 0
		input.Width = styles.InputWidth
		input.Prompt = ""
		inputs[i] = input
	}
	inputs[fieldDestination].Focus()

	prompt := textarea.New()
	prompt.Placeholder = "Your spoken request will appear here..."
	prompt.SetWidth(styles.InputWidth)
	prompt.SetHeight(styles.PromptHeight)
	prompt.ShowLineNumbers = false
	prompt.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	renderer, err := markdown.NewRenderer(styles.FormWidth)
	if err != nil {
		return nil, err
	}

	alert := bubbleup.NewAlertModel(25, true, 1)

	return &Model{
		ctx:            ctx,
		client:         client,
		store:          store,
		speech:         bridge,
		exporter:       documentExporter,
		inputs:         inputs,
		prompt:         prompt,
		spinner:        sp,
		renderer:       renderer,
		alert:          *alert,
		history:        history.NewHistory(),
		listeningField: -1,
	}, nil
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.alert.Init(),
	)
}

// tripRequest assembles the structured submission from the form fields.
func (m *Model) tripRequest() *api.TripRequest {
	return &api.TripRequest{
		Destination: m.inputs[fieldDestination].Value(),
		Days:        m.inputs[fieldDays].Value(),
		Budget:      m.inputs[fieldBudget].Value(),
		Preferences: m.inputs[fieldPreferences].Value(),
	}
}

// setFocus moves keyboard focus to the given field.
func (m *Model) setFocus(field int) tea.Cmd {
	m.focus = field
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.prompt.Blur()
	if field == fieldPrompt {
		return m.prompt.Focus()
	}
	return m.inputs[field].Focus()
}
