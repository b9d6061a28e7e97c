package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/session"
	"github.com/abhisek/quizforge/internal/ui/components"
	"github.com/abhisek/quizforge/internal/ui/theme"
)

// phase is the UI screen being shown. All quiz state lives in the
// session; the phase only tracks what is rendered.
type phase int

const (
	phaseSetup phase = iota
	phaseGenerating
	phaseAnswering
	phaseScored
)

// setup form fields, in focus order.
const (
	fieldContext = iota
	fieldCount
	fieldDifficulty
	fieldMax
)

// Model is the root Bubble Tea model for the quiz client.
type Model struct {
	client *APIClient
	sess   *session.QuizSession

	phase phase

	// Setup form.
	focus        int
	contextInput components.TextInput
	countInput   components.TextInput
	difficulty   int

	// Active question view.
	current int
	choice  components.MultiChoice

	spin    spinner.Model
	errText string
	result  session.Result

	width  int
	height int
}

// NewModel creates the client model with the setup form pre-filled with
// the same defaults the original form ships with.
func NewModel(client *APIClient) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return Model{
		client:       client,
		sess:         session.New(),
		phase:        phaseSetup,
		contextInput: components.NewTextInput("e.g. Python programming, World War II history", "General Knowledge", false, 200),
		countInput:   components.NewTextInput("1-20", "5", true, 2),
		difficulty:   quizgen.MinDifficulty + 2,
		spin:         s,
	}
}

func (m Model) Init() tea.Cmd {
	return m.contextInput.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.phase == phaseGenerating {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case quizReadyMsg:
		// A successful generation fully replaces session state.
		if err := m.sess.Load(msg.Questions); err != nil {
			m.errText = err.Error()
			m.phase = phaseSetup
			return m, nil
		}
		m.errText = ""
		m.current = 0
		m.choice = components.NewMultiChoice(m.sess.Questions()[0], "")
		m.phase = phaseAnswering
		return m, nil

	case quizFailedMsg:
		// Prior quiz state is left untouched on failure.
		m.errText = msg.Err.Error()
		if m.sess.Phase() == session.PhaseEmpty {
			m.phase = phaseSetup
		} else {
			m.phase = phaseAnswering
			m.syncChoice()
		}
		return m, nil
	}

	switch m.phase {
	case phaseSetup:
		return m.updateSetup(msg)
	case phaseAnswering:
		return m.updateAnswering(msg)
	case phaseScored:
		return m.updateScored(msg)
	}
	return m, nil
}

func (m Model) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateSetupInputs(msg)
	}

	switch kmsg.String() {
	case "q", "esc":
		if m.focus != fieldContext {
			return m, tea.Quit
		}
	case "tab", "shift+tab":
		if kmsg.String() == "tab" {
			m.focus = (m.focus + 1) % fieldMax
		} else {
			m.focus = (m.focus + fieldMax - 1) % fieldMax
		}
		m.contextInput.Blur()
		m.countInput.Blur()
		switch m.focus {
		case fieldContext:
			return m, m.contextInput.Focus()
		case fieldCount:
			return m, m.countInput.Focus()
		}
		return m, nil
	case "left", "h":
		if m.focus == fieldDifficulty && m.difficulty > quizgen.MinDifficulty {
			m.difficulty--
			return m, nil
		}
	case "right", "l":
		if m.focus == fieldDifficulty && m.difficulty < quizgen.MaxDifficulty {
			m.difficulty++
			return m, nil
		}
	case "enter":
		return m.startGeneration()
	}

	return m.updateSetupInputs(msg)
}

func (m Model) updateSetupInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldContext:
		m.contextInput, cmd = m.contextInput.Update(msg)
	case fieldCount:
		m.countInput, cmd = m.countInput.Update(msg)
	}
	return m, cmd
}

func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	count, err := m.countInput.NumericValue()
	if err != nil || count < quizgen.MinQuestions || count > quizgen.MaxQuestions {
		m.errText = fmt.Sprintf("Number of questions must be between %d and %d.", quizgen.MinQuestions, quizgen.MaxQuestions)
		return m, nil
	}

	topic := strings.TrimSpace(m.contextInput.Value())
	if topic == "" {
		topic = "General Knowledge"
	}

	req := quizgen.Request{
		Context:      topic,
		Difficulty:   m.difficulty,
		NumQuestions: count,
	}

	m.errText = ""
	m.phase = phaseGenerating
	return m, tea.Batch(m.spin.Tick, generateCmd(m.client, req))
}

func (m Model) updateAnswering(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.current > 0 {
			m.current--
			m.syncChoice()
		}
		return m, nil
	case "right", "l":
		if m.current < len(m.sess.Questions())-1 {
			m.current++
			m.syncChoice()
		}
		return m, nil
	case "g":
		m.phase = phaseSetup
		m.focus = fieldContext
		return m, m.contextInput.Focus()
	case "s":
		result, err := m.sess.Submit()
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.result = result
		m.current = 0
		m.syncChoice()
		m.phase = phaseScored
		return m, nil
	}

	var picked string
	m.choice, picked = m.choice.Update(msg)
	switch picked {
	case "":
	case "-":
		// Deselect.
		if err := m.sess.Select(m.current, ""); err != nil {
			m.errText = err.Error()
		}
	default:
		if err := m.sess.Select(m.current, picked); err != nil {
			m.errText = err.Error()
		}
	}
	return m, nil
}

func (m Model) updateScored(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.current > 0 {
			m.current--
			m.syncChoice()
		}
	case "right", "l":
		if m.current < len(m.sess.Questions())-1 {
			m.current++
			m.syncChoice()
		}
	case "e":
		if _, err := m.sess.ToggleExplanations(); err != nil {
			m.errText = err.Error()
		}
	case "g":
		m.phase = phaseSetup
		m.focus = fieldContext
		return m, m.contextInput.Focus()
	}
	return m, nil
}

// syncChoice rebuilds the multichoice component for the current question,
// restoring the session's recorded answer.
func (m *Model) syncChoice() {
	q := m.sess.Questions()[m.current]
	m.choice = components.NewMultiChoice(q, m.sess.Answer(m.current))
	m.choice.Scored = m.sess.Phase() == session.PhaseScored
}

// Run starts the quiz client against the given API base URL.
func Run(apiURL string) error {
	p := tea.NewProgram(NewModel(NewAPIClient(apiURL)))
	_, err := p.Run()
	return err
}
