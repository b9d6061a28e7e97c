package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/ui/theme"
)

// MultiChoice renders one quiz question with its four options. The chosen
// letter is reported to the session by the parent model; this component
// never derives the answer key from its rendered text.
type MultiChoice struct {
	Question quizgen.Question

	// Cursor is the highlighted option index.
	Cursor int

	// Chosen is the selected letter, "" when unanswered.
	Chosen string

	// Scored switches rendering to the reveal view.
	Scored bool
}

// NewMultiChoice creates a selector for a question, restoring any prior
// selection.
func NewMultiChoice(q quizgen.Question, chosen string) MultiChoice {
	cursor := quizgen.LetterIndex(chosen)
	if cursor < 0 {
		cursor = 0
	}
	return MultiChoice{
		Question: q,
		Cursor:   cursor,
		Chosen:   chosen,
	}
}

// Update handles keyboard navigation and selection. It returns the
// letter newly chosen this update, or "" when the selection is unchanged.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, string) {
	if m.Scored {
		return m, ""
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, ""
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Question.Options)-1 {
			m.Cursor++
		}
	case "enter", " ":
		letter := quizgen.OptionLetter(m.Cursor)
		if letter == m.Chosen {
			// Selecting the same option again deselects it.
			m.Chosen = ""
			return m, "-"
		}
		m.Chosen = letter
		return m, letter
	}

	return m, ""
}

// View renders the question and options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question.Question) + "\n\n"

	correct := m.Question.AnswerIndex()
	chosen := quizgen.LetterIndex(m.Chosen)

	for i, opt := range m.Question.Options {
		prefix := "  "
		if i == m.Cursor && !m.Scored {
			prefix = "▸ "
		}

		marker := " "
		if i == chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, quizgen.OptionLetter(i), opt)

		switch {
		case m.Scored && i == correct:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case m.Scored && i == chosen:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case m.Scored:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
