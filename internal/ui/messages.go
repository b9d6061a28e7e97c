package ui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizforge/internal/quizgen"
)

// quizReadyMsg carries a freshly generated question list.
type quizReadyMsg struct {
	Questions []quizgen.Question
}

// quizFailedMsg carries a generation failure. The current quiz, if any,
// stays loaded; only a successful generation replaces state.
type quizFailedMsg struct {
	Err error
}

// generateCmd runs one blocking generation call against the API.
func generateCmd(client *APIClient, req quizgen.Request) tea.Cmd {
	return func() tea.Msg {
		questions, err := client.GenerateQuiz(context.Background(), req)
		if err != nil {
			return quizFailedMsg{Err: err}
		}
		return quizReadyMsg{Questions: questions}
	}
}
