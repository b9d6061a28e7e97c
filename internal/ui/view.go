package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var b strings.Builder
	b.WriteString(theme.Title.Render("QuizForge") + "  " + theme.Subtitle.Render("AI quiz generator") + "\n\n")

	switch m.phase {
	case phaseSetup:
		b.WriteString(m.viewSetup())
	case phaseGenerating:
		b.WriteString(m.viewGenerating())
	case phaseAnswering:
		b.WriteString(m.viewAnswering())
	case phaseScored:
		b.WriteString(m.viewScored())
	}

	if m.errText != "" {
		b.WriteString("\n" + theme.Alert.Render("Error: "+m.errText) + "\n")
	}

	v.SetContent(b.String())
	return v
}

func (m Model) viewSetup() string {
	var b strings.Builder

	b.WriteString(label("Quiz context", m.focus == fieldContext))
	b.WriteString(m.contextInput.View() + "\n\n")

	b.WriteString(label("Number of questions", m.focus == fieldCount))
	b.WriteString(m.countInput.View() + "\n\n")

	b.WriteString(label("Difficulty", m.focus == fieldDifficulty))
	b.WriteString(m.viewDifficulty() + "\n\n")

	b.WriteString(theme.Hint.Render("tab: next field • ←/→: difficulty • enter: generate • ctrl+c: quit"))
	return b.String()
}

func (m Model) viewDifficulty() string {
	var parts []string
	for d := quizgen.MinDifficulty; d <= quizgen.MaxDifficulty; d++ {
		name := quizgen.Tier(d).String()
		if d == m.difficulty {
			parts = append(parts, theme.Body.Bold(true).Foreground(theme.Accent).Render("["+name+"]"))
		} else {
			parts = append(parts, theme.Subtitle.Render(name))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewGenerating() string {
	return m.spin.View() + " Generating questions...\n"
}

func (m Model) viewAnswering() string {
	var b strings.Builder
	total := len(m.sess.Questions())

	answered := 0
	for i := 0; i < total; i++ {
		if m.sess.Answer(i) != "" {
			answered++
		}
	}

	fmt.Fprintf(&b, "%s\n\n", theme.Subtitle.Render(
		fmt.Sprintf("Question %d of %d (%d answered)", m.current+1, total, answered)))
	b.WriteString(theme.Card.Render(m.choice.View()) + "\n\n")
	b.WriteString(theme.Hint.Render("↑/↓: move • enter: select • ←/→: question • s: submit • g: new quiz • q: quit"))
	return b.String()
}

func (m Model) viewScored() string {
	var b strings.Builder

	b.WriteString(theme.Banner.Render(fmt.Sprintf("Your score: %d/%d", m.result.Score, m.result.Total)) + "\n")
	if m.result.Unanswered > 0 {
		b.WriteString(theme.Warn.Render(fmt.Sprintf("You left %d question(s) unanswered.", m.result.Unanswered)) + "\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s\n\n", theme.Subtitle.Render(
		fmt.Sprintf("Question %d of %d", m.current+1, len(m.sess.Questions()))))
	b.WriteString(theme.Card.Render(m.choice.View()) + "\n")

	if m.sess.ExplanationsVisible() {
		b.WriteString("\n" + m.viewExplanation() + "\n")
	}

	b.WriteString("\n" + theme.Hint.Render("←/→: question • e: toggle explanations • g: new quiz • q: quit"))
	return b.String()
}

func (m Model) viewExplanation() string {
	q := m.sess.Questions()[m.current]
	selected := m.sess.Answer(m.current)

	var b strings.Builder
	switch {
	case selected == "":
		b.WriteString(theme.Alert.Render("✗ No answer provided") + "\n")
	case selected == q.Answer:
		b.WriteString(theme.Banner.Render(fmt.Sprintf("✓ Your answer: %s (Correct)", selected)) + "\n")
	default:
		b.WriteString(theme.Alert.Render(fmt.Sprintf("✗ Your answer: %s (Incorrect)", selected)) + "\n")
	}
	fmt.Fprintf(&b, "%s %s\n", theme.Body.Bold(true).Render("Correct answer:"), q.Answer)
	fmt.Fprintf(&b, "%s %s", theme.Body.Bold(true).Render("Explanation:"), theme.Body.Render(q.Explanation))
	return b.String()
}

func label(text string, focused bool) string {
	if focused {
		return theme.Body.Bold(true).Foreground(theme.Primary).Render(text) + "\n"
	}
	return theme.Subtitle.Render(text) + "\n"
}
