package interview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/neutrino09/intervu/internal/interview"
	"github.com/neutrino09/intervu/internal/ui/components"
	"github.com/neutrino09/intervu/internal/ui/theme"
)

func (s *InterviewScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, height, s.errMsg)
	case s.loading != "":
		return renderLoading(width, height, s.loading)
	}

	switch s.session.Phase {
	case interview.PhaseIntro:
		return s.renderIntro(width, height)
	case interview.PhaseAsk:
		return s.renderQuestion(width, height)
	case interview.PhaseAcknowledge:
		return s.renderFeedback(width, height)
	default:
		return s.renderClosing(width, height)
	}
}

func renderError(width, height int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Error).
		Render("Something went wrong:\n\n" + msg)
}

func renderLoading(width, height int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.TextDim).
		Render(msg)
}

func (s *InterviewScreen) renderIntro(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Welcome to your mock interview"))
	b.WriteString("\n\n")

	if s.stage == stageName {
		b.WriteString(theme.Body.Render("First things first. What's your name?"))
		b.WriteString("\n\n")
		b.WriteString(s.nameInput.View())
	} else {
		b.WriteString(theme.Body.Render(fmt.Sprintf("Nice to meet you, %s.", strings.TrimSpace(s.nameInput.Value()))))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("How would you describe your experience with the topic?"))
		b.WriteString("\n\n")
		b.WriteString(s.expInput.View())
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (s *InterviewScreen) renderQuestion(width, height int) string {
	q := s.session.Current
	if q == nil {
		return renderLoading(width, height, "Picking a question...")
	}

	var b strings.Builder

	label := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Question %d of %d", s.session.AnsweredCount()+1, s.session.QuestionCount()))
	level := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  [%s]", q.Level))
	b.WriteString(label + level)
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Bold(true).Render(q.Prompt))
	b.WriteString("\n\n")
	b.WriteString(s.answerArea.View())

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())

	progress := components.NewProgressBar("",
		float64(s.session.AnsweredCount())/float64(max(s.session.QuestionCount(), 1)),
		false, min(width-8, 72)).View()

	content := lipgloss.JoinVertical(lipgloss.Center, card, "", progress)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *InterviewScreen) renderFeedback(width, height int) string {
	var b strings.Builder

	scoreStyle := theme.ScoreHigh
	if s.session.LastScore < 0.5 {
		scoreStyle = theme.ScoreLow
	}
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %.2f", s.session.LastScore)))
	b.WriteString("\n\n")

	if s.ack != "" {
		b.WriteString(theme.Body.Render(s.ack))
		b.WriteString("\n\n")
	}
	if s.tip != "" {
		b.WriteString(theme.Hint.Render("Tip: " + s.tip))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Subtitle.Render("Press Enter for the next question"))

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (s *InterviewScreen) renderClosing(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Interview complete"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Average score: %.2f across %d questions",
		s.session.AverageScore(), s.session.AnsweredCount())))
	b.WriteString("\n\n")

	for i, ex := range s.session.Transcript() {
		b.WriteString(theme.Body.Bold(true).Render(fmt.Sprintf("%d. %s", i+1, ex.Question.Prompt)))
		b.WriteString("\n")
		answer := strings.ReplaceAll(strings.TrimSpace(ex.Answer), "\n", " ")
		if answer == "" {
			answer = "(no answer)"
		}
		b.WriteString(theme.Hint.Render("   " + answer))
		b.WriteString("\n")
		scoreStyle := theme.ScoreHigh
		if ex.Score < 0.5 {
			scoreStyle = theme.ScoreLow
		}
		b.WriteString(scoreStyle.Render(fmt.Sprintf("   %.2f", ex.Score)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.session.Feedback != "" {
		b.WriteString(theme.Body.Render(s.session.Feedback))
		b.WriteString("\n\n")
	}

	if s.saved {
		b.WriteString(components.NewButton("Return home", true, nil).View())
	} else {
		b.WriteString(theme.Subtitle.Render("Saving..."))
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
