// Package history implements the past-interviews screen.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/neutrino09/intervu/internal/router"
	"github.com/neutrino09/intervu/internal/screen"
	"github.com/neutrino09/intervu/internal/store"
	"github.com/neutrino09/intervu/internal/ui/layout"
	"github.com/neutrino09/intervu/internal/ui/theme"
)

type historyLoadedMsg struct {
	Interviews []store.InterviewRecord
	Err        error
}

// HistoryScreen displays past interviews newest first.
type HistoryScreen struct {
	interviewRepo store.InterviewRepo
	interviews    []store.InterviewRecord
	selected      int
	expanded      map[int]bool
	loaded        bool
	errMsg        string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(interviewRepo store.InterviewRepo) *HistoryScreen {
	return &HistoryScreen{
		interviewRepo: interviewRepo,
		expanded:      make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		interviews, err := s.interviewRepo.List(context.Background(), 50)
		return historyLoadedMsg{Interviews: interviews, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Past Interviews"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Feedback"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.interviews = msg.Interviews
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.interviews)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading past interviews...")
	}
	if len(s.interviews) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No interviews yet. Start one from the home screen!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.interviews {
		b.WriteString(s.renderRow(i, rec, width))
		if s.expanded[i] {
			b.WriteString(s.renderFeedback(rec, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderRow(i int, rec store.InterviewRecord, width int) string {
	dateStr := rec.ConductedAt.Format("Jan 02, 2006")
	avg := averageScore(rec.Scores)

	line := fmt.Sprintf("  %s  %-20s  %-10s  %-12s  %d questions  avg %.2f",
		dateStr, rec.Candidate, rec.Topic, rec.ExperienceLevel, len(rec.QuestionIDs), avg)

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		line = "▸" + line[1:]
	}
	return style.Render(line) + "\n"
}

func (s *HistoryScreen) renderFeedback(rec store.InterviewRecord, width int) string {
	body := rec.Feedback
	if body == "" {
		body = "(no feedback recorded)"
	}
	card := theme.Card.Width(min(width-8, 72)).Render(body)
	return lipgloss.NewStyle().PaddingLeft(4).Render(card) + "\n"
}

func averageScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, sc := range scores {
		sum += sc
	}
	return sum / float64(len(scores))
}
