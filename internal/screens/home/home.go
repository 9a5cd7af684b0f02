package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/neutrino09/intervu/internal/coach"
	"github.com/neutrino09/intervu/internal/interview"
	"github.com/neutrino09/intervu/internal/router"
	"github.com/neutrino09/intervu/internal/screen"
	"github.com/neutrino09/intervu/internal/screens/history"
	interviewscreen "github.com/neutrino09/intervu/internal/screens/interview"
	"github.com/neutrino09/intervu/internal/store"
	"github.com/neutrino09/intervu/internal/ui/components"
	"github.com/neutrino09/intervu/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu  components.Menu
	topic string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(engine *interview.Engine, c *coach.Coach, interviewRepo store.InterviewRepo, topic string) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Start Interview", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: interviewscreen.New(engine, c, interviewRepo, topic),
				}
			}
		}},
		{Label: "Past Interviews", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(interviewRepo)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		topic: topic,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("intervu")
	subtitle := theme.Subtitle.Render(fmt.Sprintf("Mock %s interview practice", strings.ToUpper(h.topic[:1])+h.topic[1:]))

	card := theme.Card.Render(h.menu.View())

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", subtitle, "", card)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
