// Package home is the landing screen: bank summary plus the main menu.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/history"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/builds"
	"github.com/abhisek/quizdeck/internal/screens/options"
	"github.com/abhisek/quizdeck/internal/screens/picker"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	sess     *session.Session
	journal  *history.Store
	bankPath string
	menu     components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over the loaded bank.
func New(sess *session.Session, journal *history.Store, bankPath string) *HomeScreen {
	items := []components.MenuItem{
		{Label: "SELECT QUESTIONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: picker.New(sess)}
			}
		}},
		{Label: "BUILD DECK", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: options.New(sess, journal)}
			}
		}},
		{Label: "BUILD HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: builds.New(journal)}
			}
		}, Disabled: journal == nil},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		sess:     sess,
		journal:  journal,
		bankPath: bankPath,
		menu:     components.NewMenu(items),
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
	b := h.sess.Bank()

	title := theme.Title.Width(width).Render(b.Title())
	subtitle := theme.Subtitle.Width(width).Render(h.bankPath)

	stats := theme.Card.Render(fmt.Sprintf(
		"%d categories   %d questions   %d selected",
		len(b.Categories), b.QuestionCount(), h.sess.SelectedCount(),
	))

	content := strings.Join([]string{
		title,
		subtitle,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, stats),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()),
	}, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
