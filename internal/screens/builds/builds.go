// Package builds shows the journal of past deck builds.
package builds

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/history"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

type buildsLoadedMsg struct {
	Events []history.DeckEvent
	Err    error
}

// BuildsScreen displays recent deck builds from the journal.
type BuildsScreen struct {
	journal  *history.Store
	events   []history.DeckEvent
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*BuildsScreen)(nil)
var _ screen.KeyHintProvider = (*BuildsScreen)(nil)

// New creates a new BuildsScreen.
func New(journal *history.Store) *BuildsScreen {
	return &BuildsScreen{
		journal:  journal,
		expanded: make(map[int]bool),
	}
}

func (s *BuildsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		events, err := s.journal.ListDeckEvents(context.Background(), 50)
		return buildsLoadedMsg{Events: events, Err: err}
	}
}

func (s *BuildsScreen) Title() string {
	return "Build History"
}

func (s *BuildsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BuildsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case buildsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
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

func (s *BuildsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading build history...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No decks built yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, ev := range s.events {
		dateStr := ev.CreatedAt.Format("Jan 02, 2006 15:04")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d slides  %d questions",
			prefix, dateStr, ev.Format, ev.SlideCount, ev.QuestionCount)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			details := []string{"    output: " + ev.Output}
			if ev.CategoryFilter != "" {
				details = append(details, "    category: "+ev.CategoryFilter)
			}
			if ev.Template != "" {
				details = append(details,
					fmt.Sprintf("    template: %s (inserted at %s)", ev.Template, ev.Position))
			}
			for _, d := range details {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(d)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
