// Package done shows the outcome of a deck build.
package done

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// Result is the outcome of one deck build.
type Result struct {
	Output    string
	Slides    int
	Questions int
	Format    string
	Err       error
}

// DoneScreen displays a build result.
type DoneScreen struct {
	result Result
}

var _ screen.Screen = (*DoneScreen)(nil)
var _ screen.KeyHintProvider = (*DoneScreen)(nil)

// New creates a DoneScreen for the result.
func New(result Result) *DoneScreen {
	return &DoneScreen{result: result}
}

func (d *DoneScreen) Init() tea.Cmd {
	return nil
}

func (d *DoneScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return d, tea.Quit
	}
	return d, nil
}

func (d *DoneScreen) View(width, height int) string {
	var body string
	if d.result.Err != nil {
		body = theme.Invalid.Render("Build failed") + "\n\n" +
			theme.Body.Render(d.result.Err.Error())
	} else {
		body = theme.Checked.Render("Deck written") + "\n\n" +
			theme.Body.Render(fmt.Sprintf("Output     %s", d.result.Output)) + "\n" +
			theme.Body.Render(fmt.Sprintf("Format     %s", d.result.Format)) + "\n" +
			theme.Body.Render(fmt.Sprintf("Slides     %d", d.result.Slides)) + "\n" +
			theme.Body.Render(fmt.Sprintf("Questions  %d", d.result.Questions))
	}

	card := theme.Card.Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (d *DoneScreen) Title() string {
	return "Build Result"
}

func (d *DoneScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "q", Description: "Quit"},
	}
}
