// Package options is the deck build screen: output settings plus the
// generate action.
package options

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/deck"
	"github.com/abhisek/quizdeck/internal/history"
	"github.com/abhisek/quizdeck/internal/pptx"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/done"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

var formats = []deck.Format{deck.FormatStandard, deck.FormatLightning, deck.FormatAudience}

// Field rows, top to bottom.
const (
	fieldFormat = iota
	fieldOutput
	fieldTemplate
	fieldPosition
	fieldGenerate
	fieldCount
)

// builtMsg carries the build outcome back into the update loop.
type builtMsg struct {
	result done.Result
}

// OptionsScreen collects output settings and runs the build.
type OptionsScreen struct {
	sess    *session.Session
	journal *history.Store

	field     int
	formatIdx int
	output    components.TextInput
	template  components.TextInput
	position  pptx.Position
	building  bool
	errMsg    string
}

var _ screen.Screen = (*OptionsScreen)(nil)
var _ screen.KeyHintProvider = (*OptionsScreen)(nil)

// New creates a new OptionsScreen over the session.
func New(sess *session.Session, journal *history.Store) *OptionsScreen {
	output := components.NewTextInput("quiz_deck.pptx", false, 80)
	output.Model.SetValue("quiz_deck.pptx")
	template := components.NewTextInput("optional template .pptx", false, 120)

	return &OptionsScreen{
		sess:     sess,
		journal:  journal,
		output:   output,
		template: template,
		position: pptx.PositionEnd,
	}
}

func (o *OptionsScreen) Init() tea.Cmd {
	return nil
}

func (o *OptionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case builtMsg:
		o.building = false
		return o, func() tea.Msg {
			return router.PushScreenMsg{Screen: done.New(msg.result)}
		}

	case tea.KeyMsg:
		if o.building {
			return o, nil
		}
		switch msg.String() {
		case "up", "shift+tab":
			if o.field > 0 {
				o.field--
			}
			return o, nil
		case "down", "tab":
			if o.field < fieldCount-1 {
				o.field++
			}
			return o, nil
		case "left", "right":
			switch o.field {
			case fieldFormat:
				step := 1
				if msg.String() == "left" {
					step = len(formats) - 1
				}
				o.formatIdx = (o.formatIdx + step) % len(formats)
				return o, nil
			case fieldPosition:
				if o.position == pptx.PositionEnd {
					o.position = pptx.PositionStart
				} else {
					o.position = pptx.PositionEnd
				}
				return o, nil
			}
		case "enter":
			if o.field == fieldGenerate {
				return o.startBuild()
			}
			if o.field < fieldCount-1 {
				o.field++
			}
			return o, nil
		}

		// Route typing to the focused text field.
		switch o.field {
		case fieldOutput:
			var cmd tea.Cmd
			o.output, cmd = o.output.Update(msg)
			return o, cmd
		case fieldTemplate:
			var cmd tea.Cmd
			o.template, cmd = o.template.Update(msg)
			return o, cmd
		}
	}
	return o, nil
}

// startBuild validates inputs and kicks off the build command.
func (o *OptionsScreen) startBuild() (screen.Screen, tea.Cmd) {
	if o.sess.SelectedCount() == 0 {
		o.errMsg = "no questions selected"
		return o, nil
	}
	output := strings.TrimSpace(o.output.Value())
	if output == "" {
		o.errMsg = "output filename is required"
		return o, nil
	}
	if !strings.HasSuffix(output, ".pptx") {
		output += ".pptx"
	}

	o.errMsg = ""
	o.building = true

	sess := o.sess
	journal := o.journal
	format := formats[o.formatIdx]
	template := strings.TrimSpace(o.template.Value())
	position := o.position

	return o, func() tea.Msg {
		result := build(sess, journal, format, output, template, position)
		return builtMsg{result: result}
	}
}

// build assembles and writes the deck, then journals the outcome.
func build(sess *session.Session, journal *history.Store, format deck.Format, output, template string, position pptx.Position) done.Result {
	result := done.Result{Output: output, Format: string(format)}

	subset, err := sess.SubsetForRender()
	if err != nil {
		result.Err = err
		return result
	}
	result.Questions = subset.QuestionCount()

	slides := deck.Assemble(subset, deck.Options{Format: format})

	if template != "" {
		data, total, err := pptx.Splice(template, slides, position)
		if err != nil {
			result.Err = err
			return result
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			result.Err = fmt.Errorf("write output: %w", err)
			return result
		}
		result.Slides = total
	} else {
		n, err := pptx.WriteFile(output, slides)
		if err != nil {
			result.Err = err
			return result
		}
		result.Slides = n
	}

	if journal != nil {
		ev := history.DeckEvent{
			Format:        string(format),
			Output:        output,
			SlideCount:    result.Slides,
			QuestionCount: result.Questions,
			Template:      template,
			Position:      string(position),
		}
		if err := journal.AppendDeckEvent(context.Background(), ev); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to journal deck build: %v\n", err)
		}
	}

	return result
}

func (o *OptionsScreen) View(width, height int) string {
	row := func(idx int, label, value string) string {
		style := theme.Unselected
		prefix := "    "
		if idx == o.field {
			style = theme.Selected
			prefix = "  ▸ "
		}
		return style.Render(prefix+label) + "  " + theme.Body.Render(value)
	}

	templateValue := o.template.Value()
	if templateValue == "" && o.field != fieldTemplate {
		templateValue = theme.Hint.Render("none")
	} else if o.field == fieldTemplate {
		templateValue = o.template.View()
	}

	outputValue := o.output.Value()
	if o.field == fieldOutput {
		outputValue = o.output.View()
	}

	label := "GENERATE"
	if o.building {
		label = "building..."
	}
	generateRow := components.NewButton(label, o.field == fieldGenerate, nil).View()

	lines := []string{
		row(fieldFormat, "Format   ", "◀ "+string(formats[o.formatIdx])+" ▶"),
		row(fieldOutput, "Output   ", outputValue),
		row(fieldTemplate, "Template ", templateValue),
		row(fieldPosition, "Position ", "◀ "+string(o.position)+" ▶"),
		"",
		generateRow,
	}

	if o.errMsg != "" {
		lines = append(lines, "", theme.Invalid.Render("  "+o.errMsg))
	}
	lines = append(lines, "",
		theme.Hint.Render(fmt.Sprintf("  %d questions selected", o.sess.SelectedCount())))

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (o *OptionsScreen) Title() string {
	return "Build Deck"
}

func (o *OptionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}
