// Package picker is the question curation screen: a category-grouped
// checklist over the working bank with filtering and bulk selection.
package picker

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// typeCycle is the order the t key walks through; empty means all types.
var typeCycle = []bank.QuestionType{
	"", bank.TypeMultipleChoice, bank.TypeTrueFalse, bank.TypeCaseVignette,
}

// PickerScreen lets the user curate the selection for the next deck.
type PickerScreen struct {
	sess *session.Session

	list      components.Checklist
	filter    components.TextInput
	filtering bool
	query     string
	typeIdx   int
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a new PickerScreen over the session.
func New(sess *session.Session) *PickerScreen {
	p := &PickerScreen{
		sess:   sess,
		filter: components.NewTextInput("filter questions...", false, 60),
	}
	p.list = components.NewChecklist(p.buildItems(), 0, func(id string) tea.Cmd {
		sess.Toggle(id)
		return nil
	})
	return p
}

// currentFilter assembles the session filter from screen state.
func (p *PickerScreen) currentFilter() session.Filter {
	f := session.Filter{Query: p.query}
	if t := typeCycle[p.typeIdx]; t != "" {
		f.Types = []bank.QuestionType{t}
	}
	return f
}

// buildItems flattens the eligible questions into checklist rows with
// one header per category.
func (p *PickerScreen) buildItems() []components.ChecklistItem {
	var items []components.ChecklistItem
	lastCategory := ""
	for _, q := range p.sess.Eligible(p.currentFilter()) {
		if q.Category != lastCategory {
			items = append(items, components.ChecklistItem{Label: q.Category, Header: true})
			lastCategory = q.Category
		}
		items = append(items, components.ChecklistItem{
			ID:      q.ID,
			Label:   truncate(q.Text, 70),
			Detail:  fmt.Sprintf("%s · %s", q.Type, q.ID),
			Checked: p.sess.IsSelected(q.ID),
		})
	}
	return items
}

func (p *PickerScreen) refresh() {
	p.list.SetItems(p.buildItems())
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if p.filtering {
		if isKey {
			switch kmsg.String() {
			case "enter", "esc":
				p.filtering = false
				p.query = p.filter.Model.Value()
				p.refresh()
				return p, nil
			}
		}
		var cmd tea.Cmd
		p.filter, cmd = p.filter.Update(msg)
		p.query = p.filter.Model.Value()
		p.refresh()
		return p, cmd
	}

	if isKey {
		switch kmsg.String() {
		case "/":
			p.filtering = true
			return p, p.filter.Init()
		case "t":
			p.typeIdx = (p.typeIdx + 1) % len(typeCycle)
			p.refresh()
			return p, nil
		case "a":
			p.sess.SelectAll(p.currentFilter())
			p.refresh()
			return p, nil
		case "c":
			p.sess.Clear()
			p.refresh()
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p *PickerScreen) View(width, height int) string {
	// Reserve rows for the status line and, while filtering, the input.
	rows := height - 2
	if rows < 3 {
		rows = 3
	}
	p.list.Rows = rows

	status := fmt.Sprintf("%d selected", p.sess.SelectedCount())
	if t := typeCycle[p.typeIdx]; t != "" {
		status += "   type: " + string(t)
	}
	if p.query != "" {
		status += fmt.Sprintf("   filter: %q", p.query)
	}

	top := theme.Hint.Render("  " + status)
	if p.filtering {
		top = "  / " + p.filter.View()
	}

	return top + "\n\n" + lipgloss.NewStyle().Width(width).Render(p.list.View())
}

func (p *PickerScreen) Title() string {
	return "Select Questions"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "a", Description: "Select all"},
		{Key: "c", Description: "Clear"},
		{Key: "/", Description: "Filter"},
		{Key: "t", Description: "Type"},
		{Key: "Esc", Description: "Back"},
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
