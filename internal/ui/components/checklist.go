package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// ChecklistItem is a single row in a Checklist. Header rows are
// non-selectable group labels.
type ChecklistItem struct {
	ID      string
	Label   string
	Detail  string
	Header  bool
	Checked bool
}

// Checklist is a scrollable multi-select list with group headers.
type Checklist struct {
	Items  []ChecklistItem
	Cursor int
	Rows   int // visible rows; 0 means render everything

	// OnToggle is called with the item ID when the user toggles a row.
	OnToggle func(id string) tea.Cmd

	offset int
}

// NewChecklist creates a checklist with the cursor on the first
// selectable row.
func NewChecklist(items []ChecklistItem, rows int, onToggle func(id string) tea.Cmd) Checklist {
	c := Checklist{Items: items, Rows: rows, OnToggle: onToggle}
	c.Cursor = c.nextSelectable(-1, +1)
	return c
}

// SetItems replaces the rows, clamping the cursor.
func (c *Checklist) SetItems(items []ChecklistItem) {
	c.Items = items
	c.offset = 0
	if c.Cursor >= len(items) {
		c.Cursor = len(items) - 1
	}
	if c.Cursor < 0 || (len(items) > 0 && items[c.Cursor].Header) {
		c.Cursor = c.nextSelectable(-1, +1)
	}
}

// Current returns the item under the cursor.
func (c Checklist) Current() (ChecklistItem, bool) {
	if c.Cursor < 0 || c.Cursor >= len(c.Items) || c.Items[c.Cursor].Header {
		return ChecklistItem{}, false
	}
	return c.Items[c.Cursor], true
}

// nextSelectable finds the next non-header row from start in direction
// dir, or returns -1 when there is none.
func (c Checklist) nextSelectable(start, dir int) int {
	for i := start + dir; i >= 0 && i < len(c.Items); i += dir {
		if !c.Items[i].Header {
			return i
		}
	}
	return -1
}

// Init returns nil (no initial command).
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if i := c.nextSelectable(c.Cursor, -1); i >= 0 {
			c.Cursor = i
		}
	case "down", "j":
		if i := c.nextSelectable(c.Cursor, +1); i >= 0 {
			c.Cursor = i
		}
	case "space", " ":
		if item, ok := c.Current(); ok {
			c.Items[c.Cursor].Checked = !c.Items[c.Cursor].Checked
			if c.OnToggle != nil {
				return c.scrolled(), c.OnToggle(item.ID)
			}
		}
	}

	return c.scrolled(), nil
}

// scrolled adjusts the window so the cursor stays visible.
func (c Checklist) scrolled() Checklist {
	if c.Rows <= 0 {
		return c
	}
	if c.Cursor < c.offset {
		c.offset = c.Cursor
	}
	if c.Cursor >= c.offset+c.Rows {
		c.offset = c.Cursor - c.Rows + 1
	}
	return c
}

// View renders the visible window.
func (c Checklist) View() string {
	start, end := 0, len(c.Items)
	if c.Rows > 0 && end-start > c.Rows {
		start = c.offset
		end = start + c.Rows
		if end > len(c.Items) {
			end = len(c.Items)
		}
	}

	var s string
	for i := start; i < end; i++ {
		item := c.Items[i]

		if item.Header {
			s += lipgloss.NewStyle().
				Foreground(theme.Accent).
				Bold(true).
				Render("  "+item.Label) + "\n"
			continue
		}

		mark := "[ ]"
		markStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if item.Checked {
			mark = "[x]"
			markStyle = theme.Checked
		}

		row := markStyle.Render(mark) + " " + item.Label
		if item.Detail != "" {
			row += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + item.Detail)
		}

		if i == c.Cursor {
			s += theme.Selected.Render("  ▸ ") + row + "\n"
		} else {
			s += "    " + row + "\n"
		}
	}
	return s
}
