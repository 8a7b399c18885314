package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: the deck navy and gold, muted for terminal use
var (
	Primary   = lipgloss.Color("#C9A02C") // Gold
	Secondary = lipgloss.Color("#1A4A7A") // Steel Blue
	Accent    = lipgloss.Color("#E0B84B") // Light Gold
	Success   = lipgloss.Color("#1A7A4A") // Green
	Error     = lipgloss.Color("#B31B1B") // Red
	Text      = lipgloss.Color("#F2F4F8") // Off White
	TextDim   = lipgloss.Color("#8A97AB") // Slate
	BgDark    = lipgloss.Color("#0D2B55") // Deep Navy
	BgCard    = lipgloss.Color("#123569") // Navy Card
	Border    = lipgloss.Color("#1A3A6A") // Navy Border
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Checked = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Invalid = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
