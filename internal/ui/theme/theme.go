package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — dark terminal arcade look
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky
	Secondary = lipgloss.Color("#A78BFA") // Violet
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
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

	Won = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Lost = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Widget pieces
var (
	TrackFilled = lipgloss.NewStyle().
			Foreground(Primary)

	TrackEmpty = lipgloss.NewStyle().
			Foreground(Border)

	ActivePane = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Underline(true)

	InactivePane = lipgloss.NewStyle().
			Foreground(TextDim)
)
