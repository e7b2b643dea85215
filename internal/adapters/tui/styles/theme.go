package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#60A5FA") // Blue 400
	Secondary = lipgloss.Color("#4A9EFF") // Constellation lines
	Muted     = lipgloss.Color("#6B7280") // Gray
	Faint     = lipgloss.Color("#555555")
	Star      = lipgloss.Color("#D4D4D8") // Zinc 300
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Success   = lipgloss.Color("#10B981") // Green
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Name = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	Body = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#D1D5DB"))

	// Star map
	MapLine     = lipgloss.NewStyle().Foreground(Secondary).Faint(true)
	MapDecor    = lipgloss.NewStyle().Foreground(Faint)
	MapStar     = lipgloss.NewStyle().Foreground(Star)
	MapActive   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	MapLabel    = lipgloss.NewStyle().Foreground(White).Bold(true)
	MapGroup    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	MapOrbit    = lipgloss.NewStyle().Foreground(Primary)
	MapBackdrop = lipgloss.NewStyle().Foreground(Secondary).Faint(true)

	// Navigation legend
	NavItem = lipgloss.NewStyle().
		Foreground(Muted)

	NavActive = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	NavFocused = lipgloss.NewStyle().
			Foreground(White).
			Underline(true)

	// Cards
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#374151")).
		Padding(0, 1)

	Tag = lipgloss.NewStyle().
		Foreground(Primary).
		Background(lipgloss.Color("#1E3A5F")).
		Padding(0, 1)

	Status = lipgloss.NewStyle().
		Foreground(Warning).
		Italic(true)

	ComingSoon = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	Skill = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#374151")).
		Foreground(lipgloss.Color("#D1D5DB")).
		Padding(0, 1)

	Link = lipgloss.NewStyle().
		Foreground(Primary).
		Underline(true)

	// Tabs
	TabActive = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(Primary).
			Padding(0, 1)

	TabInactive = lipgloss.NewStyle().
			Foreground(Muted).
			Border(lipgloss.HiddenBorder(), false, false, true, false).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	InputLabel = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	ResultSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Message styles
	SuccessMsg = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
