package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"starfolio/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return CloseHelpMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("starfolio help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Follow the Summer Triangle to move between panels"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Star map"))
	b.WriteString("\n")
	b.WriteString(helpLine("mouse", "Hover a star to name it, click to open its panel"))
	b.WriteString(helpLine("tab / shift+tab", "Focus next / previous star"))
	b.WriteString(helpLine("enter", "Open the focused star's panel"))
	b.WriteString(helpLine("1 2 3 4", "home, projects, technical, writings"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Home"))
	b.WriteString("\n")
	b.WriteString(helpLine("r", "Open CV"))
	b.WriteString(helpLine("y", "Copy CV link"))
	b.WriteString(helpLine("g / i / e", "github, linkedin, email"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Projects and technical writings"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Scroll"))
	b.WriteString(helpLine("pgup / pgdown", "Scroll a page"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Writings"))
	b.WriteString("\n")
	b.WriteString(helpLine("← / → / h / l", "Switch tab"))
	b.WriteString(helpLine("b / g", "books, games"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("/", "Search skills, projects and topics"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	w := runewidth.StringWidth(s)
	if w >= length {
		return s
	}
	return s + strings.Repeat(" ", length-w)
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
