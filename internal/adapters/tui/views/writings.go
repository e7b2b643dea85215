package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"starfolio/internal/adapters/tui/styles"
	"starfolio/internal/domain"
)

// WritingsKeyMap defines key bindings for the writings panel
type WritingsKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Books key.Binding
	Games key.Binding
}

var WritingsKeys = WritingsKeyMap{
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev tab"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next tab"),
	),
	Books: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "books"),
	),
	Games: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "games"),
	),
}

// WritingsModel is the tabbed writings panel. The tab is local to one
// mount and resets to the first shelf every time the panel is shown.
type WritingsModel struct {
	PanelState
	intro   string
	shelves []domain.Shelf
	tab     int
}

// NewWritingsModel creates the writings panel
func NewWritingsModel(p domain.Portfolio) *WritingsModel {
	return &WritingsModel{
		intro:   p.WritingsIntro,
		shelves: p.Shelves,
	}
}

// Init initializes the writings panel
func (m *WritingsModel) Init() tea.Cmd {
	return nil
}

// Mount selects the first tab
func (m *WritingsModel) Mount() tea.Cmd {
	m.tab = 0
	return nil
}

// Unmount is a no-op
func (m *WritingsModel) Unmount() {}

// Tab returns the key of the selected shelf
func (m *WritingsModel) Tab() string {
	if m.tab < 0 || m.tab >= len(m.shelves) {
		return ""
	}
	return m.shelves[m.tab].Key
}

// Select switches to the shelf with the given key, if it exists
func (m *WritingsModel) Select(key string) {
	for i, s := range m.shelves {
		if s.Key == key {
			m.tab = i
			return
		}
	}
}

// Update switches tabs
func (m *WritingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.shelves) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, WritingsKeys.Prev):
		m.tab = (m.tab - 1 + len(m.shelves)) % len(m.shelves)
	case key.Matches(keyMsg, WritingsKeys.Next):
		m.tab = (m.tab + 1) % len(m.shelves)
	case key.Matches(keyMsg, WritingsKeys.Books):
		m.Select("books")
	case key.Matches(keyMsg, WritingsKeys.Games):
		m.Select("games")
	}
	return m, nil
}

// View renders the writings panel
func (m *WritingsModel) View() string {
	v := NewViewBuilder().
		Title(domain.ViewWritings.Title()).
		Line(Wrap(RenderSubtitle(m.intro), m.Width)).
		BlankLine()

	if len(m.shelves) == 0 {
		return v.StringUnwrapped()
	}

	tabs := make([]string, len(m.shelves))
	for i, s := range m.shelves {
		if i == m.tab {
			tabs[i] = styles.TabActive.Render(s.Title)
		} else {
			tabs[i] = styles.TabInactive.Render(s.Title)
		}
	}
	v.Line(lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)).BlankLine()

	shelf := m.shelves[m.tab]
	if shelf.Intro != "" {
		v.Line(Wrap(styles.Body.Render(shelf.Intro), m.Width)).BlankLine()
	}

	var topics strings.Builder
	for _, t := range shelf.Topics {
		topics.WriteString(styles.Name.Render("◦ " + t))
		topics.WriteString("\n  ")
		topics.WriteString(RenderComingSoon())
		topics.WriteString("\n")
	}
	v.Raw(topics.String()).BlankLine().Help(WritingsKeys.Prev, WritingsKeys.Next)
	return v.StringUnwrapped()
}

// SetSize updates the view dimensions
func (m *WritingsModel) SetSize(width, height int) {
	m.PanelState.SetSize(width, height)
}
