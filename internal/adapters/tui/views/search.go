package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"starfolio/internal/adapters/tui/styles"
	"starfolio/internal/application/commands"
	"starfolio/internal/ports"
)

const maxResults = 10

// SearchKeyMap defines key bindings for the search overlay
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "go"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// SearchModel is the search overlay. Selecting a result navigates to the
// panel (and writings shelf) it lives on.
type SearchModel struct {
	content ports.ContentSource
	input   textinput.Model
	results []commands.SearchResult
	cursor  int
	width   int
	height  int
}

// NewSearchModel creates a new search overlay
func NewSearchModel(content ports.ContentSource) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search skills, projects, topics..."
	input.Focus()

	return &SearchModel{
		content: content,
		input:   input,
	}
}

// Init initializes the search overlay
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and results
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.results = nil
	m.cursor = 0
	m.input.Focus()
}

// Results returns the current results
func (m *SearchModel) Results() []commands.SearchResult {
	return m.results
}

// Update handles messages for the search overlay
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultsMsg:
		// drop results for a query the user has since changed
		if msg.query != m.input.Value() {
			return m, nil
		}
		m.results = msg.results
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg {
				return CloseSearchMsg{}
			}

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < min(len(m.results), maxResults)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			if m.cursor >= 0 && m.cursor < len(m.results) {
				result := m.results[m.cursor]
				return m, func() tea.Msg {
					return SearchSelectMsg{Result: result}
				}
			}
			return m, nil
		}
	}

	// Update input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Trigger search on input change
	query := m.input.Value()
	if len(strings.TrimSpace(query)) >= 2 {
		return m, tea.Batch(cmd, m.search(query))
	}
	m.results = nil
	return m, cmd
}

func (m *SearchModel) search(query string) tea.Cmd {
	content := m.content
	return func() tea.Msg {
		results, err := commands.NewSearchCommand(content, query).Execute(context.Background())
		if err != nil {
			return searchResultsMsg{query: query}
		}
		return searchResultsMsg{query: query, results: results}
	}
}

type searchResultsMsg struct {
	query   string
	results []commands.SearchResult
}

// View renders the search overlay
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("search"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		if len(strings.TrimSpace(m.input.Value())) >= 2 {
			b.WriteString(styles.MutedText.Render("No results found"))
		} else {
			b.WriteString(styles.MutedText.Render("Type at least 2 characters to search"))
		}
	} else {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d results", len(m.results))))
		b.WriteString("\n\n")

		for i, r := range m.results[:min(len(m.results), maxResults)] {
			b.WriteString(m.renderResult(r, i == m.cursor))
			b.WriteString("\n")
		}

		if len(m.results) > maxResults {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", len(m.results)-maxResults)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(SearchKeys.Up, SearchKeys.Down, SearchKeys.Select, SearchKeys.Cancel))

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderResult(r commands.SearchResult, selected bool) string {
	where := r.View.String()
	if r.Tab != "" {
		where += "/" + r.Tab
	}
	text := fmt.Sprintf("[%s] %s", where, r.Title)

	if selected {
		return styles.ResultSelected.Render(text)
	}
	return text
}

// SetSize updates the view dimensions
func (m *SearchModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(width-12, 10)
}
