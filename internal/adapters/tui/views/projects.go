package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"starfolio/internal/adapters/tui/styles"
	"starfolio/internal/domain"
)

// ProjectsModel is the scrollable projects panel
type ProjectsModel struct {
	PanelState
	intro       string
	projects    []domain.Project
	placeholder string
	viewport    viewport.Model
}

// NewProjectsModel creates the projects panel
func NewProjectsModel(p domain.Portfolio) *ProjectsModel {
	m := &ProjectsModel{
		intro:       p.ProjectsIntro,
		projects:    p.Projects,
		placeholder: p.Placeholder,
		viewport:    viewport.New(0, 0),
	}
	m.SetSize(defaultWidth, defaultHeight)
	return m
}

// Init initializes the projects panel
func (m *ProjectsModel) Init() tea.Cmd {
	return nil
}

// Mount scrolls back to the first project
func (m *ProjectsModel) Mount() tea.Cmd {
	m.viewport.GotoTop()
	return nil
}

// Unmount is a no-op; the panel keeps no timers
func (m *ProjectsModel) Unmount() {}

// Update scrolls the list
func (m *ProjectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the projects panel
func (m *ProjectsModel) View() string {
	return NewViewBuilder().
		Title(domain.ViewProjects.Title()).
		Raw(m.viewport.View()).
		StringUnwrapped()
}

func (m *ProjectsModel) content() string {
	width := max(m.Width-4, 20)

	var b strings.Builder
	b.WriteString(Wrap(RenderSubtitle(m.intro), m.Width))
	b.WriteString("\n\n")

	for _, p := range m.projects {
		var card strings.Builder
		card.WriteString(styles.Name.Render(p.Title))
		card.WriteString("\n")
		if p.Status != "" {
			card.WriteString(styles.Status.Render(p.Status))
			card.WriteString("\n")
		}
		card.WriteString("\n")
		card.WriteString(Wrap(styles.Body.Render(p.Description), width))
		card.WriteString("\n\n")
		card.WriteString(RenderTags(p.Tags))
		if p.Link != "" && p.Link != "#" {
			card.WriteString("\n")
			card.WriteString(styles.Link.Render(p.Link))
		}
		b.WriteString(styles.Card.Width(width + 2).Render(card.String()))
		b.WriteString("\n")
	}

	if m.placeholder != "" {
		b.WriteString("\n")
		b.WriteString(RenderMuted(m.placeholder))
	}
	return b.String()
}

// SetSize updates the view dimensions and reflows the list
func (m *ProjectsModel) SetSize(width, height int) {
	m.PanelState.SetSize(width, height)
	m.viewport.Width = width
	m.viewport.Height = max(height-2, 1) // title and its margin
	m.viewport.SetContent(m.content())
}
