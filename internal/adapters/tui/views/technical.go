package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"starfolio/internal/adapters/tui/styles"
	"starfolio/internal/domain"
)

// TechnicalModel is the scrollable technical writings panel
type TechnicalModel struct {
	PanelState
	intro    string
	topics   []domain.Topic
	note     string
	viewport viewport.Model
}

// NewTechnicalModel creates the technical writings panel
func NewTechnicalModel(p domain.Portfolio) *TechnicalModel {
	m := &TechnicalModel{
		intro:    p.TechnicalIntro,
		topics:   p.Technical,
		note:     p.TechnicalNote,
		viewport: viewport.New(0, 0),
	}
	m.SetSize(defaultWidth, defaultHeight)
	return m
}

// Init initializes the technical panel
func (m *TechnicalModel) Init() tea.Cmd {
	return nil
}

// Mount scrolls back to the first topic
func (m *TechnicalModel) Mount() tea.Cmd {
	m.viewport.GotoTop()
	return nil
}

// Unmount is a no-op
func (m *TechnicalModel) Unmount() {}

// Update scrolls the list
func (m *TechnicalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the technical panel
func (m *TechnicalModel) View() string {
	return NewViewBuilder().
		Title(domain.ViewTechnical.Title()).
		Raw(m.viewport.View()).
		StringUnwrapped()
}

func (m *TechnicalModel) content() string {
	width := max(m.Width-4, 20)

	var b strings.Builder
	b.WriteString(Wrap(RenderSubtitle(m.intro), m.Width))
	b.WriteString("\n\n")

	for _, t := range m.topics {
		var card strings.Builder
		card.WriteString(styles.Name.Render(t.Title))
		if t.Subtitle != "" {
			card.WriteString("\n")
			card.WriteString(Wrap(RenderMuted(t.Subtitle), width))
		}
		if t.ComingSoon {
			card.WriteString("\n")
			card.WriteString(RenderComingSoon())
		}
		b.WriteString(styles.Card.Width(width + 2).Render(card.String()))
		b.WriteString("\n")
	}

	if m.note != "" {
		b.WriteString("\n")
		b.WriteString(styles.InputLabel.Render("note:"))
		b.WriteString(" ")
		b.WriteString(Wrap(styles.Body.Render(m.note), max(m.Width-6, 20)))
	}
	return b.String()
}

// SetSize updates the view dimensions and reflows the list
func (m *TechnicalModel) SetSize(width, height int) {
	m.PanelState.SetSize(width, height)
	m.viewport.Width = width
	m.viewport.Height = max(height-2, 1)
	m.viewport.SetContent(m.content())
}
