package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"starfolio/internal/adapters/tui/styles"
	"starfolio/internal/domain"
)

// Photo frame size in terminal cells
const (
	photoWidth  = 16
	photoHeight = 8
)

// HomeKeyMap defines key bindings for the home panel
type HomeKeyMap struct {
	Resume   key.Binding
	Copy     key.Binding
	GitHub   key.Binding
	LinkedIn key.Binding
	Email    key.Binding
}

var HomeKeys = HomeKeyMap{
	Resume: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "open CV"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy CV link"),
	),
	GitHub: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "github"),
	),
	LinkedIn: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "linkedin"),
	),
	Email: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "email"),
	),
}

// HomeModel is the profile panel. While mounted it animates a marker
// orbiting the photo frame.
type HomeModel struct {
	PanelState
	profile  domain.Profile
	backdrop *domain.Sky

	orbit    domain.Orbit
	interval time.Duration
	gen      int
	mounted  bool
}

// NewHomeModel creates the home panel. backdrop may be nil.
func NewHomeModel(profile domain.Profile, backdrop *domain.Sky, interval time.Duration, step float64) *HomeModel {
	return &HomeModel{
		profile:  profile,
		backdrop: backdrop,
		orbit:    domain.NewOrbit(step, 90),
		interval: interval,
	}
}

// Init initializes the home panel
func (m *HomeModel) Init() tea.Cmd {
	return nil
}

// Mount starts a fresh orbit
func (m *HomeModel) Mount() tea.Cmd {
	m.gen++
	m.mounted = true
	m.orbit.Angle = 0
	return m.tick()
}

// Unmount stops the orbit; ticks already scheduled are dropped on arrival
func (m *HomeModel) Unmount() {
	m.mounted = false
	m.gen++
}

// Orbit returns the current orbit state
func (m *HomeModel) Orbit() domain.Orbit {
	return m.orbit
}

func (m *HomeModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return OrbitTickMsg{Gen: gen}
	})
}

// Update handles messages for the home panel
func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OrbitTickMsg:
		if !m.mounted || msg.Gen != m.gen {
			return m, nil
		}
		m.orbit.Advance()
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, HomeKeys.Resume):
			return m, m.open("CV", m.profile.ResumeURL)
		case key.Matches(msg, HomeKeys.Copy):
			text := m.profile.ResumeURL
			return m, func() tea.Msg {
				return CopyMsg{Label: "CV link", Text: text}
			}
		case key.Matches(msg, HomeKeys.GitHub):
			return m, m.openKind(domain.LinkGitHub)
		case key.Matches(msg, HomeKeys.LinkedIn):
			return m, m.openKind(domain.LinkLinkedIn)
		case key.Matches(msg, HomeKeys.Email):
			return m, m.openKind(domain.LinkEmail)
		}
	}
	return m, nil
}

func (m *HomeModel) openKind(kind domain.LinkKind) tea.Cmd {
	link, ok := m.profile.Link(kind)
	if !ok {
		return nil
	}
	return m.open(link.Label, link.URL)
}

func (m *HomeModel) open(label, url string) tea.Cmd {
	return func() tea.Msg {
		return OpenLinkMsg{Label: label, URL: url}
	}
}

// View renders the home panel
func (m *HomeModel) View() string {
	p := m.profile

	var info strings.Builder
	info.WriteString(styles.Name.Render(p.Name))
	info.WriteString("\n\n")
	for _, r := range p.Roles {
		info.WriteString(styles.Body.Render(r))
		info.WriteString("\n")
	}
	if p.Affiliation != "" {
		info.WriteString(styles.Heading.Render(p.Affiliation))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, m.photo(), "   ", info.String())

	skills := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		skills[i] = styles.Skill.Render(s.Name)
	}

	v := NewViewBuilder().
		Raw(header).
		BlankLine().
		BlankLine().
		Heading("about").
		Line(Wrap(styles.Body.Render(p.About), m.Width)).
		BlankLine().
		Heading("skills").
		Line(lipgloss.JoinHorizontal(lipgloss.Top, skills...)).
		BlankLine()

	if p.ResumeURL != "" {
		v.Line(styles.Link.Render("Download CV") + "  " + RenderHelpLine(HomeKeys.Resume, HomeKeys.Copy))
	}
	var links []key.Binding
	for _, l := range p.Links {
		switch l.Kind {
		case domain.LinkGitHub:
			links = append(links, HomeKeys.GitHub)
		case domain.LinkLinkedIn:
			links = append(links, HomeKeys.LinkedIn)
		case domain.LinkEmail:
			links = append(links, HomeKeys.Email)
		}
	}
	if len(links) > 0 {
		v.Help(links...)
	}
	return v.StringUnwrapped()
}

// photo draws the faint background constellation with the orbiting marker
func (m *HomeModel) photo() string {
	return strings.Join(m.photoCanvas().Render(renderCell), "\n")
}

func (m *HomeModel) photoCanvas() *Canvas {
	w, h := 200.0, 200.0
	if m.backdrop != nil {
		w, h = m.backdrop.Width, m.backdrop.Height
	}
	c := NewCanvas(photoWidth, photoHeight, w, h)

	if m.backdrop != nil {
		scene := domain.RenderScene(m.backdrop, domain.ViewState{}, domain.DefaultSceneStyle())
		for _, l := range scene.Lines {
			c.Line(l.X1, l.Y1, l.X2, l.Y2, CellBackdrop)
		}
		for _, mk := range scene.Markers {
			c.Plot(mk.X, mk.Y, CellBackdrop)
		}
	}

	pos := m.orbit.Position(w/2, h/2)
	col, row := c.Cell(pos.X, pos.Y)
	c.Put(col, row, '●', CellOrbit)
	return c
}

// SetSize updates the view dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.PanelState.SetSize(width, height)
}
