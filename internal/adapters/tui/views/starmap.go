package views

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"starfolio/internal/adapters/tui/styles"
	"starfolio/internal/domain"
)

// Star map size in terminal cells
const (
	StarMapWidth  = 30
	StarMapHeight = 15
)

const (
	glyphStar   = '✧'
	glyphActive = '✦'
)

// StarMapKeyMap defines key bindings for the star map
type StarMapKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Select key.Binding
	Jump   key.Binding
}

var StarMapKeys = StarMapKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next star"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev star"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "go"),
	),
	Jump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4"),
		key.WithHelp("1-4", "jump"),
	),
}

// StarMapModel draws the navigation sky and turns pointer and key input
// into hover changes and navigation requests
type StarMapModel struct {
	store *domain.Store
	sky   *domain.Sky
	style domain.SceneStyle
	mouse bool

	originX int
	originY int
}

// NewStarMapModel creates a star map over sky, reading and writing store
func NewStarMapModel(store *domain.Store, sky *domain.Sky, mouse bool) *StarMapModel {
	return &StarMapModel{
		store: store,
		sky:   sky,
		style: domain.DefaultSceneStyle(),
		mouse: mouse,
	}
}

// SetOrigin sets the screen cell of the canvas' top-left corner
func (m *StarMapModel) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// Scene renders the sky for the current state
func (m *StarMapModel) Scene() domain.Scene {
	return domain.RenderScene(m.sky, m.store.Get(), m.style)
}

func (m *StarMapModel) canvas() *Canvas {
	return NewCanvas(StarMapWidth, StarMapHeight, m.sky.Width, m.sky.Height)
}

// StarCell returns the screen cell a view's star is drawn in
func (m *StarMapModel) StarCell(view domain.ViewID) (int, int, bool) {
	star, ok := m.sky.StarFor(view)
	if !ok {
		return 0, 0, false
	}
	col, row := m.canvas().Cell(star.X, star.Y)
	return m.originX + col, m.originY + row, true
}

// Init initializes the star map
func (m *StarMapModel) Init() tea.Cmd {
	return nil
}

// Update handles mouse and key input
func (m *StarMapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		cmd, _ := m.HandleKey(msg)
		return m, cmd
	}
	return m, nil
}

// HandleKey handles star map keys and reports whether msg was one of them
func (m *StarMapModel) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, StarMapKeys.Next):
		m.focusStep(1)
		return nil, true

	case key.Matches(msg, StarMapKeys.Prev):
		m.focusStep(-1)
		return nil, true

	case key.Matches(msg, StarMapKeys.Select):
		hovered := m.store.Get().Hovered
		if hovered == "" {
			return nil, true
		}
		return navigate(hovered), true

	case key.Matches(msg, StarMapKeys.Jump):
		n, err := strconv.Atoi(msg.String())
		views := domain.AllViews()
		if err != nil || n < 1 || n > len(views) {
			return nil, true
		}
		return navigate(views[n-1]), true
	}
	return nil, false
}

// focusStep moves the keyboard focus, which shares the hover slot
func (m *StarMapModel) focusStep(delta int) {
	state := m.store.Get()
	views := domain.AllViews()
	from := state.Hovered
	if from == "" {
		from = state.Current
	}
	i := slices.Index(views, from)
	next := views[((i+delta)%len(views)+len(views))%len(views)]
	state.Hover(next)
	m.store.Set(state)
}

func (m *StarMapModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.mouse {
		return nil
	}

	state := m.store.Get()
	hit, ok := m.hitAt(msg.X-m.originX, msg.Y-m.originY)
	if !ok {
		state.Leave(state.Hovered)
		m.store.Set(state)
		return nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		state.Hover(hit.View)
		m.store.Set(state)
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		state.Hover(hit.View)
		m.store.Set(state)
		return navigate(hit.View)
	}
	return nil
}

// hitAt returns the star under a canvas cell
func (m *StarMapModel) hitAt(col, row int) (domain.Marker, bool) {
	if col < 0 || row < 0 || col >= StarMapWidth || row >= StarMapHeight {
		return domain.Marker{}, false
	}
	c := m.canvas()
	x, y := c.SceneAt(col, row)
	return m.Scene().HitTest(x, y, c.CellRadius())
}

// View renders the canvas and the navigation legend
func (m *StarMapModel) View() string {
	scene := m.Scene()
	c := m.canvas()

	for _, l := range scene.Lines {
		c.Line(l.X1, l.Y1, l.X2, l.Y2, CellLine)
	}
	for _, mk := range scene.Markers {
		if !mk.Interactive {
			c.Plot(mk.X, mk.Y, CellDecor)
			continue
		}
		col, row := c.Cell(mk.X, mk.Y)
		if mk.Active {
			c.Put(col, row, glyphActive, CellActive)
		} else {
			c.Put(col, row, glyphStar, CellStar)
		}
	}
	// label offsets are smaller than a row: names go above the star,
	// groups below
	for _, v := range domain.AllViews() {
		labels := scene.LabelsFor(v)
		star, ok := m.sky.StarFor(v)
		if len(labels) == 0 || !ok {
			continue
		}
		col, row := c.Cell(star.X, star.Y)
		for _, l := range labels {
			if l.Group {
				c.Text(col, row+1, l.Text, CellGroup)
			} else {
				c.Text(col, row-1, l.Text, CellLabel)
			}
		}
	}

	var b strings.Builder
	for _, line := range c.Render(renderCell) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.legend())
	return b.String()
}

func (m *StarMapModel) legend() string {
	state := m.store.Get()
	var lines []string
	for i, v := range domain.AllViews() {
		marker := "  "
		style := styles.NavItem
		switch {
		case state.IsActive(v):
			marker = "▸ "
			style = styles.NavActive
		case state.Hovered == v:
			style = styles.NavFocused
		}
		lines = append(lines, marker+style.Render(fmt.Sprintf("%d %s", i+1, v.Title())))
	}
	return strings.Join(lines, "\n")
}

func renderCell(kind CellKind, s string) string {
	switch kind {
	case CellLine:
		return styles.MapLine.Render(s)
	case CellDecor:
		return styles.MapDecor.Render(s)
	case CellStar:
		return styles.MapStar.Render(s)
	case CellActive:
		return styles.MapActive.Render(s)
	case CellLabel:
		return styles.MapLabel.Render(s)
	case CellGroup:
		return styles.MapGroup.Render(s)
	case CellOrbit:
		return styles.MapOrbit.Render(s)
	case CellBackdrop:
		return styles.MapBackdrop.Render(s)
	default:
		return s
	}
}

func navigate(view domain.ViewID) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{View: view}
	}
}
