package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"starfolio/internal/adapters/tui/styles"
	"starfolio/internal/adapters/tui/views"
	"starfolio/internal/application"
	"starfolio/internal/application/commands"
	"starfolio/internal/domain"
	"starfolio/internal/ports"
)

// Layout in terminal cells; padding matches styles.App
const (
	padX      = 2
	padY      = 1
	columnGap = 4
	statusH   = 2
)

// Options configures the application
type Options struct {
	DefaultView   domain.ViewID
	OrbitInterval time.Duration
	OrbitStep     float64
	Mouse         bool
	Logger        *zap.Logger
}

// AppKeyMap defines the global key bindings
type AppKeyMap struct {
	Search key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var AppKeys = AppKeyMap{
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// panel is a content view that can be shown and hidden
type panel interface {
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
	View() string
	SetSize(width, height int)
	Mount() tea.Cmd
	Unmount()
}

// App is the main TUI application model
type App struct {
	opener ports.LinkOpener
	clip   ports.Clipboard
	logger *zap.Logger

	store     *domain.Store
	starmap   *views.StarMapModel
	home      *views.HomeModel
	projects  *views.ProjectsModel
	technical *views.TechnicalModel
	writings  *views.WritingsModel
	help      *views.HelpModel
	search    *views.SearchModel
	panels    map[domain.ViewID]panel

	showHelp   bool
	showSearch bool

	message    string
	messageErr bool

	width  int
	height int
}

// NewApp creates a new TUI application. opener and clip may be nil, in
// which case the matching actions report an error.
func NewApp(content ports.ContentSource, opener ports.LinkOpener, clip ports.Clipboard, opts Options) (*App, error) {
	nav, err := content.Sky(ports.SkyNav)
	if err != nil {
		return nil, fmt.Errorf("failed to load star map: %w", err)
	}
	// home draws its photo without a backdrop when the sky is missing
	backdrop, _ := content.Sky(ports.SkyBackground)

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.OrbitInterval <= 0 {
		opts.OrbitInterval = 80 * time.Millisecond
	}
	if opts.OrbitStep <= 0 {
		opts.OrbitStep = 6
	}

	p := content.Portfolio()
	store := domain.NewStore(opts.DefaultView)
	a := &App{
		opener:    opener,
		clip:      clip,
		logger:    logger,
		store:     store,
		starmap:   views.NewStarMapModel(store, nav, opts.Mouse),
		home:      views.NewHomeModel(p.Profile, backdrop, opts.OrbitInterval, opts.OrbitStep),
		projects:  views.NewProjectsModel(p),
		technical: views.NewTechnicalModel(p),
		writings:  views.NewWritingsModel(p),
		help:      views.NewHelpModel(),
		search:    views.NewSearchModel(content),
	}
	a.panels = map[domain.ViewID]panel{
		domain.ViewHome:      a.home,
		domain.ViewProjects:  a.projects,
		domain.ViewTechnical: a.technical,
		domain.ViewWritings:  a.writings,
	}
	a.starmap.SetOrigin(padX, padY)

	store.Subscribe(func(s domain.ViewState) {
		logger.Debug("view state changed",
			zap.String("current", s.Current.String()),
			zap.String("hovered", s.Hovered.String()))
	})
	return a, nil
}

// State returns the current view state
func (a *App) State() domain.ViewState {
	return a.store.Get()
}

// StarMap returns the navigation star map
func (a *App) StarMap() *views.StarMapModel {
	return a.starmap
}

// Home returns the profile panel
func (a *App) Home() *views.HomeModel {
	return a.home
}

// Writings returns the writings panel
func (a *App) Writings() *views.WritingsModel {
	return a.writings
}

// panelFor dispatches a view to its panel; unknown views show home
func (a *App) panelFor(view domain.ViewID) panel {
	return a.panels[application.PanelFor(view.String())]
}

func (a *App) current() panel {
	return a.panelFor(a.store.Get().Current)
}

// Init mounts the initial panel
func (a *App) Init() tea.Cmd {
	a.logger.Info("starting", zap.String("view", a.store.Get().Current.String()))
	return a.current().Mount()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		pw, ph := a.panelSize()
		for _, p := range a.panels {
			p.SetSize(pw, ph)
		}
		a.help.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.NavigateMsg:
		return a, a.navigate(msg.View)

	case views.SwitchToHelpMsg:
		a.showHelp = true
		return a, nil

	case views.CloseHelpMsg:
		a.showHelp = false
		return a, nil

	case views.CloseSearchMsg:
		a.showSearch = false
		return a, nil

	case views.SearchSelectMsg:
		a.showSearch = false
		cmd := a.navigate(msg.Result.View)
		if msg.Result.Tab != "" && a.store.Get().Current == domain.ViewWritings {
			// after navigate, which resets the tab on mount
			a.writings.Select(msg.Result.Tab)
		}
		return a, cmd

	case views.OrbitTickMsg:
		// routed to home even when hidden so stale ticks are dropped there
		_, cmd := a.home.Update(msg)
		return a, cmd

	case views.OpenLinkMsg:
		return a, a.openLink(msg)

	case views.CopyMsg:
		return a, a.copy(msg)

	case views.ActionResultMsg:
		if msg.Err != nil {
			a.logger.Warn("action failed", zap.Error(msg.Err))
			a.message, a.messageErr = msg.Err.Error(), true
		} else {
			a.logger.Info("action", zap.String("result", msg.Message))
			a.message, a.messageErr = msg.Message, false
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.showSearch {
			return a, nil
		}
		_, cmd := a.starmap.Update(msg)
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			_, pcmd := a.current().Update(msg)
			cmd = tea.Batch(cmd, pcmd)
		}
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.showHelp {
			_, cmd := a.help.Update(msg)
			return a, cmd
		}
		if a.showSearch {
			_, cmd := a.search.Update(msg)
			return a, cmd
		}

		a.message = ""
		switch {
		case key.Matches(msg, AppKeys.Quit):
			return a, tea.Quit
		case key.Matches(msg, AppKeys.Help):
			return a, func() tea.Msg { return views.SwitchToHelpMsg{} }
		case key.Matches(msg, AppKeys.Search):
			a.search.Reset()
			a.showSearch = true
			return a, a.search.Init()
		}
		if cmd, ok := a.starmap.HandleKey(msg); ok {
			return a, cmd
		}
	}

	// Delegate to the visible view
	if a.showSearch {
		_, cmd := a.search.Update(msg)
		return a, cmd
	}
	_, cmd := a.current().Update(msg)
	return a, cmd
}

// navigate switches panels, unmounting the old one first
func (a *App) navigate(view domain.ViewID) tea.Cmd {
	cmd := commands.NewNavigateCommand(a.store, view.String())
	res, err := cmd.Execute(context.Background())
	if err != nil {
		a.logger.Warn("navigation rejected", zap.String("view", view.String()), zap.Error(err))
		return nil
	}
	if !res.Changed {
		return nil
	}
	a.panelFor(res.Previous).Unmount()
	a.logger.Info(res.Message,
		zap.String("from", res.Previous.String()),
		zap.String("to", res.Current.String()))
	return a.panelFor(res.Current).Mount()
}

func (a *App) openLink(msg views.OpenLinkMsg) tea.Cmd {
	opener := a.opener
	return func() tea.Msg {
		if opener == nil {
			return views.ActionResultMsg{Err: fmt.Errorf("cannot open %s: no link opener", msg.Label)}
		}
		if err := opener.Open(msg.URL); err != nil {
			return views.ActionResultMsg{Err: fmt.Errorf("failed to open %s: %w", msg.Label, err)}
		}
		return views.ActionResultMsg{Message: "Opened " + msg.Label}
	}
}

func (a *App) copy(msg views.CopyMsg) tea.Cmd {
	clip := a.clip
	return func() tea.Msg {
		if clip == nil {
			return views.ActionResultMsg{Err: fmt.Errorf("cannot copy %s: no clipboard", msg.Label)}
		}
		if err := clip.Copy(msg.Text); err != nil {
			return views.ActionResultMsg{Err: err}
		}
		return views.ActionResultMsg{Message: "Copied " + msg.Label}
	}
}

func (a *App) panelSize() (int, int) {
	w := a.width - 2*padX - views.StarMapWidth - columnGap
	h := a.height - 2*padY - statusH
	return max(w, 20), max(h, 5)
}

// View renders the current view
func (a *App) View() string {
	if a.showHelp {
		return a.help.View()
	}
	if a.showSearch {
		return a.search.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		a.starmap.View(),
		strings.Repeat(" ", columnGap),
		a.current().View(),
	)

	status := views.RenderMessage(a.message, a.messageErr)
	if status == "" {
		status = views.RenderHelpLine(
			views.StarMapKeys.Next,
			views.StarMapKeys.Select,
			views.StarMapKeys.Jump,
			AppKeys.Search,
			AppKeys.Help,
			AppKeys.Quit,
		)
	}
	return styles.App.Render(body + "\n\n" + status)
}
