package tui

import (
	"errors"
	"os/exec"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"starfolio/internal/adapters/static"
	"starfolio/internal/adapters/tui/views"
	"starfolio/internal/application/commands"
	"starfolio/internal/domain"
	"starfolio/internal/ports"
)

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(url string) error {
	f.opened = append(f.opened, url)
	return f.err
}

func (f *fakeOpener) Command(url string) (*exec.Cmd, error) {
	return nil, errors.New("not supported")
}

type fakeClipboard struct {
	text string
}

func (f *fakeClipboard) Copy(text string) error {
	f.text = text
	return nil
}

func newTestApp(t *testing.T, opener ports.LinkOpener, clip ports.Clipboard) *App {
	t.Helper()
	app, err := NewApp(static.MustLoad(), opener, clip, Options{
		DefaultView:   domain.ViewHome,
		OrbitInterval: time.Millisecond,
		Mouse:         true,
	})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	app.Update(tea.WindowSizeMsg{Width: 200, Height: 80})
	return app
}

// send delivers msg and runs the resulting command chain, skipping timers
func send(app *App, msg tea.Msg) {
	_, cmd := app.Update(msg)
	for cmd != nil {
		next := cmd()
		if next == nil {
			return
		}
		if _, ok := next.(views.OrbitTickMsg); ok {
			return
		}
		_, cmd = app.Update(next)
	}
}

func TestApp_InitialLoad(t *testing.T) {
	app := newTestApp(t, nil, nil)
	if app.Init() == nil {
		t.Error("Init() should start the home orbit")
	}

	if got := app.State().Current; got != domain.ViewHome {
		t.Errorf("current = %q, want home", got)
	}
	marker, ok := app.StarMap().Scene().MarkerFor(domain.ViewHome)
	if !ok || !marker.Active {
		t.Error("Vega marker is not active")
	}

	view := app.View()
	for _, want := range []string{"Imdadullah Raji", "Vega", "Lyra", "▸ "} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestApp_ClickDenebShowsProjects(t *testing.T) {
	app := newTestApp(t, nil, nil)
	app.Init()

	x, y, _ := app.StarMap().StarCell(domain.ViewProjects)
	send(app, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if got := app.State().Current; got != domain.ViewProjects {
		t.Fatalf("current = %q, want projects", got)
	}
	view := app.View()
	for _, want := range []string{
		"Autonomous Drone-Ground Swarm Coordination",
		"Hybrid UAV-UGV Environment Mapping",
		"Data-Driven Dynamics Explorer",
		"Published - ICME 2025",
		"Ongoing",
		"In Development",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("projects view missing %q", want)
		}
	}
	if strings.Contains(view, "Imdadullah Raji") {
		t.Error("home panel still shown")
	}
}

func TestApp_NavigateAwayStopsOrbit(t *testing.T) {
	app := newTestApp(t, nil, nil)
	app.Init()
	send(app, views.NavigateMsg{View: domain.ViewWritings})

	before := app.Home().Orbit().Angle
	for gen := range 4 {
		if _, cmd := app.Update(views.OrbitTickMsg{Gen: gen}); cmd != nil {
			t.Errorf("tick %d rescheduled while home is hidden", gen)
		}
	}
	if got := app.Home().Orbit().Angle; got != before {
		t.Errorf("orbit moved from %v to %v while hidden", before, got)
	}
}

func TestApp_WritingsTabs(t *testing.T) {
	app := newTestApp(t, nil, nil)
	send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	if got := app.State().Current; got != domain.ViewWritings {
		t.Fatalf("current = %q, want writings", got)
	}

	send(app, tea.KeyMsg{Type: tea.KeyRight})
	view := app.View()
	if n := strings.Count(view, "coming soon"); n != 4 {
		t.Errorf("games tab shows %d coming soon badges, want 4", n)
	}

	// leaving and coming back starts on books again
	send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	if got := app.Writings().Tab(); got != "books" {
		t.Errorf("tab after remount = %q, want books", got)
	}
}

func TestApp_HoverLabels(t *testing.T) {
	app := newTestApp(t, nil, nil)

	x, y, _ := app.StarMap().StarCell(domain.ViewProjects)
	send(app, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
	if !strings.Contains(app.View(), "Deneb") {
		t.Error("Deneb label not shown on hover")
	}

	send(app, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	view := app.View()
	if strings.Contains(view, "Deneb") {
		t.Error("Deneb label still shown after the pointer left")
	}
	if !strings.Contains(view, "Vega") {
		t.Error("active Vega label hidden")
	}
}

func TestApp_OpenAndCopy(t *testing.T) {
	opener := &fakeOpener{}
	clip := &fakeClipboard{}
	app := newTestApp(t, opener, clip)
	resume := static.MustLoad().Portfolio().Profile.ResumeURL

	send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if len(opener.opened) != 1 || opener.opened[0] != resume {
		t.Errorf("opened = %v, want [%s]", opener.opened, resume)
	}
	if !strings.Contains(app.View(), "Opened CV") {
		t.Error("status line does not report the opened link")
	}

	send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if clip.text != resume {
		t.Errorf("clipboard = %q, want %q", clip.text, resume)
	}

	opener.err = errors.New("no browser")
	send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if !strings.Contains(app.View(), "no browser") {
		t.Error("status line does not report the open failure")
	}
}

func TestApp_NilOpenerReportsError(t *testing.T) {
	app := newTestApp(t, nil, nil)
	send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if !strings.Contains(app.View(), "no link opener") {
		t.Error("missing opener not reported")
	}
}

func TestApp_Help(t *testing.T) {
	app := newTestApp(t, nil, nil)
	send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !app.showHelp {
		t.Fatal("? did not open help")
	}
	if !strings.Contains(app.View(), "Star map") {
		t.Error("help view not rendered")
	}

	// keys go to help while it is open
	send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	if got := app.State().Current; got != domain.ViewHome {
		t.Errorf("navigated to %q behind the help screen", got)
	}

	send(app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.showHelp {
		t.Error("esc did not close help")
	}
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(t, nil, nil)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestApp_SearchSelectsShelf(t *testing.T) {
	app := newTestApp(t, nil, nil)
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !app.showSearch {
		t.Fatal("/ did not open search")
	}

	// typing q goes to the query, not quit
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil && reflect.ValueOf(cmd).Pointer() == reflect.ValueOf(tea.Quit).Pointer() {
		t.Fatal("q quit while searching")
	}
	if !app.showSearch {
		t.Fatal("q closed search")
	}

	result := commands.SearchResult{Entry: commands.Entry{
		View:  domain.ViewWritings,
		Tab:   "games",
		Title: "Games as cognitive tools",
	}}
	send(app, views.SearchSelectMsg{Result: result})

	if app.showSearch {
		t.Error("search still open after selecting")
	}
	if got := app.State().Current; got != domain.ViewWritings {
		t.Errorf("current = %q, want writings", got)
	}
	if got := app.Writings().Tab(); got != "games" {
		t.Errorf("tab = %q, want games", got)
	}
}

func TestApp_NavigateRunsCommand(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app, err := NewApp(static.MustLoad(), nil, nil, Options{
		DefaultView:   domain.ViewHome,
		OrbitInterval: time.Millisecond,
		Logger:        zap.New(core),
	})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	app.Update(tea.WindowSizeMsg{Width: 200, Height: 80})

	send(app, views.NavigateMsg{View: domain.ViewProjects})
	if got := app.State().Current; got != domain.ViewProjects {
		t.Fatalf("current = %q, want projects", got)
	}
	entries := logs.FilterMessage("Showing projects").All()
	if len(entries) != 1 {
		t.Fatalf("got %d navigation log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["from"] != "home" || fields["to"] != "projects" {
		t.Errorf("log fields = %v, want from=home to=projects", fields)
	}

	// same panel again: no remount, no log
	if _, cmd := app.Update(views.NavigateMsg{View: domain.ViewProjects}); cmd != nil {
		t.Error("navigating to the active panel should return no command")
	}
	if n := logs.FilterMessage("Showing projects").Len(); n != 1 {
		t.Errorf("got %d navigation log entries after repeat, want 1", n)
	}

	// unknown view is rejected by validation and the state is kept
	if _, cmd := app.Update(views.NavigateMsg{View: domain.ViewID("archive")}); cmd != nil {
		t.Error("unknown view should return no command")
	}
	if got := app.State().Current; got != domain.ViewProjects {
		t.Errorf("current = %q after unknown view, want projects", got)
	}
	if n := logs.FilterMessage("navigation rejected").Len(); n != 1 {
		t.Errorf("got %d rejection log entries, want 1", n)
	}
}
