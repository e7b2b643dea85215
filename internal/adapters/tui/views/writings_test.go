package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"starfolio/internal/adapters/static"
)

func TestWritings_Tabs(t *testing.T) {
	m := NewWritingsModel(static.MustLoad().Portfolio())
	m.SetSize(120, 40)

	if got := m.Tab(); got != "books" {
		t.Fatalf("initial tab = %q, want books", got)
	}
	view := m.View()
	if n := strings.Count(view, "coming soon"); n != 5 {
		t.Errorf("books shows %d coming soon badges, want 5", n)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Tab(); got != "games" {
		t.Fatalf("tab after right = %q, want games", got)
	}
	view = m.View()
	if n := strings.Count(view, "coming soon"); n != 4 {
		t.Errorf("games shows %d coming soon badges, want 4", n)
	}
	if !strings.Contains(view, "Games as cognitive tools") {
		t.Error("games topics missing")
	}
	if strings.Contains(view, "Nietzsche") {
		t.Error("books topics shown on the games tab")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Tab(); got != "books" {
		t.Errorf("right wraps to %q, want books", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Tab(); got != "games" {
		t.Errorf("left wraps to %q, want games", got)
	}
	m.Update(keyRunes("b"))
	if got := m.Tab(); got != "books" {
		t.Errorf("b selects %q, want books", got)
	}
}

func TestWritings_MountResetsTab(t *testing.T) {
	m := NewWritingsModel(static.MustLoad().Portfolio())
	m.Select("games")
	m.Mount()
	if got := m.Tab(); got != "books" {
		t.Errorf("tab after Mount = %q, want books", got)
	}

	m.Select("poetry")
	if got := m.Tab(); got != "books" {
		t.Errorf("unknown shelf changed the tab to %q", got)
	}
}

func TestHelp_Close(t *testing.T) {
	m := NewHelpModel()
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, keyRunes("q"), keyRunes("?")} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s did not close help", k)
		}
		if _, ok := cmd().(CloseHelpMsg); !ok {
			t.Errorf("%s = %#v, want CloseHelpMsg", k, cmd())
		}
	}
}
