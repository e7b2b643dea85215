package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"starfolio/internal/adapters/static"
	"starfolio/internal/application"
	"starfolio/internal/domain"
)

func TestShowPanelCommand(t *testing.T) {
	src := static.MustLoad()

	tests := []struct {
		name      string
		view      string
		tab       string
		wantView  domain.ViewID
		wantTab   string
		wantTitle string
		contains  string
		wantErr   error
	}{
		{
			name:      "default is home",
			wantView:  domain.ViewHome,
			wantTitle: "home",
			contains:  "# Imdadullah Raji",
		},
		{
			name:      "projects",
			view:      "projects",
			wantView:  domain.ViewProjects,
			wantTitle: "projects",
			contains:  "Autonomous Drone-Ground Swarm Coordination",
		},
		{
			name:      "writings defaults to books",
			view:      "writings",
			wantView:  domain.ViewWritings,
			wantTab:   "books",
			wantTitle: "writings & thoughts",
			contains:  "Cognitive science and emergence",
		},
		{
			name:      "writings games",
			view:      "writings",
			tab:       "games",
			wantView:  domain.ViewWritings,
			wantTab:   "games",
			wantTitle: "writings & thoughts",
			contains:  "Games as cognitive tools",
		},
		{
			name:    "unknown tab",
			view:    "writings",
			tab:     "films",
			wantErr: application.ErrUnknownTab,
		},
		{
			name:    "tab on a panel without tabs",
			view:    "projects",
			tab:     "games",
			wantErr: application.ErrUnknownTab,
		},
		{
			name:    "unknown view",
			view:    "contact",
			wantErr: application.ErrUnknownView,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel, err := NewShowPanelCommand(src, tt.view, tt.tab).Execute(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error: %v", err)
			}
			if panel.View != tt.wantView || panel.Tab != tt.wantTab || panel.Title != tt.wantTitle {
				t.Errorf("panel = {%q %q %q}, want {%q %q %q}",
					panel.View, panel.Tab, panel.Title, tt.wantView, tt.wantTab, tt.wantTitle)
			}
			if !strings.Contains(panel.Markdown, tt.contains) {
				t.Errorf("markdown missing %q", tt.contains)
			}
		})
	}
}
