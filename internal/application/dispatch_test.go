package application

import (
	"testing"

	"pgregory.net/rapid"

	"starfolio/internal/domain"
)

func TestPanelFor(t *testing.T) {
	tests := []struct {
		view string
		want domain.ViewID
	}{
		{"home", domain.ViewHome},
		{"projects", domain.ViewProjects},
		{"technical", domain.ViewTechnical},
		{"writings", domain.ViewWritings},
		{"", domain.ViewHome},
		{"about", domain.ViewHome},
		{"Projects", domain.ViewHome},
	}

	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			if got := PanelFor(tt.view); got != tt.want {
				t.Errorf("PanelFor(%q) = %q, want %q", tt.view, got, tt.want)
			}
		})
	}
}

func TestPanelFor_IsTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "view")
		got := PanelFor(s)
		if !got.Valid() {
			t.Fatalf("PanelFor(%q) = %q is not a panel", s, got)
		}
		if v, ok := domain.ParseViewID(s); ok && got != v {
			t.Fatalf("PanelFor(%q) = %q, want %q", s, got, v)
		}
	})
}
