package commands

import (
	"context"
	"errors"
	"testing"

	"starfolio/internal/application"
	"starfolio/internal/domain"
)

func TestNavigateCommand(t *testing.T) {
	tests := []struct {
		name        string
		start       domain.ViewID
		view        string
		wantCurrent domain.ViewID
		wantChanged bool
		wantErr     error
	}{
		{
			name:        "home to projects",
			start:       domain.ViewHome,
			view:        "projects",
			wantCurrent: domain.ViewProjects,
			wantChanged: true,
		},
		{
			name:        "same panel is a no-op",
			start:       domain.ViewWritings,
			view:        "writings",
			wantCurrent: domain.ViewWritings,
			wantChanged: false,
		},
		{
			name:    "unknown view",
			start:   domain.ViewHome,
			view:    "blog",
			wantErr: application.ErrUnknownView,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := domain.NewStore(tt.start)
			res, err := NewNavigateCommand(store, tt.view).Execute(context.Background())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if store.Get().Current != tt.start {
					t.Error("failed navigation must not change the state")
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error: %v", err)
			}
			if res.Current != tt.wantCurrent || store.Get().Current != tt.wantCurrent {
				t.Errorf("current = %q (store %q), want %q", res.Current, store.Get().Current, tt.wantCurrent)
			}
			if res.Changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", res.Changed, tt.wantChanged)
			}
			if res.Previous != tt.start {
				t.Errorf("previous = %q, want %q", res.Previous, tt.start)
			}
		})
	}
}

func TestNavigateCommand_Validate(t *testing.T) {
	cmd := &NavigateCommand{View: "  "}
	err := cmd.Validate()

	var valErr *application.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if valErr.Message != "view is required" {
		t.Errorf("message = %q", valErr.Message)
	}
}
