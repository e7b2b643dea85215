package commands

import (
	"context"
	"fmt"

	"starfolio/internal/application"
	"starfolio/internal/domain"
)

// NavigateResult contains the result of a navigation
type NavigateResult struct {
	Previous domain.ViewID
	Current  domain.ViewID
	Changed  bool
	Message  string
}

// NavigateCommand makes a panel active, as a click on its star does
type NavigateCommand struct {
	store *domain.Store
	View  string
}

// NewNavigateCommand creates a new NavigateCommand
func NewNavigateCommand(store *domain.Store, view string) *NavigateCommand {
	return &NavigateCommand{
		store: store,
		View:  view,
	}
}

// Validate checks that the target is one of the four panels
func (c *NavigateCommand) Validate() error {
	if err := application.ValidateRequired("view", c.View); err != nil {
		return err
	}
	_, err := application.ValidateView("view", c.View)
	return err
}

// Execute runs the navigate command. Navigating to the active panel is a
// no-op that still succeeds.
func (c *NavigateCommand) Execute(ctx context.Context) (*NavigateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	view, _ := application.ValidateView("view", c.View)

	prev := c.store.Get().Current
	changed := c.store.Navigate(view)

	msg := fmt.Sprintf("Showing %s", view.Title())
	if !changed {
		msg = fmt.Sprintf("Already showing %s", view.Title())
	}
	return &NavigateResult{
		Previous: prev,
		Current:  c.store.Get().Current,
		Changed:  changed,
		Message:  msg,
	}, nil
}
