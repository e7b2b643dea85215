package commands

import (
	"context"

	"starfolio/internal/application"
	"starfolio/internal/domain"
	"starfolio/internal/ports"
)

// Panel is a rendered content panel
type Panel struct {
	View     domain.ViewID
	Tab      string // set for the writings panel only
	Title    string
	Markdown string
}

// ShowPanelCommand renders one panel as markdown
type ShowPanelCommand struct {
	content ports.ContentSource
	View    string
	Tab     string
}

// NewShowPanelCommand creates a new ShowPanelCommand
func NewShowPanelCommand(content ports.ContentSource, view, tab string) *ShowPanelCommand {
	return &ShowPanelCommand{
		content: content,
		View:    view,
		Tab:     tab,
	}
}

// Validate checks the view and tab. A tab is only accepted for writings.
func (c *ShowPanelCommand) Validate() error {
	view, err := application.ValidateView("view", c.View)
	if err != nil {
		return err
	}
	if c.Tab == "" {
		return nil
	}
	if view != domain.ViewWritings {
		return &application.ValidationError{
			Field:   "tab",
			Message: "tabs only apply to the writings panel",
			Kind:    application.ErrUnknownTab,
		}
	}
	_, err = application.ValidateTab("tab", c.Tab)
	return err
}

// Execute runs the show panel command
func (c *ShowPanelCommand) Execute(ctx context.Context) (*Panel, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	view, _ := application.ValidateView("view", c.View)

	panel := &Panel{
		View:  view,
		Title: view.Title(),
	}
	if view == domain.ViewWritings {
		panel.Tab, _ = application.ValidateTab("tab", c.Tab)
	}
	panel.Markdown = application.RenderMarkdown(c.content.Portfolio(), view, panel.Tab)
	return panel, nil
}
