package commands

import (
	"context"
	"fmt"

	"starfolio/internal/domain"
	"starfolio/internal/ports"
)

// ViewEntry describes a panel and the star that navigates to it
type ViewEntry struct {
	View   domain.ViewID
	Title  string
	Star   string
	Group  string
	Coord  domain.Coord
	Active bool
}

// ListViewsCommand lists the panels in display order
type ListViewsCommand struct {
	content ports.ContentSource
	Current domain.ViewID
}

// NewListViewsCommand creates a new ListViewsCommand. current marks the
// active panel; pass "" when there is no session.
func NewListViewsCommand(content ports.ContentSource, current domain.ViewID) *ListViewsCommand {
	return &ListViewsCommand{
		content: content,
		Current: current,
	}
}

// Execute runs the list views command
func (c *ListViewsCommand) Execute(ctx context.Context) ([]ViewEntry, error) {
	sky, err := c.content.Sky(ports.SkyNav)
	if err != nil {
		return nil, fmt.Errorf("failed to load navigation sky: %w", err)
	}

	views := domain.AllViews()
	entries := make([]ViewEntry, 0, len(views))
	for _, v := range views {
		e := ViewEntry{
			View:   v,
			Title:  v.Title(),
			Active: v == c.Current,
		}
		if star, ok := sky.StarFor(v); ok {
			e.Star = star.Label
			e.Group = star.Group
			e.Coord = star.Coord()
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ListLinksCommand lists the external links shown on the home panel,
// résumé first
type ListLinksCommand struct {
	content ports.ContentSource
}

// NewListLinksCommand creates a new ListLinksCommand
func NewListLinksCommand(content ports.ContentSource) *ListLinksCommand {
	return &ListLinksCommand{content: content}
}

// Execute runs the list links command
func (c *ListLinksCommand) Execute(ctx context.Context) ([]domain.Link, error) {
	prof := c.content.Portfolio().Profile
	links := make([]domain.Link, 0, len(prof.Links)+1)
	if prof.ResumeURL != "" {
		links = append(links, domain.Link{
			Kind:  domain.LinkResume,
			Label: "Download CV",
			URL:   prof.ResumeURL,
		})
	}
	links = append(links, prof.Links...)
	return links, nil
}
