package ports

import "starfolio/internal/domain"

// Sky names served by a ContentSource
const (
	SkyNav        = "nav"
	SkyBackground = "background"
)

// ContentSource provides the static portfolio content and diagrams
type ContentSource interface {
	// Portfolio returns the content rendered by the four panels
	Portfolio() domain.Portfolio

	// Sky returns the named diagram ("nav" or "background")
	Sky(name string) (*domain.Sky, error)
}
