package application

import "starfolio/internal/domain"

// Re-export domain types for use by adapters
type (
	ViewID    = domain.ViewID
	ViewState = domain.ViewState
	Portfolio = domain.Portfolio
	Scene     = domain.Scene
)

const (
	ViewHome      = domain.ViewHome
	ViewProjects  = domain.ViewProjects
	ViewTechnical = domain.ViewTechnical
	ViewWritings  = domain.ViewWritings
)

// Writings tabs
const (
	TabBooks = "books"
	TabGames = "games"
)

// DefaultTab is the writings tab selected whenever the panel mounts
const DefaultTab = TabBooks

// Tabs returns the writings tabs in display order
func Tabs() []string {
	return []string{TabBooks, TabGames}
}
