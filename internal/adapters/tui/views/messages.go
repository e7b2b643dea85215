package views

import (
	"starfolio/internal/application/commands"
	"starfolio/internal/domain"
)

// NavigateMsg asks the app to make View the active panel
type NavigateMsg struct {
	View domain.ViewID
}

// SwitchToHelpMsg opens the key reference
type SwitchToHelpMsg struct{}

// CloseHelpMsg returns from the key reference
type CloseHelpMsg struct{}

// CloseSearchMsg dismisses the search overlay
type CloseSearchMsg struct{}

// SearchSelectMsg is sent when a search result is chosen
type SearchSelectMsg struct {
	Result commands.SearchResult
}

// OpenLinkMsg asks the app to open an external link
type OpenLinkMsg struct {
	Label string
	URL   string
}

// CopyMsg asks the app to put Text on the clipboard
type CopyMsg struct {
	Label string
	Text  string
}

// ActionResultMsg reports the outcome of a link or clipboard action
type ActionResultMsg struct {
	Message string
	Err     error
}

// OrbitTickMsg advances the orbiting marker. Ticks from an earlier mount
// carry a stale Gen and are dropped.
type OrbitTickMsg struct {
	Gen int
}
