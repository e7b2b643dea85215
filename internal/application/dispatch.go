package application

import "starfolio/internal/domain"

// PanelFor maps a view identifier to the panel that renders it. Anything
// that is not one of the four views falls back to home.
func PanelFor(view string) domain.ViewID {
	if v, ok := domain.ParseViewID(view); ok {
		return v
	}
	return domain.DefaultView
}
