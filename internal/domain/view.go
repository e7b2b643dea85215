package domain

// ViewID identifies a content panel and the navigation star that selects it
type ViewID string

const (
	ViewHome      ViewID = "home"
	ViewProjects  ViewID = "projects"
	ViewTechnical ViewID = "technical"
	ViewWritings  ViewID = "writings"
)

// DefaultView is the panel shown on startup and the dispatcher fallback
const DefaultView = ViewHome

var allViews = []ViewID{ViewHome, ViewProjects, ViewTechnical, ViewWritings}

// AllViews returns every view in display order
func AllViews() []ViewID {
	out := make([]ViewID, len(allViews))
	copy(out, allViews)
	return out
}

// ParseViewID returns the ViewID for s and whether it is a known view
func ParseViewID(s string) (ViewID, bool) {
	v := ViewID(s)
	return v, v.Valid()
}

// Valid reports whether v is one of the four known views
func (v ViewID) Valid() bool {
	switch v {
	case ViewHome, ViewProjects, ViewTechnical, ViewWritings:
		return true
	}
	return false
}

// String returns the view identifier
func (v ViewID) String() string {
	return string(v)
}

// Title returns the heading the panel is shown under
func (v ViewID) Title() string {
	switch v {
	case ViewProjects:
		return "projects"
	case ViewTechnical:
		return "technical writings"
	case ViewWritings:
		return "writings & thoughts"
	default:
		return "home"
	}
}
