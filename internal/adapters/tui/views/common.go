package views

// Panel size used until the first window size message arrives
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// PanelState holds the size every panel model lays itself out in.
// Embed it in panel models.
type PanelState struct {
	Width  int
	Height int
}

// SetSize updates the view dimensions
func (s *PanelState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}
