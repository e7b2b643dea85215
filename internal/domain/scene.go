package domain

// SceneStyle controls how navigation stars and their labels are drawn
type SceneStyle struct {
	Radius       float64
	ActiveRadius float64
	Fill         string
	ActiveFill   string
	Glow         string
	ActiveGlow   string

	LabelOffset float64 // name label is drawn this far above the star
	GroupOffset float64 // group label is drawn this far above the star
	LabelColor  string
	GroupColor  string
	LabelSize   float64
	GroupSize   float64

	HitSlop float64 // extra radius accepted by HitTest
}

// DefaultSceneStyle returns the navigation star style
func DefaultSceneStyle() SceneStyle {
	return SceneStyle{
		Radius:       5,
		ActiveRadius: 7,
		Fill:         "#d4d4d8",
		ActiveFill:   "#60a5fa",
		Glow:         "2px #fff",
		ActiveGlow:   "10px #60a5fa",
		LabelOffset:  15,
		GroupOffset:  5,
		LabelColor:   "#fff",
		GroupColor:   "#888",
		LabelSize:    10,
		GroupSize:    8,
		HitSlop:      3,
	}
}

// Line is a rendered edge
type Line struct {
	X1, Y1  float64
	X2, Y2  float64
	Stroke  string
	Opacity float64
	Width   float64
}

// Marker is a rendered star or decorative dot
type Marker struct {
	X, Y        float64
	Radius      float64
	Fill        string
	Opacity     float64
	Glow        string
	Interactive bool
	Active      bool
	View        ViewID // set for interactive markers only
}

// Label is a rendered text annotation
type Label struct {
	X, Y  float64
	Text  string
	Color string
	Size  float64
	Bold  bool
	View  ViewID
	Group bool // true for the constellation annotation
}

// Scene is the declarative output of the diagram renderer. Hosts draw Lines,
// then Markers, then Labels, in slice order.
type Scene struct {
	Width   float64
	Height  float64
	Lines   []Line
	Markers []Marker
	Labels  []Label
}

// RenderScene turns a sky and the current view state into a scene
func RenderScene(sky *Sky, state ViewState, style SceneStyle) Scene {
	scene := Scene{
		Width:   sky.Width,
		Height:  sky.Height,
		Lines:   make([]Line, 0, len(sky.Edges)),
		Markers: make([]Marker, 0, len(sky.Decor)+len(sky.Stars)),
	}

	for _, e := range sky.Edges {
		from, err := sky.Resolve(e.From)
		if err != nil {
			continue
		}
		to, err := sky.Resolve(e.To)
		if err != nil {
			continue
		}
		scene.Lines = append(scene.Lines, Line{
			X1: from.X, Y1: from.Y,
			X2: to.X, Y2: to.Y,
			Stroke:  e.Stroke,
			Opacity: e.Opacity,
			Width:   e.Width,
		})
	}

	for _, d := range sky.Decor {
		scene.Markers = append(scene.Markers, Marker{
			X: d.X, Y: d.Y,
			Radius:  d.Radius,
			Fill:    d.Fill,
			Opacity: d.Opacity,
			Glow:    d.Glow,
		})
	}

	for _, p := range sky.Stars {
		active := state.IsActive(p.View)
		m := Marker{
			X: p.X, Y: p.Y,
			Radius:      style.Radius,
			Fill:        style.Fill,
			Opacity:     1,
			Glow:        style.Glow,
			Interactive: true,
			View:        p.View,
		}
		if active {
			m.Radius = style.ActiveRadius
			m.Fill = style.ActiveFill
			m.Glow = style.ActiveGlow
			m.Active = true
		}
		scene.Markers = append(scene.Markers, m)

		if !state.LabelVisible(p.View) {
			continue
		}
		scene.Labels = append(scene.Labels,
			Label{
				X: p.X, Y: p.Y - style.LabelOffset,
				Text:  p.Label,
				Color: style.LabelColor,
				Size:  style.LabelSize,
				Bold:  true,
				View:  p.View,
			},
			Label{
				X: p.X, Y: p.Y - style.GroupOffset,
				Text:  p.Group,
				Color: style.GroupColor,
				Size:  style.GroupSize,
				View:  p.View,
				Group: true,
			},
		)
	}

	return scene
}

// HitTest returns the topmost interactive marker containing (x, y), widened
// by slop
func (s Scene) HitTest(x, y, slop float64) (Marker, bool) {
	for i := len(s.Markers) - 1; i >= 0; i-- {
		m := s.Markers[i]
		if !m.Interactive {
			continue
		}
		r := m.Radius + slop
		dx, dy := x-m.X, y-m.Y
		if dx*dx+dy*dy <= r*r {
			return m, true
		}
	}
	return Marker{}, false
}

// LabelsFor returns the labels attached to view's star
func (s Scene) LabelsFor(view ViewID) []Label {
	var out []Label
	for _, l := range s.Labels {
		if l.View == view {
			out = append(out, l)
		}
	}
	return out
}

// MarkerFor returns the interactive marker for view
func (s Scene) MarkerFor(view ViewID) (Marker, bool) {
	for _, m := range s.Markers {
		if m.Interactive && m.View == view {
			return m, true
		}
	}
	return Marker{}, false
}
