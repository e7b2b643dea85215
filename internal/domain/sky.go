package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDanglingEndpoint is returned when an edge references an unknown star
	ErrDanglingEndpoint = errors.New("dangling edge endpoint")
	// ErrUnmappedView is returned when a view has no star or more than one
	ErrUnmappedView = errors.New("view not mapped to exactly one star")
	// ErrUnknownSky is returned when a diagram name is not known
	ErrUnknownSky = errors.New("unknown sky")
)

// Coord is a position in display space
type Coord struct {
	X float64
	Y float64
}

// Point is a named navigation star
type Point struct {
	Key   string // authoring handle used by edges, e.g. "vega"
	View  ViewID // panel selected when the star is clicked
	X     float64
	Y     float64
	Label string // e.g. "Vega"
	Group string // e.g. "Lyra"
}

// Coord returns the star position
func (p Point) Coord() Coord {
	return Coord{X: p.X, Y: p.Y}
}

// Decor is a non-interactive marker
type Decor struct {
	X       float64
	Y       float64
	Radius  float64
	Fill    string
	Opacity float64
	Glow    string // drop-shadow value, e.g. "4px #fff"; empty for none
}

// Endpoint is one end of an edge: either a star reference or a literal coordinate
type Endpoint struct {
	Star  string
	Coord Coord
}

// StarRef returns an endpoint bound to the named star
func StarRef(key string) Endpoint {
	return Endpoint{Star: key}
}

// At returns an endpoint at a literal coordinate
func At(x, y float64) Endpoint {
	return Endpoint{Coord: Coord{X: x, Y: y}}
}

// IsStar reports whether the endpoint references a named star
func (e Endpoint) IsStar() bool {
	return e.Star != ""
}

func (e Endpoint) String() string {
	if e.IsStar() {
		return e.Star
	}
	return fmt.Sprintf("(%g, %g)", e.Coord.X, e.Coord.Y)
}

// Edge is a straight line between two endpoints
type Edge struct {
	From    Endpoint
	To      Endpoint
	Stroke  string
	Opacity float64
	Width   float64
}

// Sky is a complete diagram: navigation stars, decorative markers and edges
type Sky struct {
	Name   string
	Width  float64
	Height float64
	Stars  []Point
	Decor  []Decor
	Edges  []Edge
}

// Star returns the star with the given key
func (s *Sky) Star(key string) (Point, bool) {
	for _, p := range s.Stars {
		if p.Key == key {
			return p, true
		}
	}
	return Point{}, false
}

// StarFor returns the star that navigates to view
func (s *Sky) StarFor(view ViewID) (Point, bool) {
	for _, p := range s.Stars {
		if p.View == view {
			return p, true
		}
	}
	return Point{}, false
}

// Resolve returns the coordinate an endpoint refers to
func (s *Sky) Resolve(e Endpoint) (Coord, error) {
	if !e.IsStar() {
		return e.Coord, nil
	}
	p, ok := s.Star(e.Star)
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q", ErrDanglingEndpoint, e.Star)
	}
	return p.Coord(), nil
}

// Validate checks the authoring invariants of the sky. A sky with stars must
// map every view to exactly one star; a purely decorative sky has none.
func (s *Sky) Validate() error {
	var errs []error

	keys := make(map[string]bool, len(s.Stars))
	counts := make(map[ViewID]int, len(allViews))
	for _, p := range s.Stars {
		if p.Key == "" {
			errs = append(errs, fmt.Errorf("star %q: empty key", p.Label))
		} else if keys[p.Key] {
			errs = append(errs, fmt.Errorf("star %q: duplicate key", p.Key))
		}
		keys[p.Key] = true

		if !p.View.Valid() {
			errs = append(errs, fmt.Errorf("star %q: unknown view %q", p.Key, p.View))
			continue
		}
		counts[p.View]++
	}

	if len(s.Stars) > 0 {
		for _, v := range allViews {
			if counts[v] != 1 {
				errs = append(errs, fmt.Errorf("%w: %s has %d", ErrUnmappedView, v, counts[v]))
			}
		}
	}

	for i, e := range s.Edges {
		if _, err := s.Resolve(e.From); err != nil {
			errs = append(errs, fmt.Errorf("edge %d from: %w", i, err))
		}
		if _, err := s.Resolve(e.To); err != nil {
			errs = append(errs, fmt.Errorf("edge %d to: %w", i, err))
		}
		if e.Opacity < 0 || e.Opacity > 1 {
			errs = append(errs, fmt.Errorf("edge %d: opacity %g out of range", i, e.Opacity))
		}
		if e.Width <= 0 {
			errs = append(errs, fmt.Errorf("edge %d: width must be positive", i))
		}
	}

	for i, d := range s.Decor {
		if d.Radius <= 0 {
			errs = append(errs, fmt.Errorf("decor %d: radius must be positive", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("sky %q: %w", s.Name, errors.Join(errs...))
	}
	return nil
}
