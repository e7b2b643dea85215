package domain

import "math"

// Orbit is the decorative marker circling the profile photo
type Orbit struct {
	Angle  float64 // degrees, [0, 360)
	Step   float64 // degrees per tick
	Radius float64
}

// NewOrbit returns an orbit starting at angle zero
func NewOrbit(step, radius float64) Orbit {
	return Orbit{Step: step, Radius: radius}
}

// Advance moves the marker one step along the orbit
func (o *Orbit) Advance() {
	o.Angle = math.Mod(o.Angle+o.Step, 360)
	if o.Angle < 0 {
		o.Angle += 360
	}
}

// Position returns the marker position around the centre (cx, cy).
// Angle zero is at the top; angles grow clockwise in screen space.
func (o Orbit) Position(cx, cy float64) Coord {
	rad := o.Angle * math.Pi / 180
	return Coord{
		X: cx + o.Radius*math.Sin(rad),
		Y: cy - o.Radius*math.Cos(rad),
	}
}
