// internal/component/movement.go
package component

// Position is an entity's location on the lane plane.
type Position struct {
	X, Y float64
}

// Velocity holds an entity's movement speed.
type Velocity struct {
	Speed float64
}

// Waypoint is one step of a precomputed lane path.
type Waypoint struct {
	X, Y float64
}

// Path is the ordered waypoint queue a unit follows toward the opposing
// base. CurrentIndex advances instead of popping so the full path stays
// available for drawing.
type Path struct {
	Points       []Waypoint
	CurrentIndex int
}

// Current returns the active waypoint, or false when the path is exhausted.
func (p *Path) Current() (Waypoint, bool) {
	if p.CurrentIndex >= len(p.Points) {
		return Waypoint{}, false
	}
	return p.Points[p.CurrentIndex], true
}

// Advance moves on to the next waypoint.
func (p *Path) Advance() {
	p.CurrentIndex++
}

// Remaining returns the waypoints not yet reached.
func (p *Path) Remaining() []Waypoint {
	if p.CurrentIndex >= len(p.Points) {
		return nil
	}
	return p.Points[p.CurrentIndex:]
}
