// internal/component/projectile.go
package component

import "image/color"

// Projectile is a purely visual tracer between two points. It carries no
// gameplay effect; damage was already applied when it was spawned.
type Projectile struct {
	StartX, StartY float64
	EndX, EndY     float64
	Progress       float64 // 0..1, advanced by the projectile system
	Color          color.RGBA
}

// At returns the interpolated position for the current progress.
func (p *Projectile) At() (float64, float64) {
	t := p.Progress
	if t > 1 {
		t = 1
	}
	return p.StartX + (p.EndX-p.StartX)*t, p.StartY + (p.EndY-p.StartY)*t
}
