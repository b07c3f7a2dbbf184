// internal/component/health.go
package component

// Health tracks current and maximum hit points.
type Health struct {
	Value int
	Max   int
}

// Fraction returns Value/Max clamped to [0, 1] for bar rendering.
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := float64(h.Value) / float64(h.Max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
