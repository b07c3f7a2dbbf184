// internal/component/status_effect.go
package component

// FreezeEffect suspends a unit's movement, targeting and attacks. Presence
// in the ECS map is the frozen flag; Timer is seconds remaining.
type FreezeEffect struct {
	Timer float64
}
