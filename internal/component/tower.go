// internal/component/tower.go
package component

import "go-lane-clash/internal/types"

// TargetCandidate pairs a unit in range with its distance to the tower.
type TargetCandidate struct {
	ID       types.EntityID
	Distance float64
}

// Tower is a stationary base defender. Candidates is rebuilt from scratch
// every tick, ordered best target first.
type Tower struct {
	Side        types.Side
	Damage      int
	AttackRate  float64
	Range       float64
	AttackTimer float64
	Candidates  []TargetCandidate
}
