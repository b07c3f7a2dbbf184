// internal/component/unit.go
package component

import (
	"go-lane-clash/internal/defs"
	"go-lane-clash/internal/types"
)

// Unit holds the per-unit combat state. TargetID is a weak reference into
// the unit store: it may point at an entity that died this tick, so every
// consumer revalidates liveness before use.
type Unit struct {
	DefID       defs.UnitID
	Side        types.Side
	Damage      int
	AttackRate  float64 // seconds between attacks
	Range       float64
	Ranged      bool
	Splash      bool
	AttackTimer float64
	TargetID    types.EntityID // 0 when no target
}
