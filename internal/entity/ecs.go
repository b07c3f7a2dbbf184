// internal/entity/ecs.go
package entity

import (
	"go-lane-clash/internal/component"
	"go-lane-clash/internal/types"
)

// ECS stores every component keyed by entity ID. Units additionally keep a
// stable spawn-order list: Go map iteration order is random, and tick
// resolution must be deterministic, so every pass over units walks UnitOrder.
type ECS struct {
	NextID types.EntityID

	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.Path
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Units         map[types.EntityID]*component.Unit
	Towers        map[types.EntityID]*component.Tower
	Projectiles   map[types.EntityID]*component.Projectile
	FreezeEffects map[types.EntityID]*component.FreezeEffect

	// UnitOrder lists living units in spawn order. Entries whose components
	// were removed mid-tick are tolerated by liveness checks and dropped by
	// CompactUnitOrder at the end of the tick.
	UnitOrder []types.EntityID

	Wave  *component.Wave
	Match *component.Match
}

// NewECS creates an empty store with the match in the pre-game phase.
func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.Path),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Units:         make(map[types.EntityID]*component.Unit),
		Towers:        make(map[types.EntityID]*component.Tower),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		FreezeEffects: make(map[types.EntityID]*component.FreezeEffect),
		Match:         &component.Match{Phase: component.PhasePreGame},
	}
}

// NewEntity reserves a fresh entity ID.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// UnitAlive reports whether id refers to a living unit. Dead units lose all
// components immediately, so a stale TargetID simply fails this check.
func (ecs *ECS) UnitAlive(id types.EntityID) bool {
	if _, ok := ecs.Units[id]; !ok {
		return false
	}
	h, ok := ecs.Healths[id]
	return ok && h.Value > 0
}

// RemoveUnit drops every component of a unit. Its UnitOrder slot stays until
// the next CompactUnitOrder so iteration indices remain valid mid-pass.
func (ecs *ECS) RemoveUnit(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Units, id)
	delete(ecs.FreezeEffects, id)
}

// CompactUnitOrder drops order entries whose unit no longer exists,
// preserving the relative order of survivors.
func (ecs *ECS) CompactUnitOrder() {
	kept := ecs.UnitOrder[:0]
	for _, id := range ecs.UnitOrder {
		if _, ok := ecs.Units[id]; ok {
			kept = append(kept, id)
		}
	}
	ecs.UnitOrder = kept
}
