// internal/system/unit.go
package system

import (
	"sort"

	"go-lane-clash/internal/component"
	"go-lane-clash/internal/config"
	"go-lane-clash/internal/entity"
	"go-lane-clash/internal/event"
	"go-lane-clash/internal/types"
	"go-lane-clash/internal/utils"
)

// UnitSystem runs the per-unit state machine: freeze gate, stale-target
// revalidation, priority target search, then attack or move.
type UnitSystem struct {
	ecs        *entity.ECS
	movement   *MovementSystem
	dispatcher *event.Dispatcher
}

func NewUnitSystem(ecs *entity.ECS, movement *MovementSystem, dispatcher *event.Dispatcher) *UnitSystem {
	return &UnitSystem{ecs: ecs, movement: movement, dispatcher: dispatcher}
}

// UpdateUnit advances one living unit by deltaTime. Dead units (components
// already removed) are skipped.
func (s *UnitSystem) UpdateUnit(id types.EntityID, deltaTime float64) {
	unit, ok := s.ecs.Units[id]
	if !ok {
		return
	}

	// A frozen unit only counts down its timer this tick.
	if freeze, frozen := s.ecs.FreezeEffects[id]; frozen {
		freeze.Timer -= deltaTime
		if freeze.Timer <= 0 {
			delete(s.ecs.FreezeEffects, id)
		}
		return
	}

	// The target reference is weak; revalidate before every use.
	if unit.TargetID == 0 || !s.ecs.UnitAlive(unit.TargetID) {
		s.findTargetWithPriority(id, unit)
	}

	if unit.TargetID != 0 && s.ecs.UnitAlive(unit.TargetID) {
		pos := s.ecs.Positions[id]
		targetPos := s.ecs.Positions[unit.TargetID]
		dist := utils.Distance(pos.X, pos.Y, targetPos.X, targetPos.Y)

		if dist <= unit.Range {
			unit.AttackTimer += deltaTime
			if unit.AttackTimer >= unit.AttackRate {
				s.attack(id, unit)
				unit.AttackTimer = 0
			}
		} else {
			s.movement.Step(id, deltaTime)
			unit.AttackTimer = 0
		}
		return
	}

	// No target, keep marching toward the opposing base.
	s.movement.Step(id, deltaTime)
}

// findTargetWithPriority scans living opponents within 1.5x attack range and
// picks the best one: near-equal distances (within the tie band) resolve to
// the lower-HP unit, otherwise the strictly closer one wins. The scan walks
// UnitOrder, so the candidate set is deterministic.
func (s *UnitSystem) findTargetWithPriority(id types.EntityID, unit *component.Unit) {
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}

	type candidate struct {
		id       types.EntityID
		distance float64
	}
	var candidates []candidate

	searchRange := unit.Range * config.TargetSearchFactor
	for _, otherID := range s.ecs.UnitOrder {
		if otherID == id || !s.ecs.UnitAlive(otherID) {
			continue
		}
		other := s.ecs.Units[otherID]
		if other.Side == unit.Side {
			continue
		}
		otherPos := s.ecs.Positions[otherID]
		dist := utils.Distance(pos.X, pos.Y, otherPos.X, otherPos.Y)
		if dist <= searchRange {
			candidates = append(candidates, candidate{id: otherID, distance: dist})
		}
	}

	if len(candidates) == 0 {
		unit.TargetID = 0
		return
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if diff := a.distance - b.distance; diff < config.TargetTieBand && diff > -config.TargetTieBand {
			return s.ecs.Healths[a.id].Value < s.ecs.Healths[b.id].Value
		}
		return a.distance < b.distance
	})
	unit.TargetID = candidates[0].id
}

// attack applies the unit's damage to its target, plus half damage to every
// other living opponent inside the splash radius for area attackers. The
// primary target is never splashed twice.
func (s *UnitSystem) attack(id types.EntityID, unit *component.Unit) {
	targetID := unit.TargetID
	if !s.ecs.UnitAlive(targetID) {
		return
	}

	pos := s.ecs.Positions[id]
	targetPos := s.ecs.Positions[targetID]
	impactX, impactY := targetPos.X, targetPos.Y

	var splashVictims []types.EntityID
	if unit.Splash {
		for _, otherID := range s.ecs.UnitOrder {
			if otherID == targetID || !s.ecs.UnitAlive(otherID) {
				continue
			}
			other := s.ecs.Units[otherID]
			if other.Side == unit.Side {
				continue
			}
			otherPos := s.ecs.Positions[otherID]
			if utils.Distance(otherPos.X, otherPos.Y, impactX, impactY) < config.SplashRadius {
				splashVictims = append(splashVictims, otherID)
			}
		}
	}

	tracer := config.PlayerColor
	if unit.Side == types.SideEnemy {
		tracer = config.EnemyColor
	}
	s.dispatcher.Dispatch(event.Event{Type: event.UnitAttacked, Data: event.AttackPayload{
		FromX: pos.X, FromY: pos.Y, ToX: impactX, ToY: impactY, Color: tracer,
	}})

	if ApplyDamage(s.ecs, s.dispatcher, targetID, unit.Damage) {
		unit.TargetID = 0
	}
	splash := int(float64(unit.Damage) * config.SplashDamageFactor)
	for _, victimID := range splashVictims {
		ApplyDamage(s.ecs, s.dispatcher, victimID, splash)
	}
}
