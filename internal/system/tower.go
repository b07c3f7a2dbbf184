// internal/system/tower.go
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

// TowerSystem accrues tower attack timers, rebuilds each tower's candidate
// list, and resolves tower fire. The two phases are split because the tick
// order updates both towers before any unit moves, and resolves their shots
// only after every unit has acted.
type TowerSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewTowerSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *TowerSystem {
	return &TowerSystem{ecs: ecs, dispatcher: dispatcher}
}

// UpdateTower accrues the attack timer and rebuilds the candidate list from
// the living opponents inside range, best target first. The timer keeps
// accruing while no candidate qualifies; it only resets on an actual shot.
func (s *TowerSystem) UpdateTower(id types.EntityID, deltaTime float64) {
	tower, ok := s.ecs.Towers[id]
	if !ok {
		return
	}
	if health, ok := s.ecs.Healths[id]; !ok || health.Value <= 0 {
		return
	}
	tower.AttackTimer += deltaTime

	pos := s.ecs.Positions[id]
	tower.Candidates = tower.Candidates[:0]
	for _, unitID := range s.ecs.UnitOrder {
		if !s.ecs.UnitAlive(unitID) {
			continue
		}
		unit := s.ecs.Units[unitID]
		if unit.Side == tower.Side {
			continue
		}
		unitPos := s.ecs.Positions[unitID]
		dist := utils.Distance(pos.X, pos.Y, unitPos.X, unitPos.Y)
		if dist < tower.Range {
			tower.Candidates = append(tower.Candidates, component.TargetCandidate{ID: unitID, Distance: dist})
		}
	}

	// Near-equal distances resolve to the lower-HP unit, otherwise closer
	// first. Same priority units use, seen from the tower.
	sort.SliceStable(tower.Candidates, func(i, j int) bool {
		a, b := tower.Candidates[i], tower.Candidates[j]
		if diff := a.Distance - b.Distance; diff < config.TargetTieBand && diff > -config.TargetTieBand {
			return s.ecs.Healths[a.ID].Value < s.ecs.Healths[b.ID].Value
		}
		return a.Distance < b.Distance
	})
}

// BestTarget peeks at the head of the candidate list without consuming it.
func (s *TowerSystem) BestTarget(id types.EntityID) (types.EntityID, bool) {
	tower, ok := s.ecs.Towers[id]
	if !ok || len(tower.Candidates) == 0 {
		return 0, false
	}
	return tower.Candidates[0].ID, true
}

// ResolveAttack fires at the best target if the attack timer has matured.
// Candidates may have died since the list was built, so liveness is checked
// again here; a stale head does not consume the shot.
func (s *TowerSystem) ResolveAttack(id types.EntityID) {
	tower, ok := s.ecs.Towers[id]
	if !ok {
		return
	}
	if health, ok := s.ecs.Healths[id]; !ok || health.Value <= 0 {
		return
	}
	if tower.AttackTimer < tower.AttackRate {
		return
	}

	targetID, ok := s.bestLivingTarget(id)
	if !ok {
		return
	}

	pos := s.ecs.Positions[id]
	targetPos := s.ecs.Positions[targetID]
	tracer := config.PlayerColor
	if tower.Side == types.SideEnemy {
		tracer = config.EnemyColor
	}
	s.dispatcher.Dispatch(event.Event{Type: event.TowerFired, Data: event.AttackPayload{
		FromX: pos.X, FromY: pos.Y, ToX: targetPos.X, ToY: targetPos.Y, Color: tracer,
	}})

	ApplyDamage(s.ecs, s.dispatcher, targetID, tower.Damage)
	tower.AttackTimer = 0
}

func (s *TowerSystem) bestLivingTarget(id types.EntityID) (types.EntityID, bool) {
	tower := s.ecs.Towers[id]
	for _, c := range tower.Candidates {
		if s.ecs.UnitAlive(c.ID) {
			return c.ID, true
		}
	}
	return 0, false
}
