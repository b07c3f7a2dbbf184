// internal/system/helpers_test.go
package system

import (
	"go-lane-clash/internal/component"
	"go-lane-clash/internal/config"
	"go-lane-clash/internal/entity"
	"go-lane-clash/internal/event"
	"go-lane-clash/internal/types"
)

type unitSpec struct {
	side   types.Side
	x, y   float64
	hp     int
	damage int
	speed  float64
	rate   float64
	rng    float64
	splash bool
}

func (s unitSpec) withDefaults() unitSpec {
	if s.y == 0 {
		s.y = config.LaneY
	}
	if s.hp == 0 {
		s.hp = 100
	}
	if s.damage == 0 {
		s.damage = 10
	}
	if s.speed == 0 {
		s.speed = 80
	}
	if s.rate == 0 {
		s.rate = 1.0
	}
	if s.rng == 0 {
		s.rng = 40
	}
	return s
}

func spawnTestUnit(ecs *entity.ECS, spec unitSpec) types.EntityID {
	s := spec.withDefaults()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: s.x, Y: s.y}
	ecs.Velocities[id] = &component.Velocity{Speed: s.speed}
	ecs.Paths[id] = GeneratePath(s.x, s.side)
	ecs.Healths[id] = &component.Health{Value: s.hp, Max: s.hp}
	ecs.Renderables[id] = &component.Renderable{Radius: 10}
	ecs.Units[id] = &component.Unit{
		Side:       s.side,
		Damage:     s.damage,
		AttackRate: s.rate,
		Range:      s.rng,
		Splash:     s.splash,
	}
	ecs.UnitOrder = append(ecs.UnitOrder, id)
	return id
}

func spawnTestTower(ecs *entity.ECS, side types.Side) types.EntityID {
	id := ecs.NewEntity()
	x := config.PlayerTowerX
	if side == types.SideEnemy {
		x = config.EnemyTowerX
	}
	ecs.Positions[id] = &component.Position{X: x, Y: config.LaneY}
	ecs.Healths[id] = &component.Health{Value: config.TowerHealth, Max: config.TowerHealth}
	ecs.Towers[id] = &component.Tower{
		Side:       side,
		Damage:     config.TowerDamage,
		AttackRate: config.TowerAttackRate,
		Range:      config.TowerRange,
	}
	return id
}

func newTestSystems(ecs *entity.ECS) (*UnitSystem, *MovementSystem, *TowerSystem, *event.Dispatcher) {
	dispatcher := event.NewDispatcher()
	movement := NewMovementSystem(ecs)
	units := NewUnitSystem(ecs, movement, dispatcher)
	towers := NewTowerSystem(ecs, dispatcher)
	return units, movement, towers, dispatcher
}

// eventRecorder collects dispatched events for assertions.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
