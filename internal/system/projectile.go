// internal/system/projectile.go
package system

import (
	"image/color"

	"go-lane-clash/internal/component"
	"go-lane-clash/internal/config"
	"go-lane-clash/internal/entity"
)

// ProjectileSystem advances tracer effects and prunes finished ones. Effects
// are independent of each other, so map iteration order does not matter here.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

// Update advances every effect's progress and removes those that completed.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		proj.Progress += deltaTime * config.EffectSpeed
		if proj.Progress >= 1.0 {
			delete(s.ecs.Projectiles, id)
		}
	}
}

// Spawn creates a tracer between two points.
func (s *ProjectileSystem) Spawn(fromX, fromY, toX, toY float64, col color.RGBA) {
	id := s.ecs.NewEntity()
	s.ecs.Projectiles[id] = &component.Projectile{
		StartX: fromX, StartY: fromY,
		EndX: toX, EndY: toY,
		Color: col,
	}
}
