// internal/system/movement.go
package system

import (
	"go-lane-clash/internal/component"
	"go-lane-clash/internal/config"
	"go-lane-clash/internal/entity"
	"go-lane-clash/internal/types"
	"go-lane-clash/internal/utils"
)

// MovementSystem advances pathed entities along their waypoint queue. It is
// driven per unit by the unit system, which decides each tick whether a unit
// moves or attacks.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// GeneratePath lays evenly spaced waypoints from the spawn position toward
// the opposing base. Player units march right, enemy units march left, all
// along the lane center line.
func GeneratePath(x float64, side types.Side) *component.Path {
	var points []component.Waypoint
	if side == types.SidePlayer {
		for wx := x; wx < config.EnemyTowerX; wx += config.WaypointSpacing {
			points = append(points, component.Waypoint{X: wx, Y: config.LaneY})
		}
	} else {
		for wx := x; wx > config.PlayerTowerX; wx -= config.WaypointSpacing {
			points = append(points, component.Waypoint{X: wx, Y: config.LaneY})
		}
	}
	return &component.Path{Points: points}
}

// Step advances one entity toward its current waypoint. Close enough to the
// waypoint it is consumed instead; movement resumes next tick. An exhausted
// path is a no-op; the orchestrator's base-reached check fires before a unit
// can run out of waypoints in practice.
func (s *MovementSystem) Step(id types.EntityID, deltaTime float64) {
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	vel, ok := s.ecs.Velocities[id]
	if !ok {
		return
	}
	path, ok := s.ecs.Paths[id]
	if !ok {
		return
	}

	target, ok := path.Current()
	if !ok {
		return
	}

	dist := utils.Distance(pos.X, pos.Y, target.X, target.Y)
	if dist < config.WaypointArriveDistance {
		path.Advance()
		return
	}

	dx := (target.X - pos.X) / dist
	dy := (target.Y - pos.Y) / dist
	pos.X += dx * vel.Speed * deltaTime
	pos.Y += dy * vel.Speed * deltaTime
}
