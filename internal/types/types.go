// internal/types/types.go
package types

// EntityID uniquely identifies an entity inside the ECS. 0 is never a valid
// entity, so a zero TargetID means "no target".
type EntityID uint64

// Side tells which base an entity fights for.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Opponent returns the opposing side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "enemy"
}
