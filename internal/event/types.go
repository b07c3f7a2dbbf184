// internal/event/types.go
package event

import "image/color"

const (
	UnitSpawned        EventType = "UnitSpawned"
	UnitAttacked       EventType = "UnitAttacked" // melee or ranged hit landed
	UnitDied           EventType = "UnitDied"
	TowerFired         EventType = "TowerFired"
	BaseReached        EventType = "BaseReached" // unit hit the opposing base directly
	TowerDestroyed     EventType = "TowerDestroyed"
	WaveStarted        EventType = "WaveStarted"
	WaveCycleCompleted EventType = "WaveCycleCompleted" // progression wrapped around
	MatchEnded         EventType = "MatchEnded"
)

// AttackPayload describes a landed hit so a tracer effect can be drawn for
// it. Carried by UnitAttacked, TowerFired and BaseReached.
type AttackPayload struct {
	FromX, FromY float64
	ToX, ToY     float64
	Color        color.RGBA
}
