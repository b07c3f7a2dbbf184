// internal/system/combat.go
package system

import (
	"go-lane-clash/internal/entity"
	"go-lane-clash/internal/event"
	"go-lane-clash/internal/types"
)

// ApplyDamage subtracts damage from a unit's health and removes the unit
// when it drops to zero or below. Reports whether the unit died. Damage to a
// unit that is already gone is a silent no-op.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, id types.EntityID, damage int) bool {
	health, ok := ecs.Healths[id]
	if !ok {
		return false
	}
	health.Value -= damage
	if health.Value > 0 {
		return false
	}
	ecs.RemoveUnit(id)
	if dispatcher != nil {
		dispatcher.Dispatch(event.Event{Type: event.UnitDied, Data: id})
	}
	return true
}
