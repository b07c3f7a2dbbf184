// internal/system/unit_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lane-clash/internal/component"
	"go-lane-clash/internal/config"
	"go-lane-clash/internal/entity"
	"go-lane-clash/internal/event"
	"go-lane-clash/internal/types"
)

func TestTargetTieBandPrefersLowerHP(t *testing.T) {
	ecs := entity.NewECS()
	units, _, _, _ := newTestSystems(ecs)

	attacker := spawnTestUnit(ecs, unitSpec{side: types.SidePlayer, x: 400, rng: 150})
	tough := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 500, hp: 200})
	weak := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 505, hp: 50})

	units.UpdateUnit(attacker, 0.01)

	require.Equal(t, weak, ecs.Units[attacker].TargetID,
		"distances 100 and 105 are inside the tie band, lower HP must win")
	assert.NotEqual(t, tough, ecs.Units[attacker].TargetID)
}

func TestTargetTieBandIndependentOfSpawnOrder(t *testing.T) {
	ecs := entity.NewECS()
	units, _, _, _ := newTestSystems(ecs)

	// Same scenario, weaker unit spawned first this time.
	attacker := spawnTestUnit(ecs, unitSpec{side: types.SidePlayer, x: 400, rng: 150})
	weak := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 505, hp: 50})
	spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 500, hp: 200})

	units.UpdateUnit(attacker, 0.01)

	assert.Equal(t, weak, ecs.Units[attacker].TargetID)
}

func TestTargetCloserWinsOutsideTieBand(t *testing.T) {
	ecs := entity.NewECS()
	units, _, _, _ := newTestSystems(ecs)

	attacker := spawnTestUnit(ecs, unitSpec{side: types.SidePlayer, x: 400, rng: 150})
	nearest := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 500, hp: 500})
	spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 550, hp: 1})

	units.UpdateUnit(attacker, 0.01)

	assert.Equal(t, nearest, ecs.Units[attacker].TargetID,
		"a 50 unit distance gap is outside the tie band, HP must not matter")
}

func TestTargetSearchLimitedToRangeFactor(t *testing.T) {
	ecs := entity.NewECS()
	units, _, _, _ := newTestSystems(ecs)

	attacker := spawnTestUnit(ecs, unitSpec{side: types.SidePlayer, x: 400, rng: 150})
	spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 700}) // dist 300 > 150 * 1.5

	startX := ecs.Positions[attacker].X
	units.UpdateUnit(attacker, 0.1) // consumes the spawn waypoint
	units.UpdateUnit(attacker, 0.1)

	assert.Equal(t, types.EntityID(0), ecs.Units[attacker].TargetID)
	assert.Greater(t, ecs.Positions[attacker].X, startX, "no target in search range, unit keeps marching")
}

func TestFriendliesAreNeverTargeted(t *testing.T) {
	ecs := entity.NewECS()
	units, _, _, _ := newTestSystems(ecs)

	attacker := spawnTestUnit(ecs, unitSpec{side: types.SidePlayer, x: 400, rng: 150})
	spawnTestUnit(ecs, unitSpec{side: types.SidePlayer, x: 450})

	units.UpdateUnit(attacker, 0.01)

	assert.Equal(t, types.EntityID(0), ecs.Units[attacker].TargetID)
}

func TestFrozenUnitOnlyCountsDown(t *testing.T) {
	ecs := entity.NewECS()
	units, _, _, _ := newTestSystems(ecs)

	frozen := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 600})
	spawnTestUnit(ecs, unitSpec{side: types.SidePlayer, x: 620, hp: 10})
	ecs.FreezeEffects[frozen] = &component.FreezeEffect{Timer: config.FreezeDuration}

	startX := ecs.Positions[frozen].X
	for i := 0; i < 5; i++ {
		units.UpdateUnit(frozen, 1.0)
	}

	assert.Equal(t, startX, ecs.Positions[frozen].X, "frozen unit must not move")
	assert.Zero(t, ecs.Units[frozen].AttackTimer, "frozen unit must not wind up an attack")
	assert.True(t, ecs.UnitAlive(frozen))

	// Timer hit zero on the fifth tick; the unit acts again on the sixth.
	_, stillFrozen := ecs.FreezeEffects[frozen]
	assert.False(t, stillFrozen)
	units.UpdateUnit(frozen, 0.5)
	assert.InDelta(t, 0.5, ecs.Units[frozen].AttackTimer, 1e-9, "thawed unit resumes winding up against its adjacent target")
}

func TestAttackGatedByRateAndKills(t *testing.T) {
	ecs := entity.NewECS()
	units, _, _, dispatcher := newTestSystems(ecs)
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.UnitDied, rec)

	attacker := spawnTestUnit(ecs, unitSpec{side: types.SidePlayer, x: 400, damage: 60, rate: 1.0})
	victim := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 430, hp: 50})

	units.UpdateUnit(attacker, 0.5)
	require.True(t, ecs.UnitAlive(victim), "attack must not land before the rate interval elapses")
	assert.InDelta(t, 0.5, ecs.Units[attacker].AttackTimer, 1e-9)

	units.UpdateUnit(attacker, 0.5)
	assert.False(t, ecs.UnitAlive(victim))
	assert.Equal(t, types.EntityID(0), ecs.Units[attacker].TargetID, "killing the target clears the weak reference")
	assert.Zero(t, ecs.Units[attacker].AttackTimer)
	assert.Equal(t, 1, rec.count(event.UnitDied))
}

func TestMovingResetsAttackTimer(t *testing.T) {
	ecs := entity.NewECS()
	units, _, _, _ := newTestSystems(ecs)

	attacker := spawnTestUnit(ecs, unitSpec{side: types.SidePlayer, x: 400, rng: 100})
	target := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 450, hp: 1000})

	units.UpdateUnit(attacker, 0.5)
	require.InDelta(t, 0.5, ecs.Units[attacker].AttackTimer, 1e-9)

	// Target slips out of attack range but stays inside the search radius.
	ecs.Positions[target].X = 530
	units.UpdateUnit(attacker, 0.1)

	assert.Zero(t, ecs.Units[attacker].AttackTimer, "chasing discards the wound-up timer")
}

func TestStaleTargetRevalidated(t *testing.T) {
	ecs := entity.NewECS()
	units, _, _, _ := newTestSystems(ecs)

	attacker := spawnTestUnit(ecs, unitSpec{side: types.SidePlayer, x: 400, rng: 150})
	first := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 450, hp: 100})
	second := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 470, hp: 100})

	units.UpdateUnit(attacker, 0.01)
	require.Equal(t, first, ecs.Units[attacker].TargetID)

	ecs.RemoveUnit(first)
	units.UpdateUnit(attacker, 0.01)

	assert.Equal(t, second, ecs.Units[attacker].TargetID, "dead target must be replaced, not dereferenced")
}

func TestSplashDamagesNeighborsNotPrimaryTwice(t *testing.T) {
	ecs := entity.NewECS()
	units, _, _, _ := newTestSystems(ecs)

	wizard := spawnTestUnit(ecs, unitSpec{side: types.SidePlayer, x: 400, damage: 70, rng: 120, rate: 1.0, splash: true})
	primary := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 500, hp: 500})
	near := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 540, hp: 100})  // 40 from impact
	far := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 600, hp: 100})   // 100 from impact
	ally := spawnTestUnit(ecs, unitSpec{side: types.SidePlayer, x: 520, hp: 100}) // in radius, friendly

	units.UpdateUnit(wizard, 1.0)

	assert.Equal(t, 430, ecs.Healths[primary].Value, "primary takes full damage exactly once")
	assert.Equal(t, 65, ecs.Healths[near].Value, "neighbor takes half damage")
	assert.Equal(t, 100, ecs.Healths[far].Value, "outside the splash radius")
	assert.Equal(t, 100, ecs.Healths[ally].Value, "friendlies are never splashed")
}

func TestSplashKillsAtZero(t *testing.T) {
	ecs := entity.NewECS()
	units, _, _, _ := newTestSystems(ecs)

	wizard := spawnTestUnit(ecs, unitSpec{side: types.SidePlayer, x: 400, damage: 70, rng: 120, rate: 1.0, splash: true})
	spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 500, hp: 500})
	frail := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 530, hp: 35})

	units.UpdateUnit(wizard, 1.0)

	assert.False(t, ecs.UnitAlive(frail))
}

func TestApplyDamageRemovesComponentsImmediately(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()

	id := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 500, hp: 10})
	killed := ApplyDamage(ecs, dispatcher, id, 10)

	require.True(t, killed)
	assert.False(t, ecs.UnitAlive(id))
	_, hasPos := ecs.Positions[id]
	assert.False(t, hasPos)
	assert.Contains(t, ecs.UnitOrder, id, "the order slot survives until compaction")

	ecs.CompactUnitOrder()
	assert.NotContains(t, ecs.UnitOrder, id)
}
