// internal/system/tower_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lane-clash/internal/entity"
	"go-lane-clash/internal/event"
	"go-lane-clash/internal/types"
)

func TestTowerCandidatesRankedByPriority(t *testing.T) {
	ecs := entity.NewECS()
	_, _, towers, _ := newTestSystems(ecs)
	towerID := spawnTestTower(ecs, types.SidePlayer)

	// Two enemies inside the tie band at ~200, one clearly farther.
	tough := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 250, hp: 400})
	weak := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 255, hp: 80})
	farther := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 320, hp: 10})

	towers.UpdateTower(towerID, 0.1)

	tower := ecs.Towers[towerID]
	require.Len(t, tower.Candidates, 3)
	assert.Equal(t, weak, tower.Candidates[0].ID, "inside the tie band the lower HP unit ranks first")
	assert.Equal(t, tough, tower.Candidates[1].ID)
	assert.Equal(t, farther, tower.Candidates[2].ID)
}

func TestTowerIgnoresFriendliesAndOutOfRange(t *testing.T) {
	ecs := entity.NewECS()
	_, _, towers, _ := newTestSystems(ecs)
	towerID := spawnTestTower(ecs, types.SidePlayer)

	spawnTestUnit(ecs, unitSpec{side: types.SidePlayer, x: 200})
	spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 900})
	inRange := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 300})

	towers.UpdateTower(towerID, 0.1)

	tower := ecs.Towers[towerID]
	require.Len(t, tower.Candidates, 1)
	assert.Equal(t, inRange, tower.Candidates[0].ID)
}

func TestTowerFireGatedByRate(t *testing.T) {
	ecs := entity.NewECS()
	_, _, towers, dispatcher := newTestSystems(ecs)
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.TowerFired, rec)

	towerID := spawnTestTower(ecs, types.SidePlayer)
	victim := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 250, hp: 120})

	towers.UpdateTower(towerID, 0.5)
	towers.ResolveAttack(towerID)
	assert.Equal(t, 120, ecs.Healths[victim].Value, "no shot before the attack interval matures")
	assert.Zero(t, rec.count(event.TowerFired))

	towers.UpdateTower(towerID, 0.6)
	towers.ResolveAttack(towerID)
	assert.Equal(t, 70, ecs.Healths[victim].Value)
	assert.Equal(t, 1, rec.count(event.TowerFired))
	assert.Zero(t, ecs.Towers[towerID].AttackTimer, "timer resets only on an actual shot")
}

func TestTowerTimerAccruesWithoutTarget(t *testing.T) {
	ecs := entity.NewECS()
	_, _, towers, _ := newTestSystems(ecs)
	towerID := spawnTestTower(ecs, types.SidePlayer)

	for i := 0; i < 3; i++ {
		towers.UpdateTower(towerID, 1.0)
		towers.ResolveAttack(towerID)
	}
	assert.InDelta(t, 3.0, ecs.Towers[towerID].AttackTimer, 1e-9)

	// The banked timer lets the tower fire the instant a unit walks in.
	victim := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 250, hp: 120})
	towers.UpdateTower(towerID, 0.01)
	towers.ResolveAttack(towerID)

	assert.Equal(t, 70, ecs.Healths[victim].Value)
}

func TestTowerSkipsStaleCandidates(t *testing.T) {
	ecs := entity.NewECS()
	_, _, towers, _ := newTestSystems(ecs)
	towerID := spawnTestTower(ecs, types.SidePlayer)

	first := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 250, hp: 100})
	second := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 320, hp: 100})

	towers.UpdateTower(towerID, 2.0)
	ecs.RemoveUnit(first) // dies between candidate build and shot resolution
	towers.ResolveAttack(towerID)

	assert.Equal(t, 50, ecs.Healths[second].Value, "the shot falls through to the next living candidate")
}

func TestTowerBestTargetPeeks(t *testing.T) {
	ecs := entity.NewECS()
	_, _, towers, _ := newTestSystems(ecs)
	towerID := spawnTestTower(ecs, types.SidePlayer)
	victim := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 250})

	towers.UpdateTower(towerID, 0.1)

	got, ok := towers.BestTarget(towerID)
	require.True(t, ok)
	assert.Equal(t, victim, got)
	again, ok := towers.BestTarget(towerID)
	require.True(t, ok)
	assert.Equal(t, victim, again)
	assert.Equal(t, 100, ecs.Healths[victim].Value, "peeking never damages")
}

func TestDeadTowerNeitherTracksNorFires(t *testing.T) {
	ecs := entity.NewECS()
	_, _, towers, _ := newTestSystems(ecs)
	towerID := spawnTestTower(ecs, types.SidePlayer)
	victim := spawnTestUnit(ecs, unitSpec{side: types.SideEnemy, x: 250, hp: 100})
	ecs.Healths[towerID].Value = 0

	towers.UpdateTower(towerID, 5.0)
	towers.ResolveAttack(towerID)

	assert.Empty(t, ecs.Towers[towerID].Candidates)
	assert.Equal(t, 100, ecs.Healths[victim].Value)
}
