// internal/app/game.go
package app

import (
	"log"

	"go-lane-clash/internal/component"
	"go-lane-clash/internal/config"
	"go-lane-clash/internal/defs"
	"go-lane-clash/internal/entity"
	"go-lane-clash/internal/event"
	"go-lane-clash/internal/system"
	"go-lane-clash/internal/types"
	"go-lane-clash/internal/utils"
)

// Game owns the whole simulation: both towers, the unit and effect
// collections, the wave sequencer and the match counters. Everything mutable
// lives behind it; the frontends only read snapshots and submit commands.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher

	MovementSystem   *system.MovementSystem
	UnitSystem       *system.UnitSystem
	TowerSystem      *system.TowerSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem

	Rng *utils.PRNGService

	PlayerTowerID types.EntityID
	EnemyTowerID  types.EntityID

	seed  int64
	waves []defs.WaveDefinition // progression template; copied per run
}

// NewGame initializes a new game instance. A nil waves slice selects the
// built-in progression. The seed only feeds decorative randomness.
func NewGame(seed int64, waves []defs.WaveDefinition) *Game {
	if waves == nil {
		waves = defs.WavePatterns()
	}
	g := &Game{seed: seed, waves: waves}
	g.init()
	return g
}

// init builds a fresh simulation in the pre-game phase. Reset reuses it, so
// the whole state swap happens between ticks, never inside one.
func (g *Game) init() {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()

	g.ECS = ecs
	g.EventDispatcher = dispatcher
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.UnitSystem = system.NewUnitSystem(ecs, g.MovementSystem, dispatcher)
	g.TowerSystem = system.NewTowerSystem(ecs, dispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.WaveSystem = system.NewWaveSystem(ecs, dispatcher, g.spawnEnemyUnit)
	g.Rng = utils.NewPRNGService(g.seed)

	g.PlayerTowerID = g.createTower(types.SidePlayer)
	g.EnemyTowerID = g.createTower(types.SideEnemy)

	ecs.Wave = &component.Wave{Waves: append([]defs.WaveDefinition(nil), g.waves...)}
	ecs.Match = &component.Match{
		Phase:        component.PhasePreGame,
		TimeLeft:     config.MatchDuration,
		PlayerElixir: config.StartingElixir,
		EnemyElixir:  config.StartingElixir,
		FreezeReady:  true,
	}

	listener := &gameEventListener{game: g}
	dispatcher.Subscribe(event.UnitAttacked, listener)
	dispatcher.Subscribe(event.TowerFired, listener)
	dispatcher.Subscribe(event.BaseReached, listener)
}

// Start moves the match from the pre-game phase into play.
func (g *Game) Start() {
	m := g.ECS.Match
	if m.Phase != component.PhasePreGame {
		return
	}
	m.Phase = component.PhasePlaying
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: g.ECS.Wave.Current().Number})
}

// Reset discards the entire simulation and rebuilds it at starting values,
// back in the pre-game phase.
func (g *Game) Reset() {
	g.init()
}

// Update advances the simulation one tick. The step order is fixed; nothing
// interleaves within a step.
func (g *Game) Update(deltaTime float64) {
	m := g.ECS.Match
	if m.Phase != component.PhasePlaying {
		return
	}

	// 1. Freeze ability cooldown.
	if !m.FreezeReady {
		m.FreezeCooldown -= deltaTime
		if m.FreezeCooldown <= 0 {
			m.FreezeReady = true
			m.FreezeCooldown = 0
		}
	}

	// 2. Match timer; expiry with both bases standing is a draw.
	m.TimeLeft -= deltaTime
	if m.TimeLeft <= 0 {
		m.TimeLeft = 0
		g.endMatch(component.OutcomeDraw)
		return
	}

	// 3. Elixir regeneration, both sides.
	m.ElixirTimer += deltaTime
	if m.ElixirTimer >= config.ElixirInterval {
		if m.PlayerElixir < config.MaxElixir {
			m.PlayerElixir++
		}
		if m.EnemyElixir < config.MaxElixir {
			m.EnemyElixir++
		}
		m.ElixirTimer = 0
	}

	// 4. Tower timers and candidate lists.
	g.TowerSystem.UpdateTower(g.PlayerTowerID, deltaTime)
	g.TowerSystem.UpdateTower(g.EnemyTowerID, deltaTime)

	// 5. Units, in spawn order: per-unit update, then the base-reached
	// check. Units killed earlier in the pass are skipped by liveness
	// checks; their order slots are compacted at the end of the tick.
	for i := 0; i < len(g.ECS.UnitOrder); i++ {
		id := g.ECS.UnitOrder[i]
		g.UnitSystem.UpdateUnit(id, deltaTime)
		if g.checkBaseReached(id) {
			// A base fell; no further combat this tick.
			g.ECS.CompactUnitOrder()
			return
		}
	}

	// 6. Transient effects.
	g.ProjectileSystem.Update(deltaTime)

	// 7. Tower shots against their best targets.
	g.TowerSystem.ResolveAttack(g.PlayerTowerID)
	g.TowerSystem.ResolveAttack(g.EnemyTowerID)

	// 8. Wave sequencer, suspended once the outcome is decided.
	if m.Outcome == component.OutcomeUndecided {
		g.WaveSystem.Update(deltaTime)
	}

	g.ECS.CompactUnitOrder()
}

// SpawnUnit handles the player's spawn command. Insufficient elixir or a
// match that is not in play makes it a silent no-op.
func (g *Game) SpawnUnit(defID defs.UnitID) {
	m := g.ECS.Match
	if m.Phase != component.PhasePlaying {
		return
	}
	def, ok := defs.UnitLibrary[defID]
	if !ok {
		log.Printf("unknown unit definition %q", defID)
		return
	}
	if m.PlayerElixir < def.Cost {
		return
	}
	m.PlayerElixir -= def.Cost
	g.spawnUnit(defID, types.SidePlayer)
}

// ActivateFreeze freezes every living enemy unit for the configured duration
// and puts the ability on cooldown. No-op while cooling down or out of play.
func (g *Game) ActivateFreeze() {
	m := g.ECS.Match
	if m.Phase != component.PhasePlaying || !m.FreezeReady {
		return
	}

	for _, id := range g.ECS.UnitOrder {
		if !g.ECS.UnitAlive(id) {
			continue
		}
		if g.ECS.Units[id].Side == types.SideEnemy {
			g.ECS.FreezeEffects[id] = &component.FreezeEffect{Timer: config.FreezeDuration}
		}
	}

	m.FreezeReady = false
	m.FreezeCooldown = config.FreezeCooldown

	// Decorative frost scatter across the arena.
	for i := 0; i < config.FreezeScatterCount; i++ {
		g.ProjectileSystem.Spawn(
			g.Rng.Range(0, config.ScreenWidth), g.Rng.Range(0, config.ScreenHeight),
			g.Rng.Range(0, config.ScreenWidth), g.Rng.Range(0, config.ScreenHeight),
			config.FrozenColor,
		)
	}
}

func (g *Game) createTower(side types.Side) types.EntityID {
	id := g.ECS.NewEntity()
	x := config.PlayerTowerX
	col := config.PlayerColor
	if side == types.SideEnemy {
		x = config.EnemyTowerX
		col = config.EnemyColor
	}
	g.ECS.Positions[id] = &component.Position{X: x, Y: config.LaneY}
	g.ECS.Healths[id] = &component.Health{Value: config.TowerHealth, Max: config.TowerHealth}
	g.ECS.Renderables[id] = &component.Renderable{Color: col}
	g.ECS.Towers[id] = &component.Tower{
		Side:       side,
		Damage:     config.TowerDamage,
		AttackRate: config.TowerAttackRate,
		Range:      config.TowerRange,
	}
	return id
}

func (g *Game) spawnEnemyUnit(defID defs.UnitID) {
	g.spawnUnit(defID, types.SideEnemy)
}

// spawnUnit assembles a unit entity for either side; the rules are identical
// apart from home position and march direction.
func (g *Game) spawnUnit(defID defs.UnitID, side types.Side) types.EntityID {
	def, ok := defs.UnitLibrary[defID]
	if !ok {
		log.Printf("unknown unit definition %q", defID)
		return 0
	}

	x := config.PlayerSpawnX
	if side == types.SideEnemy {
		x = config.EnemySpawnX
	}

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: config.LaneY}
	g.ECS.Velocities[id] = &component.Velocity{Speed: def.Speed}
	g.ECS.Paths[id] = system.GeneratePath(x, side)
	g.ECS.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	g.ECS.Renderables[id] = &component.Renderable{Color: def.Color, Radius: def.Radius, Label: def.Label}
	g.ECS.Units[id] = &component.Unit{
		DefID:      defID,
		Side:       side,
		Damage:     def.Damage,
		AttackRate: def.AttackRate,
		Range:      def.Range,
		Ranged:     def.Ranged,
		Splash:     def.Splash,
	}
	g.ECS.UnitOrder = append(g.ECS.UnitOrder, id)
	g.EventDispatcher.Dispatch(event.Event{Type: event.UnitSpawned, Data: id})
	return id
}

// checkBaseReached resolves a unit that advanced past the opposing tower's
// near edge: its damage lands on the tower and the unit despawns the same
// tick. Reports whether the hit ended the match.
func (g *Game) checkBaseReached(id types.EntityID) bool {
	if !g.ECS.UnitAlive(id) {
		return false
	}
	unit := g.ECS.Units[id]
	pos := g.ECS.Positions[id]

	towerID := g.PlayerTowerID
	reached := pos.X <= config.PlayerTowerX+config.BaseReachOffset
	if unit.Side == types.SidePlayer {
		towerID = g.EnemyTowerID
		reached = pos.X >= config.EnemyTowerX-config.BaseReachOffset
	}
	if !reached {
		return false
	}

	towerPos := g.ECS.Positions[towerID]
	towerHealth := g.ECS.Healths[towerID]
	towerHealth.Value -= unit.Damage

	col := config.PlayerColor
	if unit.Side == types.SideEnemy {
		col = config.EnemyColor
	}
	if r, ok := g.ECS.Renderables[id]; ok {
		col = r.Color
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.BaseReached, Data: event.AttackPayload{
		FromX: pos.X, FromY: pos.Y, ToX: towerPos.X, ToY: towerPos.Y, Color: col,
	}})
	g.ECS.RemoveUnit(id)

	if towerHealth.Value <= 0 {
		towerHealth.Value = 0
		g.EventDispatcher.Dispatch(event.Event{Type: event.TowerDestroyed, Data: towerID})
		if unit.Side == types.SidePlayer {
			g.endMatch(component.OutcomePlayerWin)
		} else {
			g.endMatch(component.OutcomeEnemyWin)
		}
		return true
	}
	return false
}

func (g *Game) endMatch(outcome component.Outcome) {
	m := g.ECS.Match
	m.Outcome = outcome
	m.Phase = component.PhasePostGame
	g.EventDispatcher.Dispatch(event.Event{Type: event.MatchEnded, Data: outcome})
}

// gameEventListener turns combat events into tracer effects.
type gameEventListener struct {
	game *Game
}

func (l *gameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.UnitAttacked, event.TowerFired, event.BaseReached:
		if p, ok := e.Data.(event.AttackPayload); ok {
			l.game.ProjectileSystem.Spawn(p.FromX, p.FromY, p.ToX, p.ToY, p.Color)
		}
	}
}
