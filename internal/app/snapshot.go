// internal/app/snapshot.go
package app

import (
	"image/color"

	"go-lane-clash/internal/component"
	"go-lane-clash/internal/config"
	"go-lane-clash/internal/defs"
	"go-lane-clash/internal/types"
)

// UnitView is the read-only picture of one unit for a frontend.
type UnitView struct {
	ID             types.EntityID
	X, Y           float64
	Health         int
	MaxHealth      int
	HealthFraction float64
	Side           types.Side
	DefID          defs.UnitID
	Label          string
	Frozen         bool
	Ranged         bool
	Range          float64
	Radius         float64
	Color          color.RGBA
	HasTarget      bool
	TargetX        float64
	TargetY        float64
	PathAhead      []component.Waypoint
}

// TowerView mirrors one tower.
type TowerView struct {
	X, Y           float64
	Health         int
	MaxHealth      int
	HealthFraction float64
	Side           types.Side
	Alive          bool
}

// EffectView is a tracer effect at its interpolated position.
type EffectView struct {
	X, Y  float64
	Color color.RGBA
}

// WaveView summarizes the sequencer for the info panel.
type WaveView struct {
	Number         int
	Cycle          int
	InCooldown     bool
	CooldownLeft   float64
	SpawningName   string
	SpawnedOfEntry int
	EntryCount     int
	TotalUnits     int
}

// Snapshot is the read-only view of one frame handed to the frontends.
// Nothing in it aliases simulation state.
type Snapshot struct {
	Phase       component.Phase
	Outcome     component.Outcome
	OutcomeText string

	TimeLeft     float64
	PlayerElixir int
	EnemyElixir  int
	MaxElixir    int

	FreezeReady    bool
	FreezeCooldown float64

	Wave    WaveView
	Units   []UnitView
	Towers  []TowerView
	Effects []EffectView
}

// Snapshot captures the current simulation state for rendering.
func (g *Game) Snapshot() Snapshot {
	m := g.ECS.Match
	snap := Snapshot{
		Phase:          m.Phase,
		Outcome:        m.Outcome,
		OutcomeText:    m.Outcome.String(),
		TimeLeft:       m.TimeLeft,
		PlayerElixir:   m.PlayerElixir,
		EnemyElixir:    m.EnemyElixir,
		MaxElixir:      config.MaxElixir,
		FreezeReady:    m.FreezeReady,
		FreezeCooldown: m.FreezeCooldown,
		Wave:           g.waveView(),
	}

	for _, id := range g.ECS.UnitOrder {
		if !g.ECS.UnitAlive(id) {
			continue
		}
		unit := g.ECS.Units[id]
		pos := g.ECS.Positions[id]
		health := g.ECS.Healths[id]
		r := g.ECS.Renderables[id]
		_, frozen := g.ECS.FreezeEffects[id]

		view := UnitView{
			ID:             id,
			X:              pos.X,
			Y:              pos.Y,
			Health:         health.Value,
			MaxHealth:      health.Max,
			HealthFraction: health.Fraction(),
			Side:           unit.Side,
			DefID:          unit.DefID,
			Label:          r.Label,
			Frozen:         frozen,
			Ranged:         unit.Ranged,
			Range:          unit.Range,
			Radius:         r.Radius,
			Color:          r.Color,
		}
		if unit.TargetID != 0 && g.ECS.UnitAlive(unit.TargetID) {
			tp := g.ECS.Positions[unit.TargetID]
			view.HasTarget = true
			view.TargetX = tp.X
			view.TargetY = tp.Y
		}
		if path, ok := g.ECS.Paths[id]; ok {
			view.PathAhead = append(view.PathAhead, path.Remaining()...)
		}
		snap.Units = append(snap.Units, view)
	}

	for _, id := range []types.EntityID{g.PlayerTowerID, g.EnemyTowerID} {
		tower := g.ECS.Towers[id]
		pos := g.ECS.Positions[id]
		health := g.ECS.Healths[id]
		snap.Towers = append(snap.Towers, TowerView{
			X:              pos.X,
			Y:              pos.Y,
			Health:         health.Value,
			MaxHealth:      health.Max,
			HealthFraction: health.Fraction(),
			Side:           tower.Side,
			Alive:          health.Value > 0,
		})
	}

	for _, proj := range g.ECS.Projectiles {
		x, y := proj.At()
		snap.Effects = append(snap.Effects, EffectView{X: x, Y: y, Color: proj.Color})
	}

	return snap
}

func (g *Game) waveView() WaveView {
	w := g.ECS.Wave
	if w == nil {
		return WaveView{}
	}
	cur := w.Current()
	view := WaveView{
		Number:       cur.Number,
		Cycle:        w.Cycle,
		InCooldown:   w.InCooldown,
		CooldownLeft: w.CooldownLeft,
		TotalUnits:   cur.TotalUnits(),
	}
	if !w.InCooldown && w.EntryIndex < len(cur.Entries) {
		entry := cur.Entries[w.EntryIndex]
		if def, ok := defs.UnitLibrary[entry.UnitID]; ok {
			view.SpawningName = def.Name
		}
		view.SpawnedOfEntry = w.Spawned
		view.EntryCount = entry.Count
	}
	return view
}
