// internal/system/wave.go
package system

import (
	"go-lane-clash/internal/component"
	"go-lane-clash/internal/config"
	"go-lane-clash/internal/defs"
	"go-lane-clash/internal/entity"
	"go-lane-clash/internal/event"
)

// SpawnFunc creates one enemy unit of the given archetype at the enemy home
// position. The orchestrator supplies it so the sequencer never touches
// entity assembly directly.
type SpawnFunc func(id defs.UnitID)

// WaveSystem drives timed automatic enemy spawning: waves spawn their
// (archetype, count) entries one unit at a time, pause for a cooldown, then
// advance; after the last wave the progression wraps around with tightened
// spawn intervals. The orchestrator suspends it once the match has ended.
type WaveSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	spawn      SpawnFunc
}

func NewWaveSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, spawn SpawnFunc) *WaveSystem {
	return &WaveSystem{ecs: ecs, dispatcher: dispatcher, spawn: spawn}
}

// Update advances the sequencer by deltaTime.
func (s *WaveSystem) Update(deltaTime float64) {
	w := s.ecs.Wave
	if w == nil {
		return
	}

	if w.InCooldown {
		w.CooldownLeft -= deltaTime
		if w.CooldownLeft <= 0 {
			w.InCooldown = false
			w.CooldownLeft = 0
			w.SpawnTimer = 0
			w.EntryIndex = 0
			w.Spawned = 0
			s.advance(w)
		}
		return
	}

	cur := w.Current()
	if w.EntryIndex >= len(cur.Entries) {
		// Wave exhausted; rest before the next one.
		w.InCooldown = true
		w.CooldownLeft = cur.Cooldown
		return
	}

	w.SpawnTimer += deltaTime
	entry := cur.Entries[w.EntryIndex]
	if w.SpawnTimer >= cur.SpawnInterval && w.Spawned < entry.Count {
		s.spawn(entry.UnitID)
		w.Spawned++
		w.SpawnTimer = 0
		if w.Spawned >= entry.Count {
			w.EntryIndex++
			w.Spawned = 0
		}
	}
}

// advance moves the cursor to the next wave; past the last wave it wraps to
// the first and tightens every wave's spawn interval, floor-clamped.
func (s *WaveSystem) advance(w *component.Wave) {
	w.Index++
	if w.Index >= len(w.Waves) {
		w.Index = 0
		w.Cycle++
		for i := range w.Waves {
			tightened := w.Waves[i].SpawnInterval * config.WaveIntervalDamping
			if tightened < config.MinSpawnInterval {
				tightened = config.MinSpawnInterval
			}
			w.Waves[i].SpawnInterval = tightened
		}
		s.dispatcher.Dispatch(event.Event{Type: event.WaveCycleCompleted, Data: w.Cycle})
	}
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: w.Current().Number})
}
