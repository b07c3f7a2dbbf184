// internal/component/wave.go
package component

import "go-lane-clash/internal/defs"

// Wave tracks the sequencer's position within the wave progression. Waves is
// owned by this component; loop-around tightens its spawn intervals in place.
type Wave struct {
	Waves        []defs.WaveDefinition
	Index        int // current wave in Waves
	EntryIndex   int // current (archetype, count) entry within the wave
	Spawned      int // spawned so far for the current entry
	SpawnTimer   float64
	InCooldown   bool
	CooldownLeft float64
	Cycle        int // completed loops over the whole progression
}

// Current returns the active wave definition.
func (w *Wave) Current() *defs.WaveDefinition {
	return &w.Waves[w.Index]
}
