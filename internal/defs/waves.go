// internal/defs/waves.go
package defs

// WaveEntry is one (archetype, count) element of a wave.
type WaveEntry struct {
	UnitID UnitID `json:"unit_id"`
	Count  int    `json:"count"`
}

// WaveDefinition describes the parameters for one wave of enemy spawns.
type WaveDefinition struct {
	Number        int         `json:"number"`
	Entries       []WaveEntry `json:"entries"`
	SpawnInterval float64     `json:"spawn_interval"` // seconds between spawns
	Cooldown      float64     `json:"cooldown"`       // pause before the next wave
}

// TotalUnits returns how many units the wave spawns in total.
func (w WaveDefinition) TotalUnits() int {
	total := 0
	for _, e := range w.Entries {
		total += e.Count
	}
	return total
}

// WavePatterns returns the built-in wave progression. A fresh slice is
// returned on every call because the sequencer tightens spawn intervals in
// place on loop-around.
func WavePatterns() []WaveDefinition {
	return []WaveDefinition{
		{Number: 1, Entries: []WaveEntry{{UnitKnight, 2}, {UnitWizard, 1}}, SpawnInterval: 4.0, Cooldown: 10.0},
		{Number: 2, Entries: []WaveEntry{{UnitGiant, 1}, {UnitKnight, 1}, {UnitArcher, 1}}, SpawnInterval: 3.5, Cooldown: 10.0},
		{Number: 3, Entries: []WaveEntry{{UnitArcher, 2}, {UnitWizard, 1}}, SpawnInterval: 3.5, Cooldown: 10.0},
		{Number: 4, Entries: []WaveEntry{{UnitGiant, 1}, {UnitWizard, 2}}, SpawnInterval: 3.5, Cooldown: 10.0},
		{Number: 5, Entries: []WaveEntry{{UnitKnight, 2}, {UnitArcher, 1}, {UnitGiant, 1}}, SpawnInterval: 3.0, Cooldown: 10.0},
		{Number: 6, Entries: []WaveEntry{{UnitWizard, 1}, {UnitArcher, 2}, {UnitKnight, 1}}, SpawnInterval: 3.0, Cooldown: 10.0},
		{Number: 7, Entries: []WaveEntry{{UnitGiant, 1}, {UnitWizard, 1}, {UnitArcher, 2}}, SpawnInterval: 2.5, Cooldown: 10.0},
		{Number: 8, Entries: []WaveEntry{{UnitKnight, 2}, {UnitGiant, 1}, {UnitWizard, 1}}, SpawnInterval: 2.5, Cooldown: 10.0},
	}
}
