// internal/defs/defs_test.go
package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitLibraryConsistency(t *testing.T) {
	require.Len(t, UnitRoster, 4)
	for _, id := range UnitRoster {
		def, ok := UnitLibrary[id]
		require.True(t, ok, "roster entry %s must exist in the library", id)
		assert.Equal(t, id, def.ID)
		assert.NotEmpty(t, def.Name)
		assert.Len(t, def.Label, 1)
		assert.Positive(t, def.Cost)
		assert.Positive(t, def.Health)
		assert.Positive(t, def.Damage)
		assert.Positive(t, def.Speed)
		assert.Positive(t, def.AttackRate)
		assert.Positive(t, def.Range)
		assert.Positive(t, def.Radius)
	}
}

func TestRangedFlagsMatchRanges(t *testing.T) {
	assert.False(t, UnitLibrary[UnitKnight].Ranged)
	assert.False(t, UnitLibrary[UnitGiant].Ranged)
	assert.True(t, UnitLibrary[UnitArcher].Ranged)
	assert.True(t, UnitLibrary[UnitWizard].Ranged)
	assert.True(t, UnitLibrary[UnitWizard].Splash, "the wizard is the only area attacker")
	assert.False(t, UnitLibrary[UnitKnight].Splash)
}

func TestWavePatternsValid(t *testing.T) {
	waves := WavePatterns()
	require.Len(t, waves, 8)
	for i, w := range waves {
		assert.Equal(t, i+1, w.Number)
		assert.NotEmpty(t, w.Entries)
		assert.Positive(t, w.SpawnInterval)
		assert.Positive(t, w.Cooldown)
		for _, e := range w.Entries {
			_, ok := UnitLibrary[e.UnitID]
			assert.True(t, ok, "wave %d references unknown unit %s", w.Number, e.UnitID)
			assert.Positive(t, e.Count)
		}
	}
}

func TestWavePatternsReturnsFreshSlice(t *testing.T) {
	first := WavePatterns()
	first[0].SpawnInterval = 0.1

	second := WavePatterns()

	assert.Equal(t, 4.0, second[0].SpawnInterval, "callers may mutate their copy without poisoning the template")
}

func TestTotalUnits(t *testing.T) {
	w := WaveDefinition{Entries: []WaveEntry{{UnitKnight, 2}, {UnitWizard, 1}}}
	assert.Equal(t, 3, w.TotalUnits())
	assert.Zero(t, WaveDefinition{}.TotalUnits())
}

func TestLoadUnitDefinitionsOverride(t *testing.T) {
	original := UnitLibrary[UnitKnight]
	defer func() { UnitLibrary[UnitKnight] = original }()

	path := filepath.Join(t.TempDir(), "units.json")
	data := `[{"id": "UNIT_KNIGHT", "name": "Knight", "cost": 4, "health": 350,
		"damage": 60, "speed": 80, "attack_rate": 1.2, "range": 40, "radius": 25}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	require.NoError(t, LoadUnitDefinitions(path))

	def := UnitLibrary[UnitKnight]
	assert.Equal(t, 4, def.Cost)
	assert.Equal(t, 350, def.Health)
	assert.Equal(t, original.Label, def.Label, "visual fields keep their defaults")
	assert.Equal(t, original.Color, def.Color)
}

func TestLoadUnitDefinitionsRejectsUnknownID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "UNIT_DRAGON"}]`), 0o644))

	err := LoadUnitDefinitions(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIT_DRAGON")
}

func TestLoadUnitDefinitionsMissingFile(t *testing.T) {
	err := LoadUnitDefinitions(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadWaveDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.json")
	data := `[{"number": 1, "entries": [{"unit_id": "UNIT_GIANT", "count": 2}],
		"spawn_interval": 3.0, "cooldown": 8.0}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	waves, err := LoadWaveDefinitions(path)

	require.NoError(t, err)
	require.Len(t, waves, 1)
	assert.Equal(t, UnitGiant, waves[0].Entries[0].UnitID)
	assert.Equal(t, 2, waves[0].Entries[0].Count)
	assert.Equal(t, 3.0, waves[0].SpawnInterval)
}

func TestLoadWaveDefinitionsRejectsUnknownUnit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.json")
	data := `[{"number": 1, "entries": [{"unit_id": "UNIT_DRAGON", "count": 1}]}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := LoadWaveDefinitions(path)
	assert.Error(t, err)
}

func TestLoadWaveDefinitionsRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	_, err := LoadWaveDefinitions(path)
	assert.Error(t, err)
}
