// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadUnitDefinitions reads a unit configuration file and overrides matching
// entries of the built-in UnitLibrary. Visual fields keep their defaults.
func LoadUnitDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read unit definitions file: %w", err)
	}

	var unitDefs []UnitDefinition
	if err := json.Unmarshal(file, &unitDefs); err != nil {
		return fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}

	for _, def := range unitDefs {
		base, ok := UnitLibrary[def.ID]
		if !ok {
			return fmt.Errorf("unknown unit id %q in %s", def.ID, path)
		}
		def.Label = base.Label
		def.Color = base.Color
		UnitLibrary[def.ID] = def
	}
	return nil
}

// LoadWaveDefinitions reads a custom wave progression. Callers that get a
// non-nil slice use it instead of WavePatterns.
func LoadWaveDefinitions(path string) ([]WaveDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave definitions file: %w", err)
	}

	var waveDefs []WaveDefinition
	if err := json.Unmarshal(file, &waveDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wave definitions: %w", err)
	}
	if len(waveDefs) == 0 {
		return nil, fmt.Errorf("wave definitions file %s is empty", path)
	}
	for _, w := range waveDefs {
		for _, e := range w.Entries {
			if _, ok := UnitLibrary[e.UnitID]; !ok {
				return nil, fmt.Errorf("wave %d references unknown unit id %q", w.Number, e.UnitID)
			}
		}
	}
	return waveDefs, nil
}
