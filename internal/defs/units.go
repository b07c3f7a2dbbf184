// internal/defs/units.go
package defs

import "image/color"

// UnitID identifies a unit archetype.
type UnitID string

const (
	UnitKnight UnitID = "UNIT_KNIGHT"
	UnitArcher UnitID = "UNIT_ARCHER"
	UnitGiant  UnitID = "UNIT_GIANT"
	UnitWizard UnitID = "UNIT_WIZARD"
)

// UnitDefinition holds all the static data for a unit archetype.
type UnitDefinition struct {
	ID         UnitID  `json:"id"`
	Name       string  `json:"name"`
	Label      string  `json:"label"` // single letter shown on the unit
	Cost       int     `json:"cost"`
	Health     int     `json:"health"`
	Damage     int     `json:"damage"`
	Speed      float64 `json:"speed"`
	AttackRate float64 `json:"attack_rate"` // seconds between attacks
	Range      float64 `json:"range"`
	Ranged     bool    `json:"ranged"`
	Splash     bool    `json:"splash"` // half damage around the primary target
	Radius     float64 `json:"radius"`
	Color      color.RGBA
}

// UnitLibrary is the library of all unit definitions, mapped by their ID.
var UnitLibrary = map[UnitID]UnitDefinition{
	UnitKnight: {
		ID: UnitKnight, Name: "Knight", Label: "K",
		Cost: 3, Health: 300, Damage: 60,
		Speed: 80.0, AttackRate: 1.2, Range: 40.0,
		Radius: 25, Color: color.RGBA{70, 120, 230, 255},
	},
	UnitArcher: {
		ID: UnitArcher, Name: "Archer", Label: "A",
		Cost: 3, Health: 150, Damage: 40,
		Speed: 60.0, AttackRate: 1.5, Range: 150.0, Ranged: true,
		Radius: 20, Color: color.RGBA{60, 190, 80, 255},
	},
	UnitGiant: {
		ID: UnitGiant, Name: "Giant", Label: "G",
		Cost: 5, Health: 1000, Damage: 80,
		Speed: 40.0, AttackRate: 2.0, Range: 50.0,
		Radius: 35, Color: color.RGBA{130, 130, 130, 255},
	},
	UnitWizard: {
		ID: UnitWizard, Name: "Wizard", Label: "W",
		Cost: 4, Health: 180, Damage: 70,
		Speed: 50.0, AttackRate: 2.5, Range: 120.0, Ranged: true, Splash: true,
		Radius: 22, Color: color.RGBA{170, 70, 220, 255},
	},
}

// UnitRoster lists the archetypes in the order the UI presents them.
var UnitRoster = []UnitID{UnitKnight, UnitArcher, UnitGiant, UnitWizard}
