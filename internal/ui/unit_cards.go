// internal/ui/unit_cards.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lane-clash/internal/config"
	"go-lane-clash/internal/defs"
)

// UnitCards draws one spawn card per archetype, colored by affordability.
type UnitCards struct {
	X, Y       float32
	CardWidth  float32
	CardHeight float32
}

func NewUnitCards(x, y float32) *UnitCards {
	return &UnitCards{X: x, Y: y, CardWidth: 180, CardHeight: 70}
}

func (c *UnitCards) Draw(screen *ebiten.Image, elixir int) {
	for i, id := range defs.UnitRoster {
		def := defs.UnitLibrary[id]
		x := c.X + float32(i)*c.CardWidth

		bg := config.HealthBackColor
		if elixir >= def.Cost {
			bg = config.ReadyColor
		}
		vector.DrawFilledRect(screen, x, c.Y, c.CardWidth-10, c.CardHeight, bg, false)
		vector.StrokeRect(screen, x, c.Y, c.CardWidth-10, c.CardHeight, 1, config.TextDarkColor, false)

		DrawText(screen, fmt.Sprintf("%s (%d)", def.Name, i+1), int(x)+8, int(c.Y)+4, config.TextDarkColor)
		DrawText(screen, fmt.Sprintf("Cost: %d", def.Cost), int(x)+8, int(c.Y)+20, config.TextDarkColor)
		DrawText(screen, fmt.Sprintf("HP: %d  DMG: %d", def.Health, def.Damage), int(x)+8, int(c.Y)+36, config.TextDarkColor)

		role := "MELEE"
		if def.Ranged {
			role = "RANGED"
		}
		DrawText(screen, role, int(x)+8, int(c.Y)+52, config.TextDarkColor)
	}
}
