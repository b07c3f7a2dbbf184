// internal/ui/world.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lane-clash/internal/app"
	"go-lane-clash/internal/config"
	"go-lane-clash/internal/types"
)

// DrawWorld renders the arena, towers, units and tracer effects from a
// frame snapshot.
func DrawWorld(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(config.BackgroundColor)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.GroundHeight, config.GroundColor, false)
	vector.DrawFilledRect(screen, 0, config.LaneY-config.LaneHalf, config.ScreenWidth, config.LaneHalf*2, config.LaneColor, false)
	vector.StrokeLine(screen, config.ScreenWidth/2, config.LaneY-config.LaneHalf, config.ScreenWidth/2, config.LaneY+config.LaneHalf, 2, config.MidlineColor, false)

	for _, tower := range snap.Towers {
		drawTower(screen, tower)
	}
	for _, unit := range snap.Units {
		drawUnit(screen, unit)
	}
	for _, effect := range snap.Effects {
		vector.DrawFilledCircle(screen, float32(effect.X), float32(effect.Y), 4, effect.Color, false)
		halo := effect.Color
		halo.A /= 2
		vector.DrawFilledCircle(screen, float32(effect.X), float32(effect.Y), 6, halo, false)
	}
}

func drawTower(screen *ebiten.Image, tower app.TowerView) {
	if !tower.Alive {
		return
	}
	x, y := float32(tower.X), float32(tower.Y)
	col := config.PlayerColor
	label := "Your Tower"
	if tower.Side == types.SideEnemy {
		col = config.EnemyColor
		label = "Enemy Tower"
	}

	vector.DrawFilledRect(screen, x-50, y-40, 100, 80, col, false)
	vector.DrawFilledRect(screen, x-35, y-70, 70, 30, col, false)
	vector.DrawFilledRect(screen, x-25, y-100, 50, 30, col, false)
	vector.StrokeRect(screen, x-50, y-40, 100, 80, 2, config.TextDarkColor, false)

	drawHealthBar(screen, x-50, y-120, 100, 10, tower.HealthFraction)
	DrawCenteredText(screen, label, int(x), int(y)-140, config.TextDarkColor)
}

func drawUnit(screen *ebiten.Image, unit app.UnitView) {
	x, y, r := float32(unit.X), float32(unit.Y), float32(unit.Radius)

	col := unit.Color
	if unit.Frozen {
		col = config.FrozenColor
		aura := config.FrozenColor
		aura.A = 80
		vector.DrawFilledCircle(screen, x, y, r+5, aura, false)
	}
	vector.DrawFilledCircle(screen, x, y, r, col, false)

	border := config.PlayerColor
	if unit.Side == types.SideEnemy {
		border = config.EnemyColor
	}
	vector.StrokeCircle(screen, x, y, r+3, 2, border, false)

	if unit.Ranged {
		ring := unit.Color
		ring.A = 70
		vector.StrokeCircle(screen, x, y, float32(unit.Range), 1, ring, false)
	}

	drawHealthBar(screen, x-r, y-r-15, r*2, 5, unit.HealthFraction)
	DrawCenteredText(screen, unit.Label, int(x), int(y)-7, config.TextDarkColor)

	if unit.Frozen {
		DrawCenteredText(screen, "FROZEN", int(x), int(y+r)+5, config.PlayerColor)
	}
	if unit.HasTarget {
		line := config.EnemyColor
		line.A = 120
		vector.StrokeLine(screen, x, y, float32(unit.TargetX), float32(unit.TargetY), 1, line, false)
	}
	for _, wp := range unit.PathAhead {
		vector.DrawFilledCircle(screen, float32(wp.X), float32(wp.Y), 2, color.RGBA{60, 200, 60, 120}, false)
	}
}

func drawHealthBar(screen *ebiten.Image, x, y, w, h float32, fraction float64) {
	vector.DrawFilledRect(screen, x, y, w, h, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, x, y, w*float32(fraction), h, config.HealthFillColor, false)
}
