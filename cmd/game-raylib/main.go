// cmd/game-raylib/main.go
package main

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-lane-clash/internal/app"
	"go-lane-clash/internal/component"
	"go-lane-clash/internal/config"
	"go-lane-clash/internal/defs"
	"go-lane-clash/internal/types"
)

// Alternative raylib frontend over the same simulation core. It consumes the
// identical snapshot the ebiten driver uses; only the drawing calls differ.

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func main() {
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Lane Clash")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	game := app.NewGame(0, nil)
	spawnKeys := []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour}

	for !rl.WindowShouldClose() {
		deltaTime := float64(rl.GetFrameTime())
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}

		snap := game.Snapshot()
		switch snap.Phase {
		case component.PhasePreGame:
			if rl.IsKeyPressed(rl.KeyEnter) {
				game.Start()
			}
		case component.PhasePlaying:
			for i, key := range spawnKeys {
				if i < len(defs.UnitRoster) && rl.IsKeyPressed(key) {
					game.SpawnUnit(defs.UnitRoster[i])
				}
			}
			if rl.IsKeyPressed(rl.KeyF) {
				game.ActivateFreeze()
			}
		case component.PhasePostGame:
			if rl.IsKeyPressed(rl.KeyR) {
				game.Reset()
				game.Start()
			}
		}

		game.Update(deltaTime)
		snap = game.Snapshot()

		rl.BeginDrawing()
		switch snap.Phase {
		case component.PhasePreGame:
			drawStartScreen()
		case component.PhasePlaying:
			drawWorld(snap)
			drawHUD(snap)
		case component.PhasePostGame:
			drawWorld(snap)
			drawGameOver(snap)
		}
		rl.EndDrawing()
	}
}

func drawStartScreen() {
	rl.ClearBackground(toRL(config.CooldownColor))
	title := "LANE CLASH"
	rl.DrawText(title, (config.ScreenWidth-rl.MeasureText(title, 80))/2, 100, 80, toRL(config.MidlineColor))
	for i, id := range defs.UnitRoster {
		def := defs.UnitLibrary[id]
		line := fmt.Sprintf("%s (Press %d) - cost %d", def.Name, i+1, def.Cost)
		rl.DrawText(line, 200, int32(300+i*30), 22, rl.White)
	}
	rl.DrawText("Freeze (Press F) - freeze enemies", 700, 300, 22, rl.White)
	start := "PRESS ENTER TO START"
	rl.DrawText(start, (config.ScreenWidth-rl.MeasureText(start, 50))/2, 550, 50, toRL(config.ReadyColor))
}

func drawWorld(snap app.Snapshot) {
	rl.ClearBackground(toRL(config.BackgroundColor))
	rl.DrawRectangle(0, 0, config.ScreenWidth, config.GroundHeight, toRL(config.GroundColor))
	rl.DrawRectangle(0, config.LaneY-config.LaneHalf, config.ScreenWidth, config.LaneHalf*2, toRL(config.LaneColor))

	for _, tower := range snap.Towers {
		if !tower.Alive {
			continue
		}
		col := toRL(config.PlayerColor)
		if tower.Side == types.SideEnemy {
			col = toRL(config.EnemyColor)
		}
		x, y := int32(tower.X), int32(tower.Y)
		rl.DrawRectangle(x-50, y-40, 100, 80, col)
		rl.DrawRectangle(x-35, y-70, 70, 30, col)
		rl.DrawRectangle(x-25, y-100, 50, 30, col)
		drawBar(x-50, y-120, 100, 10, tower.HealthFraction)
	}

	for _, unit := range snap.Units {
		col := toRL(unit.Color)
		if unit.Frozen {
			col = toRL(config.FrozenColor)
		}
		x, y := int32(unit.X), int32(unit.Y)
		rl.DrawCircle(x, y, float32(unit.Radius), col)
		border := toRL(config.PlayerColor)
		if unit.Side == types.SideEnemy {
			border = toRL(config.EnemyColor)
		}
		rl.DrawCircleLines(x, y, float32(unit.Radius)+3, border)
		drawBar(x-int32(unit.Radius), y-int32(unit.Radius)-15, int32(unit.Radius)*2, 5, unit.HealthFraction)
		rl.DrawText(unit.Label, x-5, y-8, 12, rl.Black)
	}

	for _, effect := range snap.Effects {
		rl.DrawCircle(int32(effect.X), int32(effect.Y), 4, toRL(effect.Color))
	}
}

func drawHUD(snap app.Snapshot) {
	rl.DrawRectangle(10, 10, 200, 20, rl.DarkGray)
	fill := int32(200 * snap.PlayerElixir / snap.MaxElixir)
	rl.DrawRectangle(10, 10, fill, 20, toRL(config.ElixirColor))
	rl.DrawText(fmt.Sprintf("Elixir: %d/%d", snap.PlayerElixir, snap.MaxElixir), 15, 12, 15, rl.White)

	minutes := int(snap.TimeLeft) / 60
	seconds := int(snap.TimeLeft) % 60
	rl.DrawText(fmt.Sprintf("%02d:%02d", minutes, seconds), config.ScreenWidth/2-40, 20, 40, rl.White)

	if snap.FreezeReady {
		rl.DrawText("FREEZE READY (F)", 10, 40, 20, toRL(config.ReadyColor))
	} else {
		rl.DrawText(fmt.Sprintf("Freeze: %.1fs", snap.FreezeCooldown), 10, 40, 20, rl.Gray)
	}

	if snap.Wave.InCooldown {
		rl.DrawText(fmt.Sprintf("Next Wave: %.1fs", snap.Wave.CooldownLeft), config.ScreenWidth-250, 20, 20, toRL(config.WarningColor))
	} else {
		rl.DrawText(fmt.Sprintf("Wave %d", snap.Wave.Number), config.ScreenWidth-250, 20, 20, toRL(config.MidlineColor))
		if snap.Wave.EntryCount > 0 {
			rl.DrawText(fmt.Sprintf("Spawning: %s %d/%d", snap.Wave.SpawningName, snap.Wave.SpawnedOfEntry, snap.Wave.EntryCount),
				config.ScreenWidth-250, 45, 18, rl.White)
		}
	}
}

func drawGameOver(snap app.Snapshot) {
	rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, rl.NewColor(0, 0, 0, 200))
	rl.DrawText(snap.OutcomeText, (config.ScreenWidth-rl.MeasureText(snap.OutcomeText, 60))/2, config.ScreenHeight/2-50, 60, rl.White)
	restart := "Press R to Restart"
	rl.DrawText(restart, (config.ScreenWidth-rl.MeasureText(restart, 30))/2, config.ScreenHeight/2+40, 30, toRL(config.ReadyColor))
}

func drawBar(x, y, w, h int32, fraction float64) {
	rl.DrawRectangle(x, y, w, h, toRL(config.HealthBackColor))
	rl.DrawRectangle(x, y, int32(float64(w)*fraction), h, toRL(config.HealthFillColor))
}
