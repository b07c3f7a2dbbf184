// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-lane-clash/internal/app"
	"go-lane-clash/internal/config"
	"go-lane-clash/internal/defs"
	"go-lane-clash/internal/ui"
)

// MenuState is the pre-game screen with the unit roster and key bindings.
type MenuState struct {
	sm   *StateMachine
	game *app.Game
}

func NewMenuState(sm *StateMachine, game *app.Game) *MenuState {
	return &MenuState{sm: sm, game: game}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.game.Start()
		m.sm.SetState(NewPlayingState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.CooldownColor)

	ui.DrawBigText(screen, "LANE CLASH", config.ScreenWidth/2, 110, config.MidlineColor)
	ui.DrawCenteredText(screen, "Defend your tower against enemy waves for 2 minutes!", config.ScreenWidth/2, 200, config.TextLightColor)

	y := 280
	ui.DrawText(screen, "UNIT TYPES:", 200, y, config.ReadyColor)
	for i, id := range defs.UnitRoster {
		def := defs.UnitLibrary[id]
		role := "melee"
		if def.Ranged {
			role = "ranged"
		}
		if def.Splash {
			role = "area damage"
		}
		line := fmt.Sprintf("%s (Press %d) - %s, cost %d", def.Name, i+1, role, def.Cost)
		ui.DrawText(screen, line, 200, y+24+(i*24), config.TextLightColor)
	}

	ui.DrawText(screen, "SPECIAL ABILITY:", 700, y, config.ReadyColor)
	ui.DrawText(screen, fmt.Sprintf("Freeze (Press F) - freeze enemies for %.0fs", float64(config.FreezeDuration)), 700, y+24, config.TextLightColor)
	ui.DrawText(screen, fmt.Sprintf("%.0fs cooldown", float64(config.FreezeCooldown)), 700, y+48, config.TextLightColor)

	ui.DrawBigText(screen, "PRESS ENTER TO START", config.ScreenWidth/2, 520, config.ReadyColor)
	ui.DrawCenteredText(screen, "Destroy the enemy tower to win!", config.ScreenWidth/2, 620, config.MidlineColor)
}

func (m *MenuState) Exit() {}
