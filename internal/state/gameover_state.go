// internal/state/gameover_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lane-clash/internal/app"
	"go-lane-clash/internal/config"
	"go-lane-clash/internal/ui"
)

// GameOverState shows the outcome over the final frame and offers a restart.
type GameOverState struct {
	sm   *StateMachine
	game *app.Game
}

func NewGameOverState(sm *StateMachine, game *app.Game) *GameOverState {
	return &GameOverState{sm: sm, game: game}
}

func (g *GameOverState) Enter() {}

func (g *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Reset()
		g.game.Start()
		g.sm.SetState(NewPlayingState(g.sm, g.game))
	}
}

func (g *GameOverState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	ui.DrawWorld(screen, snap)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 200}, false)
	ui.DrawBigText(screen, snap.OutcomeText, config.ScreenWidth/2, config.ScreenHeight/2-50, config.TextLightColor)
	ui.DrawCenteredText(screen, "Press R to Restart", config.ScreenWidth/2, config.ScreenHeight/2+40, config.ReadyColor)
	ui.DrawCenteredText(screen, "Press ESC to Exit", config.ScreenWidth/2, config.ScreenHeight/2+70, config.MidlineColor)
}

func (g *GameOverState) Exit() {}
