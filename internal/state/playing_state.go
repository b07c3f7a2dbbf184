// internal/state/playing_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-lane-clash/internal/app"
	"go-lane-clash/internal/component"
	"go-lane-clash/internal/config"
	"go-lane-clash/internal/defs"
	"go-lane-clash/internal/ui"
)

// PlayingState maps input to simulation commands while the match runs and
// renders the world from the frame snapshot.
type PlayingState struct {
	sm   *StateMachine
	game *app.Game

	elixirBar *ui.ElixirBar
	cards     *ui.UnitCards
	panel     *ui.InfoPanel
}

func NewPlayingState(sm *StateMachine, game *app.Game) *PlayingState {
	return &PlayingState{
		sm:        sm,
		game:      game,
		elixirBar: ui.NewElixirBar(10, 10, 200, 20),
		cards:     ui.NewUnitCards(config.ScreenWidth/2-360, 45),
		panel:     ui.NewInfoPanel(config.ScreenWidth/2-400, 120, 800, 140),
	}
}

func (p *PlayingState) Enter() {}

func (p *PlayingState) Update(deltaTime float64) {
	spawnKeys := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}
	for i, key := range spawnKeys {
		if i < len(defs.UnitRoster) && inpututil.IsKeyJustPressed(key) {
			p.game.SpawnUnit(defs.UnitRoster[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		p.game.ActivateFreeze()
	}

	p.game.Update(deltaTime)

	if p.game.Snapshot().Phase == component.PhasePostGame {
		p.sm.SetState(NewGameOverState(p.sm, p.game))
	}
}

func (p *PlayingState) Draw(screen *ebiten.Image) {
	snap := p.game.Snapshot()
	ui.DrawWorld(screen, snap)
	p.elixirBar.Draw(screen, snap.PlayerElixir, snap.MaxElixir)
	p.cards.Draw(screen, snap.PlayerElixir)
	p.panel.Draw(screen, snap)
}

func (p *PlayingState) Exit() {}
