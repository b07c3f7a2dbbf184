// cmd/game/main.go
package main

import (
	"errors"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-lane-clash/internal/app"
	"go-lane-clash/internal/config"
	"go-lane-clash/internal/defs"
	"go-lane-clash/internal/state"
)

const (
	unitDefsPath = "assets/units.json"
	waveDefsPath = "assets/waves.json"
)

// AppGame adapts the state machine to ebiten's game loop.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// loadOverrides applies optional JSON definition files next to the binary.
// Missing files keep the built-in tables.
func loadOverrides() []defs.WaveDefinition {
	if _, err := os.Stat(unitDefsPath); err == nil {
		if err := defs.LoadUnitDefinitions(unitDefsPath); err != nil {
			log.Printf("unit definitions override skipped: %v", err)
		}
	}
	if _, err := os.Stat(waveDefsPath); err == nil {
		waves, err := defs.LoadWaveDefinitions(waveDefsPath)
		if err != nil {
			log.Printf("wave definitions override skipped: %v", err)
			return nil
		}
		return waves
	}
	return nil
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	waves := loadOverrides()
	game := app.NewGame(0, waves)

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, game))

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Lane Clash")
	if err := ebiten.RunGame(appGame); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
