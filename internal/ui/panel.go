// internal/ui/panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lane-clash/internal/app"
	"go-lane-clash/internal/config"
)

// InfoPanel shows the match timer, the freeze ability state and the wave
// progress above the lane.
type InfoPanel struct {
	X, Y float32
	W, H float32
}

func NewInfoPanel(x, y, w, h float32) *InfoPanel {
	return &InfoPanel{X: x, Y: y, W: w, H: h}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap app.Snapshot) {
	vector.DrawFilledRect(screen, p.X, p.Y, p.W, p.H, config.PanelColor, false)
	vector.StrokeRect(screen, p.X, p.Y, p.W, p.H, 1, config.TextDarkColor, false)

	x, y := int(p.X), int(p.Y)

	// Timer.
	minutes := int(snap.TimeLeft) / 60
	seconds := int(snap.TimeLeft) % 60
	timerColor := config.ReadyColor
	if snap.TimeLeft < 30 {
		timerColor = config.HealthBackColor
	}
	DrawText(screen, "TIME LEFT", x+20, y+20, config.TextLightColor)
	DrawText(screen, fmt.Sprintf("%02d:%02d", minutes, seconds), x+20, y+50, timerColor)

	// Freeze ability.
	DrawText(screen, "FREEZE ABILITY", x+280, y+20, config.TextLightColor)
	if snap.FreezeReady {
		vector.DrawFilledRect(screen, p.X+280, p.Y+45, 240, 36, config.PlayerColor, false)
		DrawText(screen, "READY (Press F)", x+300, y+55, config.TextLightColor)
	} else {
		vector.DrawFilledRect(screen, p.X+280, p.Y+45, 240, 36, config.CooldownColor, false)
		DrawText(screen, fmt.Sprintf("Cooldown: %.1fs", snap.FreezeCooldown), x+300, y+55, config.TextLightColor)
	}

	// Wave info.
	DrawText(screen, "CURRENT WAVE", x+560, y+20, config.TextLightColor)
	if snap.Wave.InCooldown {
		DrawText(screen, fmt.Sprintf("Next Wave: %.1fs", snap.Wave.CooldownLeft), x+560, y+50, config.WarningColor)
		DrawText(screen, "Prepare Your Defense!", x+560, y+74, config.MidlineColor)
	} else {
		DrawText(screen, fmt.Sprintf("Wave %d", snap.Wave.Number), x+560, y+50, config.MidlineColor)
		if snap.Wave.EntryCount > 0 {
			DrawText(screen, fmt.Sprintf("Spawning: %s %d/%d",
				snap.Wave.SpawningName, snap.Wave.SpawnedOfEntry, snap.Wave.EntryCount),
				x+560, y+78, config.TextLightColor)
		}
		DrawText(screen, fmt.Sprintf("Total: %d units", snap.Wave.TotalUnits), x+560, y+102, config.TextLightColor)
	}
}
