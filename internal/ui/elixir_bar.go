// internal/ui/elixir_bar.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lane-clash/internal/config"
)

// ElixirBar shows the player's elixir as a filling bar with a counter.
type ElixirBar struct {
	X, Y float32
	W, H float32
}

func NewElixirBar(x, y, w, h float32) *ElixirBar {
	return &ElixirBar{X: x, Y: y, W: w, H: h}
}

func (b *ElixirBar) Draw(screen *ebiten.Image, current, max int) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, config.PanelColor, false)
	fill := b.W * float32(current) / float32(max)
	vector.DrawFilledRect(screen, b.X, b.Y, fill, b.H, config.ElixirColor, false)
	DrawText(screen, fmt.Sprintf("Elixir: %d/%d", current, max), int(b.X)+5, int(b.Y)+3, config.TextLightColor)
}
