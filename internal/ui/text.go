// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var face font.Face = basicfont.Face7x13

// DrawText draws str with its top-left corner at (x, y).
func DrawText(screen *ebiten.Image, str string, x, y int, clr color.Color) {
	text.Draw(screen, str, face, x, y+11, clr)
}

// DrawCenteredText draws str horizontally centered on cx.
func DrawCenteredText(screen *ebiten.Image, str string, cx, y int, clr color.Color) {
	b := text.BoundString(face, str)
	DrawText(screen, str, cx-b.Dx()/2, y, clr)
}

// DrawBigText renders str at triple scale, centered on cx. The basic face
// only has one size, so the string is drawn to an offscreen image and
// scaled up.
func DrawBigText(screen *ebiten.Image, str string, cx, y int, clr color.Color) {
	if str == "" {
		return
	}
	const scale = 3
	b := text.BoundString(face, str)
	w, h := b.Dx()+2, b.Dy()+2
	if w <= 2 || h <= 2 {
		return
	}
	img := ebiten.NewImage(w, h)
	text.Draw(img, str, face, -b.Min.X+1, -b.Min.Y+1, clr)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(cx)-float64(w)*scale/2, float64(y))
	screen.DrawImage(img, op)
}
