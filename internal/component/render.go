// internal/component/render.go
package component

import "image/color"

// Renderable carries the visual parameters the frontends need.
type Renderable struct {
	Color  color.RGBA
	Radius float64
	Label  string
}
