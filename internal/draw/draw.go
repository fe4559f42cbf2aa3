// Package draw renders logical game primitives to a terminal canvas.
package draw

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Renderer is the drawing collaborator used by every entity. Coordinates and
// sizes are logical field units; implementations map them to their own
// pixels. alpha is the opacity in [0,1].
type Renderer interface {
	FillCircle(x, y, radius float64, c colorful.Color, alpha float64)
	FillPolygon(points []Point, c colorful.Color, alpha float64)
	Text(x, y float64, s string, c colorful.Color, alpha float64)
}

// Black is the canvas background.
var Black = colorful.Color{}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
