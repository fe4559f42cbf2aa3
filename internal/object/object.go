// Package object holds the game entities: the player, projectiles, enemies,
// particles, power-ups and floating score labels.
package object

import (
	"github.com/tomz197/circleshooter/internal/draw"
)

// Screen is the size of the playing field in logical units.
type Screen struct {
	Width   float64
	Height  float64
	CenterX float64
	CenterY float64
}

// NewScreen returns a screen of the given size with its center filled in.
func NewScreen(width, height float64) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Screen Screen
	Player *Player // nil before the first start
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Renderer draw.Renderer
}

// Object is a drawable and updatable game entity. Every call to Update is one
// fixed timestep.
type Object interface {
	// Update advances the object one frame. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Draw emits the object's primitives to ctx.Renderer.
	Draw(ctx DrawContext)
}
