package object

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/tomz197/circleshooter/internal/physics"
)

// Background grid tunables.
const (
	GridSpacing      = 30.0
	GridDotRadius    = 3.0
	GridBaseAlpha    = 0.1
	GridAlphaStep    = 0.01
	GridHideDistance = 70.0
	GridNearDistance = 100.0
	GridNearAlpha    = 0.5
	FlashFrames      = 60
)

// BackgroundParticle is one dot of the background grid. It hides under the
// player, brightens near it and flashes an enemy's color on kills.
type BackgroundParticle struct {
	X, Y   float64
	Radius float64
	Base   colorful.Color
	Alpha  float64

	flash colorful.Color
	mix   float64 // 1 = flash color, 0 = base
	fade  *gween.Tween
}

// NewBackgroundGrid lays out dots every GridSpacing units across the screen.
func NewBackgroundGrid(s Screen) []*BackgroundParticle {
	var grid []*BackgroundParticle
	for x := 0.0; x < s.Width; x += GridSpacing {
		for y := 0.0; y < s.Height; y += GridSpacing {
			grid = append(grid, &BackgroundParticle{
				X:      x,
				Y:      y,
				Radius: GridDotRadius,
				Base:   Blue,
				Alpha:  GridBaseAlpha,
			})
		}
	}
	return grid
}

// Flash tints the dot with c, fading back to its base color.
func (b *BackgroundParticle) Flash(c colorful.Color) {
	b.flash = c
	b.mix = 1
	b.fade = gween.New(1, 0, FlashFrames, ease.Linear)
}

// Color is the dot's current color.
func (b *BackgroundParticle) Color() colorful.Color {
	if b.mix <= 0 {
		return b.Base
	}
	return b.Base.BlendRgb(b.flash, b.mix)
}

// Update sets the alpha band from the distance to the player and decays the flash.
func (b *BackgroundParticle) Update(ctx UpdateContext) bool {
	if b.fade != nil {
		mix, done := b.fade.Update(1)
		b.mix = float64(mix)
		if done {
			b.mix = 0
			b.fade = nil
		}
	}
	if ctx.Player == nil {
		return false
	}

	d := physics.Distance(b.X, b.Y, ctx.Player.X, ctx.Player.Y)
	switch {
	case d < GridHideDistance:
		b.Alpha = 0
	case d < GridNearDistance:
		b.Alpha = GridNearAlpha
	case b.Alpha > GridBaseAlpha:
		b.Alpha = max(GridBaseAlpha, b.Alpha-GridAlphaStep)
	case b.Alpha < GridBaseAlpha:
		b.Alpha = min(GridBaseAlpha, b.Alpha+GridAlphaStep)
	}
	return false
}

// Draw renders the dot.
func (b *BackgroundParticle) Draw(ctx DrawContext) {
	if b.Alpha <= 0 {
		return
	}
	ctx.Renderer.FillCircle(b.X, b.Y, b.Radius, b.Color(), b.Alpha)
}
