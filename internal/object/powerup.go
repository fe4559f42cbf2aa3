package object

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/tomz197/circleshooter/internal/draw"
	"github.com/tomz197/circleshooter/internal/physics"
)

// Power-up tunables.
const (
	PowerUpHalfSize   = 18.0
	PowerUpSpin       = 0.01
	PowerUpPulseFrame = 12 // 0.2s at 60 FPS
)

// PowerUp is a pickup that drifts right across the field.
type PowerUp struct {
	X, Y     float64
	VX       float64
	Rotation float64
	Kind     PowerUpKind

	alpha float64
	pulse *gween.Sequence
}

// NewPowerUp creates a machine-gun pickup at (x, y).
func NewPowerUp(x, y, vx float64) *PowerUp {
	return &PowerUp{
		X:     x,
		Y:     y,
		VX:    vx,
		Kind:  PowerUpMachineGun,
		alpha: 1,
		pulse: newPulse(),
	}
}

// newPulse fades 1 -> 0 -> 1 over PowerUpPulseFrame frames per leg, forever.
func newPulse() *gween.Sequence {
	seq := gween.NewSequence(
		gween.New(1, 0, PowerUpPulseFrame, ease.Linear),
		gween.New(0, 1, PowerUpPulseFrame, ease.Linear),
	)
	seq.SetLoop(-1)
	return seq
}

// Alpha is the current pulse opacity.
func (p *PowerUp) Alpha() float64 {
	return p.alpha
}

// Offscreen reports whether the pickup has drifted past the right edge.
func (p *PowerUp) Offscreen(s Screen) bool {
	return p.X-PowerUpHalfSize > s.Width
}

// Touches reports whether the player's circle reaches the pickup.
func (p *PowerUp) Touches(pl *Player) bool {
	return physics.PointInCircle(pl.X, pl.Y, p.X, p.Y, PowerUpHalfSize+pl.Radius)
}

// Update removes the pickup once it left the field, otherwise drifts,
// spins and pulses it.
func (p *PowerUp) Update(ctx UpdateContext) bool {
	if p.Offscreen(ctx.Screen) {
		return true
	}
	p.X += p.VX
	p.Rotation += PowerUpSpin
	alpha, _, _ := p.pulse.Update(1)
	p.alpha = float64(alpha)
	return false
}

// Draw renders the pickup as a rotated square with a bright core.
func (p *PowerUp) Draw(ctx DrawContext) {
	alpha := p.Alpha()
	square := make([]draw.Point, 4)
	for i := range square {
		a := p.Rotation + math.Pi/4 + float64(i)*math.Pi/2
		square[i] = draw.Point{
			X: p.X + math.Cos(a)*PowerUpHalfSize*math.Sqrt2,
			Y: p.Y + math.Sin(a)*PowerUpHalfSize*math.Sqrt2,
		}
	}
	ctx.Renderer.FillPolygon(square, Yellow, alpha)
	ctx.Renderer.FillCircle(p.X, p.Y, PowerUpHalfSize/3, White, alpha)
}
