package object

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ProjectileSpeed is the fixed speed of projectiles.
const ProjectileSpeed = 5.0

// ProjectileRadius is the radius of a projectile.
const ProjectileRadius = 5.0

// Projectile is a bullet fired by the player.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  colorful.Color
}

// NewProjectile creates a projectile at (x, y) traveling in direction angle.
func NewProjectile(x, y, angle float64, c colorful.Color) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		VX:     math.Cos(angle) * ProjectileSpeed,
		VY:     math.Sin(angle) * ProjectileSpeed,
		Radius: ProjectileRadius,
		Color:  c,
	}
}

// Offscreen reports whether the projectile has fully left the field.
func (p *Projectile) Offscreen(s Screen) bool {
	return p.X+p.Radius < 0 ||
		p.X-p.Radius > s.Width ||
		p.Y+p.Radius < 0 ||
		p.Y-p.Radius > s.Height
}

// Update moves the projectile. It is removed once off the field.
func (p *Projectile) Update(ctx UpdateContext) bool {
	p.X += p.VX
	p.Y += p.VY
	return p.Offscreen(ctx.Screen)
}

// Draw renders the projectile.
func (p *Projectile) Draw(ctx DrawContext) {
	ctx.Renderer.FillCircle(p.X, p.Y, p.Radius, p.Color, 1)
}
