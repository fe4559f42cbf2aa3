package object

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// PlayerRadius is the radius of the player circle.
const PlayerRadius = 10.0

// Friction is applied to player and particle velocities every frame.
const Friction = 0.99

// PowerUpKind identifies the player's active power-up.
type PowerUpKind int

const (
	PowerUpNone PowerUpKind = iota
	PowerUpMachineGun
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpMachineGun:
		return "MachineGun"
	default:
		return "None"
	}
}

// Player is the circle the user controls.
type Player struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  colorful.Color

	PowerUp      PowerUpKind
	PowerUpUntil time.Time
}

// NewPlayer creates a player at (x, y).
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Radius: PlayerRadius,
		Color:  White,
	}
}

// Nudge adds to the player's velocity.
func (p *Player) Nudge(dx, dy float64) {
	p.VX += dx
	p.VY += dy
}

// GrantPowerUp activates kind until the given time.
func (p *Player) GrantPowerUp(kind PowerUpKind, until time.Time) {
	p.PowerUp = kind
	p.PowerUpUntil = until
	p.Color = Yellow
}

// ExpirePowerUp drops the power-up once now has reached its expiry.
// Returns true if a power-up was dropped.
func (p *Player) ExpirePowerUp(now time.Time) bool {
	if p.PowerUp == PowerUpNone || now.Before(p.PowerUpUntil) {
		return false
	}
	p.PowerUp = PowerUpNone
	p.PowerUpUntil = time.Time{}
	p.Color = White
	return true
}

// Update applies friction and moves the player, stopping at the walls.
func (p *Player) Update(ctx UpdateContext) bool {
	p.VX *= Friction
	p.VY *= Friction

	// Each axis moves only if the whole circle stays on the field
	if p.X+p.Radius+p.VX <= ctx.Screen.Width && p.X-p.Radius+p.VX >= 0 {
		p.X += p.VX
	} else {
		p.VX = 0
	}
	if p.Y+p.Radius+p.VY <= ctx.Screen.Height && p.Y-p.Radius+p.VY >= 0 {
		p.Y += p.VY
	} else {
		p.VY = 0
	}
	return false
}

// Draw renders the player.
func (p *Player) Draw(ctx DrawContext) {
	ctx.Renderer.FillCircle(p.X, p.Y, p.Radius, p.Color, 1)
}
