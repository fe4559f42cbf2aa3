package object

import (
	"math"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/tomz197/circleshooter/internal/physics"
)

// Enemy size and movement tunables.
const (
	EnemyMinRadius = 8.0
	EnemyMaxRadius = 30.0
	OrbitRadius    = 30.0
	OrbitStep      = 0.1
	ShrinkFrames   = 12
)

// Movement is the way an enemy travels. It is fixed at spawn.
type Movement int

const (
	MovementLinear Movement = iota
	MovementHoming
	MovementSpinning
	MovementHomingSpinning
)

func (m Movement) String() string {
	switch m {
	case MovementLinear:
		return "Linear"
	case MovementHoming:
		return "Homing"
	case MovementSpinning:
		return "Spinning"
	case MovementHomingSpinning:
		return "HomingSpinning"
	default:
		return "Unknown"
	}
}

// RandomMovement picks a movement by nested coin flips:
// Linear 1/2, Homing 1/4, Spinning 1/8, HomingSpinning 1/8.
func RandomMovement(rng *rand.Rand) Movement {
	if rng.Float64() >= 0.5 {
		return MovementLinear
	}
	if rng.Float64() >= 0.5 {
		return MovementHoming
	}
	if rng.Float64() >= 0.5 {
		return MovementSpinning
	}
	return MovementHomingSpinning
}

// Enemy is a circle that moves toward the player.
type Enemy struct {
	X, Y     float64
	VX, VY   float64
	Radius   float64 // collision radius
	Color    colorful.Color
	Movement Movement

	// Spinning variants orbit a center that travels with the velocity.
	CenterX, CenterY float64
	Angle            float64

	drawRadius float64
	shrink     *gween.Tween
}

// NewEnemy creates an enemy at (x, y).
func NewEnemy(x, y, radius float64, c colorful.Color, vx, vy float64, m Movement) *Enemy {
	return &Enemy{
		X:          x,
		Y:          y,
		VX:         vx,
		VY:         vy,
		Radius:     radius,
		Color:      c,
		Movement:   m,
		CenterX:    x,
		CenterY:    y,
		drawRadius: radius,
	}
}

// NewEnemyAtEdge creates an enemy just outside a random edge of the field,
// heading for its center.
func NewEnemyAtEdge(screen Screen, rng *rand.Rand) *Enemy {
	radius := EnemyMinRadius + rng.Float64()*(EnemyMaxRadius-EnemyMinRadius)

	var x, y float64
	if rng.Float64() < 0.5 {
		// Left or right
		x = -radius
		if rng.Float64() >= 0.5 {
			x = screen.Width + radius
		}
		y = rng.Float64() * screen.Height
	} else {
		// Top or bottom
		x = rng.Float64() * screen.Width
		y = -radius
		if rng.Float64() >= 0.5 {
			y = screen.Height + radius
		}
	}

	vx, vy := physics.UnitToward(x, y, screen.CenterX, screen.CenterY)
	return NewEnemy(x, y, radius, RandomHue(rng), vx, vy, RandomMovement(rng))
}

// Shrink reduces the collision radius at once; the drawn radius follows
// over ShrinkFrames.
func (e *Enemy) Shrink(by float64) {
	e.Radius -= by
	e.shrink = gween.New(float32(e.drawRadius), float32(e.Radius), ShrinkFrames, ease.OutQuad)
}

// DrawRadius is the radius currently drawn.
func (e *Enemy) DrawRadius() float64 {
	return e.drawRadius
}

// Update moves the enemy according to its movement.
func (e *Enemy) Update(ctx UpdateContext) bool {
	if e.shrink != nil {
		r, done := e.shrink.Update(1)
		e.drawRadius = float64(r)
		if done {
			e.drawRadius = e.Radius
			e.shrink = nil
		}
	}

	switch e.Movement {
	case MovementLinear:
		e.X += e.VX
		e.Y += e.VY

	case MovementHoming:
		if p := ctx.Player; p != nil {
			e.VX, e.VY = physics.UnitToward(e.X, e.Y, p.X, p.Y)
		}
		e.X += e.VX
		e.Y += e.VY

	case MovementSpinning:
		e.Angle += OrbitStep
		e.CenterX += e.VX
		e.CenterY += e.VY
		e.orbit()

	case MovementHomingSpinning:
		e.Angle += OrbitStep
		if p := ctx.Player; p != nil {
			e.VX, e.VY = physics.UnitToward(e.CenterX, e.CenterY, p.X, p.Y)
		}
		e.CenterX += e.VX
		e.CenterY += e.VY
		e.orbit()
	}
	return false
}

func (e *Enemy) orbit() {
	e.X = e.CenterX + math.Cos(e.Angle)*OrbitRadius
	e.Y = e.CenterY + math.Sin(e.Angle)*OrbitRadius
}

// Draw renders the enemy.
func (e *Enemy) Draw(ctx DrawContext) {
	ctx.Renderer.FillCircle(e.X, e.Y, e.DrawRadius(), e.Color, 1)
}
