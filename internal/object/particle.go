package object

import (
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParticleFade is how much alpha a particle loses per frame.
const ParticleFade = 0.01

// Particle is a short-lived fragment of an explosion.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  colorful.Color
	Alpha  float64
}

// NewBurst creates count particles at (x, y) in color c with random
// velocities of (rand-0.5)*(rand*6) per axis.
func NewBurst(x, y float64, count int, c colorful.Color, rng *rand.Rand) []*Particle {
	particles := make([]*Particle, 0, count)
	for range count {
		particles = append(particles, &Particle{
			X:      x,
			Y:      y,
			VX:     (rng.Float64() - 0.5) * (rng.Float64() * 6),
			VY:     (rng.Float64() - 0.5) * (rng.Float64() * 6),
			Radius: 2 - rng.Float64()*2, // (0, 2]
			Color:  c,
			Alpha:  1,
		})
	}
	return particles
}

// Update applies friction, moves and fades the particle. It reports removal
// on the frame its alpha reaches 0.
func (p *Particle) Update(ctx UpdateContext) bool {
	p.VX *= Friction
	p.VY *= Friction
	p.X += p.VX
	p.Y += p.VY
	p.Alpha = max(0, p.Alpha-ParticleFade)
	return p.Alpha <= 0
}

// Draw renders the particle.
func (p *Particle) Draw(ctx DrawContext) {
	ctx.Renderer.FillCircle(p.X, p.Y, p.Radius, p.Color, p.Alpha)
}
