package loop

import (
	"slices"

	"github.com/tomz197/circleshooter/internal/draw"
	"github.com/tomz197/circleshooter/internal/object"
)

// World owns every entity collection of one game. Collections are ordered
// and removal preserves the order of the remaining entities.
type World struct {
	Screen      object.Screen
	Player      *object.Player
	Projectiles []*object.Projectile
	Enemies     []*object.Enemy
	Particles   []*object.Particle
	Background  []*object.BackgroundParticle
	PowerUps    []*object.PowerUp
	Labels      []*object.ScoreLabel
}

// NewWorld creates an empty world. It has no player until Reset.
func NewWorld(screen object.Screen) *World {
	return &World{Screen: screen}
}

// Reset places a fresh player at the center, clears every dynamic
// collection and regenerates the background grid.
func (w *World) Reset() {
	w.Player = object.NewPlayer(w.Screen.CenterX, w.Screen.CenterY)
	w.Projectiles = nil
	w.Enemies = nil
	w.Particles = nil
	w.PowerUps = nil
	w.Labels = nil
	w.Background = object.NewBackgroundGrid(w.Screen)
}

// Resize changes the field size. The background grid is rebuilt and the
// player is kept on the field.
func (w *World) Resize(screen object.Screen) {
	if screen == w.Screen {
		return
	}
	w.Screen = screen
	w.Background = object.NewBackgroundGrid(screen)
	if p := w.Player; p != nil {
		p.X = max(p.Radius, min(p.X, screen.Width-p.Radius))
		p.Y = max(p.Radius, min(p.Y, screen.Height-p.Radius))
	}
}

// UpdateContext creates an UpdateContext from the current state.
func (w *World) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Screen: w.Screen,
		Player: w.Player,
	}
}

// AddProjectile appends a projectile.
func (w *World) AddProjectile(p *object.Projectile) {
	w.Projectiles = append(w.Projectiles, p)
}

// RemoveProjectile removes the projectile at index i.
func (w *World) RemoveProjectile(i int) {
	w.Projectiles = slices.Delete(w.Projectiles, i, i+1)
}

// AddEnemy appends an enemy.
func (w *World) AddEnemy(e *object.Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// RemoveEnemy removes the enemy at index i.
func (w *World) RemoveEnemy(i int) {
	w.Enemies = slices.Delete(w.Enemies, i, i+1)
}

// AddParticles appends particles.
func (w *World) AddParticles(ps ...*object.Particle) {
	w.Particles = append(w.Particles, ps...)
}

// RemoveParticle removes the particle at index i.
func (w *World) RemoveParticle(i int) {
	w.Particles = slices.Delete(w.Particles, i, i+1)
}

// AddPowerUp appends a power-up.
func (w *World) AddPowerUp(p *object.PowerUp) {
	w.PowerUps = append(w.PowerUps, p)
}

// RemovePowerUp removes the power-up at index i.
func (w *World) RemovePowerUp(i int) {
	w.PowerUps = slices.Delete(w.PowerUps, i, i+1)
}

// AddLabel appends a score label.
func (w *World) AddLabel(l *object.ScoreLabel) {
	w.Labels = append(w.Labels, l)
}

// RemoveLabel removes the score label at index i.
func (w *World) RemoveLabel(i int) {
	w.Labels = slices.Delete(w.Labels, i, i+1)
}

// Draw draws every entity, back layer first.
func (w *World) Draw(r draw.Renderer) {
	ctx := object.DrawContext{Renderer: r}

	for _, b := range w.Background {
		b.Draw(ctx)
	}
	if w.Player != nil {
		w.Player.Draw(ctx)
	}
	for _, p := range w.PowerUps {
		p.Draw(ctx)
	}
	for _, p := range w.Particles {
		p.Draw(ctx)
	}
	for _, p := range w.Projectiles {
		p.Draw(ctx)
	}
	for _, e := range w.Enemies {
		e.Draw(ctx)
	}
	for _, l := range w.Labels {
		l.Draw(ctx)
	}
}
