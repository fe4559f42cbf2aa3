package loop

import (
	"math"

	"github.com/tomz197/circleshooter/internal/audio"
	"github.com/tomz197/circleshooter/internal/loop/config"
	"github.com/tomz197/circleshooter/internal/object"
	"github.com/tomz197/circleshooter/internal/physics"
)

// Every collection is walked back to front so removals never shift an
// index that is still to be visited.

// updatePowerUps culls, moves and picks up power-ups.
func (g *Game) updatePowerUps(ctx object.UpdateContext) {
	w := g.world
	for i := len(w.PowerUps) - 1; i >= 0; i-- {
		pu := w.PowerUps[i]
		if pu.Update(ctx) {
			w.RemovePowerUp(i)
			continue
		}
		if pu.Touches(w.Player) {
			w.RemovePowerUp(i)
			w.Player.GrantPowerUp(pu.Kind, g.now().Add(config.MachineGunDuration))
			g.audio.Play(audio.CuePowerUp)
			g.logger.Debug("power-up collected", "kind", pu.Kind, "frame", g.frames)
		}
	}
}

// autoFire shoots yellow projectiles at the aim point while the machine gun is active.
func (g *Game) autoFire() {
	if g.world.Player.PowerUp != object.PowerUpMachineGun {
		return
	}
	if g.frames%config.MachineGunCadence == 0 {
		g.shoot(g.aimX, g.aimY, object.Yellow)
	}
	if g.frames%config.MachineGunCueEvery == 0 {
		g.audio.Play(audio.CueShoot)
	}
}

func (g *Game) updateParticles(ctx object.UpdateContext) {
	w := g.world
	for i := len(w.Particles) - 1; i >= 0; i-- {
		if w.Particles[i].Update(ctx) {
			w.RemoveParticle(i)
		}
	}
}

func (g *Game) updateProjectiles(ctx object.UpdateContext) {
	w := g.world
	for i := len(w.Projectiles) - 1; i >= 0; i-- {
		if w.Projectiles[i].Update(ctx) {
			w.RemoveProjectile(i)
		}
	}
}

// updateEnemies moves each enemy, then tests it against the player and
// every projectile.
func (g *Game) updateEnemies(ctx object.UpdateContext) {
	w := g.world
	player := w.Player

	for i := len(w.Enemies) - 1; i >= 0; i-- {
		enemy := w.Enemies[i]
		enemy.Update(ctx)

		if physics.CirclesHit(enemy.X, enemy.Y, enemy.Radius, player.X, player.Y, player.Radius) {
			g.pendingGameOver = true
		}

		for j := len(w.Projectiles) - 1; j >= 0; j-- {
			p := w.Projectiles[j]
			if !physics.CirclesHit(enemy.X, enemy.Y, enemy.Radius, p.X, p.Y, p.Radius) {
				continue
			}
			if g.hitEnemy(i, j) {
				break
			}
		}
	}
}

// hitEnemy applies projectile j hitting enemy i. Returns true if the enemy
// was destroyed.
func (g *Game) hitEnemy(i, j int) bool {
	w := g.world
	enemy := w.Enemies[i]
	p := w.Projectiles[j]

	count := int(math.Ceil(enemy.Radius * config.ParticlesPerRad))
	w.AddParticles(object.NewBurst(p.X, p.Y, count, enemy.Color, g.rng)...)

	if enemy.Radius-config.ShrinkAmount > config.MinEnemyRadius {
		enemy.Shrink(config.ShrinkAmount)
		g.addScore(config.ScoreShrink, p.X, p.Y)
		g.audio.Play(audio.CueEnemyHit)
		w.RemoveProjectile(j)
		return false
	}

	w.RemoveEnemy(i)
	g.addScore(config.ScoreDestroy, p.X, p.Y)
	for _, b := range w.Background {
		b.Flash(enemy.Color)
	}
	g.audio.Play(audio.CueEnemyDestroyed)
	w.RemoveProjectile(j)
	return true
}

func (g *Game) updateLabels(ctx object.UpdateContext) {
	w := g.world
	for i := len(w.Labels) - 1; i >= 0; i-- {
		if w.Labels[i].Update(ctx) {
			w.RemoveLabel(i)
		}
	}
}
