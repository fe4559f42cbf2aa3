// Package loop runs the game: the entity store, the fixed-timestep frame
// update, collisions and the start/game-over state machine.
package loop

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/circleshooter/internal/audio"
	"github.com/tomz197/circleshooter/internal/draw"
	"github.com/tomz197/circleshooter/internal/loop/config"
	"github.com/tomz197/circleshooter/internal/object"
)

// State is the phase of a game.
type State int

const (
	StateNotStarted State = iota // Start modal
	StateActive                  // Gameplay
	StateGameOver                // Game-over modal
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateActive:
		return "Active"
	case StateGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrInvalidTransition is returned by Start and Restart when called from the wrong state.
var ErrInvalidTransition = errors.New("invalid state transition")

// Listener receives UI notifications. Calls happen on the goroutine driving the game.
type Listener interface {
	Started()
	ScoreChanged(score int)
	GameOver(final int)
}

type nopListener struct{}

func (nopListener) Started() {}

func (nopListener) ScoreChanged(int) {}

func (nopListener) GameOver(int) {}

// Options configures a Game. Zero values get sensible defaults.
type Options struct {
	Width, Height float64
	Rand          *rand.Rand
	Clock         func() time.Time
	Audio         audio.Player
	Listener      Listener
	Logger        *log.Logger
}

// Game is the controller of one single-player session. It is not safe for
// concurrent use: one goroutine drives every method.
type Game struct {
	world  *World
	state  State
	score  int
	frames int

	aimX, aimY      float64
	pendingGameOver bool

	enemySpawner   *Spawner
	powerUpSpawner *Spawner

	rng      *rand.Rand
	now      func() time.Time
	audio    audio.Player
	listener Listener
	logger   *log.Logger
}

// NewGame creates a game in the NotStarted state.
func NewGame(opts Options) *Game {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}
	if opts.Listener == nil {
		opts.Listener = nopListener{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	screen := object.NewScreen(opts.Width, opts.Height)
	return &Game{
		world:          NewWorld(screen),
		state:          StateNotStarted,
		aimX:           screen.CenterX,
		aimY:           screen.CenterY,
		enemySpawner:   NewSpawner(config.EnemySpawnInterval),
		powerUpSpawner: NewSpawner(config.PowerUpSpawnInterval),
		rng:            opts.Rand,
		now:            opts.Clock,
		audio:          opts.Audio,
		listener:       opts.Listener,
		logger:         opts.Logger,
	}
}

// World exposes the entity store.
func (g *Game) World() *World { return g.world }

// State returns the current phase.
func (g *Game) State() State { return g.state }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Frames returns the number of ticks since the last reset.
func (g *Game) Frames() int { return g.frames }

// AimPoint returns the last recorded aim point.
func (g *Game) AimPoint() (x, y float64) { return g.aimX, g.aimY }

// EnemySpawns delivers a tick whenever an enemy should spawn; nil while not Active.
func (g *Game) EnemySpawns() <-chan time.Time { return g.enemySpawner.C() }

// PowerUpSpawns delivers a tick whenever a power-up should spawn; nil while not Active.
func (g *Game) PowerUpSpawns() <-chan time.Time { return g.powerUpSpawner.C() }

// Start begins the first game. Only valid before any game was played.
func (g *Game) Start() error {
	if g.state != StateNotStarted {
		return g.invalid(StateActive)
	}
	g.reset()
	return nil
}

// Restart begins a new game after a game over.
func (g *Game) Restart() error {
	if g.state != StateGameOver {
		return g.invalid(StateActive)
	}
	g.reset()
	return nil
}

// Begin starts or restarts, whichever the current state allows.
func (g *Game) Begin() error {
	if g.state == StateGameOver {
		return g.Restart()
	}
	return g.Start()
}

func (g *Game) invalid(to State) error {
	err := fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, g.state, to)
	g.logger.Debug("rejected transition", "err", err)
	return err
}

func (g *Game) reset() {
	g.world.Reset()
	g.score = 0
	g.frames = 0
	g.pendingGameOver = false
	g.enemySpawner.Start()
	g.powerUpSpawner.Start()
	g.state = StateActive
	g.audio.Play(audio.CueSelect)
	g.logger.Info("game started", "width", g.world.Screen.Width, "height", g.world.Screen.Height)
	g.listener.Started()
}

func (g *Game) gameOver() {
	g.enemySpawner.Stop()
	g.powerUpSpawner.Stop()
	g.state = StateGameOver
	g.pendingGameOver = false
	g.audio.Play(audio.CueDeath)
	g.logger.Info("game over", "score", g.score, "frames", g.frames)
	g.listener.GameOver(g.score)
}

// Stop halts both spawners without changing the state. Drivers call it on shutdown.
func (g *Game) Stop() {
	g.enemySpawner.Stop()
	g.powerUpSpawner.Stop()
}

// Resize changes the playing field.
func (g *Game) Resize(width, height float64) {
	g.world.Resize(object.NewScreen(width, height))
}

// Aim records the pointer position. It is tracked in every state.
func (g *Game) Aim(x, y float64) {
	g.aimX = x
	g.aimY = y
}

// Fire shoots a projectile from the player toward (x, y).
func (g *Game) Fire(x, y float64) {
	g.Aim(x, y)
	if g.state != StateActive {
		return
	}
	g.shoot(x, y, object.White)
	g.audio.Play(audio.CueShoot)
}

// FireAtAim shoots toward the last aim point.
func (g *Game) FireAtAim() {
	g.Fire(g.aimX, g.aimY)
}

func (g *Game) shoot(x, y float64, c colorful.Color) {
	p := g.world.Player
	angle := math.Atan2(y-p.Y, x-p.X)
	g.world.AddProjectile(object.NewProjectile(p.X, p.Y, angle, c))
}

// Nudge pushes the player.
func (g *Game) Nudge(dx, dy float64) {
	if g.state != StateActive {
		return
	}
	g.world.Player.Nudge(dx*config.NudgeSpeed, dy*config.NudgeSpeed)
}

// SpawnEnemy adds an enemy just outside a random edge.
func (g *Game) SpawnEnemy() {
	if g.state != StateActive {
		return
	}
	g.world.AddEnemy(object.NewEnemyAtEdge(g.world.Screen, g.rng))
}

// SpawnPowerUp adds a power-up entering from the left edge.
func (g *Game) SpawnPowerUp() {
	if g.state != StateActive {
		return
	}
	y := g.rng.Float64() * g.world.Screen.Height
	vx := config.PowerUpMinSpeed + g.rng.Float64()*config.PowerUpSpeedRange
	g.world.AddPowerUp(object.NewPowerUp(-object.PowerUpHalfSize, y, vx))
}

func (g *Game) addScore(points int, x, y float64) {
	g.score += points
	g.world.AddLabel(object.NewScoreLabel(x, y, points))
	g.listener.ScoreChanged(g.score)
}

// Tick advances the game one frame. It does nothing unless Active.
func (g *Game) Tick() {
	if g.state != StateActive {
		return
	}

	g.frames++
	ctx := g.world.UpdateContext()

	for _, b := range g.world.Background {
		b.Update(ctx)
	}
	g.world.Player.Update(ctx)

	g.updatePowerUps(ctx)
	g.autoFire()
	g.updateParticles(ctx)
	g.updateProjectiles(ctx)
	g.updateEnemies(ctx)
	g.updateLabels(ctx)

	if g.world.Player.ExpirePowerUp(g.now()) {
		g.logger.Debug("power-up expired", "frame", g.frames)
	}

	if g.pendingGameOver {
		g.gameOver()
	}
}

// Draw draws the world. The UI overlay is up to the driver.
func (g *Game) Draw(r draw.Renderer) {
	g.world.Draw(r)
}
