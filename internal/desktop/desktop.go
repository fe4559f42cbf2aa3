// Package desktop runs the game in an ebiten window.
package desktop

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/circleshooter/internal/audio"
	"github.com/tomz197/circleshooter/internal/loop"
	"github.com/tomz197/circleshooter/internal/loop/config"
)

// Options configures the window.
type Options struct {
	Width, Height int
	Audio         audio.Player
	Logger        *log.Logger
	Rand          *rand.Rand
}

// Driver implements ebiten.Game around a loop.Game. ebiten calls Update and
// Draw from one goroutine, which makes it the game's only goroutine.
type Driver struct {
	game     *loop.Game
	width    int
	height   int
	renderer screenRenderer
	cursorX  int
	cursorY  int
	logger   *log.Logger
}

// New creates a driver with a fresh game.
func New(opts Options) *Driver {
	if opts.Width <= 0 {
		opts.Width = config.DesktopWidth
	}
	if opts.Height <= 0 {
		opts.Height = config.DesktopHeight
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Driver{
		game: loop.NewGame(loop.Options{
			Width:  float64(opts.Width),
			Height: float64(opts.Height),
			Rand:   opts.Rand,
			Audio:  opts.Audio,
			Logger: opts.Logger,
		}),
		width:  opts.Width,
		height: opts.Height,
		logger: opts.Logger,
	}
}

// Run opens the window and blocks until it is closed or the user quits.
func Run(d *Driver, title string) error {
	ebiten.SetWindowSize(d.width, d.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(config.TargetFPS)
	defer d.game.Stop()

	err := ebiten.RunGame(d)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Game returns the driven game.
func (d *Driver) Game() *loop.Game {
	return d.game
}

// Update runs one frame: spawns, input, then the game tick.
func (d *Driver) Update() error {
	select {
	case <-d.game.EnemySpawns():
		d.game.SpawnEnemy()
	default:
	}
	select {
	case <-d.game.PowerUpSpawns():
		d.game.SpawnPowerUp()
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	d.processInput()
	d.game.Tick()
	return nil
}

func (d *Driver) processInput() {
	x, y := ebiten.CursorPosition()
	if x != d.cursorX || y != d.cursorY {
		d.cursorX, d.cursorY = x, y
		d.game.Aim(float64(x), float64(y))
	}

	active := d.game.State() == loop.StateActive
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if active {
			d.game.Fire(float64(x), float64(y))
		} else {
			d.begin()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		d.begin()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if active {
			d.game.FireAtAim()
		} else {
			d.begin()
		}
	}

	for _, n := range nudgeKeys {
		if inpututil.IsKeyJustPressed(n.key) {
			d.game.Nudge(n.dx, n.dy)
		}
	}
}

var nudgeKeys = []struct {
	key    ebiten.Key
	dx, dy float64
}{
	{ebiten.KeyW, 0, -1}, {ebiten.KeyArrowUp, 0, -1},
	{ebiten.KeyS, 0, 1}, {ebiten.KeyArrowDown, 0, 1},
	{ebiten.KeyA, -1, 0}, {ebiten.KeyArrowLeft, -1, 0},
	{ebiten.KeyD, 1, 0}, {ebiten.KeyArrowRight, 1, 0},
}

func (d *Driver) begin() {
	if d.game.State() == loop.StateActive {
		return
	}
	if err := d.game.Begin(); err != nil {
		d.logger.Debug("could not start game", "err", err)
	}
}

// Draw renders the world and the UI text.
func (d *Driver) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	d.renderer.dst = screen
	d.game.Draw(&d.renderer)

	switch d.game.State() {
	case loop.StateNotStarted:
		d.drawModal(screen, "CIRCLE SHOOTER", "", "Click or press ENTER to start",
			"WASD / Arrows move, Q quits")
	case loop.StateActive:
		ebitenutil.DebugPrintAt(screen, "Score: "+strconv.Itoa(d.game.Score()), 10, 10)
	case loop.StateGameOver:
		d.drawModal(screen, "GAME OVER", "", strconv.Itoa(d.game.Score()), "Points", "",
			"Click or press ENTER to restart")
	}
}

func (d *Driver) drawModal(screen *ebiten.Image, lines ...string) {
	top := d.height/2 - len(lines)*debugGlyphH/2
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		x := d.width/2 - len(line)*debugGlyphW/2
		ebitenutil.DebugPrintAt(screen, line, x, top+i*debugGlyphH)
	}
}

// Layout keeps the logical field at the configured size; ebiten scales it to the window.
func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.width, d.height
}
