package loop

import (
	"bufio"
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/tomz197/circleshooter/internal/audio"
	"github.com/tomz197/circleshooter/internal/draw"
	"github.com/tomz197/circleshooter/internal/input"
	"github.com/tomz197/circleshooter/internal/loop/config"
)

// SessionOptions configures a terminal session.
type SessionOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Audio        audio.Player
	Logger       *log.Logger
	Rand         *rand.Rand
	Clock        func() time.Time
}

// Session drives one game on one terminal: it owns the only goroutine that
// touches the game, reads input, ticks frames and renders.
type Session struct {
	game         *Game
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	styles       Styles
	logger       *log.Logger
	running      bool
	redraw       bool
}

// NewSession creates a session reading from r and rendering to w.
func NewSession(r *bufio.Reader, w io.Writer, opts SessionOptions) *Session {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	termWidth, termHeight, err := termSizeFunc()
	if err != nil || termWidth <= 0 || termHeight <= 0 {
		termWidth, termHeight = 80, 24
	}
	fieldW, fieldH := fieldSize(termWidth, termHeight)

	s := &Session{
		canvas:       draw.NewScaledCanvas(termWidth, termHeight, fieldW, fieldH),
		chunkWriter:  draw.NewChunkWriter(w),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		styles:       NewStyles(lipgloss.NewRenderer(w, termenv.WithProfile(termenv.TrueColor))),
		logger:       logger,
		running:      true,
		redraw:       true,
	}
	s.game = NewGame(Options{
		Width:    fieldW,
		Height:   fieldH,
		Rand:     opts.Rand,
		Clock:    opts.Clock,
		Audio:    opts.Audio,
		Listener: s,
		Logger:   logger,
	})
	return s
}

// fieldSize maps a terminal size to the logical field it shows.
func fieldSize(cols, rows int) (float64, float64) {
	return float64(cols * config.PixelScale), float64(rows * 2 * config.PixelScale)
}

// Game returns the session's game.
func (s *Session) Game() *Game {
	return s.game
}

// Started implements Listener.
func (s *Session) Started() {
	s.redraw = true
}

// ScoreChanged implements Listener.
func (s *Session) ScoreChanged(int) {}

// GameOver implements Listener.
func (s *Session) GameOver(final int) {
	s.redraw = true
}

// Run blocks until the user quits, the input closes or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	draw.HideCursor(s.writer)
	draw.EnableMouse(s.writer)
	draw.ClearScreen(s.writer)
	defer func() {
		s.game.Stop()
		draw.DisableMouse(s.writer)
		draw.ShowCursor(s.writer)
		draw.ClearScreen(s.writer)
	}()

	ticker := time.NewTicker(config.TargetFrameTime)
	defer ticker.Stop()

	for s.running {
		select {
		case <-ctx.Done():
			return nil
		case <-s.game.EnemySpawns():
			s.game.SpawnEnemy()
		case <-s.game.PowerUpSpawns():
			s.game.SpawnPowerUp()
		case <-ticker.C:
			s.processInput()
			if !s.running {
				break
			}
			s.updateScreen()
			s.game.Tick()
			if err := s.drawFrame(); err != nil {
				return err
			}
		}
	}
	return nil
}

// processInput applies every event that arrived since the last frame.
func (s *Session) processInput() {
	for _, ev := range input.ReadEvents(s.inputStream) {
		switch ev.Type {
		case input.EventPointerMove:
			s.game.Aim(s.canvas.TerminalToLogical(ev.Col, ev.Row))
		case input.EventPointerDown:
			x, y := s.canvas.TerminalToLogical(ev.Col, ev.Row)
			if s.game.State() == StateActive {
				s.game.Fire(x, y)
			} else {
				s.game.Aim(x, y)
				s.begin()
			}
		case input.EventKey:
			s.handleKey(ev.Key)
		}
	}
	if s.inputStream.Closed() {
		s.running = false
	}
}

func (s *Session) handleKey(k input.Key) {
	switch k {
	case input.KeyQuit:
		s.running = false
	case input.KeyEnter:
		s.begin()
	case input.KeySpace:
		if s.game.State() == StateActive {
			s.game.FireAtAim()
		} else {
			s.begin()
		}
	case input.KeyUp:
		s.game.Nudge(0, -1)
	case input.KeyDown:
		s.game.Nudge(0, 1)
	case input.KeyLeft:
		s.game.Nudge(-1, 0)
	case input.KeyRight:
		s.game.Nudge(1, 0)
	}
}

func (s *Session) begin() {
	if s.game.State() == StateActive {
		return
	}
	if err := s.game.Begin(); err != nil {
		s.logger.Debug("could not start game", "err", err)
	}
}

// updateScreen follows terminal resizes, growing or shrinking the field.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil || termWidth <= 0 || termHeight <= 0 {
		return
	}
	if termWidth == s.canvas.TerminalWidth() && termHeight == s.canvas.TerminalHeight() {
		return
	}

	fieldW, fieldH := fieldSize(termWidth, termHeight)
	s.canvas.Resize(termWidth, termHeight)
	s.canvas.SetLogicalSize(fieldW, fieldH)
	s.game.Resize(fieldW, fieldH)
	s.redraw = true
	s.logger.Debug("terminal resized", "cols", termWidth, "rows", termHeight)
}

// drawFrame draws the current frame.
func (s *Session) drawFrame() error {
	if s.redraw {
		s.chunkWriter.WriteString("\033[0m\033[H\033[2J")
		s.canvas.ForceRedraw()
		s.redraw = false
	}

	s.canvas.Clear()
	s.game.Draw(s.canvas)
	if err := s.canvas.Render(s.chunkWriter); err != nil {
		return err
	}
	s.drawUI()

	return s.chunkWriter.Flush()
}

// drawUI draws the HUD or the modal of the current state.
func (s *Session) drawUI() {
	switch s.game.State() {
	case StateNotStarted:
		writeBlock(s.chunkWriter, s.canvas, startModal(s.styles))
	case StateActive:
		writeLines(s.chunkWriter, s.canvas, 2, 1, []string{hud(s.styles, s.game.Score())})
	case StateGameOver:
		writeBlock(s.chunkWriter, s.canvas, gameOverModal(s.styles, s.game.Score()))
	}
}
