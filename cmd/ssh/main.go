package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/circleshooter/internal/audio"
	"github.com/tomz197/circleshooter/internal/config"
	"github.com/tomz197/circleshooter/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	logger := config.Setup(os.Stderr, "ssh")

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	idleTimeout := config.GetEnvDuration("SSH_IDLE_TIMEOUT", 10*time.Minute)
	shutdownTimeout := config.GetEnvDuration("SSH_SHUTDOWN_TIMEOUT", 5*time.Second)
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "idleTimeout", idleTimeout)

	// Cancelled on shutdown so every running session ends its game loop
	serverCtx, cancelSessions := context.WithCancel(context.Background())
	defer cancelSessions()

	var sessions sync.WaitGroup
	handler := &gameHandler{
		ctx:      serverCtx,
		logger:   logger,
		sessions: &sessions,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithIdleTimeout(idleTimeout),
		wish.WithMiddleware(
			handler.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	cancelSessions()
	waitTimeout(&sessions, shutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
		os.Exit(1)
	}
}

// waitTimeout waits for wg or until d passes.
func waitTimeout(wg *sync.WaitGroup, d time.Duration) {
	ch := make(chan struct{})
	go func() {
		wg.Wait()
		close(ch)
	}()
	select {
	case <-ch:
	case <-time.After(d):
	}
}

// gameHandler runs one independent game per SSH session.
type gameHandler struct {
	ctx      context.Context
	logger   *log.Logger
	sessions *sync.WaitGroup
}

func (h *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		h.sessions.Add(1)
		defer h.sessions.Done()

		logger := h.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("new game session", "terminal", pty.Term, "cols", pty.Window.Width, "rows", pty.Window.Height)

		// Track window size changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stop := context.AfterFunc(h.ctx, cancel)
		defer stop()

		session := loop.NewSession(bufio.NewReader(sess), sess, loop.SessionOptions{
			TermSizeFunc: sizeTracker.getSize,
			Audio:        audio.Silent{},
			Logger:       logger,
		})
		if err := session.Run(ctx); err != nil {
			logger.Error("game error", "err", err)
		}

		logger.Info("session ended", "score", session.Game().Score())
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}
