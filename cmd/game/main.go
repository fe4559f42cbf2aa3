package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/tomz197/circleshooter/internal/audio"
	"github.com/tomz197/circleshooter/internal/config"
	"github.com/tomz197/circleshooter/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	// stdout is the game screen, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("SHOOTER_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "game")

	if err := run(logger); err != nil {
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	player, closeAudio := audio.Open(config.GetEnvBool("SHOOTER_AUDIO", true), logger)
	defer closeAudio()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := loop.NewSession(bufio.NewReader(os.Stdin), os.Stdout, loop.SessionOptions{
		Audio:  player,
		Logger: logger,
		Rand:   config.RandFromEnv("SHOOTER_SEED"),
	})
	return session.Run(ctx)
}
