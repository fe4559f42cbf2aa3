package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/circleshooter/internal/audio"
	"github.com/tomz197/circleshooter/internal/config"
	"github.com/tomz197/circleshooter/internal/desktop"
	lconfig "github.com/tomz197/circleshooter/internal/loop/config"
)

func main() {
	logger := config.Setup(os.Stderr, "desktop")

	if err := run(logger); err != nil {
		logger.Error("desktop error", "err", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	player, closeAudio := audio.Open(config.GetEnvBool("SHOOTER_AUDIO", true), logger)
	defer closeAudio()

	d := desktop.New(desktop.Options{
		Width:  config.GetEnvInt("DESKTOP_WIDTH", lconfig.DesktopWidth),
		Height: config.GetEnvInt("DESKTOP_HEIGHT", lconfig.DesktopHeight),
		Audio:  player,
		Logger: logger,
		Rand:   config.RandFromEnv("SHOOTER_SEED"),
	})
	return desktop.Run(d, "Circle Shooter")
}
