package config

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger writing to w. The level comes from
// SHOOTER_LOG_LEVEL (debug, info, warn, error) and defaults to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(GetEnv("SHOOTER_LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// Setup loads the .env files (default ".env") and then creates the logger,
// so a SHOOTER_LOG_LEVEL from the file applies. A load failure is logged.
func Setup(w io.Writer, prefix string, envFiles ...string) *log.Logger {
	err := LoadDotEnv(envFiles...)
	logger := NewLogger(w, prefix)
	if err != nil {
		logger.Warn("failed to load .env", "err", err)
	}
	return logger
}

// RandFromEnv returns a generator seeded from the integer variable key, or
// nil when it is unset so callers pick a random seed.
func RandFromEnv(key string) *rand.Rand {
	seed := GetEnvInt(key, 0)
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}
