package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("SHOOTER_TEST_STR", "value")
	if got := GetEnv("SHOOTER_TEST_STR", "fallback"); got != "value" {
		t.Errorf("GetEnv = %q, want %q", got, "value")
	}
	if got := GetEnv("SHOOTER_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv unset = %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SHOOTER_TEST_INT", "42")
	t.Setenv("SHOOTER_TEST_BAD_INT", "forty-two")
	if got := GetEnvInt("SHOOTER_TEST_INT", 7); got != 42 {
		t.Errorf("GetEnvInt = %d, want 42", got)
	}
	if got := GetEnvInt("SHOOTER_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetEnvInt bad value = %d, want fallback 7", got)
	}
}

func TestGetEnvBoolAndDuration(t *testing.T) {
	t.Setenv("SHOOTER_TEST_BOOL", "false")
	t.Setenv("SHOOTER_TEST_DUR", "1500ms")
	t.Setenv("SHOOTER_TEST_BAD_DUR", "soon")

	if got := GetEnvBool("SHOOTER_TEST_BOOL", true); got {
		t.Error("GetEnvBool = true, want false")
	}
	if got := GetEnvDuration("SHOOTER_TEST_DUR", time.Second); got != 1500*time.Millisecond {
		t.Errorf("GetEnvDuration = %v, want 1.5s", got)
	}
	if got := GetEnvDuration("SHOOTER_TEST_BAD_DUR", time.Second); got != time.Second {
		t.Errorf("GetEnvDuration bad value = %v, want fallback", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("SHOOTER_DOTENV_KEY=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SHOOTER_DOTENV_KEY", "")
	os.Unsetenv("SHOOTER_DOTENV_KEY")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("SHOOTER_DOTENV_KEY"); got != "from-file" {
		t.Errorf("SHOOTER_DOTENV_KEY = %q, want from-file", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("LoadDotEnv missing file: %v", err)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv("SHOOTER_LOG_LEVEL", "debug")
	if got := NewLogger(io.Discard, "test").GetLevel(); got != log.DebugLevel {
		t.Errorf("level = %v, want debug", got)
	}

	t.Setenv("SHOOTER_LOG_LEVEL", "nonsense")
	if got := NewLogger(io.Discard, "test").GetLevel(); got != log.InfoLevel {
		t.Errorf("level = %v, want info fallback", got)
	}
}

func TestSetupAppliesLevelFromDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.env")
	if err := os.WriteFile(path, []byte("SHOOTER_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SHOOTER_LOG_LEVEL", "")
	os.Unsetenv("SHOOTER_LOG_LEVEL")

	if got := Setup(io.Discard, "test", path).GetLevel(); got != log.DebugLevel {
		t.Errorf("level = %v, want debug from .env", got)
	}
}

func TestRandFromEnv(t *testing.T) {
	t.Setenv("TEST_SEED", "")
	if RandFromEnv("TEST_SEED") != nil {
		t.Error("empty seed should yield nil")
	}

	t.Setenv("TEST_SEED", "42")
	a, b := RandFromEnv("TEST_SEED"), RandFromEnv("TEST_SEED")
	if a == nil || a.Uint64() != b.Uint64() {
		t.Error("same seed should give the same sequence")
	}
}
