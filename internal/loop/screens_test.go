package loop

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func plainStyles() Styles {
	return NewStyles(lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.Ascii)))
}

func TestGameOverModalShowsScore(t *testing.T) {
	out := gameOverModal(plainStyles(), 1250)
	for _, want := range []string{"GAME OVER", "1250", "Points", "restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("modal missing %q:\n%s", want, out)
		}
	}
}

func TestStartModal(t *testing.T) {
	out := startModal(plainStyles())
	if !strings.Contains(out, "CIRCLE SHOOTER") || !strings.Contains(out, "ENTER") {
		t.Errorf("start modal:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	if len(lines) < 5 {
		t.Errorf("modal has %d lines, want a bordered box", len(lines))
	}
}

func TestHUD(t *testing.T) {
	if got := hud(plainStyles(), 300); got != "Score: 300" {
		t.Errorf("hud = %q", got)
	}
}
