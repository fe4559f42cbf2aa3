package loop

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/circleshooter/internal/draw"
)

// Styles holds the lipgloss styles of the terminal UI.
type Styles struct {
	Modal    lipgloss.Style
	Title    lipgloss.Style
	Score    lipgloss.Style
	Caption  lipgloss.Style
	Hint     lipgloss.Style
	HUDLabel lipgloss.Style
	HUDValue lipgloss.Style
}

// NewStyles builds the UI styles for r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Modal: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6366F1")).
			Background(lipgloss.Color("#F9FAFB")).
			Foreground(lipgloss.Color("#111827")).
			Padding(1, 4).
			Align(lipgloss.Center),
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4F46E5")),
		Score:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#111827")),
		Caption:  r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Hint:     r.NewStyle().Foreground(lipgloss.Color("#374151")).Italic(true),
		HUDLabel: r.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
		HUDValue: r.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
	}
}

// startModal is shown before the first game.
func startModal(st Styles) string {
	return st.Modal.Render(lipgloss.JoinVertical(lipgloss.Center,
		st.Title.Render("CIRCLE SHOOTER"),
		"",
		st.Caption.Render("Shoot the circles before they reach you"),
		"",
		st.Hint.Render("Click / SPACE . . . Shoot"),
		st.Hint.Render("WASD / Arrows . . .  Move"),
		st.Hint.Render("Q . . . . . . . . .  Quit"),
		"",
		st.Title.Render("Press ENTER to start"),
	))
}

// gameOverModal shows the final score.
func gameOverModal(st Styles, score int) string {
	return st.Modal.Render(lipgloss.JoinVertical(lipgloss.Center,
		st.Title.Render("GAME OVER"),
		"",
		st.Score.Render(strconv.Itoa(score)),
		st.Caption.Render("Points"),
		"",
		st.Title.Render("Press ENTER to restart"),
	))
}

// hud is the score line shown while playing.
func hud(st Styles, score int) string {
	return st.HUDLabel.Render("Score: ") + st.HUDValue.Render(strconv.Itoa(score))
}

// writeBlock writes a multi-line block centered on the terminal and marks
// the covered cells so the canvas repaints them once the block is gone.
func writeBlock(cw *draw.ChunkWriter, canvas *draw.Canvas, block string) {
	lines := strings.Split(block, "\n")
	width := lipgloss.Width(block)
	col := (canvas.TerminalWidth()-width)/2 + 1
	row := (canvas.TerminalHeight()-len(lines))/2 + 1
	writeLines(cw, canvas, max(1, col), max(1, row), lines)
}

// writeLines writes lines starting at a 1-based cell.
func writeLines(cw *draw.ChunkWriter, canvas *draw.Canvas, col, row int, lines []string) {
	for i, line := range lines {
		cw.WriteAt(col, row+i, line)
		canvas.MarkTextDirty(col, row+i, lipgloss.Width(line))
	}
	cw.WriteString("\033[0m")
}
