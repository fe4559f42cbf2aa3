package object

import (
	"strconv"
)

// Score label tunables.
const (
	LabelFrames = 45
	LabelRise   = 30.0
)

// ScoreLabel is the "+100" text that floats up where points were earned.
type ScoreLabel struct {
	X, Y      float64
	Value     int
	remaining int
}

// NewScoreLabel creates a label for value at (x, y).
func NewScoreLabel(x, y float64, value int) *ScoreLabel {
	return &ScoreLabel{X: x, Y: y, Value: value, remaining: LabelFrames}
}

// Alpha fades linearly over the label's lifetime.
func (l *ScoreLabel) Alpha() float64 {
	return float64(l.remaining) / LabelFrames
}

// Update raises the label and counts down its lifetime.
func (l *ScoreLabel) Update(ctx UpdateContext) bool {
	l.remaining--
	l.Y -= LabelRise / LabelFrames
	return l.remaining <= 0
}

// Draw renders the label.
func (l *ScoreLabel) Draw(ctx DrawContext) {
	ctx.Renderer.Text(l.X, l.Y, "+"+strconv.Itoa(l.Value), White, l.Alpha())
}
