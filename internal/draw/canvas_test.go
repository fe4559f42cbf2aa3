package draw

import (
	"bytes"
	"math"
	"strings"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var red = colorful.Color{R: 1, G: 0, B: 0}

// newTestCanvas maps a 100x100 logical field onto 10x5 terminal cells
// (10x10 sub-pixels), so one sub-pixel is 10 logical units.
func newTestCanvas() *Canvas {
	return NewScaledCanvas(10, 5, 100, 100)
}

func countSet(c *Canvas) int {
	n := 0
	for _, s := range c.set {
		if s {
			n++
		}
	}
	return n
}

func TestFillCircleCoversCenter(t *testing.T) {
	c := newTestCanvas()
	c.FillCircle(50, 50, 20, red, 1)

	i := 5*c.termWidth + 5
	if !c.set[i] {
		t.Fatal("center pixel not set")
	}
	if c.pixels[i] != red {
		t.Errorf("center pixel = %v, want red", c.pixels[i])
	}
	if n := countSet(c); n < 9 || n > 20 {
		t.Errorf("radius-2-pixel circle set %d pixels, want roughly pi*r^2", n)
	}
}

func TestFillCircleTinyStillVisible(t *testing.T) {
	c := newTestCanvas()
	c.FillCircle(55, 55, 1, red, 1)
	if n := countSet(c); n != 1 {
		t.Errorf("tiny circle set %d pixels, want 1", n)
	}
}

func TestAlphaBlendsOverBlack(t *testing.T) {
	c := newTestCanvas()
	c.FillCircle(55, 55, 1, red, 0.5)
	got := c.pixels[5*c.termWidth+5]
	if math.Abs(got.R-0.5) > 1e-9 || got.G != 0 || got.B != 0 {
		t.Errorf("half-alpha red over black = %v, want R=0.5", got)
	}

	c.Clear()
	c.FillCircle(55, 55, 1, red, 0)
	if countSet(c) != 0 {
		t.Error("zero alpha must not draw")
	}
}

func TestFillCircleClipsOffCanvas(t *testing.T) {
	c := newTestCanvas()
	// Mostly outside the field; must not panic and must stay in bounds.
	c.FillCircle(-10, -10, 30, red, 1)
	c.FillCircle(110, 110, 30, red, 1)
	if countSet(c) == 0 {
		t.Error("partially visible circles should set some pixels")
	}
}

func TestRenderOnlyEmitsChanges(t *testing.T) {
	c := newTestCanvas()
	c.FillCircle(50, 50, 20, red, 1)

	var first bytes.Buffer
	if err := c.Render(&first); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(first.String(), "38;2;255;0;0") {
		t.Errorf("first render missing red truecolor sequence: %q", first.String())
	}

	c.Clear()
	c.FillCircle(50, 50, 20, red, 1)
	var second bytes.Buffer
	if err := c.Render(&second); err != nil {
		t.Fatal(err)
	}
	if second.Len() != 0 {
		t.Errorf("unchanged frame emitted %d bytes", second.Len())
	}

	c.ForceRedraw()
	var third bytes.Buffer
	if err := c.Render(&third); err != nil {
		t.Fatal(err)
	}
	if third.Len() == 0 {
		t.Error("ForceRedraw should repaint every cell")
	}
}

func TestTextMarksCellsDirty(t *testing.T) {
	c := newTestCanvas()
	var buf bytes.Buffer
	_ = c.Render(&buf)

	c.Text(50, 50, "+100", red, 1)
	buf.Reset()
	_ = c.Render(&buf)
	if !strings.Contains(buf.String(), "+100") {
		t.Fatalf("text overlay not rendered: %q", buf.String())
	}

	// Cells under the text must be repainted on the following frame.
	buf.Reset()
	_ = c.Render(&buf)
	if buf.Len() == 0 {
		t.Error("cells covered by text were not repainted")
	}
}

func TestTextClipsAtEdges(t *testing.T) {
	c := newTestCanvas()
	c.Text(0, 50, "abcdefgh", red, 1)
	var buf bytes.Buffer
	_ = c.Render(&buf)
	if strings.Contains(buf.String(), "abcd") {
		t.Errorf("left-clipped text should drop leading runes: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "efgh") {
		t.Errorf("visible part of text missing: %q", buf.String())
	}
}

func TestTerminalLogicalRoundTrip(t *testing.T) {
	c := newTestCanvas()
	x, y := c.TerminalToLogical(3, 2)
	col, row := c.LogicalToTerminal(x, y)
	if col != 3 || row != 2 {
		t.Errorf("round trip = (%d,%d), want (3,2)", col, row)
	}
}

func TestFillPolygonAndLine(t *testing.T) {
	c := newTestCanvas()
	c.FillPolygon([]Point{{20, 20}, {80, 20}, {80, 80}, {20, 80}}, red, 1)
	if n := countSet(c); n < 36 {
		t.Errorf("square covering 6x6 pixels set only %d", n)
	}

	c.Clear()
	c.drawLine(Point{0, 5}, Point{95, 5}, red, 1, false)
	if n := countSet(c); n != 10 {
		t.Errorf("horizontal line set %d pixels, want 10", n)
	}
}

func TestPolygonOutlineSkipsFilledPixels(t *testing.T) {
	c := newTestCanvas()
	c.drawLine(Point{0, 5}, Point{95, 5}, red, 0.5, false)
	before := c.pixels[3]
	c.drawLine(Point{0, 5}, Point{95, 5}, red, 0.5, true)
	if c.pixels[3] != before {
		t.Error("outline pass blended over a pixel that was already set")
	}
	c.drawLine(Point{0, 5}, Point{95, 5}, red, 0.5, false)
	if c.pixels[3] == before {
		t.Error("plain line should blend again")
	}
}

func TestResizeKeepsLogicalSize(t *testing.T) {
	c := newTestCanvas()
	c.Resize(20, 10)
	if c.TerminalWidth() != 20 || c.TerminalHeight() != 10 {
		t.Fatalf("resize = %dx%d", c.TerminalWidth(), c.TerminalHeight())
	}
	if c.logicalWidth != 100 || c.scaleX != 0.2 {
		t.Errorf("logical width %f scaleX %f", c.logicalWidth, c.scaleX)
	}
}
