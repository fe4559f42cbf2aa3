package draw

import (
	"io"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type rgb [3]uint8

// cell is what one terminal character shows: up to two colored half-blocks.
type cell struct {
	top, bottom       rgb
	hasTop, hasBottom bool
}

// textItem is a text overlay queued for the next Render.
type textItem struct {
	col, row int
	runes    []rune
	color    rgb
}

// Canvas is a truecolor drawing buffer with 2x vertical resolution using
// half-block characters. Game objects draw in logical field units, which are
// scaled to terminal sub-pixels. Render only emits cells that changed since
// the previous frame.
type Canvas struct {
	termWidth      int // Actual terminal columns
	termHeight     int // Actual terminal rows
	subPixelHeight int // termHeight * 2

	pixels []colorful.Color // Flat slice: [y * termWidth + x]
	set    []bool           // Whether anything was drawn at a pixel this frame

	prev      []cell // What each terminal cell showed after the last Render
	prevValid []bool // False forces a repaint of the cell
	texts     []textItem

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
}

var _ Renderer = (*Canvas)(nil)

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	if c.pixels == nil || termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]colorful.Color, c.subPixelHeight*termWidth)
		c.set = make([]bool, c.subPixelHeight*termWidth)
		c.prev = make([]cell, termWidth*termHeight)
		c.prevValid = make([]bool, termWidth*termHeight)
	}
	c.updateScale()
}

// SetLogicalSize changes the logical coordinate space mapped onto the terminal.
func (c *Canvas) SetLogicalSize(width, height float64) {
	c.logicalWidth = width
	c.logicalHeight = height
	c.updateScale()
}

func (c *Canvas) updateScale() {
	if c.logicalWidth > 0 {
		c.scaleX = float64(c.termWidth) / c.logicalWidth
	}
	if c.logicalHeight > 0 {
		c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
	}
}

// Clear resets all pixels and pending text in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
	clear(c.set)
	c.texts = c.texts[:0]
}

// ForceRedraw makes the next Render repaint every cell.
func (c *Canvas) ForceRedraw() {
	clear(c.prevValid)
}

// MarkTextDirty forces the cells covered by text written outside the canvas
// (HUD, modals) to be repainted on the next Render. col and row are 1-based.
func (c *Canvas) MarkTextDirty(col, row, width int) {
	if row < 1 || row > c.termHeight {
		return
	}
	for x := col; x < col+width; x++ {
		if x >= 1 && x <= c.termWidth {
			c.prevValid[(row-1)*c.termWidth+x-1] = false
		}
	}
}

// blendPixel composites col over a pixel at actual sub-pixel coordinates.
func (c *Canvas) blendPixel(x, y int, col colorful.Color, alpha float64) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight || alpha <= 0 {
		return
	}
	i := y*c.termWidth + x
	base := Black
	if c.set[i] {
		base = c.pixels[i]
	}
	c.pixels[i] = base.BlendRgb(col, clamp01(alpha))
	c.set[i] = true
}

// FillCircle fills a circle given in logical coordinates. Circles smaller
// than a sub-pixel still light the pixel under their center.
func (c *Canvas) FillCircle(x, y, radius float64, col colorful.Color, alpha float64) {
	cx := x * c.scaleX
	cy := y * c.scaleY
	rx := radius * c.scaleX
	ry := radius * c.scaleY
	if rx <= 0 || ry <= 0 {
		return
	}

	x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))

	filled := false
	for py := y0; py <= y1; py++ {
		dy := (float64(py) + 0.5 - cy) / ry
		for px := x0; px <= x1; px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				c.blendPixel(px, py, col, alpha)
				filled = true
			}
		}
	}
	if !filled {
		c.blendPixel(int(math.Floor(cx)), int(math.Floor(cy)), col, alpha)
	}
}

// drawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels. With
// onlyMissing set, pixels that are already set are skipped so outlines
// don't double-blend translucent fills.
func (c *Canvas) drawLine(p1, p2 Point, col colorful.Color, alpha float64, onlyMissing bool) {
	x1 := int(math.Floor(p1.X * c.scaleX))
	y1 := int(math.Floor(p1.Y * c.scaleY))
	x2 := int(math.Floor(p2.X * c.scaleX))
	y2 := int(math.Floor(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		if !onlyMissing || !c.isSet(x1, y1) {
			c.blendPixel(x1, y1, col, alpha)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// isSet reports whether an in-bounds pixel was drawn this frame.
func (c *Canvas) isSet(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.set[y*c.termWidth+x]
}

// FillPolygon fills a polygon using a scanline pass in pixel space, then
// strokes its outline so thin shapes stay visible after scaling.
func (c *Canvas) FillPolygon(points []Point, col colorful.Color, alpha float64) {
	if len(points) < 3 {
		return
	}

	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	c.intersectionBuf = ScanPolygon(scaled, c.intersectionBuf, func(y, x0, x1 int) {
		for x := x0; x <= x1; x++ {
			c.blendPixel(x, y, col, alpha)
		}
	})

	n := len(points)
	// Outline pass only touches pixels the fill missed.
	for i := 0; i < n; i++ {
		c.drawLine(points[i], points[(i+1)%n], col, alpha, true)
	}
}

// Text queues a text overlay centered on a logical position.
func (c *Canvas) Text(x, y float64, s string, col colorful.Color, alpha float64) {
	if alpha <= 0 || s == "" {
		return
	}
	runes := []rune(s)
	tc, tr := c.LogicalToTerminal(x, y)
	c.texts = append(c.texts, textItem{
		col:   tc - len(runes)/2,
		row:   tr,
		runes: runes,
		color: toRGB(Black.BlendRgb(col, clamp01(alpha))),
	})
}

// Render writes every changed cell, then the queued text overlays, to w.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			cur := c.cellAt(col, row)
			i := row*c.termWidth + col
			if c.prevValid[i] && c.prev[i] == cur {
				continue
			}
			c.prev[i] = cur
			c.prevValid[i] = true
			c.moveTo(col+1, row+1)
			c.writeCell(cur)
		}
	}

	for _, t := range c.texts {
		c.renderText(t)
	}
	c.texts = c.texts[:0]

	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

func (c *Canvas) renderText(t textItem) {
	if t.row < 1 || t.row > c.termHeight {
		return
	}
	runes := t.runes
	col := t.col
	if col < 1 {
		skip := 1 - col
		if skip >= len(runes) {
			return
		}
		runes = runes[skip:]
		col = 1
	}
	if over := col + len(runes) - 1 - c.termWidth; over > 0 {
		if over >= len(runes) {
			return
		}
		runes = runes[:len(runes)-over]
	}
	c.moveTo(col, t.row)
	c.writeColor(38, t.color)
	c.renderBuf.WriteString(string(runes))
	c.renderBuf.WriteString("\033[0m")
	c.MarkTextDirty(col, t.row, len(runes))
}

func (c *Canvas) cellAt(col, row int) cell {
	top := row*2*c.termWidth + col
	bottom := (row*2+1)*c.termWidth + col
	var out cell
	if c.set[top] {
		out.top = toRGB(c.pixels[top])
		out.hasTop = true
	}
	if c.set[bottom] {
		out.bottom = toRGB(c.pixels[bottom])
		out.hasBottom = true
	}
	return out
}

func (c *Canvas) writeCell(cur cell) {
	switch {
	case cur.hasTop && cur.hasBottom:
		c.writeColor(38, cur.top)
		c.writeColor(48, cur.bottom)
		c.renderBuf.WriteRune(BlockUpperHalf)
	case cur.hasTop:
		c.writeColor(38, cur.top)
		c.renderBuf.WriteRune(BlockUpperHalf)
	case cur.hasBottom:
		c.writeColor(38, cur.bottom)
		c.renderBuf.WriteRune(BlockLowerHalf)
	default:
		c.renderBuf.WriteRune(BlockEmpty)
		return
	}
	c.renderBuf.WriteString("\033[0m")
}

// writeColor appends an SGR truecolor sequence; layer is 38 (fg) or 48 (bg).
func (c *Canvas) writeColor(layer int, col rgb) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(layer), 10))
	c.renderBuf.WriteString(";2")
	for _, v := range col {
		c.renderBuf.WriteByte(';')
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(v), 10))
	}
	c.renderBuf.WriteByte('m')
}

func (c *Canvas) moveTo(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

func toRGB(col colorful.Color) rgb {
	r, g, b := col.Clamped().RGB255()
	return rgb{r, g, b}
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}

// TerminalToLogical converts a 1-based terminal cell (e.g. a mouse report)
// to the logical coordinates of the cell's center.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	if c.scaleX > 0 {
		x = (float64(col-1) + 0.5) / c.scaleX
	}
	if c.scaleY > 0 {
		y = float64((row-1)*2+1) / c.scaleY
	}
	return x, y
}
