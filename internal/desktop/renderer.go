package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/circleshooter/internal/draw"
)

// debugGlyphW and debugGlyphH are the cell size of ebitenutil's debug font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// screenRenderer draws logical primitives onto an ebiten image. Logical
// units are screen pixels.
type screenRenderer struct {
	dst  *ebiten.Image
	scan []float64
}

func nrgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	a := max(0, min(1, alpha))
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

func (r *screenRenderer) FillCircle(x, y, radius float64, c colorful.Color, alpha float64) {
	if alpha <= 0 || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(r.dst, float32(x), float32(y), float32(radius), nrgba(c, alpha), true)
}

func (r *screenRenderer) FillPolygon(points []draw.Point, c colorful.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	clr := nrgba(c, alpha)
	r.scan = draw.ScanPolygon(points, r.scan, func(y, x0, x1 int) {
		vector.DrawFilledRect(r.dst, float32(x0), float32(y), float32(x1-x0+1), 1, clr, false)
	})
}

// Text uses the debug font, which has a single color; alpha below one half hides it.
func (r *screenRenderer) Text(x, y float64, s string, c colorful.Color, alpha float64) {
	if alpha < 0.5 || s == "" {
		return
	}
	w := len(s) * debugGlyphW
	ebitenutil.DebugPrintAt(r.dst, s, int(x)-w/2, int(y)-debugGlyphH/2)
}

var _ draw.Renderer = (*screenRenderer)(nil)
