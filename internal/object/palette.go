package object

import (
	"image/color"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Palette used by the entities.
var (
	White  = named(colornames.White)
	Blue   = named(colornames.Blue)
	Yellow = named(colornames.Yellow)
	Red    = named(colornames.Red)
)

func named(c color.RGBA) colorful.Color {
	col, _ := colorful.MakeColor(c)
	return col
}

// RandomHue returns a random fully-saturated-ish enemy color: HSL(rand·360, 50%, 50%).
func RandomHue(rng *rand.Rand) colorful.Color {
	return colorful.Hsl(rng.Float64()*360, 0.5, 0.5)
}
