package draw

import (
	"math"
	"sort"
)

// ScanPolygon walks the pixel rows a polygon covers (even-odd rule) and
// calls span for every run of pixel centers inside it, x0 <= x1 inclusive.
// Points are in pixel units. buf is scratch space for edge crossings and is
// returned for reuse.
func ScanPolygon(points []Point, buf []float64, span func(y, x0, x1 int)) []float64 {
	n := len(points)
	if n < 3 {
		return buf
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5

		buf = buf[:0]
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				buf = append(buf, p1.X+t*(p2.X-p1.X))
			}
		}

		sort.Float64s(buf)
		for i := 0; i+1 < len(buf); i += 2 {
			x0 := int(math.Ceil(buf[i] - 0.5))
			x1 := int(math.Floor(buf[i+1] - 0.5))
			if x0 <= x1 {
				span(y, x0, x1)
			}
		}
	}
	return buf
}
