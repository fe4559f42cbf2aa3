// Package physics provides collision detection and distance utilities.
package physics

import "math"

// HitThreshold is the gap between two circle edges below which they collide.
const HitThreshold = 1.0

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Hit reports whether two circles whose centers are dist apart are touching:
// dist - r1 - r2 < HitThreshold. A gap of exactly HitThreshold is not a hit.
func Hit(dist, r1, r2 float64) bool {
	return dist-r1-r2 < HitThreshold
}

// CirclesHit checks if two circles collide under the Hit rule.
func CirclesHit(x1, y1, r1, x2, y2, r2 float64) bool {
	return Hit(Distance(x1, y1, x2, y2), r1, r2)
}

// PointInCircle checks if a point is strictly within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) < radius*radius
}

// UnitToward returns the unit vector pointing from (fromX, fromY) to (toX, toY).
// Coincident points yield (1, 0), matching atan2(0, 0) = 0.
func UnitToward(fromX, fromY, toX, toY float64) (float64, float64) {
	angle := math.Atan2(toY-fromY, toX-fromX)
	return math.Cos(angle), math.Sin(angle)
}
