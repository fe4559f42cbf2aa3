package physics

import (
	"math"
	"testing"
)

func TestHitBoundary(t *testing.T) {
	// Centers 16 apart, radii 10 and 5: gap is exactly 1, not a hit.
	if Hit(16, 10, 5) {
		t.Error("gap of exactly 1 must not be a hit")
	}
	if !Hit(15.999, 10, 5) {
		t.Error("gap just under 1 must be a hit")
	}
	if !Hit(0, 10, 5) {
		t.Error("overlapping circles must be a hit")
	}
}

func TestCirclesHitSymmetric(t *testing.T) {
	cases := []struct {
		x1, y1, r1, x2, y2, r2 float64
	}{
		{0, 0, 10, 15, 0, 5},
		{3, 4, 2, 30, 40, 8},
		{-5, 7, 30, 20, -3, 12},
	}
	for _, c := range cases {
		a := CirclesHit(c.x1, c.y1, c.r1, c.x2, c.y2, c.r2)
		b := CirclesHit(c.x2, c.y2, c.r2, c.x1, c.y1, c.r1)
		if a != b {
			t.Errorf("CirclesHit not symmetric for %+v: %v vs %v", c, a, b)
		}
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance = %f, want 5", got)
	}
	if got := DistanceSquared(0, 0, 3, 4); got != 25 {
		t.Errorf("DistanceSquared = %f, want 25", got)
	}
}

func TestUnitToward(t *testing.T) {
	vx, vy := UnitToward(0, 0, 10, 10)
	if l := math.Hypot(vx, vy); math.Abs(l-1) > 1e-9 {
		t.Errorf("unit vector length = %f, want 1", l)
	}
	if math.Abs(vx-vy) > 1e-9 || vx <= 0 {
		t.Errorf("expected diagonal direction, got (%f, %f)", vx, vy)
	}

	vx, vy = UnitToward(5, 5, 5, 5)
	if vx != 1 || vy != 0 {
		t.Errorf("coincident points = (%f, %f), want (1, 0)", vx, vy)
	}
}

func TestPointInCircleStrict(t *testing.T) {
	if PointInCircle(10, 0, 0, 0, 10) {
		t.Error("point on the circle edge is not inside")
	}
	if !PointInCircle(9.9, 0, 0, 0, 10) {
		t.Error("point inside the circle")
	}
}
