package component

import "testing"

func TestHitboxCircle(t *testing.T) {
	h := Hitbox{OffsetX: -20, OffsetY: 15, RadiusDivisor: 3}
	c, r := h.Circle(1200, 601, 160, 119)
	if c.X != 1260 || c.Y != 675.5 {
		t.Fatalf("unexpected center %v", c)
	}
	if r != 160.0/3 {
		t.Fatalf("unexpected radius %v", r)
	}

	if _, r := (Hitbox{}).Circle(0, 0, 10, 10); r != 0 {
		t.Fatalf("zero divisor should give zero radius, got %v", r)
	}
}

func TestOverlaps(t *testing.T) {
	h := Hitbox{RadiusDivisor: 2}
	a, ra := h.Circle(0, 0, 10, 10)

	cases := []struct {
		name string
		x    float64
		want bool
	}{
		{"same_spot", 0, true},
		{"close", 9, true},
		{"touching", 10, false},
		{"apart", 25, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, rb := h.Circle(c.x, 0, 10, 10)
			if got := Overlaps(a, ra, b, rb); got != c.want {
				t.Fatalf("Overlaps at x=%v: expected %v, got %v", c.x, c.want, got)
			}
		})
	}
}
