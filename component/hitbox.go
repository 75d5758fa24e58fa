package component

import "github.com/jakecoffman/cp"

// Hitbox approximates a sprite with a circle. The center sits at the sprite
// center shifted by the offsets; the radius is the sprite width divided by
// RadiusDivisor.
type Hitbox struct {
	OffsetX       float64
	OffsetY       float64
	RadiusDivisor float64
}

// Circle returns the center and radius for a sprite at (x, y) of size w by h.
func (h Hitbox) Circle(x, y, w, hgt float64) (cp.Vector, float64) {
	center := cp.Vector{X: x + w/2 + h.OffsetX, Y: y + hgt/2 + h.OffsetY}
	if h.RadiusDivisor == 0 {
		return center, 0
	}
	return center, w / h.RadiusDivisor
}

// Overlaps reports whether two circles intersect. Touching circles do not.
func Overlaps(a cp.Vector, ra float64, b cp.Vector, rb float64) bool {
	return a.Distance(b) < ra+rb
}
