package obj

import (
	"image/color"

	"github.com/milk9111/runner/component"
	"github.com/milk9111/runner/prefabs"
	"github.com/milk9111/runner/render"
)

// Enemy runs left along the ground at a constant speed. It scores a point
// and flags itself for removal once it has fully left the screen.
type Enemy struct {
	X, Y          float64
	Width, Height float64
	Speed         float64

	Anim   component.Animator
	Hitbox component.Hitbox

	MarkedForDeletion bool

	Debug       bool
	HitboxColor color.Color

	sheet render.SheetID
}

// NewEnemy places an enemy on the ground just past the right edge.
func NewEnemy(spec prefabs.EnemySpec, gameWidth, gameHeight float64) *Enemy {
	h := float64(spec.FrameHeight)
	return &Enemy{
		X:      gameWidth,
		Y:      gameHeight - h,
		Width:  float64(spec.FrameWidth),
		Height: h,
		Speed:  spec.Speed,
		Anim:   component.NewAnimator(spec.FPS, spec.MaxFrame),
		Hitbox: component.Hitbox{
			OffsetX:       spec.Hitbox.OffsetX,
			OffsetY:       spec.Hitbox.OffsetY,
			RadiusDivisor: spec.Hitbox.RadiusDivisor,
		},
		HitboxColor: color.White,
		sheet:       render.SheetID(spec.Sprite),
	}
}

// Update animates and moves the enemy. A marked enemy is never updated
// again, so it scores exactly once.
func (e *Enemy) Update(dt float64, s *Session) {
	if e.MarkedForDeletion {
		return
	}
	e.Anim.Update(dt)
	e.X -= e.Speed
	if e.X < 0-e.Width {
		e.MarkedForDeletion = true
		s.AddPoint()
	}
}

func (e *Enemy) Draw(c render.Canvas) {
	c.DrawSprite(
		e.sheet,
		e.Anim.Source(int(e.Width), int(e.Height)),
		render.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height},
	)
	if e.Debug {
		center, radius := e.Hitbox.Circle(e.X, e.Y, e.Width, e.Height)
		c.StrokeCircle(center.X, center.Y, radius, e.HitboxColor)
	}
}
