package obj

import (
	"image/color"

	"github.com/milk9111/runner/common"
	"github.com/milk9111/runner/component"
	"github.com/milk9111/runner/prefabs"
	"github.com/milk9111/runner/render"
)

// Player is the runner. It moves left and right inside the game area, jumps
// from the ground, and ends the round when it touches an enemy.
type Player struct {
	X, Y  float64
	VY    float64
	Speed float64

	Width, Height float64

	Anim   component.Animator
	Hitbox component.Hitbox

	// Debug outlines the hitbox when drawing.
	Debug       bool
	HitboxColor color.Color

	spec       prefabs.PlayerSpec
	gameWidth  float64
	gameHeight float64
}

func NewPlayer(spec prefabs.PlayerSpec, gameWidth, gameHeight float64) *Player {
	p := &Player{HitboxColor: color.White}
	p.Configure(spec, gameWidth, gameHeight)
	p.Restart()
	return p
}

// Configure applies new tuning. Position is left alone; call Restart to
// move the player back to the start.
func (p *Player) Configure(spec prefabs.PlayerSpec, gameWidth, gameHeight float64) {
	p.spec = spec
	p.gameWidth = gameWidth
	p.gameHeight = gameHeight
	p.Width = float64(spec.FrameWidth) * spec.Scale
	p.Height = float64(spec.FrameHeight) * spec.Scale
	p.Anim = component.NewAnimator(spec.FPS, spec.Run.MaxFrame)
	p.Hitbox = component.Hitbox{
		OffsetX:       spec.Hitbox.OffsetX,
		OffsetY:       spec.Hitbox.OffsetY,
		RadiusDivisor: spec.Hitbox.RadiusDivisor,
	}
}

// Restart puts the player back at the start position, standing still in the
// run animation. It leaves the session's game-over flag to the caller.
func (p *Player) Restart() {
	p.X = p.spec.StartX
	p.Y = p.GroundY()
	p.VY = 0
	p.Speed = 0
	p.Anim.SetRow(p.spec.Run.Row, p.spec.Run.MaxFrame)
}

// GroundY is the y at which the player's bottom edge touches the floor.
func (p *Player) GroundY() float64 {
	return p.gameHeight - p.Height
}

// OnGround compares y against GroundY exactly, with no tolerance.
func (p *Player) OnGround() bool {
	return p.Y == p.GroundY()
}

// Update runs one frame: collision against enemies, animation, controls,
// then movement.
func (p *Player) Update(in *Input, dt float64, enemies []*Enemy, s *Session) {
	if !s.GameOver {
		center, radius := p.Hitbox.Circle(p.X, p.Y, p.Width, p.Height)
		for _, e := range enemies {
			ec, er := e.Hitbox.Circle(e.X, e.Y, e.Width, e.Height)
			if component.Overlaps(ec, er, center, radius) {
				s.End()
				break
			}
		}
	}

	p.Anim.Update(dt)

	switch {
	case in.Has(TokenArrowRight, TokenSwipeRight):
		p.Speed = p.spec.MoveSpeed
	case in.Has(TokenArrowLeft, TokenSwipeLeft):
		p.Speed = -p.spec.MoveSpeed
	case in.Has(TokenArrowUp, TokenSwipeUp) && p.OnGround():
		p.VY -= p.spec.JumpImpulse
	default:
		p.Speed = 0
	}

	p.X = common.Clamp(p.X+p.Speed, 0, p.gameWidth-p.Width)

	p.Y += p.VY
	if !p.OnGround() {
		p.VY += p.spec.Weight
		p.Anim.SetRow(p.spec.Jump.Row, p.spec.Jump.MaxFrame)
	} else {
		p.VY = 0
		p.Anim.SetRow(p.spec.Run.Row, p.spec.Run.MaxFrame)
	}
	if p.Y > p.GroundY() {
		p.Y = p.GroundY()
	}
}

func (p *Player) Draw(c render.Canvas) {
	c.DrawSprite(
		render.SheetID(p.spec.Sprite),
		p.Anim.Source(p.spec.FrameWidth, p.spec.FrameHeight),
		render.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height},
	)
	if p.Debug {
		center, radius := p.Hitbox.Circle(p.X, p.Y, p.Width, p.Height)
		c.StrokeCircle(center.X, center.Y, radius, p.HitboxColor)
	}
}
