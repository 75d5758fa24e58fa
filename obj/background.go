package obj

import (
	"image"

	"github.com/milk9111/runner/prefabs"
	"github.com/milk9111/runner/render"
)

// Background scrolls left forever by drawing the image twice, side by side.
type Background struct {
	X, Y          float64
	Width, Height float64
	Speed         float64

	sheet render.SheetID
}

func NewBackground(spec prefabs.BackgroundSpec) *Background {
	b := &Background{}
	b.Configure(spec)
	return b
}

func (b *Background) Configure(spec prefabs.BackgroundSpec) {
	b.Width = spec.Width
	b.Height = spec.Height
	b.Speed = spec.Speed
	b.sheet = render.SheetID(spec.Sprite)
}

func (b *Background) Update() {
	b.X -= b.Speed
	if b.X < 0-b.Width {
		b.X = 0
	}
}

func (b *Background) Draw(c render.Canvas) {
	src := image.Rect(0, 0, int(b.Width), int(b.Height))
	c.DrawSprite(b.sheet, src, render.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height})
	// The second copy overlaps the first by one step to hide the seam.
	c.DrawSprite(b.sheet, src, render.Rect{X: b.X + b.Width - b.Speed, Y: b.Y, Width: b.Width, Height: b.Height})
}

func (b *Background) Restart() {
	b.X = 0
}
