package common

// Logical drawing surface size. ebiten scales it to the window or canvas.
const (
	BaseWidth  = 1200
	BaseHeight = 720
)
