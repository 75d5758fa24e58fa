// Package render holds the drawing surface the game draws into and the
// ebiten replay that puts a recorded frame on screen.
package render

import (
	"image"
	"image/color"
)

// SheetID names a sprite sheet. Specs refer to sheets by this name.
type SheetID string

// Align is the horizontal anchor used when drawing text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Rect is a destination rectangle in surface coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Canvas is the 2D drawing surface handed to every Draw call.
type Canvas interface {
	// Clear wipes everything drawn so far this frame.
	Clear()
	// DrawSprite blits src from sheet, scaled into dst.
	DrawSprite(sheet SheetID, src image.Rectangle, dst Rect)
	// DrawText draws s with its baseline at y.
	DrawText(s string, x, y float64, align Align, clr color.Color)
	// StrokeCircle outlines a circle; used by the hitbox overlay.
	StrokeCircle(cx, cy, r float64, clr color.Color)
}
