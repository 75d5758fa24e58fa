package component

import "image"

// Animator steps a sprite through the frames of one sheet row on a fixed
// time interval, independent of how often it is updated.
type Animator struct {
	FrameX   int
	FrameY   int
	MaxFrame int // last frame index of the row, inclusive

	// Interval is the time between frames in milliseconds.
	Interval float64
	timer    float64
}

// NewAnimator creates an animator running at fps on row 0.
func NewAnimator(fps float64, maxFrame int) Animator {
	interval := 0.0
	if fps > 0 {
		interval = 1000 / fps
	}
	return Animator{MaxFrame: maxFrame, Interval: interval}
}

// Update accumulates dt (milliseconds). Once the accumulated time has passed
// Interval, the frame advances and the timer restarts from zero; the frame
// wraps to 0 after MaxFrame.
func (a *Animator) Update(dt float64) {
	if a == nil {
		return
	}
	if a.timer > a.Interval {
		if a.FrameX >= a.MaxFrame {
			a.FrameX = 0
		} else {
			a.FrameX++
		}
		a.timer = 0
		return
	}
	a.timer += dt
}

// SetRow switches to another sheet row. The current frame is kept and wraps
// on the next advance if it is past the new row's last frame.
func (a *Animator) SetRow(row, maxFrame int) {
	if a == nil {
		return
	}
	a.FrameY = row
	a.MaxFrame = maxFrame
}

// Timer returns the time accumulated toward the next frame.
func (a *Animator) Timer() float64 {
	if a == nil {
		return 0
	}
	return a.timer
}

// Source returns the sheet rectangle of the current frame.
func (a *Animator) Source(frameW, frameH int) image.Rectangle {
	if a == nil {
		return image.Rectangle{}
	}
	x := a.FrameX * frameW
	y := a.FrameY * frameH
	return image.Rect(x, y, x+frameW, y+frameH)
}
