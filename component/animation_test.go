package component

import (
	"image"
	"testing"
)

func TestAnimatorAdvancesOnInterval(t *testing.T) {
	a := NewAnimator(20, 2)
	if a.Interval != 50 {
		t.Fatalf("expected 50ms interval, got %v", a.Interval)
	}

	// The timer has to exceed the interval before the frame moves.
	for i := 0; i < 3; i++ {
		a.Update(16)
	}
	if a.FrameX != 0 || a.Timer() != 48 {
		t.Fatalf("expected frame 0 with 48ms accumulated, got frame %d timer %v", a.FrameX, a.Timer())
	}
	a.Update(16) // 64ms accumulated
	if a.FrameX != 0 {
		t.Fatalf("frame should advance on the update after crossing, got %d", a.FrameX)
	}
	a.Update(16)
	if a.FrameX != 1 || a.Timer() != 0 {
		t.Fatalf("expected frame 1 and reset timer, got frame %d timer %v", a.FrameX, a.Timer())
	}
}

func TestAnimatorWrapsAfterMaxFrame(t *testing.T) {
	a := NewAnimator(20, 2)
	seen := []int{}
	for i := 0; i < 4; i++ {
		a.Update(100) // cross the interval
		a.Update(0)   // advance
		seen = append(seen, a.FrameX)
	}
	want := []int{1, 2, 0, 1}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("frame sequence: expected %v, got %v", want, seen)
		}
	}
}

func TestAnimatorRowSwitchWrapsLateFrame(t *testing.T) {
	a := NewAnimator(20, 8)
	a.FrameX = 8
	a.SetRow(1, 6)
	a.Update(100)
	a.Update(0)
	if a.FrameX != 0 || a.FrameY != 1 {
		t.Fatalf("expected wrap to frame 0 on row 1, got frame %d row %d", a.FrameX, a.FrameY)
	}
}

func TestAnimatorSource(t *testing.T) {
	a := NewAnimator(20, 8)
	a.FrameX = 3
	a.FrameY = 1
	got := a.Source(200, 200)
	if want := image.Rect(600, 200, 800, 400); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}

	var nilAnim *Animator
	nilAnim.Update(10)
	if !nilAnim.Source(10, 10).Empty() {
		t.Fatalf("nil animator should have empty source")
	}
}
