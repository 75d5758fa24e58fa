package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PollResult carries input the game handles outside the Input token set.
type PollResult struct {
	ToggleFullscreen bool
}

// Poller turns ebiten's polled keyboard, touch and mouse state into Input
// events. One touch is tracked at a time; a left-button mouse drag stands
// in for a touch on desktop.
type Poller struct {
	keys    []ebiten.Key
	touches []ebiten.TouchID

	touch    ebiten.TouchID
	touching bool
	dragging bool
}

func NewPoller() *Poller {
	return &Poller{}
}

// Poll feeds this tick's input changes into in.
func (p *Poller) Poll(in *Input) PollResult {
	var res PollResult

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if k == ebiten.KeyF {
			res.ToggleFullscreen = true
			continue
		}
		in.Press(keyFor(k))
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		in.Release(keyFor(k))
	}

	p.pollTouch(in)
	if !p.touching {
		p.pollMouse(in)
	}
	return res
}

func (p *Poller) pollTouch(in *Input) {
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touch) {
			p.touching = false
			in.TouchEnd()
			return
		}
		x, y := ebiten.TouchPosition(p.touch)
		in.TouchMove(float64(x), float64(y))
		return
	}

	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	if len(p.touches) == 0 {
		return
	}
	p.touch = p.touches[0]
	p.touching = true
	x, y := ebiten.TouchPosition(p.touch)
	in.TouchStart(float64(x), float64(y))
}

func (p *Poller) pollMouse(in *Input) {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.dragging = true
		in.TouchStart(float64(x), float64(y))
	case p.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.dragging = false
		in.TouchEnd()
	case p.dragging:
		in.TouchMove(float64(x), float64(y))
	}
}

func keyFor(k ebiten.Key) Key {
	switch k {
	case ebiten.KeyArrowUp:
		return KeyUp
	case ebiten.KeyArrowDown:
		return KeyDown
	case ebiten.KeyArrowLeft:
		return KeyLeft
	case ebiten.KeyArrowRight:
		return KeyRight
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return KeyEnter
	default:
		return KeyUnknown
	}
}
