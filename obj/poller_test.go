package obj

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyFor(t *testing.T) {
	cases := map[ebiten.Key]Key{
		ebiten.KeyArrowUp:     KeyUp,
		ebiten.KeyArrowDown:   KeyDown,
		ebiten.KeyArrowLeft:   KeyLeft,
		ebiten.KeyArrowRight:  KeyRight,
		ebiten.KeyEnter:       KeyEnter,
		ebiten.KeyNumpadEnter: KeyEnter,
		ebiten.KeySpace:       KeyUnknown,
		ebiten.KeyF:           KeyUnknown,
	}
	for in, want := range cases {
		if got := keyFor(in); got != want {
			t.Fatalf("keyFor(%v) = %v, want %v", in, got, want)
		}
	}
}
