package obj

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/milk9111/runner/prefabs"
	"github.com/milk9111/runner/render"
)

func loadSpec(t *testing.T) *prefabs.RunnerSpec {
	t.Helper()
	spec, err := prefabs.LoadRunnerSpec(prefabs.DefaultSpec)
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	return spec
}

func newTestPlayer(t *testing.T) (*Player, *prefabs.RunnerSpec) {
	t.Helper()
	spec := loadSpec(t)
	return NewPlayer(spec.Player, spec.Game.Width, spec.Game.Height), spec
}

func TestPlayerStartsOnGround(t *testing.T) {
	p, _ := newTestPlayer(t)
	if p.X != 100 || p.Y != 580 {
		t.Fatalf("expected start at (100, 580), got (%v, %v)", p.X, p.Y)
	}
	if p.Width != 140 || p.Height != 140 {
		t.Fatalf("expected 140x140, got %vx%v", p.Width, p.Height)
	}
	if !p.OnGround() {
		t.Fatalf("player should start on the ground")
	}
}

func TestPlayerIdleStaysPut(t *testing.T) {
	p, _ := newTestPlayer(t)
	in := NewInput(DefaultTouchThreshold)
	s := &Session{}

	for i := 0; i < 300; i++ {
		p.Update(in, 16, nil, s)
	}
	if p.X != 100 || p.Y != 580 {
		t.Fatalf("idle player moved to (%v, %v)", p.X, p.Y)
	}
	if p.Speed != 0 || p.VY != 0 {
		t.Fatalf("idle player has speed %v vy %v", p.Speed, p.VY)
	}
	if s.GameOver {
		t.Fatalf("no enemies, game should not be over")
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	p, spec := newTestPlayer(t)
	in := NewInput(DefaultTouchThreshold)
	s := &Session{}
	rng := rand.New(rand.NewSource(42))
	keys := []Key{KeyUp, KeyLeft, KeyRight, KeyDown}

	maxX := spec.Game.Width - p.Width
	for i := 0; i < 5000; i++ {
		k := keys[rng.Intn(len(keys))]
		if rng.Intn(3) == 0 {
			in.Release(k)
		} else {
			in.Press(k)
		}
		p.Update(in, 16, nil, s)
		if p.X < 0 || p.X > maxX {
			t.Fatalf("step %d: x=%v outside [0, %v]", i, p.X, maxX)
		}
		if p.Y > p.GroundY() {
			t.Fatalf("step %d: y=%v below ground %v", i, p.Y, p.GroundY())
		}
	}
}

func TestPlayerMovement(t *testing.T) {
	cases := []struct {
		name      string
		keys      []Key
		wantSpeed float64
	}{
		{"right", []Key{KeyRight}, 5},
		{"left", []Key{KeyLeft}, -5},
		{"right_beats_left", []Key{KeyLeft, KeyRight}, 5},
		{"none", nil, 0},
		{"down_only", []Key{KeyDown}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, _ := newTestPlayer(t)
			in := NewInput(DefaultTouchThreshold)
			for _, k := range c.keys {
				in.Press(k)
			}
			p.Update(in, 16, nil, &Session{})
			if p.Speed != c.wantSpeed {
				t.Fatalf("expected speed %v, got %v", c.wantSpeed, p.Speed)
			}
			if p.X != 100+c.wantSpeed {
				t.Fatalf("expected x %v, got %v", 100+c.wantSpeed, p.X)
			}
		})
	}
}

func TestPlayerSwipeMovesLikeArrows(t *testing.T) {
	p, _ := newTestPlayer(t)
	in := NewInput(DefaultTouchThreshold)
	in.TouchStart(0, 0)
	in.TouchMove(-50, 0)
	p.Update(in, 16, nil, &Session{})
	if p.Speed != -5 {
		t.Fatalf("swipe left should move left, speed %v", p.Speed)
	}
}

func TestPlayerJumpArc(t *testing.T) {
	p, _ := newTestPlayer(t)
	in := NewInput(DefaultTouchThreshold)
	s := &Session{}

	in.Press(KeyUp)
	p.Update(in, 16, nil, s)
	in.Release(KeyUp)

	if p.Y != 580-25 {
		t.Fatalf("expected the first frame to rise by 25, y=%v", p.Y)
	}
	if p.VY != -24 {
		t.Fatalf("expected vy -24 after the first frame, got %v", p.VY)
	}
	if p.Anim.FrameY != 1 || p.Anim.MaxFrame != 6 {
		t.Fatalf("expected jump row, got row %d max %d", p.Anim.FrameY, p.Anim.MaxFrame)
	}

	frames := 1
	for !p.OnGround() {
		prev := p.VY
		p.Update(in, 16, nil, s)
		frames++
		if !p.OnGround() && p.VY != prev+1 {
			t.Fatalf("frame %d: vy went from %v to %v", frames, prev, p.VY)
		}
		if frames > 200 {
			t.Fatalf("player never landed, y=%v vy=%v", p.Y, p.VY)
		}
	}

	if frames != 51 {
		t.Fatalf("expected landing on frame 51, got %d", frames)
	}
	if p.Y != 580 || p.VY != 0 {
		t.Fatalf("expected to land at 580 with vy 0, got y=%v vy=%v", p.Y, p.VY)
	}
	if p.Anim.FrameY != 0 || p.Anim.MaxFrame != 8 {
		t.Fatalf("expected run row after landing, got row %d max %d", p.Anim.FrameY, p.Anim.MaxFrame)
	}
}

func TestPlayerJumpLandsForValidWeights(t *testing.T) {
	cases := []struct {
		impulse, weight float64
	}{
		{25, 1},
		{25, 2},
		{25, 5},
		{25, 10},
		{12, 3},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v_%v", c.impulse, c.weight), func(t *testing.T) {
			spec := loadSpec(t)
			spec.Player.JumpImpulse = c.impulse
			spec.Player.Weight = c.weight
			if err := spec.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}

			p := NewPlayer(spec.Player, spec.Game.Width, spec.Game.Height)
			in := NewInput(DefaultTouchThreshold)
			s := &Session{}
			in.Press(KeyUp)
			p.Update(in, 16, nil, s)
			in.Release(KeyUp)

			for i := 0; i < 300 && !p.OnGround(); i++ {
				p.Update(in, 16, nil, s)
			}
			if !p.OnGround() || p.VY != 0 || p.Anim.FrameY != 0 {
				t.Fatalf("jump never landed: y=%v vy=%v row=%d", p.Y, p.VY, p.Anim.FrameY)
			}
			p.Update(in, 16, nil, s)
			if !p.OnGround() || p.VY != 0 {
				t.Fatalf("player left the ground after landing: y=%v vy=%v", p.Y, p.VY)
			}
		})
	}
}

func TestPlayerRestartStopsMotion(t *testing.T) {
	p, _ := newTestPlayer(t)
	in := NewInput(DefaultTouchThreshold)
	s := &Session{}
	in.Press(KeyUp)
	p.Update(in, 16, nil, s)
	in.Press(KeyRight)
	for i := 0; i < 29; i++ {
		p.Update(in, 16, nil, s)
	}
	if p.VY <= 0 || p.Speed == 0 {
		t.Fatalf("expected a falling, moving player, vy=%v speed=%v", p.VY, p.Speed)
	}

	p.Restart()
	if p.VY != 0 || p.Speed != 0 {
		t.Fatalf("restart should zero vy and speed, got vy=%v speed=%v", p.VY, p.Speed)
	}
	in.Release(KeyRight)
	in.Release(KeyUp)
	p.Update(in, 16, nil, s)
	if !p.OnGround() || p.VY != 0 || p.Anim.FrameY != 0 {
		t.Fatalf("expected standing after restart, y=%v vy=%v row=%d", p.Y, p.VY, p.Anim.FrameY)
	}
}

func TestPlayerJumpKeepsSpeed(t *testing.T) {
	p, _ := newTestPlayer(t)
	in := NewInput(DefaultTouchThreshold)
	s := &Session{}

	in.Press(KeyRight)
	p.Update(in, 16, nil, s)
	in.Release(KeyRight)
	in.Press(KeyUp)
	p.Update(in, 16, nil, s)

	if p.Speed != 5 {
		t.Fatalf("jumping should keep the previous speed, got %v", p.Speed)
	}
	if p.X != 110 {
		t.Fatalf("expected x 110, got %v", p.X)
	}
}

func TestPlayerNoDoubleJump(t *testing.T) {
	p, _ := newTestPlayer(t)
	in := NewInput(DefaultTouchThreshold)
	s := &Session{}

	in.Press(KeyUp)
	p.Update(in, 16, nil, s)
	p.Update(in, 16, nil, s)
	if p.VY != -23 {
		t.Fatalf("holding up in the air must not add impulse, vy=%v", p.VY)
	}
}

func TestPlayerCollision(t *testing.T) {
	spec := loadSpec(t)
	cases := []struct {
		name   string
		enemyX float64
		want   bool
	}{
		{"overlapping", 120, true},
		{"near", 200, true},
		{"just_apart", 215, false},
		{"far_right", 1200, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPlayer(spec.Player, spec.Game.Width, spec.Game.Height)
			e := NewEnemy(spec.Enemy, spec.Game.Width, spec.Game.Height)
			e.X = c.enemyX
			s := &Session{}
			p.Update(NewInput(DefaultTouchThreshold), 16, []*Enemy{e}, s)
			if s.GameOver != c.want {
				t.Fatalf("expected game over %v, got %v", c.want, s.GameOver)
			}
		})
	}
}

func TestPlayerRestart(t *testing.T) {
	p, _ := newTestPlayer(t)
	in := NewInput(DefaultTouchThreshold)
	s := &Session{}
	in.Press(KeyRight)
	in.Press(KeyUp)
	for i := 0; i < 10; i++ {
		p.Update(in, 16, nil, s)
	}
	s.End()

	p.Restart()
	if p.X != 100 || p.Y != 580 {
		t.Fatalf("restart should return to (100, 580), got (%v, %v)", p.X, p.Y)
	}
	if p.Anim.FrameY != 0 {
		t.Fatalf("restart should select the run row, got %d", p.Anim.FrameY)
	}
	if !s.GameOver {
		t.Fatalf("restart must not touch the session")
	}
}

func TestPlayerDraw(t *testing.T) {
	p, _ := newTestPlayer(t)
	list := render.NewDisplayList()
	p.Draw(list)
	if list.Len() != 1 {
		t.Fatalf("expected one sprite, got %d commands", list.Len())
	}

	p.Debug = true
	list.Clear()
	p.Draw(list)
	cmds := list.Commands()
	if len(cmds) != 2 || cmds[1].Kind != render.CommandCircle {
		t.Fatalf("debug draw should add a hitbox circle, got %+v", cmds)
	}
	if cmds[1].X != 170 || cmds[1].Y != 665 {
		t.Fatalf("expected hitbox center (170, 665), got (%v, %v)", cmds[1].X, cmds[1].Y)
	}
}
