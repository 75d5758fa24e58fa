package system

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/milk9111/runner/obj"
	"github.com/milk9111/runner/prefabs"
	"github.com/milk9111/runner/render"
)

// State is the phase of the game loop.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Loop owns one round of the game and advances it a frame at a time.
type Loop struct {
	Input      *obj.Input
	Player     *obj.Player
	Background *obj.Background
	Enemies    *obj.EnemyPool
	Session    *obj.Session

	state State
	last  float64
	// fresh makes the next Step start a new timeline with dt = 0.
	fresh bool

	width      float64
	shadow     color.Color
	foreground color.Color
	debug      bool

	pending     *prefabs.RunnerSpec
	pendingRule obj.SpawnRule

	logger *log.Logger
}

// NewLoop builds the player, background and enemy pool from spec. A nil
// logger uses the default one.
func NewLoop(spec *prefabs.RunnerSpec, rule obj.SpawnRule, input *obj.Input, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.Default()
	}
	l := &Loop{
		Input:      input,
		Player:     obj.NewPlayer(spec.Player, spec.Game.Width, spec.Game.Height),
		Background: obj.NewBackground(spec.Background),
		Enemies:    obj.NewEnemyPool(spec.Enemy, spec.Spawn, rule, spec.Game.Width, spec.Game.Height),
		Session:    &obj.Session{},
		state:      StateRunning,
		fresh:      true,
		logger:     logger,
	}
	l.applyLook(spec)
	return l
}

func (l *Loop) State() State {
	return l.state
}

// Step draws and advances one frame. timestamp is in milliseconds. Nothing
// happens once the round is over; the last frame stays on the canvas.
func (l *Loop) Step(timestamp float64, c render.Canvas) {
	if l.state == StateGameOver {
		return
	}

	dt := timestamp - l.last
	if l.fresh {
		dt = 0
		l.fresh = false
	}
	l.last = timestamp

	c.Clear()
	l.Background.Draw(c)
	l.Background.Update()
	l.Player.Draw(c)
	l.Player.Update(l.Input, dt, l.Enemies.Enemies(), l.Session)
	l.Enemies.Tick(dt, c, l.Session)
	l.drawStatus(c)

	if l.Session.GameOver {
		l.state = StateGameOver
		l.logger.Info("game over", "score", l.Session.Score)
	}
}

// Restart resets the round in place. A spec passed to Reconfigure since the
// last restart is applied first.
func (l *Loop) Restart() {
	l.applyPending()
	l.Player.Restart()
	l.Background.Restart()
	l.Enemies.Clear()
	l.Session.Reset()
	l.state = StateRunning
	l.fresh = true
}

// HandleRestart consumes a pending restart request and restarts if the round
// is over. It reports whether a restart happened.
func (l *Loop) HandleRestart() bool {
	if !l.Input.TakeRestart() {
		return false
	}
	if l.state != StateGameOver {
		return false
	}
	l.Restart()
	l.logger.Info("restart")
	return true
}

// Reconfigure queues a reloaded spec and spawn rule for the next restart.
func (l *Loop) Reconfigure(spec *prefabs.RunnerSpec, rule obj.SpawnRule) {
	l.pending = spec
	l.pendingRule = rule
}

// SetDebug turns the hitbox overlay on or off for the player and every
// enemy, current and future.
func (l *Loop) SetDebug(on bool) {
	l.debug = on
	l.Player.Debug = on
	l.Enemies.Debug = on
	for _, e := range l.Enemies.Enemies() {
		e.Debug = on
	}
}

func (l *Loop) applyPending() {
	if l.pending == nil {
		return
	}
	spec := l.pending
	l.Input.SetThreshold(spec.Input.TouchThreshold)
	l.Player.Configure(spec.Player, spec.Game.Width, spec.Game.Height)
	l.Background.Configure(spec.Background)
	if l.pendingRule != nil {
		l.Enemies.Configure(spec.Enemy, spec.Spawn, l.pendingRule, spec.Game.Width, spec.Game.Height)
	}
	l.applyLook(spec)
	l.logger.Info("applied spec", "name", spec.Name)
	l.pending = nil
	l.pendingRule = nil
}

func (l *Loop) applyLook(spec *prefabs.RunnerSpec) {
	l.width = spec.Game.Width
	l.shadow = spec.HUD.Shadow.Or(color.Black)
	l.foreground = spec.HUD.Foreground.Or(color.White)

	hitbox := spec.HUD.HitboxColor.Or(color.White)
	l.Player.HitboxColor = hitbox
	l.Enemies.HitboxColor = hitbox
	l.SetDebug(l.debug)
}
