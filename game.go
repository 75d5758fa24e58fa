package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/runner/assets"
	"github.com/milk9111/runner/obj"
	"github.com/milk9111/runner/prefabs"
	"github.com/milk9111/runner/render"
	"github.com/milk9111/runner/system"
)

// Options are the command line choices NewGame needs.
type Options struct {
	SpecName string
	Seed     int64
	Debug    bool
	Watch    bool
}

type Game struct {
	opts   Options
	logger *log.Logger

	spec   *prefabs.RunnerSpec
	sheets render.Sheets

	input  *obj.Input
	poller *obj.Poller
	loop   *system.Loop

	list   *render.DisplayList
	screen *render.Screen
	hud    *HUD

	watcher *prefabs.Watcher
	alerts  chan string

	// clock returns milliseconds since the game started.
	clock func() float64
}

func NewGame(opts Options, logger *log.Logger) (*Game, error) {
	spec, err := prefabs.LoadRunnerSpec(opts.SpecName)
	if err != nil {
		return nil, err
	}
	rule, err := obj.NewSpawnRule(spec.Spawn, opts.Seed, logger.WithPrefix("spawn"))
	if err != nil {
		return nil, err
	}
	sheets, err := loadSheets(spec)
	if err != nil {
		return nil, err
	}
	screen, err := render.NewScreen(sheets, spec.HUD.FontSize)
	if err != nil {
		return nil, err
	}

	input := obj.NewInput(spec.Input.TouchThreshold)
	g := &Game{
		opts:   opts,
		logger: logger,
		spec:   spec,
		sheets: sheets,
		input:  input,
		poller: obj.NewPoller(),
		loop:   system.NewLoop(spec, rule, input, logger.WithPrefix("loop")),
		list:   render.NewDisplayList(),
		screen: screen,
		alerts: make(chan string, 4),
	}
	g.loop.SetDebug(opts.Debug)
	g.hud = NewHUD(g.toggleFullscreen)

	start := time.Now()
	g.clock = func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			logger.Warn("hot reload disabled", "err", err)
		} else {
			g.watcher = w
			logger.Info("watching prefabs for changes")
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.poller.Poll(g.input).ToggleFullscreen {
		g.toggleFullscreen()
	}
	g.hud.Update()
	g.drainAlerts()
	g.reloadChanged()

	g.loop.HandleRestart()
	g.loop.Step(g.clock(), g.list)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Replay(screen, g.list)
	if g.opts.Debug {
		pool := g.loop.Enemies
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  enemies: %d  next spawn: %.0f/%.0f ms",
			ebiten.ActualFPS(), pool.Len(), pool.Timer(), pool.NextGap()), 20, 70)
	}
	g.hud.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.spec.Game.Width), int(g.spec.Game.Height)
}

// Close stops the file watcher, if any.
func (g *Game) Close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		g.logger.Warn("close watcher", "err", err)
	}
}

func (g *Game) toggleFullscreen() {
	toggleFullscreen(g.alerts)
}

func (g *Game) drainAlerts() {
	for {
		select {
		case msg := <-g.alerts:
			g.logger.Warn(msg)
			g.hud.Toast(msg)
			platformAlert(msg)
		default:
			return
		}
	}
}

// reloadChanged reloads the tuning file once per tick if any watched file changed.
// A broken file is logged and the running spec stays.
func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Warn("watch", "err", err)
		}
	default:
	}

	changed := ""
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			break
		}
		changed = name
	}
	if changed == "" {
		return
	}

	spec, err := prefabs.LoadRunnerSpec(g.opts.SpecName)
	if err != nil {
		g.logger.Error("reload spec", "file", changed, "err", err)
		return
	}
	rule, err := obj.NewSpawnRule(spec.Spawn, g.opts.Seed, g.logger.WithPrefix("spawn"))
	if err != nil {
		g.logger.Error("reload spawn rule", "file", changed, "err", err)
		return
	}
	sheets, err := loadSheets(spec)
	if err != nil {
		g.logger.Error("reload sheets", "file", changed, "err", err)
		return
	}
	for id, img := range sheets {
		g.sheets[id] = img
	}

	if keepSurfaceSize(spec, g.spec.Game) {
		g.logger.Warn("game size is fixed at startup, ignoring the reloaded size", "file", changed,
			"width", g.spec.Game.Width, "height", g.spec.Game.Height)
	}
	g.loop.Reconfigure(spec, rule)
	g.logger.Info("spec reloaded, applies on restart", "file", changed, "name", spec.Name)
}

// keepSurfaceSize pins a reloaded spec to the surface size the game started
// with, since Layout never changes. It reports whether next asked for a
// different size.
func keepSurfaceSize(next *prefabs.RunnerSpec, current prefabs.GameSpec) bool {
	changed := next.Game != current
	next.Game = current
	return changed
}

func loadSheets(spec *prefabs.RunnerSpec) (render.Sheets, error) {
	return assets.LoadSheets(spec.Player.Sprite, spec.Enemy.Sprite, spec.Background.Sprite)
}
