package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/runner/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw hitboxes and FPS")
	seed := flag.Int64("seed", 0, "spawn RNG seed (0 picks one from the clock)")
	watch := flag.Bool("watch", false, "reload prefabs/ when files change")
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	specName := flag.String("spec", "", "tuning file in prefabs/ (default runner.yaml)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	if lvl, err := log.ParseLevel(*logLevel); err != nil {
		logger.Warn("unknown log level, using info", "level", *logLevel)
	} else {
		logger.SetLevel(lvl)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("runner")
	if *fullscreen {
		ebiten.SetFullscreen(true)
	}

	game, err := NewGame(Options{
		SpecName: *specName,
		Seed:     *seed,
		Debug:    *debug,
		Watch:    *watch,
	}, logger)
	if err != nil {
		logger.Fatal("start", "err", err)
	}
	defer game.Close()

	logger.Info("starting", "seed", *seed, "spec", game.spec.Name)
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run", "err", err)
	}
}
