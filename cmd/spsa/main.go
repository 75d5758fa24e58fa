package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/runner/assets"
	"github.com/milk9111/runner/component"
	"github.com/milk9111/runner/prefabs"
	"golang.org/x/image/colornames"
)

const previewSize = 512

// clip is one animated row of a sheet.
type clip struct {
	name     string
	row      int
	maxFrame int
}

type demoGame struct {
	sheet  *ebiten.Image
	frameW int
	frameH int
	scale  float64
	fps    float64

	clips   []clip
	current int

	anim   component.Animator
	hitbox component.Hitbox
}

func newDemoGame(sheet *ebiten.Image, frameW, frameH int, scale, fps float64, hitbox prefabs.HitboxSpec, clips []clip) *demoGame {
	g := &demoGame{
		sheet:  sheet,
		frameW: frameW,
		frameH: frameH,
		scale:  scale,
		fps:    fps,
		clips:  clips,
		hitbox: component.Hitbox{
			OffsetX:       hitbox.OffsetX,
			OffsetY:       hitbox.OffsetY,
			RadiusDivisor: hitbox.RadiusDivisor,
		},
	}
	g.anim = component.NewAnimator(fps, clips[0].maxFrame)
	g.anim.SetRow(clips[0].row, clips[0].maxFrame)
	return g
}

func (g *demoGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.current = (g.current + 1) % len(g.clips)
		c := g.clips[g.current]
		g.anim.SetRow(c.row, c.maxFrame)
		g.anim.FrameX = 0
	}
	g.anim.Update(1000 / float64(ebiten.TPS()))
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	w := float64(g.frameW) * g.scale
	h := float64(g.frameH) * g.scale
	x := (previewSize - w) / 2
	y := (previewSize - h) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest
	src := g.anim.Source(g.frameW, g.frameH)
	screen.DrawImage(g.sheet.SubImage(src).(*ebiten.Image), op)

	center, radius := g.hitbox.Circle(x, y, w, h)
	vector.StrokeCircle(screen, float32(center.X), float32(center.Y), float32(radius), 2, color.RGBA{0xff, 0x40, 0x40, 0xff}, true)

	c := g.clips[g.current]
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  row %d  frame %d/%d  %.0f fps\nup/down: next row", c.name, c.row, g.anim.FrameX, c.maxFrame, g.fps))
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func main() {
	which := flag.String("sheet", "player", "sheet to preview: player or enemy")
	specName := flag.String("spec", prefabs.DefaultSpec, "tuning file in prefabs/")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "spsa"})

	spec, err := prefabs.LoadRunnerSpec(*specName)
	if err != nil {
		logger.Fatal("load spec", "err", err)
	}

	var g *demoGame
	switch *which {
	case "player":
		p := spec.Player
		sheet, err := assets.LoadImage(p.Sprite + ".png")
		if err != nil {
			logger.Fatal("load sheet", "err", err)
		}
		g = newDemoGame(sheet, p.FrameWidth, p.FrameHeight, p.Scale, p.FPS, p.Hitbox, []clip{
			{name: "run", row: p.Run.Row, maxFrame: p.Run.MaxFrame},
			{name: "jump", row: p.Jump.Row, maxFrame: p.Jump.MaxFrame},
		})
	case "enemy":
		e := spec.Enemy
		sheet, err := assets.LoadImage(e.Sprite + ".png")
		if err != nil {
			logger.Fatal("load sheet", "err", err)
		}
		g = newDemoGame(sheet, e.FrameWidth, e.FrameHeight, 1, e.FPS, e.Hitbox, []clip{
			{name: "walk", row: 0, maxFrame: e.MaxFrame},
		})
	default:
		logger.Fatal("unknown sheet", "sheet", *which)
	}

	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Sprite Sheet Preview")
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run", "err", err)
	}
}
