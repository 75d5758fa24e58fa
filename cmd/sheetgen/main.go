package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/milk9111/runner/prefabs"
	"golang.org/x/image/colornames"
)

var (
	playerRun  = color.RGBA{0x2e, 0x86, 0xc1, 0xff}
	playerJump = color.RGBA{0xc1, 0x6a, 0x2e, 0xff}
	skin       = color.RGBA{0xf5, 0xcb, 0xa7, 0xff}
	boots      = color.RGBA{0x1b, 0x26, 0x31, 0xff}
	enemyBody  = color.RGBA{0x6c, 0x34, 0x83, 0xff}
	enemyFeet  = color.RGBA{0x4a, 0x23, 0x5a, 0xff}
	grassLight = color.RGBA{0x55, 0x8b, 0x2f, 0xff}
	grassDark  = color.RGBA{0x4c, 0x7d, 0x2a, 0xff}
	hills      = color.RGBA{0x7d, 0xa8, 0x5c, 0xff}
)

// playerSheet draws the run row and the jump row of the player.
func playerSheet(spec prefabs.PlayerSpec) *image.RGBA {
	fw, fh := spec.FrameWidth, spec.FrameHeight
	runFrames := spec.Run.MaxFrame + 1
	jumpFrames := spec.Jump.MaxFrame + 1
	rows := max(spec.Run.Row, spec.Jump.Row) + 1
	img := image.NewRGBA(image.Rect(0, 0, fw*max(runFrames, jumpFrames), fh*rows))

	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			col, row := x/fw, y/fh
			lx, ly := x%fw*200/fw, y%fh*200/fh
			jumping := row == spec.Jump.Row
			if (jumping && col >= jumpFrames) || (!jumping && col >= runFrames) {
				continue
			}

			period := float64(runFrames)
			body := playerRun
			swing := int(20 * math.Sin(float64(col)*2*math.Pi/float64(runFrames)))
			if jumping {
				period = float64(jumpFrames)
				body = playerJump
				swing = 10
			}
			bob := int(6 * math.Sin(float64(col)*2*math.Pi/period))

			switch {
			case lx >= 70 && lx < 130 && ly >= 60+bob && ly < 150+bob:
				img.Set(x, y, body)
			case sq(lx-100)+sq(ly-40-bob) < sq(22):
				img.Set(x, y, skin)
			case ly >= 150+bob && ly < 195 &&
				((lx >= 75+swing && lx < 95+swing) || (lx >= 105-swing && lx < 125-swing)):
				img.Set(x, y, boots)
			}
		}
	}
	return img
}

// enemySheet draws one row of a pulsing blob with blinking feet.
func enemySheet(spec prefabs.EnemySpec) *image.RGBA {
	fw, fh := spec.FrameWidth, spec.FrameHeight
	frames := spec.MaxFrame + 1
	img := image.NewRGBA(image.Rect(0, 0, fw*frames, fh))

	for y := 0; y < fh; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			col, lx := x/fw, x%fw
			r := 45 + 4*math.Sin(float64(col)*math.Pi/3)
			d := float64(sq(lx-fw/2) + sq(y-70))
			switch {
			case d < r*r:
				if sq(lx-60)+sq(y-55) < 64 || sq(lx-100)+sq(y-55) < 64 {
					img.Set(x, y, colornames.White)
				} else {
					img.Set(x, y, enemyBody)
				}
			case y >= 100 && (lx/20+col)%2 == 0 && lx >= 40 && lx < 120:
				img.Set(x, y, enemyFeet)
			}
		}
	}
	return img
}

// backgroundSheet draws sky, rolling hills and striped grass. The hills
// repeat every half width so the two scrolling copies line up.
func backgroundSheet(spec prefabs.BackgroundSpec) *image.RGBA {
	w, h := int(spec.Width), int(spec.Height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	ground := h * 600 / 720

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hill := h*420/720 + int(60*math.Sin(float64(x)*2*math.Pi/float64(w/2)))
			switch {
			case y >= ground && (x/60)%2 == 0:
				img.Set(x, y, grassLight)
			case y >= ground:
				img.Set(x, y, grassDark)
			case y >= hill:
				img.Set(x, y, hills)
			default:
				img.Set(x, y, color.RGBA{uint8(0x87 + y/12), uint8(0xce - y/20), 0xeb, 0xff})
			}
		}
	}
	return img
}

// GenerateOutlineFromRGBA returns src with outlineCol painted on every clear
// pixel within thickness of an opaque one.
func GenerateOutlineFromRGBA(src *image.RGBA, thickness int, outlineCol color.RGBA) *image.RGBA {
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	out := image.NewRGBA(b)
	copy(out.Pix, src.Pix)

	isOpaque := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return src.Pix[y*src.Stride+x*4+3] != 0
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isOpaque(x, y) {
				continue
			}
			found := false
			for yy := max(y-thickness, 0); yy <= min(y+thickness, h-1) && !found; yy++ {
				for xx := max(x-thickness, 0); xx <= min(x+thickness, w-1); xx++ {
					if isOpaque(xx, yy) {
						found = true
						break
					}
				}
			}
			if found {
				out.Set(x+b.Min.X, y+b.Min.Y, outlineCol)
			}
		}
	}
	return out
}

func sq(v int) int {
	return v * v
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sheetgen: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("sheetgen: encode %s: %w", path, err)
	}
	return f.Close()
}

func main() {
	specName := flag.String("spec", prefabs.DefaultSpec, "tuning file the sheets are sized from")
	outDir := flag.String("out", "assets", "directory to write the sheets to")
	outline := flag.Int("outline", 0, "outline thickness for player and enemy sprites (0 = none)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sheetgen"})

	spec, err := prefabs.LoadRunnerSpec(*specName)
	if err != nil {
		logger.Fatal("load spec", "err", err)
	}

	sprites := map[string]*image.RGBA{
		spec.Player.Sprite: playerSheet(spec.Player),
		spec.Enemy.Sprite:  enemySheet(spec.Enemy),
	}
	if *outline > 0 {
		for name, img := range sprites {
			sprites[name] = GenerateOutlineFromRGBA(img, *outline, color.RGBA{0x00, 0x00, 0x00, 0xff})
		}
	}
	sprites[spec.Background.Sprite] = backgroundSheet(spec.Background)

	for name, img := range sprites {
		path := filepath.Join(*outDir, name+".png")
		if err := writePNG(path, img); err != nil {
			logger.Fatal("write", "err", err)
		}
		logger.Info("wrote", "path", path, "size", img.Bounds().Size())
	}
}
