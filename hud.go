package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// toastTicks is how long an alert stays up, at 60 ticks per second.
const toastTicks = 240

// HUD is the overlay on top of the game: a fullscreen button in the top
// right corner and a line of text for alerts.
type HUD struct {
	ui    *ebitenui.UI
	label *widget.Text
	toast toast
}

// NewHUD builds the overlay. onFullscreen runs when the button is clicked.
func NewHUD(onFullscreen func()) *HUD {
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 200})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 220})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: colornames.White}

	fullscreenBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnHover}),
		widget.ButtonOpts.Text("Fullscreen", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 32),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onFullscreen()
		}),
	)

	label := widget.NewText(
		widget.TextOpts.Text("", &face, colornames.Orangered),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 16, Right: 16}),
		)),
	)
	root.AddChild(fullscreenBtn)
	root.AddChild(label)

	return &HUD{
		ui:    &ebitenui.UI{Container: root},
		label: label,
	}
}

// Toast shows msg for a few seconds, replacing any alert already up.
func (h *HUD) Toast(msg string) {
	h.toast.show(msg, toastTicks)
	h.label.Label = msg
}

func (h *HUD) Update() {
	h.ui.Update()
	if h.toast.tick() {
		h.label.Label = ""
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

// toast counts down how long an alert stays visible.
type toast struct {
	msg   string
	ticks int
}

func (t *toast) show(msg string, ticks int) {
	t.msg = msg
	t.ticks = ticks
}

// tick advances one frame and reports whether the alert just expired.
func (t *toast) tick() bool {
	if t.ticks <= 0 {
		return false
	}
	t.ticks--
	if t.ticks == 0 {
		t.msg = ""
		return true
	}
	return false
}

func (t *toast) visible() bool {
	return t.ticks > 0
}
