package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Sheets resolves sheet names to loaded images.
type Sheets map[SheetID]*ebiten.Image

// Screen replays a DisplayList onto an ebiten image.
type Screen struct {
	sheets Sheets
	face   *text.GoTextFace
}

// NewScreen builds a Screen drawing text with Go Regular at fontSize.
func NewScreen(sheets Sheets, fontSize float64) (*Screen, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	if fontSize <= 0 {
		fontSize = 40
	}
	return &Screen{
		sheets: sheets,
		face:   &text.GoTextFace{Source: src, Size: fontSize},
	}, nil
}

// Replay draws every command of list onto dst in recorded order.
func (s *Screen) Replay(dst *ebiten.Image, list *DisplayList) {
	if s == nil || dst == nil || list == nil {
		return
	}
	for _, cmd := range list.Commands() {
		switch cmd.Kind {
		case CommandSprite:
			s.drawSprite(dst, cmd)
		case CommandText:
			s.drawText(dst, cmd)
		case CommandCircle:
			vector.StrokeCircle(dst, float32(cmd.X), float32(cmd.Y), float32(cmd.Radius), 5, cmd.Color, true)
		}
	}
}

func (s *Screen) drawSprite(dst *ebiten.Image, cmd Command) {
	sheet, ok := s.sheets[cmd.Sheet]
	if !ok || sheet == nil || cmd.Src.Empty() {
		return
	}
	// Source rects past the sheet edge draw nothing, as a canvas blit would.
	src := cmd.Src.Intersect(sheet.Bounds())
	if src.Empty() {
		return
	}
	img, ok := sheet.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}

	sx := cmd.Dst.Width / float64(cmd.Src.Dx())
	sy := cmd.Dst.Height / float64(cmd.Src.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(src.Min.X-cmd.Src.Min.X), float64(src.Min.Y-cmd.Src.Min.Y))
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(cmd.Dst.X, cmd.Dst.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func (s *Screen) drawText(dst *ebiten.Image, cmd Command) {
	op := &text.DrawOptions{}
	// Canvas text is positioned by its baseline; text/v2 by the line top.
	op.GeoM.Translate(cmd.X, cmd.Y-s.face.Metrics().HAscent)
	if cmd.Align == AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	if cmd.Color != nil {
		op.ColorScale.ScaleWithColor(cmd.Color)
	}
	text.Draw(dst, cmd.Text, s.face, op)
}
