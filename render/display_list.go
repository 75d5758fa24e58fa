package render

import (
	"image"
	"image/color"
)

// CommandKind identifies a recorded draw call.
type CommandKind int

const (
	CommandSprite CommandKind = iota
	CommandText
	CommandCircle
)

// Command is one recorded draw call. Only the fields for its Kind are set.
type Command struct {
	Kind CommandKind

	Sheet SheetID
	Src   image.Rectangle
	Dst   Rect

	Text  string
	X, Y  float64
	Align Align
	Color color.Color

	Radius float64
}

// DisplayList is a Canvas that records draw calls in order. The game loop
// draws into it during Update and ebiten replays it during Draw.
type DisplayList struct {
	commands []Command
}

// NewDisplayList returns an empty list.
func NewDisplayList() *DisplayList {
	return &DisplayList{commands: make([]Command, 0, 32)}
}

// Clear drops every recorded command.
func (d *DisplayList) Clear() {
	d.commands = d.commands[:0]
}

func (d *DisplayList) DrawSprite(sheet SheetID, src image.Rectangle, dst Rect) {
	d.commands = append(d.commands, Command{Kind: CommandSprite, Sheet: sheet, Src: src, Dst: dst})
}

func (d *DisplayList) DrawText(s string, x, y float64, align Align, clr color.Color) {
	d.commands = append(d.commands, Command{Kind: CommandText, Text: s, X: x, Y: y, Align: align, Color: clr})
}

func (d *DisplayList) StrokeCircle(cx, cy, r float64, clr color.Color) {
	d.commands = append(d.commands, Command{Kind: CommandCircle, X: cx, Y: cy, Radius: r, Color: clr})
}

// Commands returns the recorded commands. The slice is reused after Clear.
func (d *DisplayList) Commands() []Command {
	return d.commands
}

// Len reports the number of recorded commands.
func (d *DisplayList) Len() int {
	return len(d.commands)
}
