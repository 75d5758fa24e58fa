package render

import (
	"image"
	"image/color"
	"testing"
)

func TestDisplayListRecordsInOrder(t *testing.T) {
	d := NewDisplayList()
	d.DrawSprite("background", image.Rect(0, 0, 10, 10), Rect{Width: 10, Height: 10})
	d.DrawText("Score: 0", 20, 50, AlignLeft, color.Black)
	d.StrokeCircle(5, 5, 3, color.White)

	want := []CommandKind{CommandSprite, CommandText, CommandCircle}
	if d.Len() != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), d.Len())
	}
	for i, cmd := range d.Commands() {
		if cmd.Kind != want[i] {
			t.Fatalf("command %d: expected kind %v, got %v", i, want[i], cmd.Kind)
		}
	}
	if got := d.Commands()[1].Text; got != "Score: 0" {
		t.Fatalf("expected recorded text, got %q", got)
	}
}

func TestDisplayListClear(t *testing.T) {
	d := NewDisplayList()
	d.DrawText("a", 0, 0, AlignCenter, color.White)
	d.Clear()
	if d.Len() != 0 {
		t.Fatalf("expected empty list after Clear, got %d", d.Len())
	}
	d.DrawText("b", 0, 0, AlignCenter, color.White)
	if d.Len() != 1 || d.Commands()[0].Text != "b" {
		t.Fatalf("expected only the command recorded after Clear")
	}
}
