//go:build !js

package main

import "github.com/hajimehoshi/ebiten/v2"

func toggleFullscreen(alerts chan<- string) {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
}

// platformAlert is a no-op on desktop; the HUD toast shows the message.
func platformAlert(string) {}
