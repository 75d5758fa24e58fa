//go:build js

package main

import "syscall/js"

// toggleFullscreen asks the browser to put the game canvas in fullscreen, or
// leaves fullscreen if the page is already in it. A rejected request is
// reported on alerts and nothing else changes.
func toggleFullscreen(alerts chan<- string) {
	doc := js.Global().Get("document")
	if doc.Get("fullscreenElement").Truthy() {
		doc.Call("exitFullscreen")
		return
	}

	canvas := doc.Call("querySelector", "canvas")
	if !canvas.Truthy() {
		sendAlert(alerts, fullscreenError("no canvas"))
		return
	}

	var onDone, onFail js.Func
	release := func() {
		onDone.Release()
		onFail.Release()
	}
	onDone = js.FuncOf(func(js.Value, []js.Value) any {
		release()
		return nil
	})
	onFail = js.FuncOf(func(_ js.Value, args []js.Value) any {
		reason := "unknown error"
		if len(args) > 0 && args[0].Truthy() {
			reason = args[0].Get("message").String()
		}
		sendAlert(alerts, fullscreenError(reason))
		release()
		return nil
	})
	canvas.Call("requestFullscreen").Call("then", onDone, onFail)
}

func platformAlert(msg string) {
	js.Global().Call("alert", msg)
}
