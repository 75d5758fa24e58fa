package main

// fullscreenError formats a rejected fullscreen request for the player.
func fullscreenError(reason string) string {
	return "Error, can't enable full-screen mode: " + reason
}

// sendAlert queues msg for the next Update. Alerts beyond the buffer are
// dropped.
func sendAlert(alerts chan<- string, msg string) {
	select {
	case alerts <- msg:
	default:
	}
}
