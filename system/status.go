package system

import (
	"fmt"

	"github.com/milk9111/runner/render"
)

const gameOverPrompt = "Game Over, press Enter to restart or swipe down"

// drawStatus writes the score, and the restart prompt once the round is lost.
// Each line is drawn twice, the foreground offset by 2px over the shadow.
func (l *Loop) drawStatus(c render.Canvas) {
	score := fmt.Sprintf("Score: %d", l.Session.Score)
	c.DrawText(score, 20, 50, render.AlignLeft, l.shadow)
	c.DrawText(score, 22, 52, render.AlignLeft, l.foreground)

	if !l.Session.GameOver {
		return
	}
	c.DrawText(gameOverPrompt, l.width/2, 200, render.AlignCenter, l.shadow)
	c.DrawText(gameOverPrompt, l.width/2+2, 202, render.AlignCenter, l.foreground)
}
