package breaker

import (
	"fmt"

	"github.com/vovakirdan/scene-arcade/internal/core"
	"github.com/vovakirdan/scene-arcade/internal/session"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.view.Draw(dst, g.world)
	// The ball is drawn last so walls and bricks never cover it.
	g.view.DrawEntity(dst, g.ball)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("Score: %d  Lives: %d", g.sess.Score(), g.sess.Lives())
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("Best: %d", g.sess.HighScore())
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorYellow)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		dst.DrawCenteredBox("PAUSED", "Press P to resume")
	case g.sess.Mode() == session.ModeTapToPlay:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch  |  ←/→ move")
	}
}
