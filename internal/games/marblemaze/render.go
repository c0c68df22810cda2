package marblemaze

import (
	"fmt"

	"github.com/vovakirdan/scene-arcade/internal/core"
	"github.com/vovakirdan/scene-arcade/internal/session"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.view.Draw(dst, g.world)
	g.view.DrawEntity(dst, g.ball)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("Pearls: %d  Health: %s", g.sess.Score(), g.healthBar(10))
	dst.DrawTextColored(1, 0, left, g.healthColor())

	right := fmt.Sprintf("Best: %d", g.sess.HighScore())
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorYellow)
}

func (g *Game) healthBar(width int) string {
	full := 0
	if hp := g.maxHealth(); hp > 0 {
		full = (g.sess.Lives()*width + hp - 1) / hp
	}
	bar := make([]rune, width)
	for i := range bar {
		bar[i] = '░'
		if i < full {
			bar[i] = '█'
		}
	}
	return string(bar)
}

func (g *Game) healthColor() core.Color {
	hp := g.maxHealth()
	switch {
	case g.sess.Lives()*4 <= hp:
		return core.ColorBrightRed
	case g.sess.Lives()*2 <= hp:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightGreen
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		dst.DrawCenteredBox("PAUSED", "Press P to resume")
	case g.sess.Mode() == session.ModeTapToPlay:
		dst.DrawCenteredBox("MARBLE MAZE", "Press SPACE to start  |  arrows to roll")
	case g.sess.Mode() == session.ModeGameOver:
		dst.DrawCenteredBox("OUT OF HEALTH", fmt.Sprintf("Pearls: %d  |  Bumps: %d  |  R to restart", g.sess.Score(), g.bumps))
	}
}
