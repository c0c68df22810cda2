package geometryfighter

import (
	"fmt"

	"github.com/vovakirdan/scene-arcade/internal/core"
	"github.com/vovakirdan/scene-arcade/internal/scene"
	"github.com/vovakirdan/scene-arcade/internal/session"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.renderCursor(dst)
	g.view.Draw(dst, g.world)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderCursor(dst *core.Screen) {
	x, _ := g.view.Cell(scene.V(g.cursorX, 0, 0))
	glyph, color := '┆', core.ColorGray
	if g.slash > 0 {
		glyph, color = '/', core.ColorBrightWhite
	}
	for y := 1; y < dst.Height()-1; y++ {
		dst.SetColored(x, y, glyph, color)
	}
	dst.SetColored(x, dst.Height()-1, '▲', core.ColorBrightWhite)

	_, ground := g.view.Cell(scene.V(0, 0, 0))
	for gx := range dst.Width() {
		if gx != x {
			dst.SetColored(gx, ground+1, '_', core.ColorGray)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("Score: %d  Lives: %d", g.sess.Score(), g.sess.Lives())
	if g.difficulty.IsEnabled() {
		ticks := int(g.loop.Tick()) //#nosec G115 -- tick count fits in int
		left += fmt.Sprintf("  Pace: %d%%", core.Round(g.difficulty.Level(g.sess.Score(), ticks)*100))
	}
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("Best: %d", g.sess.HighScore())
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorYellow)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		dst.DrawCenteredBox("PAUSED", "Press P to resume")
	case g.sess.Mode() == session.ModeTapToPlay:
		dst.DrawCenteredBox("GEOMETRY FIGHTER", "SPACE slices, ←/→ aim. Leave gray shapes alone")
	case g.sess.Mode() == session.ModeGameOver:
		dst.DrawCenteredBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.sess.Score()))
	}
}
