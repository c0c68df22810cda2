package mrpig

import (
	"fmt"
	"math"

	"github.com/vovakirdan/scene-arcade/internal/core"
	"github.com/vovakirdan/scene-arcade/internal/scene"
	"github.com/vovakirdan/scene-arcade/internal/session"
)

// fogRadius is how far from the light entities keep their colors.
const fogRadius = 12.0

// pigGlyphs are indexed by facing: backward, right, forward, left.
var pigGlyphs = [4]rune{'▼', '▶', '▲', '◀'}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.renderRoads(dst)
	g.world.Each(func(e *scene.Entity) {
		if e.Hidden || e.Glyph == 0 {
			return
		}
		if dx, dz := e.Position.X-g.light.X, e.Position.Z-g.light.Z; math.Hypot(dx, dz) > fogRadius {
			dim := *e
			dim.Color = core.ColorGray
			g.view.DrawEntity(dst, &dim)
			return
		}
		g.view.DrawEntity(dst, e)
	})
	g.renderPig(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderRoads(dst *core.Screen) {
	for _, z := range g.roads {
		_, y := g.view.Cell(scene.V(0, 0, z))
		for x := range dst.Width() {
			dst.SetColored(x, y, '·', core.ColorGray)
		}
	}
}

func (g *Game) renderPig(dst *core.Screen) {
	// Quarter turns, 0 facing +Z.
	q := int(math.Round(g.pig.Heading/(math.Pi/2))) % 4
	if q < 0 {
		q += 4
	}
	if g.spin > 0 {
		q = (q + g.spin/5) % 4
	}
	color := core.ColorPink
	if g.hop > 0 {
		color = core.ColorBrightMagenta
	}
	x, y := g.view.Cell(g.pig.Position)
	dst.SetColored(x, y, pigGlyphs[q], color)
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("Coins: %d  Banked: %d", g.sess.CoinsCollected(), g.sess.CoinsBanked())
	if g.difficulty.IsEnabled() {
		ticks := int(g.loop.Tick()) //#nosec G115 -- tick count fits in int
		left += fmt.Sprintf("  Traffic: %d%%", core.Round(g.difficulty.Level(g.sess.CoinsBanked(), ticks)*100))
	}
	dst.DrawTextColored(1, 0, left, core.ColorBrightYellow)

	right := fmt.Sprintf("Best: %d", g.sess.HighScore())
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorYellow)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		dst.DrawCenteredBox("PAUSED", "Press P to resume")
	case g.sess.Mode() == session.ModeTapToPlay:
		dst.DrawCenteredBox("MR. PIG", "Press SPACE to start  |  arrows to hop")
	case g.sess.Mode() == session.ModeGameOver:
		dst.DrawCenteredBox("SPLAT!", fmt.Sprintf("Banked: %d", g.sess.Score()))
	}
}
