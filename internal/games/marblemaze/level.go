package marblemaze

import (
	"fmt"

	"github.com/vovakirdan/scene-arcade/internal/config"
	"github.com/vovakirdan/scene-arcade/internal/core"
	"github.com/vovakirdan/scene-arcade/internal/scene"
)

// BallName is the name of the marble entity.
const BallName = "Ball"

// Level legend.
const (
	tileStone  = '#'
	tilePillar = 'P'
	tileCrate  = 'X'
	tilePearl  = 'o'
	tileStart  = 'S'
)

const (
	tileHalf  = 0.5
	bodyHalfY = 0.5
	ballHalf  = 0.3
	pearlHalf = 0.25
)

// build spawns the maze centered on the origin. Each character is one unit
// of X and each row one unit of Z.
func (g *Game) build(lvl config.LevelMap) {
	w := g.world
	width, height := lvl.Size()
	g.width, g.height = width, height

	g.start = scene.Vec3{}
	g.pearls = g.pearls[:0]
	for r, row := range lvl.Rows {
		for c, ch := range row {
			pos := scene.V(float64(c-width/2), 0, float64(r-height/2))
			switch ch {
			case tileStone:
				w.Spawn(scene.Spec{
					Name:     "Stone",
					Category: scene.CategoryStone,
					Position: pos,
					Extent:   scene.V(tileHalf, bodyHalfY, tileHalf),
					Glyph:    '█',
					Color:    core.ColorGray,
				})
			case tilePillar:
				w.Spawn(scene.Spec{
					Name:     "Pillar",
					Category: scene.CategoryPillar,
					Position: pos,
					Extent:   scene.V(tileHalf, bodyHalfY, tileHalf),
					Glyph:    '▓',
					Color:    core.ColorWhite,
				})
			case tileCrate:
				w.Spawn(scene.Spec{
					Name:     "Crate",
					Category: scene.CategoryCrate,
					Position: pos,
					Extent:   scene.V(tileHalf, bodyHalfY, tileHalf),
					Glyph:    '▒',
					Color:    core.ColorBrown,
				})
			case tilePearl:
				g.pearls = append(g.pearls, w.Spawn(scene.Spec{
					Name:     fmt.Sprintf("Pearl%d_%d", r, c),
					Category: scene.CategoryPearl,
					Position: pos,
					Extent:   scene.V(pearlHalf, bodyHalfY, pearlHalf),
					Glyph:    '○',
					Color:    core.ColorBrightCyan,
				}))
			case tileStart:
				g.start = pos
			}
		}
	}

	g.ball = w.Spawn(scene.Spec{
		Name:          BallName,
		Category:      scene.CategoryBall,
		Body:          scene.BodyDynamic,
		Position:      g.start,
		Extent:        scene.V(ballHalf, ballHalf, ballHalf),
		Damping:       g.cfg.Ball.Damping,
		Restitution:   g.cfg.Ball.Restitution,
		CollisionMask: scene.MaskOf(scene.CategoryStone, scene.CategoryPillar, scene.CategoryCrate),
		ContactMask:   scene.MaskOf(scene.CategoryPillar, scene.CategoryCrate, scene.CategoryPearl),
		Glyph:         '●',
		Color:         core.ColorBrightWhite,
	})
}
