package breaker

import (
	"fmt"
	"math"

	"github.com/vovakirdan/scene-arcade/internal/core"
	"github.com/vovakirdan/scene-arcade/internal/scene"
)

// Entity names the game looks up or reacts to.
const (
	BallName      = "Ball"
	BottomName    = "Bottom"
	LeftZoneName  = "Left"
	PaddleName    = "Paddle"
	RightZoneName = "Right"
)

// Field layout in world units. X grows to the right, Z toward the player.
const (
	fieldHalfW = 6.0 // inner face of the side walls
	fieldHalfH = 9.5 // inner face of the top and bottom walls
	wallThick  = 0.5 // half thickness

	paddleZ   = 8.0
	zoneWidth = 1.0  // distance between paddle zone centers
	zoneDepth = 0.25 // half depth of a paddle zone

	ballRadius = 0.25
	ballRestZ  = paddleZ - zoneDepth - ballRadius - 0.05

	brickTopZ   = -8.0
	brickStepZ  = 1.0
	brickStepX  = 1.0
	brickHalfX  = 0.45
	brickHalfZ  = 0.4
	bodyHalfY   = 0.5 // every body shares the floor plane
	wallOverlap = 1.0
)

// launchAngle sends the served ball up and slightly to the right.
var launchAngle = math.Pi - scene.Radians(15)

var brickColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
}

// build spawns walls, bricks, paddle zones and the ball.
func (g *Game) build() {
	w := g.world
	ballMask := scene.MaskOf(scene.CategoryBarrier, scene.CategoryBrick, scene.CategoryPaddle)

	wall := func(name string, pos, ext scene.Vec3, glyph rune, color core.Color) {
		w.Spawn(scene.Spec{
			Name:     name,
			Category: scene.CategoryBarrier,
			Body:     scene.BodyStatic,
			Position: pos,
			Extent:   ext,
			Glyph:    glyph,
			Color:    color,
		})
	}
	sideExt := scene.V(wallThick, bodyHalfY, fieldHalfH+wallOverlap)
	endExt := scene.V(fieldHalfW+wallOverlap, bodyHalfY, wallThick)
	wall("LeftWall", scene.V(-fieldHalfW-wallThick, 0, 0), sideExt, '│', core.ColorGray)
	wall("RightWall", scene.V(fieldHalfW+wallThick, 0, 0), sideExt, '│', core.ColorGray)
	wall("Top", scene.V(0, 0, -fieldHalfH-wallThick), endExt, '─', core.ColorGray)
	wall(BottomName, scene.V(0, 0, fieldHalfH+wallThick), endExt, '~', core.ColorRed)

	rows, cols := g.cfg.Bricks.Rows, g.cfg.Bricks.Columns
	left := -float64(cols-1) / 2 * brickStepX
	for r := range rows {
		for c := range cols {
			w.Spawn(scene.Spec{
				Name:     fmt.Sprintf("Brick%d_%d", r, c),
				Category: scene.CategoryBrick,
				Body:     scene.BodyStatic,
				Position: scene.V(left+float64(c)*brickStepX, 0, brickTopZ+float64(r)*brickStepZ),
				Extent:   scene.V(brickHalfX, bodyHalfY, brickHalfZ),
				Glyph:    '▆',
				Color:    brickColors[r%len(brickColors)],
			})
		}
	}

	zone := func(name string, x float64, color core.Color) *scene.Entity {
		return w.Spawn(scene.Spec{
			Name:     name,
			Category: scene.CategoryPaddle,
			Body:     scene.BodyKinematic,
			Position: scene.V(x, 0, paddleZ),
			Extent:   scene.V(zoneWidth/2, bodyHalfY, zoneDepth),
			Glyph:    '▀',
			Color:    color,
		})
	}
	g.paddle = []*scene.Entity{
		zone(LeftZoneName, -zoneWidth, core.ColorBlue),
		zone(PaddleName, 0, core.ColorBrightCyan),
		zone(RightZoneName, zoneWidth, core.ColorBlue),
	}

	g.ball = w.Spawn(scene.Spec{
		Name:          BallName,
		Category:      scene.CategoryBall,
		Body:          scene.BodyDynamic,
		Position:      scene.V(0, 0, ballRestZ),
		Extent:        scene.V(ballRadius, bodyHalfY, ballRadius),
		Restitution:   1,
		CollisionMask: ballMask,
		ContactMask:   ballMask,
		Glyph:         '●',
		Color:         core.ColorBrightWhite,
	})
}
