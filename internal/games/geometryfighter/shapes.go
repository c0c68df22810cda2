package geometryfighter

import (
	"github.com/vovakirdan/scene-arcade/internal/core"
	"github.com/vovakirdan/scene-arcade/internal/scene"
)

// ShapeType is one of the launched geometries.
type ShapeType int

const (
	ShapeBox ShapeType = iota
	ShapeSphere
	ShapePyramid
	ShapeTorus
	ShapeCapsule
	ShapeCylinder
	ShapeCone
	ShapeTube

	shapeCount
)

type shapeInfo struct {
	name   string
	glyph  rune
	extent scene.Vec3 // half-size
}

var shapes = [shapeCount]shapeInfo{
	ShapeBox:      {"box", '■', scene.V(0.5, 0.5, 0.5)},
	ShapeSphere:   {"sphere", '●', scene.V(0.5, 0.5, 0.5)},
	ShapePyramid:  {"pyramid", '▲', scene.V(0.5, 0.5, 0.5)},
	ShapeTorus:    {"torus", '◎', scene.V(0.75, 0.25, 0.75)},
	ShapeCapsule:  {"capsule", '0', scene.V(0.3, 1.25, 0.3)},
	ShapeCylinder: {"cylinder", '▮', scene.V(0.3, 1.25, 0.3)},
	ShapeCone:     {"cone", '▼', scene.V(0.5, 0.5, 0.5)},
	ShapeTube:     {"tube", 'O', scene.V(0.5, 0.5, 0.5)},
}

// String returns the shape name.
func (s ShapeType) String() string {
	if s < 0 || s >= shapeCount {
		return "unknown"
	}
	return shapes[s].name
}

// Shape kinds. Slicing a good shape scores, slicing a bad one hurts.
const (
	KindGood = "good"
	KindBad  = "bad"
)

// badColor marks shapes to leave alone.
const badColor = core.ColorGray

// goodColors skips the palette's red so good shapes never look dangerous.
var goodColors = core.ShapeColors[1:]

// spawn launches a shape from the origin with the given impulse.
func (g *Game) spawn(t ShapeType, bad bool, color core.Color, impulse scene.Vec3) *scene.Entity {
	kind := KindGood
	if bad {
		kind, color = KindBad, badColor
	}
	info := shapes[t]
	return g.world.Spawn(scene.Spec{
		Name:     info.name,
		Kind:     kind,
		Category: scene.CategoryShape,
		Body:     scene.BodyDynamic,
		Velocity: impulse,
		Extent:   info.extent,
		Gravity:  true,
		Glyph:    info.glyph,
		Color:    color,
	})
}

// spawnRandom picks type, kind, color and impulse from the spawner's source.
func (g *Game) spawnRandom() *scene.Entity {
	sp := g.cfg.Spawn
	t := ShapeType(g.spawner.Intn(int(shapeCount)))
	bad := g.spawner.Float(0, 1) < sp.BadChance
	color := goodColors[g.spawner.Intn(len(goodColors))]
	impulse := scene.V(
		g.spawner.Float(-sp.ImpulseX, sp.ImpulseX),
		g.spawner.Float(sp.MinImpulseY, sp.MaxImpulseY),
		0,
	)
	g.spawned++
	return g.spawn(t, bad, color, impulse)
}
