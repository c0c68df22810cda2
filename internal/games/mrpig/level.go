package mrpig

import (
	"fmt"

	"github.com/vovakirdan/scene-arcade/internal/config"
	"github.com/vovakirdan/scene-arcade/internal/control"
	"github.com/vovakirdan/scene-arcade/internal/core"
	"github.com/vovakirdan/scene-arcade/internal/scene"
)

// PigName is the name of the player entity.
const PigName = "MrPig"

// Level legend.
const (
	tileTree     = 'T'
	tileCoin     = '$'
	tileHouse    = 'H'
	tileCarLeft  = 'c'
	tileCarRight = 'C'
	tileBusLeft  = 'b'
	tileBusRight = 'B'
	tileRoad     = '='
	tilePig      = 'P'
)

const (
	bodyHalfY   = 0.5
	sensorHalf  = 0.3
	pigHalf     = 0.4
	treeHalf    = 0.45
	coinHalf    = 0.3
	carHalfX    = 0.9
	busHalfX    = 1.4
	vehicleHalf = 0.4
)

type vehicle struct {
	e     *scene.Entity
	speed float64 // base speed, signed by direction
}

var sensorCategories = map[control.Direction]scene.Category{
	control.Forward:  scene.CategoryFront,
	control.Backward: scene.CategoryBack,
	control.Left:     scene.CategoryLeft,
	control.Right:    scene.CategoryRight,
}

// build spawns the level. The pig tile is the origin; each character is one
// unit of X and each row one unit of Z.
func (g *Game) build(lvl config.LevelMap) {
	w := g.world
	width, _ := lvl.Size()

	pigRow, pigCol := len(lvl.Rows)-1, width/2
	for r, row := range lvl.Rows {
		for c, ch := range row {
			if ch == tilePig {
				pigRow, pigCol = r, c
			}
		}
	}

	g.roads = g.roads[:0]
	g.bounds = control.Bounds{
		MinX: -g.cfg.Pig.BoundX,
		MaxX: g.cfg.Pig.BoundX,
		MinZ: float64(-pigRow),
		MaxZ: float64(len(lvl.Rows) - 1 - pigRow),
	}

	for r, row := range lvl.Rows {
		z := float64(r - pigRow)
		isRoad := false
		for c, ch := range row {
			pos := scene.V(float64(c-pigCol), 0, z)
			switch ch {
			case tileTree:
				w.Spawn(scene.Spec{
					Name:     "Tree",
					Category: scene.CategoryObstacle,
					Position: pos,
					Extent:   scene.V(treeHalf, bodyHalfY, treeHalf),
					Glyph:    '♣',
					Color:    core.ColorGreen,
				})
			case tileCoin:
				w.Spawn(scene.Spec{
					Name:     fmt.Sprintf("Coin%d_%d", r, c),
					Category: scene.CategoryCoin,
					Position: pos,
					Extent:   scene.V(coinHalf, bodyHalfY, coinHalf),
					Glyph:    '$',
					Color:    core.ColorBrightYellow,
				})
			case tileHouse:
				w.Spawn(scene.Spec{
					Name:     "House",
					Category: scene.CategoryHouse,
					Position: pos,
					Extent:   scene.V(treeHalf, bodyHalfY, treeHalf),
					Glyph:    '⌂',
					Color:    core.ColorBrown,
				})
			case tileCarLeft, tileCarRight, tileBusLeft, tileBusRight:
				isRoad = true
				g.spawnVehicle(ch, pos)
			case tileRoad:
				isRoad = true
			}
		}
		if isRoad {
			g.roads = append(g.roads, z)
		}
	}

	g.start = scene.Vec3{}
	g.pig = w.Spawn(scene.Spec{
		Name:        PigName,
		Category:    scene.CategoryPig,
		Body:        scene.BodyKinematic,
		Extent:      scene.V(pigHalf, bodyHalfY, pigHalf),
		ContactMask: scene.MaskOf(scene.CategoryVehicle, scene.CategoryCoin, scene.CategoryHouse),
	})

	g.sensors = make(map[control.Direction]*scene.Entity, len(sensorCategories))
	for _, dir := range []control.Direction{control.Forward, control.Backward, control.Left, control.Right} {
		g.sensors[dir] = w.Spawn(scene.Spec{
			Name:        dir.String(),
			Category:    sensorCategories[dir],
			Body:        scene.BodyKinematic,
			Extent:      scene.V(sensorHalf, bodyHalfY, sensorHalf),
			ContactMask: scene.MaskOf(scene.CategoryObstacle),
		})
	}
	g.syncSensors()
}

func (g *Game) spawnVehicle(kind rune, pos scene.Vec3) {
	half, speed, color := carHalfX, g.cfg.Traffic.CarSpeed, core.ColorBrightRed
	name := "Car"
	if kind == tileBusLeft || kind == tileBusRight {
		half, speed, color = busHalfX, g.cfg.Traffic.BusSpeed, core.ColorBrightYellow
		name = "Bus"
	}
	if kind == tileCarLeft || kind == tileBusLeft {
		speed = -speed
	}
	e := g.world.Spawn(scene.Spec{
		Name:     name,
		Category: scene.CategoryVehicle,
		Body:     scene.BodyKinematic,
		Position: pos,
		Velocity: scene.V(speed, 0, 0),
		Extent:   scene.V(half, bodyHalfY, vehicleHalf),
		Glyph:    '█',
		Color:    color,
	})
	g.traffic = append(g.traffic, vehicle{e: e, speed: speed})
}

// syncSensors keeps the directional probes one step around the pig.
func (g *Game) syncSensors() {
	step := g.cfg.Pig.Step
	for dir, s := range g.sensors {
		s.Position = g.pig.Position.Add(dir.Delta().Scale(step))
	}
}
