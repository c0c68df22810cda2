// Package control turns discrete input into movement commands: grid jumps
// for characters, clamped slides for paddles, and a smoothed follow point
// for cameras.
package control

import (
	"math"

	"github.com/vovakirdan/scene-arcade/internal/core"
	"github.com/vovakirdan/scene-arcade/internal/scene"
)

// Direction is one of the four jump directions on the XZ plane.
// Forward is away from the viewer (-Z).
type Direction int

const (
	DirNone Direction = iota
	Forward
	Backward
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the unit step for d.
func (d Direction) Delta() scene.Vec3 {
	switch d {
	case Forward:
		return scene.V(0, 0, -1)
	case Backward:
		return scene.V(0, 0, 1)
	case Left:
		return scene.V(-1, 0, 0)
	case Right:
		return scene.V(1, 0, 0)
	default:
		return scene.Vec3{}
	}
}

// Heading returns the facing angle for d, measured like scene.Vec3.XZAngle.
func (d Direction) Heading() float64 {
	switch d {
	case Forward:
		return math.Pi
	case Left:
		return -math.Pi / 2
	case Right:
		return math.Pi / 2
	default:
		return 0
	}
}

// FromInput picks the direction held in the frame. Up wins over Down,
// Down over Left, Left over Right.
func FromInput(in core.InputFrame) Direction {
	switch {
	case in.Has(core.ActionUp):
		return Forward
	case in.Has(core.ActionDown):
		return Backward
	case in.Has(core.ActionLeft):
		return Left
	case in.Has(core.ActionRight):
		return Right
	default:
		return DirNone
	}
}
