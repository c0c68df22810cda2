package control

import (
	"github.com/vovakirdan/scene-arcade/internal/core"
	"github.com/vovakirdan/scene-arcade/internal/scene"
	"github.com/vovakirdan/scene-arcade/internal/session"
)

// Bounds limits movement on the XZ plane. An axis whose Min is not below
// its Max is unbounded.
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

func (b Bounds) clamp(p scene.Vec3) scene.Vec3 {
	if b.MinX < b.MaxX {
		p.X = core.ClampF(p.X, b.MinX, b.MaxX)
	}
	if b.MinZ < b.MaxZ {
		p.Z = core.ClampF(p.Z, b.MinZ, b.MaxZ)
	}
	return p
}

// Jumper moves an entity one grid step at a time.
type Jumper struct {
	Bounds Bounds
	Step   float64
	// Blocking names, per direction, the sensor category whose active
	// collision forbids moving that way.
	Blocking map[Direction]scene.Category
}

// Jump moves e one step in dir and turns it to face dir.
//
// The command is rejected, leaving e untouched, when the session is not
// playing, when the blocking sensor for dir is in active, or when the
// bounds leave no room to move.
func (j Jumper) Jump(e *scene.Entity, dir Direction, mode session.Mode, active scene.Mask) bool {
	if mode != session.ModePlaying || dir == DirNone {
		return false
	}
	if c, ok := j.Blocking[dir]; ok && active.Has(c) {
		return false
	}

	step := j.Step
	if step <= 0 {
		step = 1
	}
	target := j.Bounds.clamp(e.Position.Add(dir.Delta().Scale(step)))
	if target == e.Position {
		return false
	}
	e.Position = target
	e.Heading = dir.Heading()
	return true
}

// Slide moves e along X by dx, clamped to [minX, maxX], and returns the new X.
func Slide(e *scene.Entity, dx, minX, maxX float64) float64 {
	e.Position.X = core.ClampF(e.Position.X+dx, minX, maxX)
	return e.Position.X
}

// Follower chases a target on the XZ plane by exponential smoothing.
// Y is left alone so cameras keep their height.
type Follower struct {
	Position scene.Vec3
	Factor   float64
}

// NewFollower starts a follower at pos.
func NewFollower(pos scene.Vec3, factor float64) *Follower {
	return &Follower{Position: pos, Factor: factor}
}

// Update moves one frame toward target and returns the new position.
func (f *Follower) Update(target scene.Vec3) scene.Vec3 {
	f.Position.X = core.Lerp(f.Position.X, target.X, f.Factor)
	f.Position.Z = core.Lerp(f.Position.Z, target.Z, f.Factor)
	return f.Position
}
