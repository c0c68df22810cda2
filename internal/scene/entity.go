package scene

import "github.com/vovakirdan/scene-arcade/internal/core"

// EntityID identifies an entity for the lifetime of a world. IDs are never reused.
type EntityID uint32

// BodyKind selects how the physics step treats an entity.
type BodyKind int

const (
	// BodyStatic never moves on its own; dynamic bodies bounce off it.
	BodyStatic BodyKind = iota
	// BodyKinematic moves by its velocity but ignores collisions.
	// Games position kinematic bodies directly (paddles, the pig, traffic).
	BodyKinematic
	// BodyDynamic is integrated, affected by gravity and damping, and
	// pushed out of anything in its collision mask.
	BodyDynamic
)

// Spec describes an entity to spawn. The category is fixed at spawn time.
type Spec struct {
	Name          string
	Kind          string // game-specific tag, e.g. shape type or "good"/"bad"
	Category      Category
	Body          BodyKind
	Position      Vec3
	Velocity      Vec3
	Extent        Vec3 // half-size of the bounding box
	Gravity       bool
	Restitution   float64
	Damping       float64 // fraction of velocity lost per second
	CollisionMask Mask
	ContactMask   Mask
	Hidden        bool
	Glyph         rune
	Color         core.Color
}

// Entity is a placed object in the world.
type Entity struct {
	id       EntityID
	category Category

	Name          string
	Kind          string
	Body          BodyKind
	Position      Vec3
	Velocity      Vec3
	Extent        Vec3
	Gravity       bool
	Restitution   float64
	Damping       float64
	CollisionMask Mask
	ContactMask   Mask
	Hidden        bool
	Heading       float64 // facing on the XZ plane, radians
	Glyph         rune
	Color         core.Color

	removed bool
}

// ID returns the entity's identifier.
func (e *Entity) ID() EntityID {
	return e.id
}

// Category returns the entity's collision class. It never changes.
func (e *Entity) Category() Category {
	return e.category
}

// Removed reports whether the entity has been taken out of its world.
func (e *Entity) Removed() bool {
	return e.removed
}

// Min returns the lower corner of the bounding box.
func (e *Entity) Min() Vec3 {
	return e.Position.Sub(e.Extent)
}

// Max returns the upper corner of the bounding box.
func (e *Entity) Max() Vec3 {
	return e.Position.Add(e.Extent)
}

// Overlaps reports whether the bounding boxes of e and o intersect.
// Touching faces do not count.
func (e *Entity) Overlaps(o *Entity) bool {
	amin, amax := e.Min(), e.Max()
	bmin, bmax := o.Min(), o.Max()
	return amin.X < bmax.X && amax.X > bmin.X &&
		amin.Y < bmax.Y && amax.Y > bmin.Y &&
		amin.Z < bmax.Z && amax.Z > bmin.Z
}

// TestsContactWith reports whether a contact between e and o is reported,
// which is the case when either one lists the other's category in its contact mask.
func (e *Entity) TestsContactWith(o *Entity) bool {
	return e.ContactMask.Has(o.category) || o.ContactMask.Has(e.category)
}
