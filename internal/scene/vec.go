// Package scene is the minimal scene graph the arcade games run on: entities
// with category tags, a world that owns them, a small rigid-body step and
// contact begin/end detection. Games never see a renderer or a physics
// solver beyond what lives here.
package scene

import "math"

// Vec3 is a position, velocity or extent in world units.
// Y is up. The XZ plane is the floor.
type Vec3 struct {
	X, Y, Z float64
}

// V builds a vector.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// Length returns the Euclidean length.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// WithLength rescales v to the given length. A zero vector stays zero.
func (v Vec3) WithLength(l float64) Vec3 {
	cur := v.Length()
	if cur == 0 {
		return v
	}
	return v.Scale(l / cur)
}

// XZAngle is the heading of v on the floor plane, atan2(X, Z) in radians.
// Zero points toward +Z (toward the camera in the top-down games).
func (v Vec3) XZAngle() float64 {
	return math.Atan2(v.X, v.Z)
}

// WithXZAngle rotates v on the floor plane to the given heading, keeping
// its XZ length and Y component.
func (v Vec3) WithXZAngle(a float64) Vec3 {
	r := math.Hypot(v.X, v.Z)
	return Vec3{X: r * math.Sin(a), Y: v.Y, Z: r * math.Cos(a)}
}

// Radians converts degrees.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
