package scene

import "github.com/vovakirdan/scene-arcade/internal/core"

// Plane selects which world axes a Projector maps onto the screen.
type Plane int

const (
	// PlaneXY is a side view: X to the right, Y up.
	PlaneXY Plane = iota
	// PlaneXZ is a top-down view: X to the right, Z toward the bottom of the screen.
	PlaneXZ
)

// Projector maps world coordinates to terminal cells. Center is the world
// point drawn at Origin. Terminal cells are roughly twice as tall as wide,
// so games usually pick ScaleX about twice ScaleY.
type Projector struct {
	Plane   Plane
	Center  Vec3
	OriginX int // screen column of Center
	OriginY int // screen row of Center
	ScaleX  float64
	ScaleY  float64
}

// Cell returns the screen cell for a world position.
func (p Projector) Cell(v Vec3) (x, y int) {
	d := v.Sub(p.Center)
	x = p.OriginX + core.Round(d.X*p.ScaleX)
	switch p.Plane {
	case PlaneXZ:
		y = p.OriginY + core.Round(d.Z*p.ScaleY)
	default:
		y = p.OriginY - core.Round(d.Y*p.ScaleY)
	}
	return x, y
}

// Draw plots every visible entity that has a glyph.
func (p Projector) Draw(dst *core.Screen, w *World) {
	w.Each(func(e *Entity) {
		if e.Hidden || e.Glyph == 0 {
			return
		}
		p.DrawEntity(dst, e)
	})
}

// DrawEntity fills the entity's footprint with its glyph.
// Entities smaller than a cell still take one cell.
func (p Projector) DrawEntity(dst *core.Screen, e *Entity) {
	x0, y0 := p.Cell(e.Min())
	x1, y1 := p.Cell(e.Max())
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	// Max corner is exclusive; keep at least one cell.
	if x1 > x0 {
		x1--
	}
	if y1 > y0 {
		y1--
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, e.Glyph, e.Color)
		}
	}
}
