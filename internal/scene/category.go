package scene

import "strings"

// Category is the collision class of an entity. The set is closed: every
// game in the arcade draws its tags from this list.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryBall
	CategoryBarrier
	CategoryBrick
	CategoryPaddle
	CategoryShape
	CategoryStone
	CategoryPillar
	CategoryCrate
	CategoryPearl
	CategoryPig
	CategoryVehicle
	CategoryObstacle
	CategoryFront
	CategoryBack
	CategoryLeft
	CategoryRight
	CategoryCoin
	CategoryHouse

	categoryCount
)

var categoryNames = [...]string{
	CategoryNone:     "none",
	CategoryBall:     "ball",
	CategoryBarrier:  "barrier",
	CategoryBrick:    "brick",
	CategoryPaddle:   "paddle",
	CategoryShape:    "shape",
	CategoryStone:    "stone",
	CategoryPillar:   "pillar",
	CategoryCrate:    "crate",
	CategoryPearl:    "pearl",
	CategoryPig:      "pig",
	CategoryVehicle:  "vehicle",
	CategoryObstacle: "obstacle",
	CategoryFront:    "front",
	CategoryBack:     "back",
	CategoryLeft:     "left",
	CategoryRight:    "right",
	CategoryCoin:     "coin",
	CategoryHouse:    "house",
}

// String returns the lower-case category name.
func (c Category) String() string {
	if c >= categoryCount {
		return "unknown"
	}
	return categoryNames[c]
}

// Bit returns the single-bit mask for c. CategoryNone has no bit.
func (c Category) Bit() Mask {
	if c == CategoryNone || c >= categoryCount {
		return 0
	}
	return 1 << (c - 1)
}

// Mask is a set of categories. Union is OR, a membership test is AND,
// exactly like the raw bitmasks of a physics engine.
type Mask uint32

// MaskOf builds a mask from categories.
func MaskOf(cats ...Category) Mask {
	var m Mask
	for _, c := range cats {
		m |= c.Bit()
	}
	return m
}

// Has reports whether c is in the mask.
func (m Mask) Has(c Category) bool {
	b := c.Bit()
	return b != 0 && m&b == b
}

// Any reports whether the two masks share at least one category.
func (m Mask) Any(o Mask) bool {
	return m&o != 0
}

// With returns the mask with c added.
func (m Mask) With(c Category) Mask {
	return m | c.Bit()
}

// Without returns the mask with c removed.
func (m Mask) Without(c Category) Mask {
	return m &^ c.Bit()
}

// Categories lists the members in enum order.
func (m Mask) Categories() []Category {
	var out []Category
	for c := CategoryNone + 1; c < categoryCount; c++ {
		if m.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String renders the mask as "ball|brick".
func (m Mask) String() string {
	cats := m.Categories()
	if len(cats) == 0 {
		return "none"
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return strings.Join(names, "|")
}
