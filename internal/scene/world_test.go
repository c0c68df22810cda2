package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldSpawnFindRemove(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(Spec{Name: "Ball", Category: CategoryBall})
	b := w.Spawn(Spec{Name: "Brick", Category: CategoryBrick})
	c := w.Spawn(Spec{Name: "Brick", Category: CategoryBrick})

	require.Equal(t, 3, w.Len())
	assert.NotEqual(t, a.ID(), b.ID())

	found, ok := w.Find("Brick")
	require.True(t, ok)
	assert.Same(t, b, found, "Find returns the first match in spawn order")

	w.Remove(b.ID())
	assert.True(t, b.Removed())
	found, ok = w.Find("Brick")
	require.True(t, ok)
	assert.Same(t, c, found)

	w.Remove(b.ID())
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, []*Entity{a, c}, w.Entities())
	assert.Equal(t, []*Entity{c}, w.ByCategory(CategoryBrick))
}

func TestWorldMustFindPanics(t *testing.T) {
	w := NewWorld()
	w.Spawn(Spec{Name: "Paddle"})

	assert.NotPanics(t, func() { w.MustFind("Paddle") })
	assert.PanicsWithValue(t, `scene: required entity "Ball" not found`, func() { w.MustFind("Ball") })
}

func TestWorldEachAllowsRemoval(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		w.Spawn(Spec{Position: V(0, float64(i)-4, 0)})
	}

	w.Each(func(e *Entity) {
		if e.Position.Y < -2 {
			w.Remove(e.ID())
		}
	})

	assert.Equal(t, 3, w.Len())
}

func TestWorldClear(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(Spec{Name: "x"})
	w.Clear()

	assert.Equal(t, 0, w.Len())
	assert.True(t, e.Removed())
	next := w.Spawn(Spec{Name: "y"})
	assert.NotEqual(t, e.ID(), next.ID(), "ids are never reused")
}

func TestCategoryImmutable(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(Spec{Category: CategoryCoin})
	e.Hidden = true
	e.Position = V(1, 2, 3)
	assert.Equal(t, CategoryCoin, e.Category())
}

func TestSnapshotHash(t *testing.T) {
	build := func() *World {
		w := NewWorld()
		w.Spawn(Spec{Name: "a", Category: CategoryBall, Position: V(1, 2, 3), Velocity: V(0.5, 0, -1)})
		w.Spawn(Spec{Name: "b", Category: CategoryBrick, Hidden: true})
		return w
	}

	s1, s2 := build().Snapshot(), build().Snapshot()
	require.Equal(t, 2, s1.Count)
	assert.Equal(t, s1.Hash(), s2.Hash())

	w := build()
	w.MustFind("b").Hidden = false
	assert.NotEqual(t, s1.Hash(), w.Snapshot().Hash(), "visibility is part of the snapshot")
}
