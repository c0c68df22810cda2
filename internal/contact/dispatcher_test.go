package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/scene-arcade/internal/scene"
)

type recorded struct {
	subject, other string
}

func newRecorder(d *Dispatcher, cats ...scene.Category) *[]recorded {
	var got []recorded
	for _, c := range cats {
		d.Handle(c, func(s, o *scene.Entity) {
			got = append(got, recorded{subject: s.Name, other: o.Name})
		})
	}
	return &got
}

func begin(a, b *scene.Entity) scene.ContactEvent {
	return scene.ContactEvent{A: a, B: b, Phase: scene.ContactBegin}
}

func end(a, b *scene.Entity) scene.ContactEvent {
	return scene.ContactEvent{A: a, B: b, Phase: scene.ContactEnd}
}

func TestDispatchNormalizesSubject(t *testing.T) {
	w := scene.NewWorld()
	brick := w.Spawn(scene.Spec{Name: "brick", Category: scene.CategoryBrick})
	ball := w.Spawn(scene.Spec{Name: "ball", Category: scene.CategoryBall})

	d := New(ByName("ball"))
	got := newRecorder(d, scene.CategoryBrick)

	require.True(t, d.Dispatch(begin(brick, ball)))
	require.True(t, d.Dispatch(begin(ball, brick)))
	assert.Equal(t, []recorded{{"ball", "brick"}, {"ball", "brick"}}, *got)
}

func TestDispatchIgnoresUnrelatedPairs(t *testing.T) {
	w := scene.NewWorld()
	ball := w.Spawn(scene.Spec{Name: "ball", Category: scene.CategoryBall})
	a := w.Spawn(scene.Spec{Name: "a", Category: scene.CategoryBrick})
	b := w.Spawn(scene.Spec{Name: "b", Category: scene.CategoryBrick})
	wall := w.Spawn(scene.Spec{Name: "wall", Category: scene.CategoryBarrier})

	d := New(ByCategory(scene.CategoryBall))
	got := newRecorder(d, scene.CategoryBrick)

	assert.False(t, d.Dispatch(begin(a, b)), "no subject in pair")
	assert.False(t, d.Dispatch(begin(ball, wall)), "no handler for barrier")
	assert.False(t, d.Dispatch(end(ball, a)), "end events never dispatch")
	assert.Empty(t, *got)
}

func TestDedupeSuppressesRepeatContact(t *testing.T) {
	w := scene.NewWorld()
	ball := w.Spawn(scene.Spec{Name: "ball", Category: scene.CategoryBall})
	pillar := w.Spawn(scene.Spec{Name: "pillar", Category: scene.CategoryPillar})
	crate := w.Spawn(scene.Spec{Name: "crate", Category: scene.CategoryCrate})

	d := New(ByName("ball"), WithDedupe())
	got := newRecorder(d, scene.CategoryPillar, scene.CategoryCrate)

	assert.True(t, d.Dispatch(begin(ball, pillar)))
	assert.False(t, d.Dispatch(begin(ball, pillar)), "same entity twice in a row")
	assert.True(t, d.Dispatch(begin(ball, crate)))
	assert.True(t, d.Dispatch(begin(ball, pillar)), "re-armed by the crate")
	assert.Len(t, *got, 3)
}

func TestDedupeOffByDefault(t *testing.T) {
	w := scene.NewWorld()
	ball := w.Spawn(scene.Spec{Name: "ball", Category: scene.CategoryBall})
	pillar := w.Spawn(scene.Spec{Name: "pillar", Category: scene.CategoryPillar})

	d := New(ByName("ball"))
	newRecorder(d, scene.CategoryPillar)

	assert.True(t, d.Dispatch(begin(ball, pillar)))
	assert.True(t, d.Dispatch(begin(ball, pillar)))
}

func TestTrackingBookkeeping(t *testing.T) {
	w := scene.NewWorld()
	front := w.Spawn(scene.Spec{Name: "front", Category: scene.CategoryFront})
	left := w.Spawn(scene.Spec{Name: "left", Category: scene.CategoryLeft})
	tree1 := w.Spawn(scene.Spec{Name: "tree", Category: scene.CategoryObstacle})
	tree2 := w.Spawn(scene.Spec{Name: "tree", Category: scene.CategoryObstacle})

	sensors := scene.MaskOf(scene.CategoryFront, scene.CategoryBack, scene.CategoryLeft, scene.CategoryRight)
	d := New(ByName("pig"), WithTracking(sensors))

	d.Dispatch(begin(front, tree1))
	d.Dispatch(begin(left, tree1))
	assert.Equal(t, scene.MaskOf(scene.CategoryFront, scene.CategoryLeft), d.Active())
	assert.False(t, d.IsActive(scene.CategoryObstacle), "untracked categories are ignored")

	d.Dispatch(begin(front, tree2))
	d.Dispatch(end(front, tree1))
	assert.True(t, d.IsActive(scene.CategoryFront), "still touching the second tree")

	d.Dispatch(end(front, tree2))
	assert.False(t, d.IsActive(scene.CategoryFront))
	assert.True(t, d.IsActive(scene.CategoryLeft))

	d.Dispatch(end(left, tree1))
	d.Dispatch(end(left, tree1))
	assert.Equal(t, scene.Mask(0), d.Active(), "extra end events do not underflow")
}

func TestTrackingClearsWhenObstacleRemoved(t *testing.T) {
	w := scene.NewWorld()
	tree := w.Spawn(scene.Spec{Name: "tree", Category: scene.CategoryObstacle, Extent: scene.V(0.5, 0.5, 0.5)})
	w.Spawn(scene.Spec{
		Name:        "front",
		Category:    scene.CategoryFront,
		Body:        scene.BodyKinematic,
		Extent:      scene.V(0.3, 0.3, 0.3),
		ContactMask: scene.MaskOf(scene.CategoryObstacle),
	})

	d := New(ByName("pig"), WithTracking(scene.MaskOf(scene.CategoryFront)))
	for _, ev := range w.Simulate(0) {
		d.Dispatch(ev)
	}
	require.True(t, d.IsActive(scene.CategoryFront))

	w.Remove(tree.ID())
	for _, ev := range w.Simulate(0) {
		d.Dispatch(ev)
	}
	assert.False(t, d.IsActive(scene.CategoryFront))
}

func TestReset(t *testing.T) {
	w := scene.NewWorld()
	ball := w.Spawn(scene.Spec{Name: "ball", Category: scene.CategoryBall})
	stone := w.Spawn(scene.Spec{Name: "stone", Category: scene.CategoryStone})

	d := New(ByName("ball"), WithDedupe(), WithTracking(scene.MaskOf(scene.CategoryStone)))
	newRecorder(d, scene.CategoryStone)

	require.True(t, d.Dispatch(begin(ball, stone)))
	require.True(t, d.IsActive(scene.CategoryStone))

	d.Reset()
	assert.False(t, d.IsActive(scene.CategoryStone))
	assert.True(t, d.Dispatch(begin(ball, stone)), "dedupe memory cleared")
}
