package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateGravity(t *testing.T) {
	w := NewWorld()
	w.Gravity = V(0, -10, 0)
	shape := w.Spawn(Spec{Body: BodyDynamic, Gravity: true, Velocity: V(1, 10, 0)})
	wall := w.Spawn(Spec{Body: BodyStatic, Position: V(5, 5, 5)})

	w.Simulate(0.5)

	assert.InDelta(t, 5.0, shape.Velocity.Y, 1e-9)
	assert.InDelta(t, 2.5, shape.Position.Y, 1e-9)
	assert.InDelta(t, 0.5, shape.Position.X, 1e-9)
	assert.Equal(t, V(5, 5, 5), wall.Position, "static bodies do not move")
}

func TestSimulateKinematicIgnoresGravity(t *testing.T) {
	w := NewWorld()
	w.Gravity = V(0, -10, 0)
	car := w.Spawn(Spec{Body: BodyKinematic, Gravity: true, Velocity: V(2, 0, 0)})

	w.Simulate(1)

	assert.Equal(t, V(2, 0, 0), car.Position)
	assert.Equal(t, V(2, 0, 0), car.Velocity)
}

func TestSimulateDamping(t *testing.T) {
	w := NewWorld()
	marble := w.Spawn(Spec{Body: BodyDynamic, Velocity: V(4, 0, 0), Damping: 0.5})

	w.Simulate(1)

	assert.InDelta(t, 2.0, marble.Velocity.X, 1e-9)
}

func TestSimulateBounceOffWall(t *testing.T) {
	w := NewWorld()
	ball := w.Spawn(Spec{
		Category:      CategoryBall,
		Body:          BodyDynamic,
		Position:      V(0, 0, 0),
		Velocity:      V(3, 0, 1),
		Extent:        V(0.25, 0.25, 0.25),
		Restitution:   1,
		CollisionMask: MaskOf(CategoryBarrier),
	})
	w.Spawn(Spec{
		Name:     "Right",
		Category: CategoryBarrier,
		Position: V(1, 0, 0),
		Extent:   V(0.5, 1, 10),
	})

	w.Simulate(0.1)

	assert.InDelta(t, 0.25, ball.Position.X, 1e-9, "pushed back to the wall face")
	assert.InDelta(t, -3.0, ball.Velocity.X, 1e-9, "x velocity reflected")
	assert.InDelta(t, 1.0, ball.Velocity.Z, 1e-9, "tangential velocity kept")
}

func TestSimulateHiddenDoesNotCollide(t *testing.T) {
	w := NewWorld()
	ball := w.Spawn(Spec{
		Body:          BodyDynamic,
		Velocity:      V(1, 0, 0),
		Extent:        V(0.25, 0.25, 0.25),
		Restitution:   1,
		CollisionMask: MaskOf(CategoryBrick),
	})
	w.Spawn(Spec{Category: CategoryBrick, Position: V(0.5, 0, 0), Extent: V(0.5, 0.5, 0.5), Hidden: true})

	w.Simulate(0.1)

	assert.InDelta(t, 1.0, ball.Velocity.X, 1e-9)
}

func TestSimulateContactBeginEnd(t *testing.T) {
	w := NewWorld()
	pig := w.Spawn(Spec{
		Name:        "MrPig",
		Category:    CategoryPig,
		Body:        BodyKinematic,
		Extent:      V(0.4, 0.4, 0.4),
		ContactMask: MaskOf(CategoryCoin),
	})
	coin := w.Spawn(Spec{Category: CategoryCoin, Position: V(3, 0, 0), Extent: V(0.3, 0.3, 0.3)})
	w.Spawn(Spec{Category: CategoryObstacle, Position: V(3, 0, 0), Extent: V(0.5, 0.5, 0.5)})

	assert.Empty(t, w.Simulate(1.0/60))

	pig.Position = V(3, 0, 0)
	events := w.Simulate(1.0 / 60)
	require.Len(t, events, 1, "obstacle is not in either contact mask")
	assert.Equal(t, ContactBegin, events[0].Phase)
	assert.Same(t, pig, events[0].A)
	assert.Same(t, coin, events[0].B)

	assert.Empty(t, w.Simulate(1.0/60), "continued overlap is not a new contact")

	coin.Hidden = true
	events = w.Simulate(1.0 / 60)
	require.Len(t, events, 1)
	assert.Equal(t, ContactEnd, events[0].Phase)

	coin.Hidden = false
	events = w.Simulate(1.0 / 60)
	require.Len(t, events, 1)
	assert.Equal(t, ContactBegin, events[0].Phase)

	w.Remove(coin.ID())
	events = w.Simulate(1.0 / 60)
	require.Len(t, events, 1, "removal ends the pair")
	assert.Equal(t, ContactEnd, events[0].Phase)
	assert.Same(t, pig, events[0].A)
	assert.Same(t, coin, events[0].B)
	assert.Empty(t, w.Simulate(1.0/60))
}

func TestRemoveEndsLivePairsInOrder(t *testing.T) {
	w := NewWorld()
	tree := w.Spawn(Spec{Name: "Tree", Category: CategoryObstacle, Extent: V(0.5, 0.5, 0.5)})
	front := w.Spawn(Spec{Name: "Front", Category: CategoryFront, Body: BodyKinematic, Extent: V(0.3, 0.3, 0.3), ContactMask: MaskOf(CategoryObstacle)})
	left := w.Spawn(Spec{Name: "Left", Category: CategoryLeft, Body: BodyKinematic, Extent: V(0.3, 0.3, 0.3), ContactMask: MaskOf(CategoryObstacle)})
	require.Len(t, w.Simulate(0), 2)

	w.Remove(tree.ID())
	front.Position = V(5, 0, 0)
	events := w.Simulate(0)

	require.Len(t, events, 2)
	assert.Equal(t, ContactEvent{A: tree, B: front, Phase: ContactEnd}, events[0])
	assert.Equal(t, ContactEvent{A: tree, B: left, Phase: ContactEnd}, events[1])
}

func TestClearDropsPairsSilently(t *testing.T) {
	w := NewWorld()
	w.Spawn(Spec{Category: CategoryPig, ContactMask: MaskOf(CategoryCoin), Extent: V(0.4, 0.4, 0.4)})
	w.Spawn(Spec{Category: CategoryCoin, Extent: V(0.3, 0.3, 0.3)})
	require.Len(t, w.Simulate(0), 1)

	w.Clear()
	assert.Empty(t, w.Simulate(0))
}

func TestSimulateEndsBeforeBegins(t *testing.T) {
	w := NewWorld()
	probe := w.Spawn(Spec{Category: CategoryFront, Body: BodyKinematic, Extent: V(0.2, 0.2, 0.2), ContactMask: MaskOf(CategoryObstacle)})
	w.Spawn(Spec{Name: "a", Category: CategoryObstacle, Position: V(0, 0, 0), Extent: V(0.4, 0.4, 0.4)})
	w.Spawn(Spec{Name: "b", Category: CategoryObstacle, Position: V(1, 0, 0), Extent: V(0.4, 0.4, 0.4)})

	w.Simulate(0)
	probe.Position = V(1, 0, 0)
	events := w.Simulate(0)

	require.Len(t, events, 2)
	assert.Equal(t, ContactEnd, events[0].Phase)
	assert.Equal(t, "a", events[0].B.Name)
	assert.Equal(t, ContactBegin, events[1].Phase)
	assert.Equal(t, "b", events[1].B.Name)
}

func TestVecAngles(t *testing.T) {
	up := V(0, 0, -5)
	assert.InDelta(t, math.Pi, up.XZAngle(), 1e-9)

	turned := up.WithXZAngle(up.XZAngle() + Radians(20))
	assert.InDelta(t, 5.0, turned.Length(), 1e-9)
	assert.Less(t, turned.X, 0.0, "a positive turn from straight up-screen veers toward -X")

	assert.InDelta(t, 5.0, V(3, 0, 4).WithLength(5).Length(), 1e-9)
	assert.Equal(t, Vec3{}, Vec3{}.WithLength(5))
}

func TestSimulateResolvedCollisionIsAContact(t *testing.T) {
	w := NewWorld()
	ball := w.Spawn(Spec{
		Name:          "Ball",
		Category:      CategoryBall,
		Body:          BodyDynamic,
		Velocity:      V(3, 0, 0),
		Extent:        V(0.25, 0.25, 0.25),
		Restitution:   1,
		CollisionMask: MaskOf(CategoryBarrier),
		ContactMask:   MaskOf(CategoryBarrier),
	})
	wall := w.Spawn(Spec{Name: "Right", Category: CategoryBarrier, Position: V(1, 0, 0), Extent: V(0.5, 1, 10)})

	events := w.Simulate(0.1)
	require.Len(t, events, 1, "push-out still reports the hit")
	assert.Equal(t, ContactBegin, events[0].Phase)
	assert.Same(t, ball, events[0].A)
	assert.Same(t, wall, events[0].B)

	events = w.Simulate(0.1)
	require.Len(t, events, 1)
	assert.Equal(t, ContactEnd, events[0].Phase, "ball has bounced away")
}
