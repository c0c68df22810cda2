package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/scene-arcade/internal/scene"
)

func TestLoopOrder(t *testing.T) {
	w := scene.NewWorld()
	probe := w.Spawn(scene.Spec{
		Category:    scene.CategoryPig,
		Body:        scene.BodyKinematic,
		Position:    scene.V(-1, 0, 0),
		Velocity:    scene.V(60, 0, 0),
		Extent:      scene.V(0.4, 0.4, 0.4),
		ContactMask: scene.MaskOf(scene.CategoryCoin),
	})
	w.Spawn(scene.Spec{Category: scene.CategoryCoin, Extent: scene.V(0.4, 0.4, 0.4)})

	l := NewLoop(w, 60)
	var trace []string
	l.OnContact(func(ev scene.ContactEvent) {
		trace = append(trace, "contact:"+ev.Phase.String())
		assert.InDelta(t, 0.0, probe.Position.X, 1e-9, "physics runs before contact handlers")
		l.After(0, func() { trace = append(trace, "timer") })
	})
	l.OnFrame(func(now float64) {
		trace = append(trace, "frame")
		assert.InDelta(t, 1.0/60, now, 1e-12)
	})

	l.Step()

	assert.Equal(t, []string{"contact:begin", "timer", "frame"}, trace)
	assert.Equal(t, uint64(1), l.Tick())
}

func TestLoopAfterCountsFrames(t *testing.T) {
	l := NewLoop(scene.NewWorld(), 60)
	fired := 0
	l.Step()
	l.After(3, func() { fired++ })

	l.Step()
	l.Step()
	assert.Equal(t, 0, fired)
	assert.Equal(t, 1, l.Pending())

	l.Step()
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, l.Pending())

	l.Step()
	assert.Equal(t, 1, fired, "timers fire once")
}

func TestLoopTimeMonotonic(t *testing.T) {
	l := NewLoop(scene.NewWorld(), 30)
	last := -1.0
	l.OnFrame(func(now float64) {
		require.Greater(t, now, last)
		last = now
	})
	for range 90 {
		l.Step()
	}
	assert.InDelta(t, 3.0, l.Time(), 1e-12)
}

func TestLoopReset(t *testing.T) {
	l := NewLoop(scene.NewWorld(), 0)
	assert.Equal(t, 60, l.TickRate(), "non-positive rate falls back to 60")

	frames := 0
	l.OnFrame(func(float64) { frames++ })
	l.After(10, func() { t.Fatal("timer should have been dropped") })
	l.Step()
	l.Reset()

	assert.Equal(t, uint64(0), l.Tick())
	assert.Equal(t, 0, l.Pending())
	for range 20 {
		l.Step()
	}
	assert.Equal(t, 21, frames, "handlers survive Reset")
}
