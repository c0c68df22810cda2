// Package engine drives a scene one frame at a time. Each Step runs a fixed
// order: physics, contact handlers, due timers, frame handlers. Everything
// happens on the caller's goroutine; there is nothing to lock.
package engine

import (
	"slices"

	"github.com/vovakirdan/scene-arcade/internal/scene"
)

// FrameFunc is called once per step with the absolute game time in seconds.
type FrameFunc func(now float64)

// ContactFunc is called for every contact begin/end reported by the physics step.
type ContactFunc func(ev scene.ContactEvent)

type timer struct {
	due uint64
	fn  func()
}

// Loop owns the frame counter of a running scene and the handlers
// registered against it.
type Loop struct {
	World *scene.World

	rate    int
	tick    uint64
	frame   []FrameFunc
	contact []ContactFunc
	timers  []timer
}

// NewLoop creates a loop stepping w at tickRate frames per second.
func NewLoop(w *scene.World, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{World: w, rate: tickRate}
}

// OnFrame registers a per-frame handler. Handlers run in registration order.
func (l *Loop) OnFrame(fn FrameFunc) {
	l.frame = append(l.frame, fn)
}

// OnContact registers a contact handler. Handlers run in registration order.
func (l *Loop) OnContact(fn ContactFunc) {
	l.contact = append(l.contact, fn)
}

// After schedules fn to run during the frames-th step from now, after that
// step's contacts and before its frame handlers. Delays are counted in
// frames, never wall-clock time.
func (l *Loop) After(frames int, fn func()) {
	if frames < 0 {
		frames = 0
	}
	l.timers = append(l.timers, timer{due: l.tick + uint64(frames), fn: fn})
}

// Pending returns the number of scheduled timers that have not fired yet.
func (l *Loop) Pending() int {
	return len(l.timers)
}

// Tick returns the number of completed steps.
func (l *Loop) Tick() uint64 {
	return l.tick
}

// TickRate returns the configured frames per second.
func (l *Loop) TickRate() int {
	return l.rate
}

// Time returns the game time in seconds. It only ever grows until Reset.
func (l *Loop) Time() float64 {
	return float64(l.tick) / float64(l.rate)
}

// Step advances the scene by one frame.
func (l *Loop) Step() {
	events := l.World.Simulate(1 / float64(l.rate))
	l.tick++

	for _, ev := range events {
		for _, h := range l.contact {
			h(ev)
		}
	}

	l.runTimers()

	now := l.Time()
	for _, f := range l.frame {
		f(now)
	}
}

func (l *Loop) runTimers() {
	if len(l.timers) == 0 {
		return
	}
	var due []timer
	l.timers = slices.DeleteFunc(l.timers, func(t timer) bool {
		if t.due <= l.tick {
			due = append(due, t)
			return true
		}
		return false
	})
	for _, t := range due {
		t.fn()
	}
}

// Reset rewinds time and drops pending timers. Registered handlers stay.
func (l *Loop) Reset() {
	l.tick = 0
	l.timers = l.timers[:0]
}
