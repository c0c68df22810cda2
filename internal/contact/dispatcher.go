// Package contact routes physics contact events to per-category handlers.
//
// A Dispatcher is built around one subject (the ball, the pig). Every begin
// event involving the subject is normalized so the handler sees the subject
// first and the other entity second, then looked up by the other entity's
// category. Games register one Dispatcher per subject and feed it from the
// engine's contact hook.
package contact

import "github.com/vovakirdan/scene-arcade/internal/scene"

// Matcher picks the subject out of a contact pair.
type Matcher func(e *scene.Entity) bool

// ByName matches entities with the given name.
func ByName(name string) Matcher {
	return func(e *scene.Entity) bool { return e.Name == name }
}

// ByCategory matches entities of the given category.
func ByCategory(c scene.Category) Matcher {
	return func(e *scene.Entity) bool { return e.Category() == c }
}

// Handler reacts to the subject touching other.
type Handler func(subject, other *scene.Entity)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithDedupe drops a begin event whose other entity is the same one the
// previous dispatched contact involved. A different entity in between
// re-arms the first one.
func WithDedupe() Option {
	return func(d *Dispatcher) { d.dedupe = true }
}

// WithTracking keeps a live set of the categories in mask that are
// currently touching something. Begin events mark both members of the pair,
// end events unmark them. Tracking runs before subject matching, so pairs
// that do not involve the subject still count.
func WithTracking(mask scene.Mask) Option {
	return func(d *Dispatcher) { d.track = mask }
}

// Dispatcher maps the subject's contacts to handlers by category.
type Dispatcher struct {
	subject  Matcher
	handlers map[scene.Category]Handler

	dedupe  bool
	last    scene.EntityID
	hasLast bool

	track  scene.Mask
	counts map[scene.Category]int
}

// New creates a dispatcher for the entities subject matches.
func New(subject Matcher, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		subject:  subject,
		handlers: make(map[scene.Category]Handler),
		counts:   make(map[scene.Category]int),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle registers h for contacts with entities of category c.
// A later registration for the same category replaces the earlier one.
func (d *Dispatcher) Handle(c scene.Category, h Handler) {
	d.handlers[c] = h
}

// Dispatch routes one event. It reports whether a handler ran.
//
// End events only update tracking. Begin events without the subject, with
// no handler for the other category, or suppressed by dedupe are ignored.
func (d *Dispatcher) Dispatch(ev scene.ContactEvent) bool {
	if ev.Phase == scene.ContactEnd {
		d.untrack(ev.A)
		d.untrack(ev.B)
		return false
	}
	d.trackBegin(ev.A)
	d.trackBegin(ev.B)

	subject, other := ev.A, ev.B
	switch {
	case d.subject(ev.A):
	case d.subject(ev.B):
		subject, other = ev.B, ev.A
	default:
		return false
	}

	if d.dedupe {
		if d.hasLast && d.last == other.ID() {
			return false
		}
		d.last, d.hasLast = other.ID(), true
	}

	h, ok := d.handlers[other.Category()]
	if !ok {
		return false
	}
	h(subject, other)
	return true
}

func (d *Dispatcher) trackBegin(e *scene.Entity) {
	if d.track.Has(e.Category()) {
		d.counts[e.Category()]++
	}
}

func (d *Dispatcher) untrack(e *scene.Entity) {
	c := e.Category()
	if !d.track.Has(c) || d.counts[c] == 0 {
		return
	}
	d.counts[c]--
}

// Active returns the tracked categories that are touching something right now.
func (d *Dispatcher) Active() scene.Mask {
	var m scene.Mask
	for c, n := range d.counts {
		if n > 0 {
			m = m.With(c)
		}
	}
	return m
}

// IsActive reports whether the tracked category c is touching something.
func (d *Dispatcher) IsActive(c scene.Category) bool {
	return d.counts[c] > 0
}

// Reset forgets the last contact and all tracked collisions.
func (d *Dispatcher) Reset() {
	d.hasLast = false
	d.last = 0
	clear(d.counts)
}
