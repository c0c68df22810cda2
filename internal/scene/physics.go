package scene

import (
	"cmp"
	"math"
	"slices"
)

// ContactPhase says whether two bodies started or stopped touching.
type ContactPhase int

const (
	ContactBegin ContactPhase = iota
	ContactEnd
)

// String returns "begin" or "end".
func (p ContactPhase) String() string {
	if p == ContactEnd {
		return "end"
	}
	return "begin"
}

// ContactEvent is produced by Simulate for every contact-eligible pair whose
// overlap state changed. A is the entity spawned first.
type ContactEvent struct {
	A, B  *Entity
	Phase ContactPhase
}

type pairKey struct {
	a, b EntityID
}

func keyOf(a, b *Entity) pairKey {
	if a.id > b.id {
		a, b = b, a
	}
	return pairKey{a: a.id, b: b.id}
}

// Simulate advances the world by dt seconds and reports contact changes.
//
// Dynamic bodies get gravity and damping, then every moving body is
// integrated. Dynamic bodies are pushed out of overlapping entities in their
// collision mask along the axis of least penetration, and the velocity on that
// axis is reflected and scaled by restitution. Finally overlaps between
// contact-eligible, visible entities, plus the pairs just resolved, are
// diffed against the previous step: pairs broken by Remove come first, then
// ended pairs, then new pairs, all in a stable order.
func (w *World) Simulate(dt float64) []ContactEvent {
	ents := w.Entities()

	for _, e := range ents {
		if e.Body == BodyDynamic {
			if e.Gravity {
				e.Velocity = e.Velocity.Add(w.Gravity.Scale(dt))
			}
			if e.Damping > 0 {
				e.Velocity = e.Velocity.Scale(math.Max(0, 1-e.Damping*dt))
			}
		}
		if e.Body != BodyStatic {
			e.Position = e.Position.Add(e.Velocity.Scale(dt))
		}
	}

	// Push-out leaves the bodies exactly touching, which Overlaps does not
	// count, so resolved pairs are remembered as in contact for this step.
	hit := make(map[pairKey]struct{})
	for _, e := range ents {
		if e.Body != BodyDynamic || e.Hidden || e.CollisionMask == 0 {
			continue
		}
		for _, o := range ents {
			if o == e || o.Hidden || !e.CollisionMask.Has(o.category) {
				continue
			}
			if e.Overlaps(o) {
				resolve(e, o)
				hit[keyOf(e, o)] = struct{}{}
			}
		}
	}

	return w.diffContacts(ents, hit)
}

// resolve pushes e out of o and reflects e's velocity on the separating axis.
func resolve(e, o *Entity) {
	amin, amax := e.Min(), e.Max()
	bmin, bmax := o.Min(), o.Max()

	pen := [3]float64{
		math.Min(amax.X-bmin.X, bmax.X-amin.X),
		math.Min(amax.Y-bmin.Y, bmax.Y-amin.Y),
		math.Min(amax.Z-bmin.Z, bmax.Z-amin.Z),
	}
	axis := 0
	for i := 1; i < 3; i++ {
		if pen[i] < pen[axis] {
			axis = i
		}
	}

	bounce := func(pos, vel *float64, center float64) {
		dir := 1.0
		if *pos < center {
			dir = -1.0
		}
		*pos += dir * pen[axis]
		if *vel*dir < 0 {
			*vel = -*vel * e.Restitution
		}
	}

	switch axis {
	case 0:
		bounce(&e.Position.X, &e.Velocity.X, o.Position.X)
	case 1:
		bounce(&e.Position.Y, &e.Velocity.Y, o.Position.Y)
	default:
		bounce(&e.Position.Z, &e.Velocity.Z, o.Position.Z)
	}
}

func comparePairs(x, y pairKey) int {
	if c := cmp.Compare(x.a, y.a); c != 0 {
		return c
	}
	return cmp.Compare(x.b, y.b)
}

func (w *World) diffContacts(ents []*Entity, hit map[pairKey]struct{}) []ContactEvent {
	current := make(map[pairKey]struct{}, len(w.pairs))
	var begins []ContactEvent

	for i, a := range ents {
		if a.Hidden {
			continue
		}
		for _, b := range ents[i+1:] {
			if b.Hidden || !a.TestsContactWith(b) {
				continue
			}
			k := keyOf(a, b)
			if _, resolved := hit[k]; !resolved && !a.Overlaps(b) {
				continue
			}
			current[k] = struct{}{}
			if _, was := w.pairs[k]; !was {
				begins = append(begins, ContactEvent{A: a, B: b, Phase: ContactBegin})
			}
		}
	}

	var ended []pairKey
	for k := range w.pairs {
		if _, still := current[k]; !still {
			ended = append(ended, k)
		}
	}
	slices.SortFunc(ended, comparePairs)

	events := make([]ContactEvent, 0, len(w.ending)+len(ended)+len(begins))
	events = append(events, w.ending...)
	w.ending = nil
	for _, k := range ended {
		a, aok := w.entities.Get(k.a)
		b, bok := w.entities.Get(k.b)
		if aok && bok {
			events = append(events, ContactEvent{A: a, B: b, Phase: ContactEnd})
		}
	}
	events = append(events, begins...)

	w.pairs = current
	return events
}
