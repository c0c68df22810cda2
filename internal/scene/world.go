package scene

import (
	"fmt"
	"slices"

	"github.com/kamstrup/intmap"
)

// World owns every entity of a running scene.
// Iteration follows spawn order so simulations stay deterministic.
type World struct {
	nextID   EntityID
	entities *intmap.Map[EntityID, *Entity]
	order    []EntityID
	dirty    bool // order contains removed IDs

	Gravity Vec3
	pairs   map[pairKey]struct{}
	ending  []ContactEvent // End events for pairs broken by Remove
}

// NewWorld creates an empty world with no gravity.
func NewWorld() *World {
	return &World{
		nextID:   1,
		entities: intmap.New[EntityID, *Entity](64),
		pairs:    make(map[pairKey]struct{}),
	}
}

// Spawn adds an entity built from spec and returns it.
func (w *World) Spawn(spec Spec) *Entity {
	e := &Entity{
		id:            w.nextID,
		category:      spec.Category,
		Name:          spec.Name,
		Kind:          spec.Kind,
		Body:          spec.Body,
		Position:      spec.Position,
		Velocity:      spec.Velocity,
		Extent:        spec.Extent,
		Gravity:       spec.Gravity,
		Restitution:   spec.Restitution,
		Damping:       spec.Damping,
		CollisionMask: spec.CollisionMask,
		ContactMask:   spec.ContactMask,
		Hidden:        spec.Hidden,
		Glyph:         spec.Glyph,
		Color:         spec.Color,
	}
	w.nextID++
	w.entities.Put(e.id, e)
	w.order = append(w.order, e.id)
	return e
}

// Remove takes the entity out of the world. Pairs it was touching end with
// ContactEnd events reported by the next Simulate, ahead of that step's own
// events. Removing twice is a no-op.
func (w *World) Remove(id EntityID) {
	e, ok := w.entities.Get(id)
	if !ok {
		return
	}
	e.removed = true
	w.entities.Del(id)
	w.dirty = true

	var broken []pairKey
	for k := range w.pairs {
		if k.a == id || k.b == id {
			broken = append(broken, k)
			delete(w.pairs, k)
		}
	}
	slices.SortFunc(broken, comparePairs)
	for _, k := range broken {
		a, b := e, e
		if k.a == id {
			b, _ = w.entities.Get(k.b)
		} else {
			a, _ = w.entities.Get(k.a)
		}
		if a == nil || b == nil {
			continue
		}
		w.ending = append(w.ending, ContactEvent{A: a, B: b, Phase: ContactEnd})
	}
}

// Get returns the entity with the given ID.
func (w *World) Get(id EntityID) (*Entity, bool) {
	return w.entities.Get(id)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.entities.Len()
}

// Find returns the first live entity (in spawn order) with the given name.
func (w *World) Find(name string) (*Entity, bool) {
	for _, id := range w.order {
		if e, ok := w.entities.Get(id); ok && e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// MustFind is Find for entities the scene cannot run without.
// A missing entity is a broken scene, so it panics.
func (w *World) MustFind(name string) *Entity {
	e, ok := w.Find(name)
	if !ok {
		panic(fmt.Sprintf("scene: required entity %q not found", name))
	}
	return e
}

// Each calls fn for every live entity in spawn order.
// fn may remove entities, including the one it is visiting.
func (w *World) Each(fn func(*Entity)) {
	w.compact()
	ids := slices.Clone(w.order)
	for _, id := range ids {
		if e, ok := w.entities.Get(id); ok {
			fn(e)
		}
	}
}

// Entities returns a snapshot of live entities in spawn order.
func (w *World) Entities() []*Entity {
	w.compact()
	out := make([]*Entity, 0, len(w.order))
	for _, id := range w.order {
		if e, ok := w.entities.Get(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// ByCategory returns live entities of the given category in spawn order.
func (w *World) ByCategory(c Category) []*Entity {
	var out []*Entity
	w.Each(func(e *Entity) {
		if e.category == c {
			out = append(out, e)
		}
	})
	return out
}

// Clear removes every entity and forgets all contact pairs without
// reporting End events.
func (w *World) Clear() {
	for _, id := range w.order {
		if e, ok := w.entities.Get(id); ok {
			e.removed = true
		}
	}
	w.entities = intmap.New[EntityID, *Entity](64)
	w.order = w.order[:0]
	w.dirty = false
	clear(w.pairs)
	w.ending = nil
}

func (w *World) compact() {
	if !w.dirty {
		return
	}
	w.order = slices.DeleteFunc(w.order, func(id EntityID) bool {
		_, ok := w.entities.Get(id)
		return !ok
	})
	w.dirty = false
}
