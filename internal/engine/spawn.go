package engine

import (
	"math/rand"

	"github.com/vovakirdan/scene-arcade/internal/scene"
)

// Spawner decides when the next dynamic entity should appear. After each
// spawn it draws a fresh interval uniformly from [Min, Max] seconds.
type Spawner struct {
	Min, Max float64

	rng  *rand.Rand
	next float64
}

// NewSpawner creates a spawner whose first spawn is due as soon as time is positive.
func NewSpawner(seed int64, minInterval, maxInterval float64) *Spawner {
	return &Spawner{
		Min: minInterval,
		Max: maxInterval,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Due reports whether now has passed the scheduled spawn time.
// When it has, the next spawn time is drawn before returning.
func (s *Spawner) Due(now float64) bool {
	if now <= s.next {
		return false
	}
	s.next = now + s.Float(s.Min, s.Max)
	return true
}

// Next returns the scheduled spawn time.
func (s *Spawner) Next() float64 {
	return s.next
}

// Float draws from [lo, hi) using the spawner's deterministic source.
func (s *Spawner) Float(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Intn draws from [0, n).
func (s *Spawner) Intn(n int) int {
	return s.rng.Intn(n)
}

// Reset reseeds the source and makes the next spawn due immediately.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.next = 0
}

// Cull removes every entity whose position has dropped below minY and
// returns what it removed, in spawn order.
func Cull(w *scene.World, minY float64) []*scene.Entity {
	var gone []*scene.Entity
	w.Each(func(e *scene.Entity) {
		if e.Position.Y < minY {
			w.Remove(e.ID())
			gone = append(gone, e)
		}
	})
	return gone
}
