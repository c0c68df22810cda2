package scene

import "math"

// Snapshot is a flat, comparable record of a world used for determinism
// checks and debugging. Positions and velocities are quantized to
// thousandths so tiny float noise in unrelated code paths cannot matter.
type Snapshot struct {
	Count int
	// Each entity is 8 ints: ID, Category, Hidden, X, Y, Z, VX, VZ.
	Data []int64
}

func quantize(f float64) int64 {
	return int64(math.Round(f * 1000))
}

// Snapshot records every entity in spawn order.
func (w *World) Snapshot() Snapshot {
	ents := w.Entities()
	data := make([]int64, 0, len(ents)*8)
	for _, e := range ents {
		hidden := int64(0)
		if e.Hidden {
			hidden = 1
		}
		data = append(data,
			int64(e.id),
			int64(e.category),
			hidden,
			quantize(e.Position.X),
			quantize(e.Position.Y),
			quantize(e.Position.Z),
			quantize(e.Velocity.X),
			quantize(e.Velocity.Z),
		)
	}
	return Snapshot{Count: len(ents), Data: data}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := uint64(s.Count) //#nosec G115 -- hash computation
	for _, v := range s.Data {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
