// Package ring is a fixed-size slot ring swept by a single clock hand.
package ring

import "iter"

type (
	// A Ring is a fixed-length circular sequence of slots
	// and the hand used to search it for a replacement slot.
	// Slots are allocated once by [New] and never resized.
	// Empty rings are represented as nil Ring pointers.
	Ring[Key comparable, Value any] struct {
		slots []Slot[Key, Value]
		hand  int
	}
	// Slot is a single cache line.
	// The zero value is an empty slot.
	Slot[Key comparable, Value any] struct {
		// Key is the identifier of the data held by this slot.
		// Only valid while Occupied.
		Key Key
		// Value is only valid while Occupied.
		Value Value
		// Occupied is true once a key has been installed
		// in the slot. It is never cleared; eviction
		// replaces the occupant in place.
		Occupied bool
		// Referenced is true if the slot was
		// accessed since the hand last passed it.
		// Meaningless for empty slots.
		Referenced bool
	}
)

// New creates a ring of n empty slots with the hand at position 0.
func New[Key comparable, Value any](n int) *Ring[Key, Value] {
	if n <= 0 {
		return nil
	}
	return &Ring[Key, Value]{
		slots: make([]Slot[Key, Value], n),
	}
}

// Len returns the number of slots in the ring.
func (r *Ring[Key, Value]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.slots)
}

// Hand returns the current hand position.
func (r *Ring[Key, Value]) Hand() int {
	if r == nil {
		return 0
	}
	return r.hand
}

// Slot returns the slot at position. Position must be in [0, r.Len()).
func (r *Ring[Key, Value]) Slot(position int) *Slot[Key, Value] {
	return &r.slots[position]
}

// Advance moves the hand forward one slot,
// wrapping around at the end of the ring.
func (r *Ring[Key, Value]) Advance() {
	if r.hand++; r.hand == len(r.slots) {
		r.hand = 0
	}
}

// Sweep moves the hand until it rests on a slot that is either
// empty or occupied but not referenced, and returns its position.
// Every referenced slot passed along the way has its reference cleared
// (its "second chance"), so Sweep stops after at most one full lap
// plus one slot. The hand is left on the returned position.
func (r *Ring[Key, Value]) Sweep() int {
	for {
		slot := &r.slots[r.hand]
		if !slot.Occupied || !slot.Referenced {
			return r.hand
		}
		slot.Referenced = false
		r.Advance()
	}
}

// All returns an iterator over every slot in ring order,
// starting from position 0 (not the hand).
// The behavior of All is undefined if the ring is swept during iteration.
func (r *Ring[Key, Value]) All() iter.Seq2[int, *Slot[Key, Value]] {
	return func(yield func(int, *Slot[Key, Value]) bool) {
		if r == nil {
			return
		}
		for position := range r.slots {
			if !yield(position, &r.slots[position]) {
				return
			}
		}
	}
}
