package clock

import (
	"iter"

	"github.com/djdv/go-clock/internal/ring"
)

type (
	slots[Key comparable, Value any] = ring.Ring[Key, Value]
	// Cache utilizes the Clock (second-chance) replacement algorithm.
	// Concurrent access must be guarded by the caller;
	// a single mutex held for the duration of each call is sufficient.
	// Constructed by [New].
	Cache[Key comparable, Value any] struct {
		index map[Key]int
		ring  *slots[Key, Value]
	}
)

// MinimumCapacity defines the lowest value supported by [New].
const MinimumCapacity = 1

// New creates a [Cache] with the given capacity.
// All slots are allocated up front and the capacity never changes.
func New[Key comparable, Value any](capacity int) (*Cache[Key, Value], error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	return &Cache[Key, Value]{
		index: make(map[Key]int, capacity),
		ring:  ring.New[Key, Value](capacity),
	}, nil
}

// Get returns the Value for key if it is resident
// in the cache, and marks it as referenced;
// otherwise it returns the zero value and false.
func (c *Cache[Key, Value]) Get(key Key) (Value, bool) {
	if position, ok := c.index[key]; ok {
		slot := c.ring.Slot(position)
		slot.Referenced = true
		return slot.Value, true
	}
	var zero Value
	return zero, false
}

// Put inserts or updates key with value.
// Updating a resident key replaces its value in place
// without marking it as referenced.
// Inserting a new key into a full cache evicts
// the first unreferenced entry found by the hand.
func (c *Cache[Key, Value]) Put(key Key, value Value) {
	if position, ok := c.index[key]; ok {
		c.ring.Slot(position).Value = value
		return
	}
	c.handleMiss(key, value)
}

// Load returns the cached value for key (if resident). Otherwise, it calls fetch,
// inserts and returns the value on success.
// If fetch returns an error, the value is not cached.
// Fetch may itself store key; the fetched value then replaces it.
func (c *Cache[Key, Value]) Load(key Key, fetch func() (Value, error)) (Value, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	c.Put(key, value)
	return value, nil
}

// handleMiss installs a key that is not in the index.
func (c *Cache[Key, Value]) handleMiss(key Key, value Value) {
	var (
		position = c.ring.Sweep()
		slot     = c.ring.Slot(position)
	)
	if debugging {
		assert(!slot.Occupied || !slot.Referenced,
			"hand stopped on a referenced slot")
	}
	if slot.Occupied {
		c.evict(slot)
	}
	slot.Key = key
	slot.Value = value
	slot.Occupied = true
	c.index[key] = position
	c.ring.Advance()
	if debugging {
		assert(len(c.index) <= c.ring.Len(),
			"index holds more keys than slots")
	}
}

// evict drops the slot's occupant from the index.
// The value is discarded when the slot is overwritten.
func (c *Cache[Key, Value]) evict(slot *ring.Slot[Key, Value]) {
	if debugging {
		position, ok := c.index[slot.Key]
		assert(ok && c.ring.Slot(position) == slot,
			"index does not reference the evicted slot")
	}
	delete(c.index, slot.Key)
}

// Len returns the number of resident entries.
func (c *Cache[_, _]) Len() int {
	return len(c.index)
}

// Capacity returns the fixed number of slots.
func (c *Cache[_, _]) Capacity() int {
	return c.ring.Len()
}

// Keys returns an iterator over the keys of resident entries,
// in slot order.
func (c *Cache[Key, _]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for _, slot := range c.ring.All() {
			if !slot.Occupied {
				// Slots fill in order, so the rest are empty too.
				return
			}
			if !yield(slot.Key) {
				return
			}
		}
	}
}
