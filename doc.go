// Package clock implements a fixed-capacity [Cache] using the Clock
// (second-chance) replacement algorithm.
//
// Clock approximates LRU without reordering anything on access.
// A hit only sets a single bit; the cost of deciding what to evict is
// paid by insertions, which sweep a hand around a ring of slots.
//
// The following is a summary intended for maintainers.
//
// Glossary and invariants:
//
//   - Slot
//
//     One cache line in a ring of exactly capacity slots.
//     Slots are allocated by [New] and reused in place; they are never freed.
//
//   - Empty / occupied
//
//     A slot is empty until the first key is installed in it.
//     Key and value are present together or not at all.
//
//   - Referenced
//
//     Set by [Cache.Get]; cleared when the hand passes over the slot.
//     A slot with the bit set is "warm", otherwise "cold".
//     Newly inserted entries start cold.
//
//   - Index
//
//     Maps each resident key to its slot position.
//     Every indexed position holds that key, and no two keys share a slot.
//
// Operations:
//
//   - Hit (Get)
//
//     Marks the slot referenced. The hand does not move.
//
//   - Update (Put on a resident key)
//
//     Replaces the value in place. Neither the reference bit nor the hand change.
//
//   - Miss (Put on a new key)
//
//     Starting at the hand, every warm slot is cleared and skipped.
//     The first empty or cold slot is claimed; a cold occupant is dropped
//     from the index and its value discarded without notification.
//     The hand then moves one past the claimed slot.
//
// Since each skipped slot loses its bit, a sweep visits at most
// capacity+1 slots. With no reads between insertions
// the cache degrades to FIFO order.
package clock
