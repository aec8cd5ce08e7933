package trylock

import "sync/atomic"

// Cell guards a value with a single atomic flag. It has no blocking Lock:
// TryLock either takes the flag or reports failure straight away, so a
// caller is never parked inside the cell.
type Cell[T any] struct {
	locked atomic.Bool
	value  T
}

func NewCell[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

func (c *Cell[T]) TryLock() bool {
	return c.locked.CompareAndSwap(false, true)
}

func (c *Cell[T]) Unlock() {
	if !c.locked.CompareAndSwap(true, false) {
		panic("trylock: unlock of unlocked cell")
	}
}

// Get returns the guarded value. Only the caller holding the flag may
// dereference it.
func (c *Cell[T]) Get() *T {
	return &c.value
}

func (c *Cell[T]) IsLocked() bool {
	return c.locked.Load()
}
