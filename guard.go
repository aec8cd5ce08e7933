package go_bilock

import "runtime"

// Guard is exclusive access to the value, held until Unlock. It is owned by
// its handle and reused across acquisitions, so a guard must not be touched
// after Unlock. The double unlock check only holds within one acquisition:
// once the handle acquires again, a pointer kept from an earlier guard is
// live again and its Unlock releases the current holder.
type Guard[T any] struct {
	owner  *BiLock[T]
	locked bool
}

func (g *Guard[T]) Value() *T {
	if !g.locked {
		g.owner.shared.violation("bilock: use of released guard")
	}
	return g.owner.shared.value.Get()
}

// Unlock frees the value and then wakes whichever owner is registered in the
// waker slot. The value is free before the wake, so the woken owner's next
// poll succeeds.
func (g *Guard[T]) Unlock() {
	if !g.locked {
		g.owner.shared.violation("bilock: unlock of unlocked guard")
	}
	g.locked = false

	s := g.owner.shared
	s.value.Unlock()

	// the slot is only ever held for a single store by a registering owner
	for !s.waker.TryLock() {
		if s.opts.unlockSpinYield {
			runtime.Gosched()
		}
	}
	slot := s.waker.Get()
	w := *slot
	*slot = nil
	s.waker.Unlock()

	// woken outside the slot, a waker may poll again right away
	if w != nil {
		w.Wake()
	}
}
