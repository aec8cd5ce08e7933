package go_bilock

import (
	"context"

	"github.com/datnguyenzzz/nogodb/lib/go-bilock/internal/trylock"
	"go.uber.org/zap"
)

type shared[T any] struct {
	value *trylock.Cell[T]
	// waker holds the owner that most recently failed to acquire value
	waker *trylock.Cell[Waker]
	opts  options
}

func (s *shared[T]) violation(msg string) {
	s.opts.logger.Error(msg)
	panic(msg)
}

// BiLock is one of the two owner handles returned by New. The two handles
// are symmetric. A handle holds at most one guard at a time and must not be
// used by more than one goroutine at once.
type BiLock[T any] struct {
	shared *shared[T]
	guard  Guard[T]
	parker parker
}

var _ ILock[int] = (*BiLock[int])(nil)

// PollLock returns the guard if the value is free. If it is held by the
// other owner, w is registered in the waker slot and the value is checked
// once more before reporting false: a release that lands between the two
// checks is either observed here or will find w in the slot.
//
// A nil w registers nothing.
func (l *BiLock[T]) PollLock(w Waker) (*Guard[T], bool) {
	registered := false
	for {
		if l.shared.value.TryLock() {
			return l.acquired(), true
		}
		if registered {
			return nil, false
		}
		if w == nil {
			registered = true
			continue
		}
		// the other owner may be registering at the same time, retry the
		// value without registering if so
		if l.shared.waker.TryLock() {
			*l.shared.waker.Get() = w
			l.shared.waker.Unlock()
			registered = true
		}
	}
}

func (l *BiLock[T]) TryLock() (*Guard[T], bool) {
	if !l.shared.value.TryLock() {
		return nil, false
	}
	return l.acquired(), true
}

// Lock returns as soon as the value is free, even if ctx is already done.
// When it gives up on ctx, the handle's waker may stay in the slot; it is
// inert and gets consumed or replaced by later calls.
func (l *BiLock[T]) Lock(ctx context.Context) (*Guard[T], error) {
	for {
		if g, ok := l.PollLock(&l.parker); ok {
			return g, nil
		}

		select {
		case <-ctx.Done():
			// context is either timeout or cancelled
			l.shared.opts.logger.Debug("bilock acquisition abandoned", zap.Error(ctx.Err()))
			return nil, ctx.Err()
		case <-l.parker.ch:
		}
	}
}

// Acquire returns a pending acquisition for callers that drive PollLock from
// their own scheduler.
func (l *BiLock[T]) Acquire() Acquire[T] {
	return Acquire[T]{owner: l}
}

func (l *BiLock[T]) acquired() *Guard[T] {
	g := &l.guard
	g.locked = true
	return g
}

// Acquire resolves to exactly one guard of its owner.
type Acquire[T any] struct {
	owner *BiLock[T]
}

func (a Acquire[T]) Poll(w Waker) (*Guard[T], bool) {
	return a.owner.PollLock(w)
}

// parker wakes a goroutine blocked in Lock.
type parker struct {
	ch chan struct{}
}

func (p *parker) Wake() {
	select {
	case p.ch <- struct{}{}:
	default:
	}
}

// WakerFunc adapts an ordinary function to a Waker.
type WakerFunc func()

func (f WakerFunc) Wake() {
	f()
}
