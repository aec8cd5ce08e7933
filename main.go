package go_bilock

import (
	"github.com/datnguyenzzz/nogodb/lib/go-bilock/internal/trylock"
	"go.uber.org/zap"
)

// New splits value between two owners. Everything either side needs to
// acquire, park and release is allocated here, so the lock itself never
// allocates afterwards.
func New[T any](value T, opts ...Option) (*BiLock[T], *BiLock[T]) {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = zap.L()
	}

	s := &shared[T]{
		value: trylock.NewCell(value),
		waker: trylock.NewCell[Waker](nil),
		opts:  o,
	}

	return newHandle(s), newHandle(s)
}

func newHandle[T any](s *shared[T]) *BiLock[T] {
	l := &BiLock[T]{
		shared: s,
		parker: parker{
			// buffered with a size of 1, so a wake is never lost
			// between PollLock and the select in Lock
			ch: make(chan struct{}, 1),
		},
	}
	l.guard.owner = l
	return l
}
