package go_bilock

import "context"

// Waker is the resumption callback of a suspended owner. A stored Waker is
// invoked at most once per registration and may be dropped unused.
type Waker interface {
	Wake()
}

type ILock[T any] interface {
	// PollLock takes the value if it is free. Otherwise it registers w to be
	// woken on the next release and reports false.
	PollLock(w Waker) (*Guard[T], bool)
	// TryLock takes the value if it is free, without registering anything.
	TryLock() (*Guard[T], bool)
	// Lock parks the calling goroutine until the value is taken or ctx ends.
	Lock(ctx context.Context) (*Guard[T], error)
}
