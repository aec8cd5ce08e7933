package localpool

import "sync"

// Waker reschedules the task it was handed to.
type Waker interface {
	Wake()
}

// PollFunc advances a task by one step. It reports true once the task is
// finished; returning false without arranging a Wake leaves the task parked.
type PollFunc func(w Waker) bool

type IPool interface {
	Spawn(fn PollFunc)
	// Run polls ready tasks on the calling goroutine until none are left
	// and returns how many tasks are still unfinished.
	Run() (stalled int)
}

type task struct {
	pool   *pool
	poll   PollFunc
	queued bool
	done   bool
}

func (t *task) Wake() {
	t.pool.schedule(t)
}

type pool struct {
	mu    sync.Mutex
	ready []*task
	tasks []*task
}

func (p *pool) schedule(t *task) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if t.done || t.queued {
		return
	}
	t.queued = true
	p.ready = append(p.ready, t)
}

func (p *pool) next() *task {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.ready) > 0 {
		t := p.ready[0]
		p.ready[0] = nil
		p.ready = p.ready[1:]
		t.queued = false
		// a task may wake itself during its final poll
		if !t.done {
			return t
		}
	}
	return nil
}

func (p *pool) Spawn(fn PollFunc) {
	t := &task{pool: p, poll: fn}

	p.mu.Lock()
	p.tasks = append(p.tasks, t)
	p.mu.Unlock()

	p.schedule(t)
}

func (p *pool) Run() (stalled int) {
	for t := p.next(); t != nil; t = p.next() {
		// wakes may arrive while polling, so mu is not held here
		if t.poll(t) {
			p.mu.Lock()
			t.done = true
			p.mu.Unlock()
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	unfinished := p.tasks[:0]
	for _, t := range p.tasks {
		if !t.done {
			unfinished = append(unfinished, t)
		}
	}
	p.tasks = unfinished
	return len(unfinished)
}

func New() IPool {
	return &pool{}
}
