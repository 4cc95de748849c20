// Package tasks provides a deferred task queue for side effects that
// must run after a state transition's observers have settled, such as
// scrolling the chip strip to reveal a newly added chip.
package tasks

import "sync"

type task struct {
	name string
	fn   func()
}

// Queue holds named deferred tasks. Defer during a transition, Drain
// after the new state is reflected in the view. A task deferred twice
// under the same name before a drain replaces the earlier one, so the
// drained effect reads final state, not a snapshot.
type Queue struct {
	mu      sync.Mutex
	pending []task
	closed  bool
}

// New creates an empty queue
func New() *Queue {
	return &Queue{}
}

// Defer schedules fn under name, replacing any pending task of the
// same name. No-op after Close.
func (q *Queue) Defer(name string, fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	for i := range q.pending {
		if q.pending[i].name == name {
			q.pending[i].fn = fn
			return
		}
	}
	q.pending = append(q.pending, task{name: name, fn: fn})
}

// Cancel removes the pending task with name, if any
func (q *Queue) Cancel(name string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.pending {
		if q.pending[i].name == name {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Drain runs and clears all pending tasks in defer order
func (q *Queue) Drain() {
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, t := range pending {
		t.fn()
	}
}

// Len returns the number of pending tasks
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close drops all pending tasks and rejects further defers. Called at
// teardown so a late drain cannot touch a destroyed widget.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = nil
	q.closed = true
}
