// Package registry implements a stacked listener registry for global
// key actions, giving nested panels modal precedence without ambient
// module state.
package registry

import "sync"

// Registrant is one stacked listener for an event type
type Registrant struct {
	ID      string
	Handler func()
}

// Registry is an explicit ordered registry keyed by event type.
// Registrants for the same event type form a stack: only the topmost
// one is dispatched to, emulating modal precedence. The owner creates
// it at init and must Pop on teardown.
type Registry struct {
	mu     sync.Mutex
	stacks map[string][]Registrant
}

// New creates an empty registry
func New() *Registry {
	return &Registry{stacks: make(map[string][]Registrant)}
}

// Push registers handler on top of the stack for eventType
func (r *Registry) Push(eventType, id string, handler func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stacks[eventType] = append(r.stacks[eventType], Registrant{ID: id, Handler: handler})
}

// Pop removes the registrant with id from the stack for eventType.
// Removing a non-topmost entry is allowed; teardown order of sibling
// widgets is not guaranteed.
func (r *Registry) Pop(eventType, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stack := r.stacks[eventType]
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].ID == id {
			r.stacks[eventType] = append(stack[:i], stack[i+1:]...)
			return
		}
	}
}

// Topmost reports whether id is the top registrant for eventType
func (r *Registry) Topmost(eventType, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	stack := r.stacks[eventType]
	return len(stack) > 0 && stack[len(stack)-1].ID == id
}

// Dispatch invokes the topmost handler for eventType, if any, and
// reports whether one ran.
func (r *Registry) Dispatch(eventType string) bool {
	r.mu.Lock()
	stack := r.stacks[eventType]
	var top *Registrant
	if len(stack) > 0 {
		top = &stack[len(stack)-1]
	}
	r.mu.Unlock()

	if top == nil {
		return false
	}
	top.Handler()
	return true
}

// Depth returns the stack depth for eventType
func (r *Registry) Depth(eventType string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stacks[eventType])
}
