// Package registry maps Go values to integer ids that can be stored in host
// memory. Go pointers cannot live in memory the host owns, so anything the host
// hands back to the plugin later (instance data, thread callbacks) goes through
// a Registry and only the id crosses the boundary.
package registry

import "sync"

// Registry is a thread-safe id -> value table. Ids start at 1, so 0 always
// means "nothing registered" and matches a NULL pointer on the host side.
type Registry[T any] struct {
	mu     sync.RWMutex
	values map[uintptr]T
	nextID uintptr
}

// New creates an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		values: make(map[uintptr]T),
		nextID: 1,
	}
}

// Register stores v and returns its id.
func (r *Registry[T]) Register(v T) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.values[id] = v
	return id
}

// Lookup returns the value for id.
func (r *Registry[T]) Lookup(id uintptr) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[id]
	return v, ok
}

// Take removes id and returns its value. Only the first Take of an id
// succeeds.
func (r *Registry[T]) Take(id uintptr) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.values[id]
	if ok {
		delete(r.values, id)
	}
	return v, ok
}

// Len returns the number of live entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.values)
}
