package param

import (
	"sync"

	"github.com/samber/oops"

	"github.com/justyntemme/ofxgo/pkg/framework/handle"
)

// Registry keeps an effect's parameter definitions in definition order so a
// describe-in-context handler can define them all at once.
type Registry struct {
	defs  map[string]Definer
	order []string
	mu    sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs:  make(map[string]Definer),
		order: make([]string, 0),
	}
}

// Add registers definitions. A name that is already registered keeps its
// first definition.
func (r *Registry) Add(defs ...Definer) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range defs {
		if _, exists := r.defs[d.Name()]; exists {
			continue
		}
		r.defs[d.Name()] = d
		r.order = append(r.order, d.Name())
	}
	return r
}

// Get returns the definition registered under name, or nil.
func (r *Registry) Get(name string) Definer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.defs[name]
}

// Count returns the number of definitions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// All returns every definition in order.
func (r *Registry) All() []Definer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Definer, len(r.order))
	for i, name := range r.order {
		result[i] = r.defs[name]
	}
	return result
}

// Define defines every registered parameter in set, in order, and stops at
// the first failure.
func (r *Registry) Define(set handle.ParamSet) error {
	for _, d := range r.All() {
		if err := d.Define(set); err != nil {
			return oops.In("param").With("param", d.Name()).Wrapf(err, "define %q", d.Name())
		}
	}
	return nil
}
