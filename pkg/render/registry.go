package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores factories by name, providing discovery and duplication
// safeguards. Implementations can embed or wrap this for dependency
// injection.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under name. Duplicate names return an error.
func (r *Registry) Register(name string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("render: factory is required")
	}
	if name == "" {
		return fmt.Errorf("render: factory name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("render: factory %q already registered", name)
	}

	r.factories[name] = factory
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// MustGet retrieves a factory by name, panicking when it is missing.
func (r *Registry) MustGet(name string) Factory {
	factory, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return factory
}

// Get retrieves a factory by name.
func (r *Registry) Get(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("render: factory %q not found", name)
	}
	return factory, nil
}

// List returns a sorted list of factory names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a factory is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[name]
	return ok
}
