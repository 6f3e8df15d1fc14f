package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Manager stores pipelines by name and runs them on demand.
type Manager struct {
	mu        sync.RWMutex
	pipelines map[string]*Pipeline
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{pipelines: make(map[string]*Pipeline)}
}

// Register adds a pipeline under its name. Duplicate names return an error.
func (m *Manager) Register(p *Pipeline) error {
	if p == nil {
		return fmt.Errorf("pipeline: pipeline is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.pipelines[p.name]; exists {
		return fmt.Errorf("pipeline: %q already registered", p.name)
	}
	m.pipelines[p.name] = p
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (m *Manager) MustRegister(p *Pipeline) {
	if err := m.Register(p); err != nil {
		panic(err)
	}
}

// Get retrieves a pipeline by name.
func (m *Manager) Get(name string) (*Pipeline, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.pipelines[name]
	if !ok {
		return nil, fmt.Errorf("pipeline: %q not found", name)
	}
	return p, nil
}

// List returns the sorted pipeline names.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.pipelines))
	for name := range m.pipelines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a pipeline is registered.
func (m *Manager) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.pipelines[name]
	return ok
}

// Submit runs the named pipeline with the given seed data.
func (m *Manager) Submit(ctx context.Context, name string, seed map[string]any) (map[string]any, error) {
	p, err := m.Get(name)
	if err != nil {
		return nil, err
	}
	return p.Run(ctx, seed)
}
