// Package builder implements the declarative UI-tree model: elements carry
// normalized properties, containers own ordered children, and a Builder
// tracks which container is open so construction inside a nested scope is
// implicitly parented. Rendering walks the tree depth-first through a
// render.Factory.
package builder

import (
	"errors"
	"sort"
)

// Builder owns the construction state for a single tree-building session:
// the stack of currently open containers and the named bindings visible to
// property normalization. Scope entry pushes a container, scope exit pops
// it; every element constructed while a container is open becomes its
// child.
//
// A Builder is not safe for concurrent use. Build each tree with its own
// Builder; separate sessions never observe each other's stack.
type Builder struct {
	stack    []*Container
	bindings map[string]any
}

// New creates an empty construction session.
func New() *Builder {
	return &Builder{bindings: make(map[string]any)}
}

// Let registers a named binding on the session. Elements constructed
// afterwards snapshot the bindings known at that moment; a property value
// declared with Bind and reference-identical to the bound value normalizes
// to the binding expression "{name}". Returns the Builder for chaining.
func (b *Builder) Let(name string, value any) *Builder {
	b.bindings[name] = value
	return b
}

// Binding returns the value registered under name.
func (b *Builder) Binding(name string) (any, bool) {
	value, ok := b.bindings[name]
	return value, ok
}

// Bindings returns the sorted names of every registered binding.
func (b *Builder) Bindings() []string {
	names := make([]string, 0, len(b.bindings))
	for name := range b.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Depth reports the number of currently open container scopes.
func (b *Builder) Depth() int {
	return len(b.stack)
}

func (b *Builder) peek() *Container {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) push(c *Container) {
	b.stack = append(b.stack, c)
}

func (b *Builder) pop() (*Container, error) {
	if len(b.stack) == 0 {
		return nil, errors.New("builder: scope exit without a matching enter")
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return top, nil
}

// attach registers a freshly constructed node as a child of the open
// container, if any.
func (b *Builder) attach(n Node) {
	if parent := b.peek(); parent != nil {
		parent.Add(n)
	}
}

// snapshot copies the bindings visible at this moment. The copy is never
// refreshed behind the element's back; Update re-captures explicitly.
func (b *Builder) snapshot() map[string]any {
	out := make(map[string]any, len(b.bindings))
	for name, value := range b.bindings {
		out[name] = value
	}
	return out
}
