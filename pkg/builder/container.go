package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-uibuilder/pkg/render"
)

// Container is a tree node owning an ordered list of children. It can be
// opened as a nesting scope so elements constructed inside become its
// children implicitly.
type Container struct {
	Element
	children []Node
}

// NewContainer constructs a container of the given kind and registers it
// with the currently open scope, if any.
func NewContainer(b *Builder, kind, defaultProp string, value any, props ...Property) *Container {
	c := &Container{Element: newElement(b, kind, defaultProp, value, props)}
	b.attach(c)
	return c
}

// Add appends the given elements to the child list, skipping any element
// already present by identity. Returns the container for chaining.
func (c *Container) Add(nodes ...Node) *Container {
	for _, n := range nodes {
		if n == nil || c.contains(n) {
			continue
		}
		c.children = append(c.children, n)
	}
	return c
}

func (c *Container) contains(n Node) bool {
	for _, child := range c.children {
		if child == n {
			return true
		}
	}
	return false
}

// Children returns the child list in construction order.
func (c *Container) Children() []Node {
	return append([]Node(nil), c.children...)
}

// Enter pushes the container onto the Builder's scope stack, making it the
// implicit parent of everything constructed until the matching Exit.
func (c *Container) Enter(b *Builder) *Container {
	b.push(c)
	return c
}

// Exit pops the scope stack. Popping an empty stack or a different
// container than the one entered is a scope-discipline error: nesting must
// stay balanced or parent assignment corrupts for the rest of the session.
func (c *Container) Exit(b *Builder) error {
	top, err := b.pop()
	if err != nil {
		return err
	}
	if top != c {
		return fmt.Errorf("builder: unbalanced scope exit for %q", c.kind)
	}
	return nil
}

// Nest runs fn inside the container's scope, guaranteeing a balanced
// enter/exit pair. It panics if fn itself left the stack unbalanced, since
// that is a programming error in how the tree is built.
func (c *Container) Nest(b *Builder, fn func()) *Container {
	c.Enter(b)
	fn()
	if err := c.Exit(b); err != nil {
		panic(err)
	}
	return c
}

// Render obtains the opening fragment for this container's kind, renders
// every child depth-first in order, and closes the fragment's tag.
func (c *Container) Render(ctx context.Context, factory render.Factory) (string, error) {
	frag, err := factory.Create(ctx, c.kind, c.Properties(false))
	if err != nil {
		return "", err
	}
	children, err := c.renderChildren(ctx, factory)
	if err != nil {
		return "", err
	}
	return frag.Opening + children + "</" + frag.Tag + ">", nil
}

func (c *Container) renderChildren(ctx context.Context, factory render.Factory) (string, error) {
	rendered := make([]string, 0, len(c.children))
	for _, child := range c.children {
		out, err := child.Render(ctx, factory)
		if err != nil {
			return "", err
		}
		rendered = append(rendered, out)
	}
	return strings.Join(rendered, "\n"), nil
}
