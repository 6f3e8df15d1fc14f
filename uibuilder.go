// Package uibuilder re-exports the building blocks of the declarative
// UI-tree toolkit so most callers only need this import: a Builder session,
// element constructors, and render helpers over the registered factories.
package uibuilder

import (
	"context"

	"github.com/goliatone/go-uibuilder/pkg/builder"
	"github.com/goliatone/go-uibuilder/pkg/propcodec"
	"github.com/goliatone/go-uibuilder/pkg/render"
	"github.com/goliatone/go-uibuilder/pkg/renderers/vanilla"
)

// Builder owns one tree-building session: the open-container stack and the
// named bindings visible to property normalization.
type Builder = builder.Builder

// Node is the interface shared by every tree node variant.
type Node = builder.Node

// Container is a tree node owning ordered children.
type Container = builder.Container

// Leaf is a childless tree node.
type Leaf = builder.Leaf

// Raw is a literal markup node serialized without escaping.
type Raw = builder.Raw

// Property is a single keyword construction argument.
type Property = builder.Property

// Fragment is a factory's markup output for one element.
type Fragment = render.Fragment

// Factory produces markup fragments for element kinds.
type Factory = render.Factory

// New creates an empty construction session.
func New() *Builder {
	return builder.New()
}

// P builds a keyword property argument.
func P(key string, value any) Property {
	return builder.P(key, value)
}

// Bind tags a property value as a reference to a scope variable registered
// with Builder.Let, so normalization can emit the "{name}" binding
// expression.
func Bind(name string, value any) propcodec.Binding {
	return propcodec.Bind(name, value)
}

// DefaultRegistry is the process-wide factory registry. The vanilla factory
// registers itself here when it can be constructed with defaults.
var DefaultRegistry = render.NewRegistry()

func init() {
	if factory, err := vanilla.New(); err == nil {
		DefaultRegistry.MustRegister(vanilla.FactoryName, factory)
	}
}

// Render serializes the tree rooted at node using the named factory from
// DefaultRegistry.
func Render(ctx context.Context, node Node, factoryName string) (string, error) {
	factory, err := DefaultRegistry.Get(factoryName)
	if err != nil {
		return "", err
	}
	return node.Render(ctx, factory)
}

// RenderHTML serializes the tree with the vanilla factory.
func RenderHTML(ctx context.Context, node Node) (string, error) {
	return Render(ctx, node, vanilla.FactoryName)
}

// RenderDocument renders a full HTML document around the tree using a fresh
// vanilla factory configured by the given options.
func RenderDocument(ctx context.Context, node Node, title string, options ...vanilla.Option) (string, error) {
	factory, err := vanilla.New(options...)
	if err != nil {
		return "", err
	}
	return factory.RenderDocument(ctx, node, title)
}
