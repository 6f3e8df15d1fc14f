// Package render defines the factory contract that turns element kinds into
// markup fragments, and a registry for discovering factories by name.
package render

import (
	"context"

	"github.com/goliatone/go-uibuilder/pkg/propcodec"
)

// Fragment is the factory output for a single element: the opening markup
// and the tag name the tree uses to synthesize the closing tag.
type Fragment struct {
	Opening string
	Tag     string
}

// Factory produces markup fragments for element kinds. The element tree
// calls Create once per node during rendering; containers receive their
// fragment before any of their children render.
type Factory interface {
	Create(ctx context.Context, kind string, props *propcodec.Properties) (Fragment, error)
}

// FactoryFunc adapts a plain function to the Factory interface.
type FactoryFunc func(ctx context.Context, kind string, props *propcodec.Properties) (Fragment, error)

// Create implements Factory.
func (f FactoryFunc) Create(ctx context.Context, kind string, props *propcodec.Properties) (Fragment, error) {
	return f(ctx, kind, props)
}
