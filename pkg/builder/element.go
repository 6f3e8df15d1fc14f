package builder

import (
	"context"

	"github.com/goliatone/go-uibuilder/pkg/propcodec"
	"github.com/goliatone/go-uibuilder/pkg/render"
)

// Property is a single keyword construction argument.
type Property struct {
	Key   string
	Value any
}

// P builds a keyword property argument.
func P(key string, value any) Property {
	return Property{Key: key, Value: value}
}

// Bind re-exports propcodec.Bind so tree-building code only needs this
// package: it tags a property value as a reference to a scope variable.
func Bind(name string, value any) propcodec.Binding {
	return propcodec.Bind(name, value)
}

// Node is the interface shared by every tree node variant.
type Node interface {
	// Kind names the element variant, e.g. "text" or "part". Raw markup
	// nodes report their literal tag.
	Kind() string
	// Properties returns the normalized property map. When copy is true the
	// result is a deep, independent copy; when false it is the live map,
	// which callers must not mutate.
	Properties(copy bool) *propcodec.Properties
	// Render serializes the node and, for containers, its children.
	Render(ctx context.Context, factory render.Factory) (string, error)
}

// Element carries the state shared by every node variant: the kind name,
// the default property used to interpret the positional construction value,
// the normalized property map, and the scope snapshot taken at
// construction.
type Element struct {
	kind        string
	defaultProp string
	props       *propcodec.Properties
	scope       map[string]any
}

// newElement normalizes the declared properties against the Builder's
// current bindings. A positional value seeds the default property first so
// keyword arguments for the same key override it.
func newElement(b *Builder, kind, defaultProp string, value any, props []Property) Element {
	e := Element{
		kind:        kind,
		defaultProp: defaultProp,
		props:       propcodec.NewProperties(),
		scope:       b.snapshot(),
	}
	e.merge(value, props)
	return e
}

// merge stores the positional value and keyword properties, then runs the
// codec over exactly the keys touched. The source-token map built from Bind
// arguments is transient: it exists only for this normalization pass.
func (e *Element) merge(value any, props []Property) {
	tokens := make(map[string]string)
	touched := make([]string, 0, len(props)+1)
	seen := make(map[string]bool, len(props)+1)
	touch := func(key string) {
		if !seen[key] {
			seen[key] = true
			touched = append(touched, key)
		}
	}

	if value != nil && e.defaultProp != "" {
		e.setRaw(e.defaultProp, value, tokens)
		touch(e.defaultProp)
	}
	for _, p := range props {
		e.setRaw(p.Key, p.Value, tokens)
		touch(p.Key)
	}

	for _, key := range touched {
		raw, ok := e.props.Get(key)
		if !ok {
			continue
		}
		normalized := propcodec.NormalizeKey(key)
		if normalized != key {
			e.props.Delete(key)
		}
		e.props.Set(normalized, propcodec.NormalizeValue(normalized, raw, tokens, e.scope))
	}
}

func (e *Element) setRaw(key string, value any, tokens map[string]string) {
	if inner, token, ok := propcodec.Detach(value); ok {
		tokens[key] = token
		value = inner
	}
	e.props.Set(key, value)
}

// Update merges additional or overridden properties into the element,
// exactly as construction does, but re-captures the scope bindings from the
// Builder at the update call site. Only the updated keys are re-normalized.
func (e *Element) Update(b *Builder, value any, props ...Property) {
	e.scope = b.snapshot()
	e.merge(value, props)
}

// Kind names the element variant.
func (e *Element) Kind() string {
	return e.kind
}

// DefaultProperty names the property a positional construction value seeds.
// Empty means the variant takes no positional value.
func (e *Element) DefaultProperty() string {
	return e.defaultProp
}

// Properties returns the normalized property map. Rendering passes
// copy=false and must treat the result as read-only.
func (e *Element) Properties(copy bool) *propcodec.Properties {
	if copy {
		return e.props.Clone()
	}
	return e.props
}
