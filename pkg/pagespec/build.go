package pagespec

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-uibuilder/pkg/builder"
)

// Build instantiates the page's element tree through the given Builder
// session and returns the root node. Bind references resolve against the
// session's registered bindings so the produced properties carry binding
// expressions.
func Build(b *builder.Builder, page Page) (builder.Node, error) {
	if b == nil {
		return nil, fmt.Errorf("pagespec: builder session is required")
	}
	return buildNode(b, page.Root, "root")
}

func buildNode(b *builder.Builder, node Node, path string) (builder.Node, error) {
	if node.Kind == "raw" {
		return buildRaw(b, node, path)
	}

	spec, ok := builder.LookupKind(node.Kind)
	if !ok {
		return nil, fmt.Errorf("pagespec: %s: unknown element kind %q", path, node.Kind)
	}
	if !spec.Block && len(node.Children) > 0 {
		return nil, fmt.Errorf("pagespec: %s: kind %q cannot hold children", path, node.Kind)
	}

	value, err := nodeValue(b, node, path)
	if err != nil {
		return nil, err
	}
	props, err := nodeProps(b, node, path)
	if err != nil {
		return nil, err
	}

	if !spec.Block {
		return builder.NewLeaf(b, spec.Kind, spec.DefaultProperty, value, props...), nil
	}

	container := builder.NewContainer(b, spec.Kind, spec.DefaultProperty, value, props...)
	if err := buildChildren(b, container, node.Children, path); err != nil {
		return nil, err
	}
	return container, nil
}

func buildRaw(b *builder.Builder, node Node, path string) (builder.Node, error) {
	args := []any{}
	if node.Tag != nil {
		args = append(args, *node.Tag)
		if node.Content != "" {
			args = append(args, node.Content)
		}
	}
	props, err := nodeProps(b, node, path)
	if err != nil {
		return nil, err
	}

	raw, err := builder.NewRaw(b, args, props...)
	if err != nil {
		return nil, fmt.Errorf("pagespec: %s: %w", path, err)
	}
	if len(node.Children) > 0 {
		if err := buildChildren(b, &raw.Container, node.Children, path); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

func buildChildren(b *builder.Builder, container *builder.Container, children []Node, path string) error {
	container.Enter(b)
	for i, child := range children {
		if _, err := buildNode(b, child, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			container.Exit(b)
			return err
		}
	}
	return container.Exit(b)
}

// nodeValue resolves the default-property seed: a bind reference wins over a
// literal value.
func nodeValue(b *builder.Builder, node Node, path string) (any, error) {
	if node.Bind == "" {
		return node.Value, nil
	}
	bound, ok := b.Binding(node.Bind)
	if !ok {
		return nil, fmt.Errorf("pagespec: %s: unknown binding %q", path, node.Bind)
	}
	return builder.Bind(node.Bind, bound), nil
}

// nodeProps turns the literal and bound property declarations into keyword
// arguments, sorted by key so tree construction is deterministic.
func nodeProps(b *builder.Builder, node Node, path string) ([]builder.Property, error) {
	keys := make([]string, 0, len(node.Props)+len(node.Binds))
	for key := range node.Props {
		keys = append(keys, key)
	}
	for key := range node.Binds {
		if _, literal := node.Props[key]; !literal {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	props := make([]builder.Property, 0, len(keys))
	for _, key := range keys {
		if name, bound := node.Binds[key]; bound {
			value, ok := b.Binding(name)
			if !ok {
				return nil, fmt.Errorf("pagespec: %s: unknown binding %q for property %q", path, name, key)
			}
			props = append(props, builder.P(key, builder.Bind(name, value)))
			continue
		}
		props = append(props, builder.P(key, node.Props[key]))
	}
	return props, nil
}
