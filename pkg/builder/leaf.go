package builder

import (
	"context"
	"strings"

	"github.com/goliatone/go-uibuilder/pkg/render"
)

// Leaf is a childless tree node. It deliberately has no scope methods:
// only containers can be opened as nesting scopes, and dynamic front-ends
// such as pagespec report the misuse as a build error.
type Leaf struct {
	Element
}

// NewLeaf constructs a leaf of the given kind and registers it with the
// currently open scope, if any.
func NewLeaf(b *Builder, kind, defaultProp string, value any, props ...Property) *Leaf {
	l := &Leaf{Element: newElement(b, kind, defaultProp, value, props)}
	b.attach(l)
	return l
}

// Render wraps the factory fragment in a div. When the opening fragment
// contains an opening tag for the fragment's tag name but no matching close,
// the missing close is synthesized.
func (l *Leaf) Render(ctx context.Context, factory render.Factory) (string, error) {
	frag, err := factory.Create(ctx, l.kind, l.Properties(false))
	if err != nil {
		return "", err
	}
	if strings.Contains(frag.Opening, "<"+frag.Tag) && !strings.Contains(frag.Opening, "</"+frag.Tag) {
		return "<div>" + frag.Opening + "</" + frag.Tag + "></div>", nil
	}
	return "<div>" + frag.Opening + "</div>", nil
}
