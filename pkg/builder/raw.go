package builder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-uibuilder/pkg/render"
)

// Raw is a literal markup node: an explicit tag serialized with verbatim
// attributes and content, or a bare text node when the tag is empty.
// Attribute values and content are emitted as-is with no escaping; the
// caller is responsible for producing valid markup.
type Raw struct {
	Container
	tag     string
	content string
}

// NewRaw builds a raw markup node from its positional arguments: args[0]
// names the tag (nil or "" denotes a text node) and the optional args[1] is
// the literal text content. An empty args list is a construction error,
// never defaulted.
func NewRaw(b *Builder, args []any, props ...Property) (*Raw, error) {
	if len(args) == 0 {
		return nil, errors.New("builder: raw markup requires a tag argument")
	}
	tag := ""
	if args[0] != nil {
		s, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("builder: raw markup tag must be a string, got %T", args[0])
		}
		tag = s
	}
	content := ""
	if len(args) > 1 && args[1] != nil {
		content = fmt.Sprint(args[1])
	}

	r := &Raw{tag: tag, content: content}
	// The literal tag doubles as the element kind, matching how the node
	// reports itself to inspection; a text node has no kind.
	r.Element = newElement(b, tag, "", nil, props)
	b.attach(r)
	return r, nil
}

// RawMarkup is the convenience form of NewRaw for callers with a literal
// tag in hand. An empty tag builds a text node.
func RawMarkup(b *Builder, tag, content string, props ...Property) *Raw {
	r, _ := NewRaw(b, []any{tag, content}, props...)
	return r
}

// Content returns the literal text content.
func (r *Raw) Content() string {
	return r.content
}

// Render serializes the node verbatim. A text node renders its content
// only: children are tracked but never serialized in that case.
func (r *Raw) Render(ctx context.Context, factory render.Factory) (string, error) {
	if r.tag == "" {
		return r.content, nil
	}
	attrs := ""
	if r.props.Len() > 0 {
		pairs := make([]string, 0, r.props.Len())
		for _, entry := range r.props.Entries() {
			pairs = append(pairs, entry.Key+`="`+fmt.Sprint(entry.Value)+`"`)
		}
		attrs = " " + strings.Join(pairs, " ")
	}
	children, err := r.renderChildren(ctx, factory)
	if err != nil {
		return "", err
	}
	return "<" + r.tag + attrs + ">" + r.content + children + "</" + r.tag + ">", nil
}
