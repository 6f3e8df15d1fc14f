package vanilla

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-uibuilder/pkg/propcodec"
)

// widgetDef describes how one widget variant serializes: the HTML tag, the
// input type attribute, whether the fragment carries its own closing tag,
// which property renders as inner content, and property-to-attribute
// aliases.
type widgetDef struct {
	tag       string
	typ       string
	closed    bool
	inner     string
	wrapInner string
	options   bool
	aliases   map[string]string
}

var widgetDefs = map[string]widgetDef{
	"container": {tag: "div"},
	"details":   {tag: "details", inner: "title", wrapInner: "summary"},
	"text":      {tag: "span", closed: true, inner: "value"},
	"button":    {tag: "button", closed: true, inner: "label"},
	"input":     {tag: "input", typ: "text"},
	"password":  {tag: "input", typ: "password"},
	"number":    {tag: "input", typ: "number"},
	"range":     {tag: "input", typ: "range"},
	"checkbox":  {tag: "input", typ: "checkbox"},
	"date":      {tag: "input", typ: "date"},
	"select":    {tag: "select", closed: true, options: true},
	"image":     {tag: "img", aliases: map[string]string{"content": "src"}},
	"table":     {tag: "table", closed: true},
	"chart":     {tag: "div", closed: true},
}

// defaultVariants maps element kinds to their widget variant before any
// registry matchers run.
var defaultVariants = map[string]string{
	"part":       "container",
	"layout":     "container",
	"expandable": "details",
	"text":       "text",
	"button":     "button",
	"input":      "input",
	"number":     "number",
	"slider":     "range",
	"toggle":     "checkbox",
	"selector":   "select",
	"date":       "date",
	"image":      "image",
	"table":      "table",
	"chart":      "chart",
}

// Matcher decides whether a widget variant should handle the supplied
// element, based on its kind and normalized properties.
type Matcher func(kind string, props *propcodec.Properties) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widget variants for elements based on registered
// matchers. Higher priority wins; ties fall back to registration order. An
// empty registry never overrides the kind's default variant.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority.
// Higher priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget variant for an element, if any matcher claims
// it.
func (r *Registry) Resolve(kind string, props *propcodec.Properties) (string, bool) {
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(kind, props) {
			return entry.name, true
		}
	}
	return "", false
}

func (r *Registry) registerBuiltins() {
	r.Register("password", 90, func(kind string, props *propcodec.Properties) bool {
		if kind != "input" {
			return false
		}
		return truthy(props, "password")
	})

	r.Register("select", 80, func(kind string, props *propcodec.Properties) bool {
		if kind != "input" {
			return false
		}
		_, ok := props.Get("lov")
		return ok
	})

	r.Register("range", 70, func(kind string, props *propcodec.Properties) bool {
		if kind != "number" {
			return false
		}
		_, hasMin := props.Get("min")
		_, hasMax := props.Get("max")
		return hasMin && hasMax
	})
}

func truthy(props *propcodec.Properties, key string) bool {
	value, ok := props.Get(key)
	if !ok {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return false
	}
}
