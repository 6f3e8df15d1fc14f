// Package vanilla is the built-in markup factory. It maps element kinds to
// plain HTML fragments through embedded templates, picking widget variants
// from the element's properties, theme classes from go-theme tokens, and
// optionally resolving binding expressions against a static state.
package vanilla

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uibuilder/pkg/binding"
	"github.com/goliatone/go-uibuilder/pkg/propcodec"
	"github.com/goliatone/go-uibuilder/pkg/render"
	"github.com/goliatone/go-uibuilder/pkg/render/template"
	"github.com/goliatone/go-uibuilder/pkg/render/template/pongo"
)

// FactoryName is the name the factory registers under.
const FactoryName = "vanilla"

const fragmentTemplate = "templates/fragment.tmpl"

// Option customises the factory configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer template.Renderer
	theme            *theme.RendererConfig
	state            map[string]any
	widgets          *Registry
	sanitize         bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer template.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme supplies a resolved go-theme renderer configuration. Class
// tokens override the built-in ub-<kind> classes and the document shell
// picks up stylesheet assets and CSS variables.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithState supplies binding values for static rendering. Binding
// expressions in property values are evaluated against it instead of being
// emitted verbatim.
func WithState(state map[string]any) Option {
	return func(cfg *config) {
		cfg.state = state
	}
}

// WithWidgetRegistry injects a custom widget registry.
func WithWidgetRegistry(registry *Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.widgets = registry
		}
	}
}

// WithoutSanitizer disables rich-text property sanitization.
func WithoutSanitizer() Option {
	return func(cfg *config) {
		cfg.sanitize = false
	}
}

// Factory implements render.Factory with plain HTML output.
type Factory struct {
	templates template.Renderer
	theme     *theme.RendererConfig
	state     map[string]any
	widgets   *Registry
	sanitize  bool
}

var _ render.Factory = (*Factory)(nil)

// New constructs the vanilla factory applying any provided options.
func New(options ...Option) (*Factory, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		sanitize:   true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.widgets == nil {
		cfg.widgets = NewRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Factory{
		templates: renderer,
		theme:     cfg.theme,
		state:     cfg.state,
		widgets:   cfg.widgets,
		sanitize:  cfg.sanitize,
	}, nil
}

// Name returns the registry name of the factory.
func (f *Factory) Name() string {
	return FactoryName
}

// Create renders the opening fragment for an element kind. Container kinds
// yield an unclosed opening tag; control kinds yield either a fully closed
// fragment or a void opening tag whose close the tree synthesizes.
func (f *Factory) Create(ctx context.Context, kind string, props *propcodec.Properties) (render.Fragment, error) {
	if err := ctx.Err(); err != nil {
		return render.Fragment{}, err
	}
	if f.templates == nil {
		return render.Fragment{}, fmt.Errorf("vanilla: template renderer is nil")
	}

	variant, ok := defaultVariants[kind]
	if resolved, matched := f.widgets.Resolve(kind, props); matched {
		variant, ok = resolved, true
	}
	if !ok {
		return render.Fragment{}, fmt.Errorf("vanilla: unknown element kind %q", kind)
	}
	def, ok := widgetDefs[variant]
	if !ok {
		return render.Fragment{}, fmt.Errorf("vanilla: unknown widget variant %q for kind %q", variant, kind)
	}

	data, err := f.fragmentData(kind, def, props)
	if err != nil {
		return render.Fragment{}, err
	}

	opening, err := f.templates.RenderTemplate(fragmentTemplate, data)
	if err != nil {
		return render.Fragment{}, fmt.Errorf("vanilla: render fragment: %w", err)
	}
	return render.Fragment{Opening: strings.TrimSpace(opening), Tag: def.tag}, nil
}

func (f *Factory) fragmentData(kind string, def widgetDef, props *propcodec.Properties) (map[string]any, error) {
	resolved := props
	if len(f.state) > 0 {
		r, err := binding.ResolveProperties(props, f.state)
		if err != nil {
			return nil, err
		}
		resolved = r
	}

	class := f.classFor(kind)
	inner := ""
	attrs := make([]map[string]any, 0, resolved.Len())
	var listOfValues []string
	selected := ""

	for _, entry := range resolved.Entries() {
		if entry.Key == "class_name" {
			if extra := strings.TrimSpace(fmt.Sprint(entry.Value)); extra != "" {
				class += " " + extra
			}
			continue
		}
		if def.options && entry.Key == "lov" {
			listOfValues = valueList(entry.Value)
			continue
		}
		if def.inner != "" && entry.Key == def.inner {
			inner = innerText(entry.Value)
			if def.wrapInner != "" {
				inner = "<" + def.wrapInner + ">" + inner + "</" + def.wrapInner + ">"
			}
			continue
		}

		value, err := attrValue(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("vanilla: encode property %q: %w", entry.Key, err)
		}
		if f.sanitize && richTextProps[entry.Key] {
			value = sanitizeRichText(value)
		}
		key := entry.Key
		if alias, ok := def.aliases[key]; ok {
			key = alias
		}
		if def.options && key == "value" {
			selected = value
		}
		attrs = append(attrs, map[string]any{"key": key, "value": value})
	}

	if def.options {
		inner = optionsMarkup(listOfValues, selected)
	}

	return map[string]any{
		"tag":    def.tag,
		"type":   def.typ,
		"kind":   kind,
		"class":  strings.TrimSpace(class),
		"attrs":  attrs,
		"inner":  inner,
		"closed": def.closed,
	}, nil
}

// classFor resolves the element class from theme tokens, falling back to
// the ub-<kind> convention.
func (f *Factory) classFor(kind string) string {
	if f.theme != nil {
		if class, ok := f.theme.Tokens["control."+kind]; ok && strings.TrimSpace(class) != "" {
			return strings.TrimSpace(class)
		}
	}
	return "ub-" + kind
}

// innerText escapes literal content; binding expressions pass through for
// the client runtime to resolve.
func innerText(value any) string {
	text := fmt.Sprint(value)
	if binding.IsExpression(text) {
		return text
	}
	return html.EscapeString(text)
}

func attrValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	}
	switch value.(type) {
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(value), nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// valueList accepts a semicolon-separated string or a slice.
func valueList(value any) []string {
	switch v := value.(type) {
	case string:
		parts := strings.Split(v, ";")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return nil
	}
}

func optionsMarkup(values []string, selected string) string {
	var sb strings.Builder
	for _, value := range values {
		escaped := html.EscapeString(value)
		sb.WriteString(`<option value="` + escaped + `"`)
		if value == selected {
			sb.WriteString(" selected")
		}
		sb.WriteString(">" + escaped + "</option>")
	}
	return sb.String()
}
