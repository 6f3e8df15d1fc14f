// Package pagegen turns OpenAPI operations into element trees: one input
// control per request-body field, wrapped in a part with a heading and a
// submit button.
package pagegen

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-uibuilder/internal/openapi/loader"
	"github.com/goliatone/go-uibuilder/internal/openapi/parser"
	"github.com/goliatone/go-uibuilder/pkg/builder"
	"github.com/goliatone/go-uibuilder/pkg/openapi"
)

// Option customises the generator.
type Option func(*Generator)

// WithLoader injects a custom document loader.
func WithLoader(l openapi.Loader) Option {
	return func(g *Generator) {
		if l != nil {
			g.loader = l
		}
	}
}

// WithParser injects a custom document parser.
func WithParser(p openapi.Parser) Option {
	return func(g *Generator) {
		if p != nil {
			g.parser = p
		}
	}
}

// WithLoaderOptions configures the default loader.
func WithLoaderOptions(options ...openapi.LoaderOption) Option {
	return func(g *Generator) {
		g.loader = loader.New(openapi.NewLoaderOptions(options...))
	}
}

// Generator loads OpenAPI documents, extracts operations, and builds input
// pages for them.
type Generator struct {
	loader openapi.Loader
	parser openapi.Parser
}

// New constructs a Generator with default loader and parser unless options
// replace them.
func New(options ...Option) *Generator {
	g := &Generator{
		loader: loader.New(openapi.LoaderOptions{}),
		parser: parser.New(openapi.NewParserOptions()),
	}
	for _, opt := range options {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Operations loads the source and returns every extracted operation.
func (g *Generator) Operations(ctx context.Context, src openapi.Source) (map[string]openapi.Operation, error) {
	doc, err := g.loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return g.parser.Operations(ctx, doc)
}

// Page loads the source, finds the operation, and builds its input page
// through the given Builder session.
func (g *Generator) Page(ctx context.Context, b *builder.Builder, src openapi.Source, operationID string) (builder.Node, error) {
	operations, err := g.Operations(ctx, src)
	if err != nil {
		return nil, err
	}
	op, ok := operations[operationID]
	if !ok {
		return nil, fmt.Errorf("pagegen: operation %q not found (have %s)", operationID, strings.Join(operationIDs(operations), ", "))
	}
	return BuildPage(b, op)
}

// BuildPage builds the input page for a single operation: a part container
// holding a heading, one control per request field in name order, and a
// submit button.
func BuildPage(b *builder.Builder, op openapi.Operation) (builder.Node, error) {
	if b == nil {
		return nil, fmt.Errorf("pagegen: builder session is required")
	}

	root := builder.Part(b, "page-"+op.ID)
	root.Enter(b)

	heading := op.Summary
	if heading == "" {
		heading = op.ID
	}
	builder.RawMarkup(b, "h1", heading)
	if op.Description != "" {
		builder.Text(b, op.Description, builder.P("mode", "markdown"))
	}

	request := op.Request
	for _, name := range sortedFieldNames(request.Properties) {
		buildField(b, name, request.Properties[name], request.IsRequired(name))
	}

	builder.Button(b, submitLabel(op.Method), builder.P("id", op.ID+"-submit"))

	if err := root.Exit(b); err != nil {
		return nil, err
	}
	return root, nil
}

// buildField maps one schema property onto the closest control kind.
func buildField(b *builder.Builder, name string, schema openapi.Schema, required bool) {
	props := []builder.Property{builder.P("label", fieldLabel(name)), builder.P("id", name)}
	if required {
		props = append(props, builder.P("required", true))
	}
	if schema.Description != "" {
		props = append(props, builder.P("hover_text", schema.Description))
	}

	switch {
	case len(schema.Enum) > 0:
		values := make([]string, 0, len(schema.Enum))
		for _, value := range schema.Enum {
			values = append(values, fmt.Sprint(value))
		}
		props = append(props, builder.P("lov", values))
		builder.Selector(b, schema.Default, props...)
	case schema.Type == "boolean":
		builder.Toggle(b, schema.Default, props...)
	case schema.Type == "integer" || schema.Type == "number":
		builder.Number(b, schema.Default, props...)
	case schema.Format == "date" || schema.Format == "date-time":
		builder.Date(b, schema.Default, props...)
	default:
		builder.Input(b, schema.Default, props...)
	}
}

// fieldLabel derives a human label from a snake_case or camelCase field
// name.
func fieldLabel(name string) string {
	var words []string
	word := strings.Builder{}
	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.':
			flush()
		case r >= 'A' && r <= 'Z':
			flush()
			word.WriteRune(r + ('a' - 'A'))
		default:
			word.WriteRune(r)
		}
	}
	flush()
	if len(words) == 0 {
		return name
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ")
}

func submitLabel(method string) string {
	switch strings.ToUpper(method) {
	case "DELETE":
		return "Delete"
	case "PUT", "PATCH":
		return "Update"
	default:
		return "Submit"
	}
}

func sortedFieldNames(properties map[string]openapi.Schema) []string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func operationIDs(operations map[string]openapi.Operation) []string {
	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
