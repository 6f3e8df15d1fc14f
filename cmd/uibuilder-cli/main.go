// Command uibuilder-cli renders pages to HTML from the command line. It can
// build a page from a page-document file or generate one from an OpenAPI
// operation, optionally prompting for binding values.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-uibuilder/pkg/builder"
	"github.com/goliatone/go-uibuilder/pkg/openapi"
	"github.com/goliatone/go-uibuilder/pkg/pagegen"
	"github.com/goliatone/go-uibuilder/pkg/pagespec"
	"github.com/goliatone/go-uibuilder/pkg/renderers/vanilla"
)

func main() {
	pageFile := flag.String("page", "", "page document file (JSON or YAML)")
	pageName := flag.String("name", "", "page name inside the document (defaults to the only page)")
	source := flag.String("source", "", "OpenAPI document path or URL")
	operation := flag.String("operation", "", "operation ID to generate a page for")
	title := flag.String("title", "", "document title")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for binding values before rendering")
	flag.Parse()

	ctx := context.Background()
	b := builder.New()

	var (
		root builder.Node
		err  error
	)
	switch {
	case *pageFile != "":
		root, err = buildFromDocument(b, *pageFile, *pageName, *interactive)
	case *source != "" && *operation != "":
		root, err = buildFromOperation(ctx, b, *source, *operation)
	default:
		log.Fatal("either -page or -source with -operation is required")
	}
	if err != nil {
		log.Fatalf("Failed to build page: %v", err)
	}

	factory, err := vanilla.New(vanilla.WithState(bindingState(b)))
	if err != nil {
		log.Fatalf("Failed to configure renderer: %v", err)
	}

	html, err := factory.RenderDocument(ctx, root, *title)
	if err != nil {
		log.Fatalf("Failed to render page: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(html), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Page written to %s\n", *output)
	} else {
		fmt.Println(html)
	}
}

func buildFromDocument(b *builder.Builder, path, name string, interactive bool) (builder.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	store, err := pagespec.LoadBytes(data)
	if err != nil {
		return nil, err
	}

	if name == "" {
		names := store.Pages()
		if len(names) != 1 {
			return nil, fmt.Errorf("document defines %d pages, pick one with -name (have %s)", len(names), strings.Join(names, ", "))
		}
		name = names[0]
	}
	page, ok := store.Page(name)
	if !ok {
		return nil, fmt.Errorf("page %q not found (have %s)", name, strings.Join(store.Pages(), ", "))
	}

	if interactive {
		if err := promptBindings(b, page.Root); err != nil {
			return nil, err
		}
	}

	return pagespec.Build(b, page)
}

func buildFromOperation(ctx context.Context, b *builder.Builder, source, operationID string) (builder.Node, error) {
	src := parseSource(source)
	if src == nil {
		return nil, fmt.Errorf("invalid source %q", source)
	}

	gen := pagegen.New(pagegen.WithLoaderOptions(openapi.WithHTTPFallback(0)))
	return gen.Page(ctx, b, src, operationID)
}

// promptBindings walks the page declaration, collects every referenced
// binding name, and asks for its value.
func promptBindings(b *builder.Builder, root pagespec.Node) error {
	names := collectBindings(root, nil)
	for _, name := range names {
		if _, already := b.Binding(name); already {
			continue
		}
		value := ""
		prompt := &survey.Input{Message: fmt.Sprintf("Value for binding %q:", name)}
		if err := survey.AskOne(prompt, &value); err != nil {
			return err
		}
		b.Let(name, value)
	}
	return nil
}

func collectBindings(node pagespec.Node, names []string) []string {
	add := func(name string) {
		for _, existing := range names {
			if existing == name {
				return
			}
		}
		names = append(names, name)
	}
	if node.Bind != "" {
		add(node.Bind)
	}
	for _, name := range node.Binds {
		add(name)
	}
	for _, child := range node.Children {
		names = collectBindings(child, names)
	}
	return names
}

// bindingState exposes the session's bindings as static render state so the
// output carries resolved values instead of binding expressions.
func bindingState(b *builder.Builder) map[string]any {
	state := make(map[string]any)
	for _, name := range b.Bindings() {
		if value, ok := b.Binding(name); ok {
			state[name] = value
		}
	}
	return state
}

func parseSource(raw string) openapi.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return openapi.SourceFromURL(path)
	}
	return openapi.SourceFromFile(path)
}
