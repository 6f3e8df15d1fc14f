package uibuilder_test

import (
	"context"
	"strings"
	"testing"

	uibuilder "github.com/goliatone/go-uibuilder"
	"github.com/goliatone/go-uibuilder/pkg/builder"
)

func samplePage(b *uibuilder.Builder) uibuilder.Node {
	page := builder.Part(b, "hero")
	page.Nest(b, func() {
		builder.Text(b, "greeting")
	})
	return page
}

func TestRenderHTML(t *testing.T) {
	b := uibuilder.New()
	page := samplePage(b)

	out, err := uibuilder.RenderHTML(context.Background(), page)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `data-kind="part"`) {
		t.Fatalf("body missing: %q", out)
	}
	if !strings.Contains(out, "greeting") {
		t.Fatalf("child missing: %q", out)
	}
}

func TestDefaultRegistryHasVanilla(t *testing.T) {
	if !uibuilder.DefaultRegistry.Has("vanilla") {
		t.Fatalf("vanilla factory should self-register")
	}
}

func TestRender_UnknownFactory(t *testing.T) {
	b := uibuilder.New()
	page := samplePage(b)

	if _, err := uibuilder.Render(context.Background(), page, "missing"); err == nil {
		t.Fatalf("unknown factory should fail")
	}
}

func TestRenderDocument(t *testing.T) {
	b := uibuilder.New()
	page := samplePage(b)

	out, err := uibuilder.RenderDocument(context.Background(), page, "Facade")
	if err != nil {
		t.Fatalf("render document: %v", err)
	}
	if !strings.Contains(out, "<title>Facade</title>") {
		t.Fatalf("title missing: %q", out)
	}
}

func TestBindReexport(t *testing.T) {
	state := &struct{ n int }{n: 1}
	b := uibuilder.New().Let("count", state)

	text := builder.Text(b, uibuilder.Bind("count", state))
	if value, _ := text.Properties(false).Get("value"); value != "{count}" {
		t.Fatalf("facade Bind should produce an expression, got %v", value)
	}
}
