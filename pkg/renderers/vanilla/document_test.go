package vanilla_test

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uibuilder/pkg/builder"
	"github.com/goliatone/go-uibuilder/pkg/renderers/vanilla"
)

func TestRenderDocument(t *testing.T) {
	factory := newFactory(t)
	b := builder.New()
	root := builder.Part(b, "page")
	root.Nest(b, func() {
		builder.Text(b, "hello")
	})

	out, err := factory.RenderDocument(context.Background(), root, "Home")
	if err != nil {
		t.Fatalf("render document: %v", err)
	}

	if !strings.Contains(out, "<!DOCTYPE html>") {
		t.Fatalf("missing doctype: %q", out)
	}
	if !strings.Contains(out, "<title>Home</title>") {
		t.Fatalf("missing title: %q", out)
	}
	if !strings.Contains(out, `data-kind="part"`) {
		t.Fatalf("body not rendered: %q", out)
	}
	if strings.Contains(out, "<style>") {
		t.Fatalf("no theme configured, no style block expected: %q", out)
	}
}

func TestRenderDocument_DefaultTitle(t *testing.T) {
	factory := newFactory(t)
	b := builder.New()
	root := builder.Part(b, "page")

	out, err := factory.RenderDocument(context.Background(), root, "  ")
	if err != nil {
		t.Fatalf("render document: %v", err)
	}
	if !strings.Contains(out, "<title>Page</title>") {
		t.Fatalf("blank title should fall back: %q", out)
	}
}

func TestRenderDocument_ThemeAssetsAndVars(t *testing.T) {
	factory := newFactory(t, vanilla.WithTheme(&theme.RendererConfig{
		CSSVars: map[string]string{"accent": "#f00", "--spacing": "4px"},
		AssetURL: func(name string) string {
			return "/assets/" + name
		},
	}))

	b := builder.New()
	root := builder.Part(b, "page")

	out, err := factory.RenderDocument(context.Background(), root, "Themed")
	if err != nil {
		t.Fatalf("render document: %v", err)
	}

	if !strings.Contains(out, `href="/assets/page.stylesheet"`) {
		t.Fatalf("stylesheet link missing: %q", out)
	}
	// Keys are sorted and prefixed consistently.
	if !strings.Contains(out, "<style>:root{--spacing:4px;--accent:#f00;}</style>") {
		t.Fatalf("css vars style mismatch: %q", out)
	}
}

func TestRenderDocument_NilRoot(t *testing.T) {
	factory := newFactory(t)
	if _, err := factory.RenderDocument(context.Background(), nil, "x"); err == nil {
		t.Fatalf("nil root should fail")
	}
}
