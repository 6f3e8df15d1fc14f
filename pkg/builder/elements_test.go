package builder_test

import (
	"testing"

	"github.com/goliatone/go-uibuilder/pkg/builder"
)

func TestLookupKind(t *testing.T) {
	spec, ok := builder.LookupKind("layout")
	if !ok {
		t.Fatalf("layout missing from catalog")
	}
	if !spec.Block || spec.DefaultProperty != "columns" {
		t.Fatalf("layout spec mismatch: %+v", spec)
	}

	if _, ok := builder.LookupKind("nope"); ok {
		t.Fatalf("unknown kind should not resolve")
	}
}

func TestCatalog_ConstructorsMatchSpecs(t *testing.T) {
	b := builder.New()

	date := builder.Date(b, "2024-01-01")
	if value, _ := date.Properties(false).Get("date"); value != "2024-01-01" {
		t.Fatalf("date default property mismatch: %v", value)
	}

	image := builder.Image(b, "/logo.png")
	if value, _ := image.Properties(false).Get("content"); value != "/logo.png" {
		t.Fatalf("image default property mismatch: %v", value)
	}

	layout := builder.Layout(b, "1 2 1")
	if layout.Kind() != "layout" {
		t.Fatalf("layout kind mismatch: %s", layout.Kind())
	}
}
