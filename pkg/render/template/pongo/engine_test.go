package pongo_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-uibuilder/pkg/render/template/pongo"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"greet.tmpl": {Data: []byte("Hello {{ name }}!")},
	}
}

func TestEngine_RequiresSource(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("engine without a template source should fail")
	}
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(testFS()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := engine.RenderTemplate("greet", map[string]any{"name": "world"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello world!" {
		t.Fatalf("render mismatch: %q", out)
	}

	// Extension may be given explicitly too.
	out, err = engine.RenderTemplate("greet.tmpl", map[string]any{"name": "again"})
	if err != nil {
		t.Fatalf("render with extension: %v", err)
	}
	if out != "Hello again!" {
		t.Fatalf("render mismatch: %q", out)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(testFS()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := engine.RenderString("{{ a }} + {{ b }}", map[string]any{"a": 1, "b": 2})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "1 + 2" {
		t.Fatalf("render mismatch: %q", out)
	}
}

func TestEngine_Globals(t *testing.T) {
	engine, err := pongo.New(
		pongo.WithFS(testFS()),
		pongo.WithGlobals(map[string]any{"name": "global"}),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := engine.RenderTemplate("greet", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello global!" {
		t.Fatalf("globals not applied: %q", out)
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(testFS()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	_, err = engine.RenderTemplate("missing", nil)
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Fatalf("missing template should fail, got %v", err)
	}
}
