package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uibuilder/pkg/propcodec"
	"github.com/goliatone/go-uibuilder/pkg/render"
)

func noopFactory() render.Factory {
	return render.FactoryFunc(func(ctx context.Context, kind string, props *propcodec.Properties) (render.Fragment, error) {
		return render.Fragment{Opening: "<div>", Tag: "div"}, nil
	})
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register("stub", noopFactory()); err != nil {
		t.Fatalf("register: %v", err)
	}

	factory, err := registry.Get("stub")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if factory == nil {
		t.Fatalf("expected factory instance")
	}

	if !registry.Has("stub") {
		t.Fatalf("Has should report registered factory")
	}
	if registry.Has("missing") {
		t.Fatalf("Has should not report missing factory")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register("stub", noopFactory()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register("stub", noopFactory()); err == nil {
		t.Fatalf("duplicate registration should fail")
	}
}

func TestRegistry_RejectsInvalidInput(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register("", noopFactory()); err == nil {
		t.Fatalf("empty name should fail")
	}
	if err := registry.Register("stub", nil); err == nil {
		t.Fatalf("nil factory should fail")
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("missing factory should fail")
	}
}

func TestRegistry_ListIsSorted(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister("zeta", noopFactory())
	registry.MustRegister("alpha", noopFactory())

	if diff := cmp.Diff([]string{"alpha", "zeta"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}
