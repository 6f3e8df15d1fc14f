package vanilla_test

import (
	"testing"

	"github.com/goliatone/go-uibuilder/pkg/propcodec"
	"github.com/goliatone/go-uibuilder/pkg/renderers/vanilla"
)

func TestWidgetRegistry_PriorityWins(t *testing.T) {
	registry := vanilla.NewRegistry()

	// password (90) outranks select (80) when both match.
	props := propcodec.NewProperties()
	props.Set("password", true)
	props.Set("lov", "a;b")

	variant, ok := registry.Resolve("input", props)
	if !ok || variant != "password" {
		t.Fatalf("expected password variant, got %q (ok=%v)", variant, ok)
	}
}

func TestWidgetRegistry_NoMatch(t *testing.T) {
	registry := vanilla.NewRegistry()

	if variant, ok := registry.Resolve("text", propcodec.NewProperties()); ok {
		t.Fatalf("no matcher should claim a plain text element, got %q", variant)
	}
}

func TestWidgetRegistry_CustomMatcher(t *testing.T) {
	registry := vanilla.NewRegistry()
	registry.Register("chart", 100, func(kind string, props *propcodec.Properties) bool {
		_, ok := props.Get("data")
		return kind == "text" && ok
	})

	props := propcodec.NewProperties()
	props.Set("data", "series")
	variant, ok := registry.Resolve("text", props)
	if !ok || variant != "chart" {
		t.Fatalf("custom matcher should win, got %q (ok=%v)", variant, ok)
	}
}

func TestWidgetRegistry_PasswordNeedsTruthyFlag(t *testing.T) {
	registry := vanilla.NewRegistry()

	props := propcodec.NewProperties()
	props.Set("password", "false")
	if variant, ok := registry.Resolve("input", props); ok {
		t.Fatalf("false flag should not match, got %q", variant)
	}

	props.Set("password", "TRUE")
	if variant, ok := registry.Resolve("input", props); !ok || variant != "password" {
		t.Fatalf("string true should match, got %q (ok=%v)", variant, ok)
	}
}
