package propcodec_test

import (
	"testing"

	"github.com/goliatone/go-uibuilder/pkg/propcodec"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"value", "value"},
		{"class_name", "class_name"},
		{"color__0", "color[0]"},
		{"color__dark", "color[dark]"},
		{"a__b__c", "a[b__c]"},
		{"__0", "[0]"},
	}
	for _, tc := range cases {
		if got := propcodec.NormalizeKey(tc.in); got != tc.want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

type namedStub struct {
	name string
}

func (n *namedStub) Name() string { return n.name }

func TestNormalizeValue_NamedIdentityWins(t *testing.T) {
	value := &namedStub{name: "on_click"}
	tokens := map[string]string{"action": "handler"}
	scope := map[string]any{"handler": value}

	got := propcodec.NormalizeValue("action", value, tokens, scope)
	if got != "on_click" {
		t.Fatalf("named value should normalize to its identity, got %v", got)
	}
}

func TestNormalizeValue_BindingExpression(t *testing.T) {
	count := &struct{ n int }{n: 3}
	tokens := map[string]string{"value": "count"}
	scope := map[string]any{"count": count}

	got := propcodec.NormalizeValue("value", count, tokens, scope)
	if got != "{count}" {
		t.Fatalf("expected binding expression, got %v", got)
	}
}

func TestNormalizeValue_BindingRequiresIdentity(t *testing.T) {
	bound := &struct{ n int }{n: 3}
	other := &struct{ n int }{n: 3}
	tokens := map[string]string{"value": "count"}
	scope := map[string]any{"count": bound}

	got := propcodec.NormalizeValue("value", other, tokens, scope)
	if got == "{count}" {
		t.Fatalf("distinct object must not bind, got %v", got)
	}
}

func TestNormalizeValue_BindingRequiresToken(t *testing.T) {
	count := &struct{ n int }{n: 3}
	scope := map[string]any{"count": count}

	got := propcodec.NormalizeValue("value", count, nil, scope)
	if got == "{count}" {
		t.Fatalf("value without a source token must not bind, got %v", got)
	}
}

func TestNormalizeValue_ValueKindBinding(t *testing.T) {
	tokens := map[string]string{"value": "count"}
	scope := map[string]any{"count": 42}

	if got := propcodec.NormalizeValue("value", 42, tokens, scope); got != "{count}" {
		t.Fatalf("equal comparable value with matching token should bind, got %v", got)
	}
	if got := propcodec.NormalizeValue("value", 43, tokens, scope); got != "43" {
		t.Fatalf("mismatched value should stringify, got %v", got)
	}
}

func TestNormalizeValue_Passthrough(t *testing.T) {
	slice := []string{"a", "b"}
	got := propcodec.NormalizeValue("lov", slice, nil, nil)
	if _, ok := got.([]string); !ok {
		t.Fatalf("slices should pass through, got %T", got)
	}

	m := map[string]any{"k": 1}
	got = propcodec.NormalizeValue("data", m, nil, nil)
	if _, ok := got.(map[string]any); !ok {
		t.Fatalf("maps should pass through, got %T", got)
	}

	if got := propcodec.NormalizeValue("value", "hello", nil, nil); got != "hello" {
		t.Fatalf("strings should pass through, got %v", got)
	}
}

func TestNormalizeValue_Stringify(t *testing.T) {
	if got := propcodec.NormalizeValue("columns", 2, nil, nil); got != "2" {
		t.Fatalf("ints should stringify, got %v", got)
	}
	if got := propcodec.NormalizeValue("active", true, nil, nil); got != "true" {
		t.Fatalf("bools should stringify, got %v", got)
	}
	if got := propcodec.NormalizeValue("value", nil, nil, nil); got != "" {
		t.Fatalf("nil should normalize to empty string, got %v", got)
	}
}

func TestDetach(t *testing.T) {
	inner := &struct{ n int }{n: 1}
	value, token, ok := propcodec.Detach(propcodec.Bind("count", inner))
	if !ok || token != "count" || value != inner {
		t.Fatalf("Detach mismatch: value=%v token=%q ok=%v", value, token, ok)
	}

	value, token, ok = propcodec.Detach("plain")
	if ok || token != "" || value != "plain" {
		t.Fatalf("plain value should pass through: value=%v token=%q ok=%v", value, token, ok)
	}
}
