package propcodec_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uibuilder/pkg/propcodec"
)

func TestProperties_InsertionOrder(t *testing.T) {
	props := propcodec.NewProperties()
	props.Set("b", 1)
	props.Set("a", 2)
	props.Set("c", 3)

	if diff := cmp.Diff([]string{"b", "a", "c"}, props.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	// Overwriting keeps the original position.
	props.Set("a", 20)
	if diff := cmp.Diff([]string{"b", "a", "c"}, props.Keys()); diff != "" {
		t.Fatalf("keys after overwrite (-want +got):\n%s", diff)
	}
	if value, _ := props.Get("a"); value != 20 {
		t.Fatalf("overwrite lost: %v", value)
	}

	// Delete and re-add moves the key to the end.
	props.Delete("b")
	props.Set("b", 10)
	if diff := cmp.Diff([]string{"a", "c", "b"}, props.Keys()); diff != "" {
		t.Fatalf("keys after re-add (-want +got):\n%s", diff)
	}
}

func TestProperties_Entries(t *testing.T) {
	props := propcodec.NewProperties()
	props.Set("x", "1")
	props.Set("y", "2")

	want := []propcodec.Entry{{Key: "x", Value: "1"}, {Key: "y", Value: "2"}}
	if diff := cmp.Diff(want, props.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestProperties_CloneIsDeep(t *testing.T) {
	props := propcodec.NewProperties()
	props.Set("data", map[string]any{"rows": []any{"a"}})

	clone := props.Clone()
	original, _ := props.Get("data")
	copied, _ := clone.Get("data")

	copied.(map[string]any)["rows"] = []any{"mutated"}
	if diff := cmp.Diff([]any{"a"}, original.(map[string]any)["rows"]); diff != "" {
		t.Fatalf("clone mutation leaked into original (-want +got):\n%s", diff)
	}
}

func TestProperties_NilSafety(t *testing.T) {
	var props *propcodec.Properties
	if props.Len() != 0 {
		t.Fatalf("nil Len should be 0")
	}
	if props.Keys() != nil {
		t.Fatalf("nil Keys should be nil")
	}
	if props.Clone() != nil {
		t.Fatalf("nil Clone should be nil")
	}
}
