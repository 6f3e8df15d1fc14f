// Package propcodec normalizes the property keys and values declared when
// building UI elements. Keys written in the double-underscore indexed form
// are rewritten to their bracket-indexed markup shape, and values are
// reduced to the scalar, string, or binding-expression form the markup
// factories consume.
package propcodec

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// Named is the capability interface for identity-bearing values such as
// component references, enum members, or registered callbacks. Values
// implementing it always normalize to their identity name, even when a
// matching scope binding exists.
type Named interface {
	Name() string
}

// Binding tags a property value as a reference to a scope variable. The
// caller states the variable name explicitly instead of the codec inferring
// it; normalization still verifies the value against the scope before
// producing a binding expression.
type Binding struct {
	name  string
	value any
}

// Bind wraps value as a reference to the scope variable called name.
func Bind(name string, value any) Binding {
	return Binding{name: name, value: value}
}

// Detach splits a raw argument into its stored value and source token. The
// returned bool reports whether the argument was a Binding.
func Detach(value any) (any, string, bool) {
	if b, ok := value.(Binding); ok {
		return b.value, b.name, true
	}
	return value, "", false
}

// Trailing __token keys address indexed sub-properties, e.g. color__0.
var indexedKey = regexp.MustCompile(`^(.*?)__(\w+)$`)

// NormalizeKey rewrites an indexed property key name__index to name[index].
// All other keys pass through unchanged.
func NormalizeKey(key string) string {
	if match := indexedKey.FindStringSubmatch(key); match != nil {
		return match[1] + "[" + match[2] + "]"
	}
	return key
}

// NormalizeValue reduces a property value to its stored form. The rules
// apply in a fixed priority order:
//
//  1. values implementing Named become their identity name;
//  2. a value whose source token names a scope binding holding the very
//     same object becomes the binding expression "{name}";
//  3. strings, maps, slices, and arrays pass through unchanged;
//  4. everything else is stringified.
//
// Rule 1 deliberately wins over rule 2 so a named value passed through a
// binding is stringified by identity rather than turned into an expression.
func NormalizeValue(key string, value any, tokens map[string]string, scope map[string]any) any {
	if named, ok := value.(Named); ok {
		return named.Name()
	}
	if token, ok := tokens[key]; ok {
		name := strings.TrimSpace(token)
		if bound, exists := scope[name]; exists && identical(bound, value) {
			return "{" + name + "}"
		}
	}
	if value == nil {
		return ""
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.String, reflect.Map, reflect.Slice, reflect.Array:
		return value
	}
	return fmt.Sprint(value)
}

// identical reports reference identity, not value equality: two equal but
// distinct objects must not spuriously bind.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.Kind() != rb.Kind() {
		return false
	}
	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Len() == rb.Len() && ra.Pointer() == rb.Pointer()
	default:
		// Value kinds carry no identity beyond their value.
		return ra.Comparable() && rb.Comparable() && a == b
	}
}
