// Package binding evaluates binding-expression property values against a
// state map, turning "{identifier}" placeholders into concrete values for
// static rendering. Payloads are full expressions, so derived bindings such
// as "{count + 1}" resolve too.
package binding

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/goliatone/go-uibuilder/pkg/propcodec"
)

// IsExpression reports whether s has the binding-expression shape
// "{payload}".
func IsExpression(s string) bool {
	_, ok := Payload(s)
	return ok
}

// Payload extracts the expression text inside the braces.
func Payload(s string) (string, bool) {
	if len(s) < 3 || !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return "", false
	}
	payload := strings.TrimSpace(s[1 : len(s)-1])
	if payload == "" {
		return "", false
	}
	return payload, true
}

// Resolve evaluates a binding expression against state and returns the
// result. Non-expression input is an error; callers should check
// IsExpression first when passing through arbitrary property values.
func Resolve(expression string, state map[string]any) (any, error) {
	payload, ok := Payload(expression)
	if !ok {
		return nil, fmt.Errorf("binding: %q is not a binding expression", expression)
	}

	program, err := compile(payload, state)
	if err != nil {
		return nil, err
	}

	out, err := vm.Run(program, state)
	if err != nil {
		return nil, fmt.Errorf("binding: evaluate %q: %w", payload, err)
	}
	return out, nil
}

// ResolveProperties returns a deep copy of props with every binding
// expression replaced by its evaluated result. Non-binding values pass
// through untouched.
func ResolveProperties(props *propcodec.Properties, state map[string]any) (*propcodec.Properties, error) {
	resolved := props.Clone()
	if resolved == nil {
		return nil, nil
	}
	for _, entry := range resolved.Entries() {
		text, ok := entry.Value.(string)
		if !ok || !IsExpression(text) {
			continue
		}
		value, err := Resolve(text, state)
		if err != nil {
			return nil, err
		}
		resolved.Set(entry.Key, value)
	}
	return resolved, nil
}

func compile(payload string, state map[string]any) (*vm.Program, error) {
	program, err := expr.Compile(payload, expr.Env(state), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("binding: compile %q: %w", payload, err)
	}
	return program, nil
}
