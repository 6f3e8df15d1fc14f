// Package template declares the template-engine contract the markup
// factories depend on, keeping the concrete engine swappable.
package template

// Renderer renders named templates or inline template content against a
// data context.
type Renderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
	RenderString(content string, data map[string]any) (string, error)
}
