// Package pagespec loads declarative page documents from JSON or YAML files
// and builds element trees from them, so pages can live next to the code as
// data instead of construction calls.
package pagespec

// Document is the top-level shape of a page file: one or more named pages.
type Document struct {
	Pages map[string]Page `json:"pages" yaml:"pages"`
}

// Page holds a single page tree rooted at a container node.
type Page struct {
	// Title is the document title when the page renders as a full HTML
	// document.
	Title string `json:"title" yaml:"title"`
	// Root is the page's root node.
	Root Node `json:"root" yaml:"root"`
}

// Node is one element declaration in a page document.
type Node struct {
	// Kind names a catalog element ("part", "text", ...) or "raw" for a
	// literal markup node.
	Kind string `json:"kind" yaml:"kind"`
	// Value seeds the element's default property.
	Value any `json:"value" yaml:"value"`
	// Bind names a Builder binding whose value seeds the default property
	// through the binding codec, producing a "{name}" expression.
	Bind string `json:"bind" yaml:"bind"`
	// Props holds literal keyword properties.
	Props map[string]any `json:"props" yaml:"props"`
	// Binds maps property keys to binding names, like Bind but per key.
	Binds map[string]string `json:"binds" yaml:"binds"`
	// Tag is the literal tag for raw nodes. A pointer so an explicitly
	// empty tag (a text node) is distinguishable from an omitted one.
	Tag *string `json:"tag" yaml:"tag"`
	// Content is the literal text content for raw nodes.
	Content string `json:"content" yaml:"content"`
	// Children are nested declarations; only block kinds and raw tag nodes
	// accept them.
	Children []Node `json:"children" yaml:"children"`
}
