package builder

// KindSpec describes one entry of the element catalog so dynamic
// front-ends (page documents, schema-driven generation) can instantiate
// elements by kind name.
type KindSpec struct {
	// Kind is the element's kind name.
	Kind string
	// DefaultProperty is the property a positional construction value
	// seeds; empty when the kind takes none.
	DefaultProperty string
	// Block reports whether the kind is a container usable as a nesting
	// scope.
	Block bool
}

var catalog = []KindSpec{
	{Kind: "part", DefaultProperty: "class_name", Block: true},
	{Kind: "layout", DefaultProperty: "columns", Block: true},
	{Kind: "expandable", DefaultProperty: "title", Block: true},
	{Kind: "text", DefaultProperty: "value"},
	{Kind: "button", DefaultProperty: "label"},
	{Kind: "input", DefaultProperty: "value"},
	{Kind: "number", DefaultProperty: "value"},
	{Kind: "slider", DefaultProperty: "value"},
	{Kind: "toggle", DefaultProperty: "value"},
	{Kind: "selector", DefaultProperty: "value"},
	{Kind: "date", DefaultProperty: "date"},
	{Kind: "image", DefaultProperty: "content"},
	{Kind: "table", DefaultProperty: "data"},
	{Kind: "chart", DefaultProperty: "data"},
}

// Catalog returns the built-in element catalog.
func Catalog() []KindSpec {
	return append([]KindSpec(nil), catalog...)
}

// LookupKind finds a catalog entry by kind name.
func LookupKind(kind string) (KindSpec, bool) {
	for _, spec := range catalog {
		if spec.Kind == kind {
			return spec, true
		}
	}
	return KindSpec{}, false
}

// Part builds a generic block container.
func Part(b *Builder, className any, props ...Property) *Container {
	return NewContainer(b, "part", "class_name", className, props...)
}

// Layout builds a column-based block container.
func Layout(b *Builder, columns any, props ...Property) *Container {
	return NewContainer(b, "layout", "columns", columns, props...)
}

// Expandable builds a collapsible block container.
func Expandable(b *Builder, title any, props ...Property) *Container {
	return NewContainer(b, "expandable", "title", title, props...)
}

// Text builds a read-only text control.
func Text(b *Builder, value any, props ...Property) *Leaf {
	return NewLeaf(b, "text", "value", value, props...)
}

// Button builds an action control.
func Button(b *Builder, label any, props ...Property) *Leaf {
	return NewLeaf(b, "button", "label", label, props...)
}

// Input builds a free-text entry control.
func Input(b *Builder, value any, props ...Property) *Leaf {
	return NewLeaf(b, "input", "value", value, props...)
}

// Number builds a numeric entry control.
func Number(b *Builder, value any, props ...Property) *Leaf {
	return NewLeaf(b, "number", "value", value, props...)
}

// Slider builds a bounded numeric control.
func Slider(b *Builder, value any, props ...Property) *Leaf {
	return NewLeaf(b, "slider", "value", value, props...)
}

// Toggle builds a boolean control.
func Toggle(b *Builder, value any, props ...Property) *Leaf {
	return NewLeaf(b, "toggle", "value", value, props...)
}

// Selector builds a single-choice control; the list of values comes from
// the "lov" property.
func Selector(b *Builder, value any, props ...Property) *Leaf {
	return NewLeaf(b, "selector", "value", value, props...)
}

// Date builds a date entry control.
func Date(b *Builder, date any, props ...Property) *Leaf {
	return NewLeaf(b, "date", "date", date, props...)
}

// Image builds an image control.
func Image(b *Builder, content any, props ...Property) *Leaf {
	return NewLeaf(b, "image", "content", content, props...)
}

// Table builds a tabular data control.
func Table(b *Builder, data any, props ...Property) *Leaf {
	return NewLeaf(b, "table", "data", data, props...)
}

// Chart builds a chart control.
func Chart(b *Builder, data any, props ...Property) *Leaf {
	return NewLeaf(b, "chart", "data", data, props...)
}
