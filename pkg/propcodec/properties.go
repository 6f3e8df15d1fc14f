package propcodec

import "github.com/mohae/deepcopy"

// Entry is a single key/value pair held by a Properties map.
type Entry struct {
	Key   string
	Value any
}

// Properties is an insertion-ordered property map. Overwriting an existing
// key keeps its original position; deleting and re-adding moves it to the
// end. The zero value is not usable; call NewProperties.
type Properties struct {
	keys   []string
	values map[string]any
}

// NewProperties creates an empty property map.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]any)}
}

// Set stores value under key, preserving the key's insertion position when
// it already exists.
func (p *Properties) Set(key string, value any) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p *Properties) Get(key string) (any, bool) {
	value, ok := p.values[key]
	return value, ok
}

// Delete removes key and its value. Missing keys are a no-op.
func (p *Properties) Delete(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for idx, existing := range p.keys {
		if existing == key {
			p.keys = append(p.keys[:idx], p.keys[idx+1:]...)
			break
		}
	}
}

// Len reports the number of stored properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the property keys in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Entries returns the key/value pairs in insertion order.
func (p *Properties) Entries() []Entry {
	if p == nil {
		return nil
	}
	out := make([]Entry, 0, len(p.keys))
	for _, key := range p.keys {
		out = append(out, Entry{Key: key, Value: p.values[key]})
	}
	return out
}

// Map returns a plain map copy of the properties. Ordering is lost; use
// Entries when order matters.
func (p *Properties) Map() map[string]any {
	if p == nil {
		return nil
	}
	out := make(map[string]any, len(p.values))
	for key, value := range p.values {
		out[key] = value
	}
	return out
}

// Clone returns a deep, independent copy so callers cannot mutate stored
// state through container values.
func (p *Properties) Clone() *Properties {
	if p == nil {
		return nil
	}
	out := &Properties{
		keys:   append([]string(nil), p.keys...),
		values: make(map[string]any, len(p.values)),
	}
	for key, value := range p.values {
		out.values[key] = deepcopy.Copy(value)
	}
	return out
}
