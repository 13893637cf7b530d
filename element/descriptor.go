package element

import "fmt"

// Props is the property bag of a descriptor. Two keys have special
// semantics when their value is a map: "class" (class name to truthy
// flag) and "style" (style property to value). An "id" value causes
// the descriptor to be captured in the template registry.
type Props map[string]any

// Tag identifies what a descriptor builds: either a concrete element
// tag name or a component reference. Exactly one side is set.
type Tag struct {
	name    string
	factory Factory
}

// ElementTag returns a Tag for a concrete element name.
func ElementTag(name string) Tag {
	return Tag{name: name}
}

// ComponentTag returns a Tag referencing a component factory.
func ComponentTag(f Factory) Tag {
	return Tag{factory: f}
}

// Element returns the tag name when this is a concrete element tag.
func (t Tag) Element() (string, bool) {
	return t.name, t.factory == nil
}

// Component returns the factory when this is a component reference.
func (t Tag) Component() (Factory, bool) {
	return t.factory, t.factory != nil
}

// IsZero reports whether the tag is unset.
func (t Tag) IsZero() bool {
	return t.name == "" && t.factory == nil
}

func (t Tag) String() string {
	if t.factory != nil {
		return "<component>"
	}
	return t.name
}

// AsTag converts a loose value into a Tag: a Tag passes through,
// a string becomes an element tag, a Factory (or compatible func)
// becomes a component reference.
func AsTag(v any) (Tag, error) {
	switch t := v.(type) {
	case Tag:
		return t, nil
	case string:
		return ElementTag(t), nil
	case Factory:
		return ComponentTag(t), nil
	case func(Props) Component:
		return ComponentTag(t), nil
	default:
		return Tag{}, fmt.Errorf("element: %T is neither a tag name nor a component", v)
	}
}

// Descriptor is the unit the builder consumes: what to build, its
// properties, and its children. Children are recursively one of:
// string or number (text, may embed J{...} expressions), *dom.Node,
// Descriptor, a nested slice of children, or nil (skipped). Anything
// else is stringified into text.
type Descriptor struct {
	Tag      Tag
	Props    Props
	Children []any
}
