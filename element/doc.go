// Package element builds document nodes from descriptors.
//
// A descriptor pairs a tag (a concrete element name or a component
// reference) with a property bag and children. Building an element
// coalesces class and style maps into attributes, flattens children
// depth-first, and substitutes inline J{...} expressions in text.
// Elements carrying an id are captured in the template registry so
// they can later be rebuilt in place.
package element
