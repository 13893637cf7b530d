package element

import (
	"github.com/jaykit/jay/dom"
	"github.com/jaykit/jay/registry"
)

// Component is a renderable unit. Render returns one or more nodes;
// the builder delegates to it without further processing.
type Component interface {
	Render() ([]*dom.Node, error)
}

// Factory constructs a component from its properties. It is the
// single-argument constructor side of the component contract.
type Factory func(Props) Component

// RenderFunc adapts a plain function to the Component interface.
type RenderFunc func() ([]*dom.Node, error)

// Render implements Component.
func (f RenderFunc) Render() ([]*dom.Node, error) { return f() }

// Components is a registry of named component factories, used by
// configuration loaders and hosts to refer to components by name.
// Unlike the template registry, later registrations replace earlier
// ones.
type Components struct {
	store registry.Store[Factory]
}

// NewComponents creates an empty component registry.
func NewComponents() *Components {
	return &Components{}
}

// Register adds or replaces a named factory.
func (c *Components) Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	c.store.Put(name, f)
}

// Lookup finds a factory by name.
func (c *Components) Lookup(name string) (Factory, bool) {
	return c.store.Get(name)
}

// Names lists registered component names.
func (c *Components) Names() []string {
	return c.store.Keys()
}
