package jay

import "github.com/jaykit/jay/element"

// D builds a descriptor literal for use as a child of another
// descriptor. An unrecognized tag value yields a descriptor that
// fails at build time with the element package's error.
func D(tag any, props Props, children ...any) Descriptor {
	t, _ := element.AsTag(tag)
	return Descriptor{Tag: t, Props: props, Children: children}
}

// C wraps a render function as a component factory that ignores its
// props, for components that close over everything they need.
func C(render func() ([]*Node, error)) Factory {
	return func(Props) Component {
		return RenderFunc(render)
	}
}
