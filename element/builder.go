package element

import (
	"fmt"
	"sort"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jaykit/jay/dom"
	"github.com/jaykit/jay/expr"
)

// Builder turns descriptors into document nodes. Elements with an id
// are captured in the template registry before any processing so a
// later partial re-render replays the original descriptor verbatim.
type Builder struct {
	doc       *dom.Document
	eval      *expr.Evaluator
	templates *Templates
	sanitizer *bluemonday.Policy
}

// NewBuilder creates a builder bound to a document, an expression
// evaluator and a template registry.
func NewBuilder(doc *dom.Document, eval *expr.Evaluator, templates *Templates) *Builder {
	return &Builder{
		doc:       doc,
		eval:      eval,
		templates: templates,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Build constructs the node (or nodes) described by d.
//
// A component tag delegates entirely: the factory is invoked with the
// props and whatever Render returns is the result. An element tag
// creates a node, applies props and flattens children depth-first.
func (b *Builder) Build(d Descriptor) ([]*dom.Node, error) {
	if factory, ok := d.Tag.Component(); ok {
		comp := factory(d.Props)
		if comp == nil {
			return nil, fmt.Errorf("element: component factory returned nil")
		}
		return comp.Render()
	}

	name, _ := d.Tag.Element()
	if id, ok := d.Props["id"].(string); ok && id != "" {
		b.templates.Register(id, d)
	}

	el, err := b.doc.CreateElement(name)
	if err != nil {
		// Unknown tag names surface the primitive's own error.
		return nil, err
	}
	if err := b.applyProps(el, d.Props); err != nil {
		return nil, err
	}
	for _, child := range d.Children {
		if err := b.appendChild(el, child); err != nil {
			return nil, err
		}
	}
	return []*dom.Node{el}, nil
}

func (b *Builder) applyProps(el *dom.Node, props Props) error {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := props[k]
		switch {
		case k == "class" && isMap(v):
			for _, class := range sortedMapKeys(v) {
				if truthy(mapValue(v, class)) {
					el.AddClass(class)
				}
			}
		case k == "style" && isMap(v):
			for _, prop := range sortedMapKeys(v) {
				el.SetStyle(prop, fmt.Sprint(mapValue(v, prop)))
			}
		case k == "html":
			if err := b.appendMarkup(el, fmt.Sprint(v)); err != nil {
				return err
			}
		default:
			el.SetAttribute(k, fmt.Sprint(v))
		}
	}
	return nil
}

// appendMarkup sanitizes raw markup and appends the surviving nodes.
func (b *Builder) appendMarkup(el *dom.Node, markup string) error {
	nodes, err := dom.ParseFragment(b.sanitizer.Sanitize(markup))
	if err != nil {
		return err
	}
	for _, n := range nodes {
		el.AppendChild(n)
	}
	return nil
}

func (b *Builder) appendChild(parent *dom.Node, child any) error {
	switch v := child.(type) {
	case nil:
		return nil
	case string:
		parent.AppendChild(b.doc.CreateText(b.eval.Substitute(v)))
	case *dom.Node:
		parent.AppendChild(v)
	case Descriptor:
		nodes, err := b.Build(v)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			parent.AppendChild(n)
		}
	case []*dom.Node:
		for _, n := range v {
			parent.AppendChild(n)
		}
	case []any:
		for _, c := range v {
			if err := b.appendChild(parent, c); err != nil {
				return err
			}
		}
	default:
		// Numbers and anything else stringify into text.
		parent.AppendChild(b.doc.CreateText(b.eval.Substitute(fmt.Sprint(v))))
	}
	return nil
}

func isMap(v any) bool {
	switch v.(type) {
	case map[string]bool, map[string]any, map[string]string:
		return true
	}
	return false
}

func sortedMapKeys(v any) []string {
	var keys []string
	switch m := v.(type) {
	case map[string]bool:
		for k := range m {
			keys = append(keys, k)
		}
	case map[string]any:
		for k := range m {
			keys = append(keys, k)
		}
	case map[string]string:
		for k := range m {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func mapValue(v any, key string) any {
	switch m := v.(type) {
	case map[string]bool:
		return m[key]
	case map[string]any:
		return m[key]
	case map[string]string:
		return m[key]
	}
	return nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
