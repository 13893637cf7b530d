package dom

import (
	"fmt"
	"strings"
)

// Document is an in-memory document tree. Root is the html element;
// Head and Body are always present.
type Document struct {
	Root *Node
	Head *Node
	Body *Node
}

// NewDocument creates an empty document with html, head and body
// elements in place.
func NewDocument() *Document {
	root := &Node{Kind: KindElement, Tag: "html"}
	head := &Node{Kind: KindElement, Tag: "head"}
	body := &Node{Kind: KindElement, Tag: "body"}
	root.AppendChild(head)
	root.AppendChild(body)
	return &Document{Root: root, Head: head, Body: body}
}

// CreateElement creates a detached element node. The tag must be a
// plausible element name; anything else is rejected here so callers
// never build malformed trees.
func (d *Document) CreateElement(tag string) (*Node, error) {
	if !validTag(tag) {
		return nil, fmt.Errorf("dom: invalid tag name %q", tag)
	}
	return &Node{Kind: KindElement, Tag: strings.ToLower(tag)}, nil
}

// CreateText creates a detached text node.
func (d *Document) CreateText(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// ElementByID returns the first element with the given id attribute,
// or nil.
func (d *Document) ElementByID(id string) *Node {
	if id == "" {
		return nil
	}
	return findByID(d.Root, id)
}

// QueryAll finds elements by a simple selector: "#id", ".class" or a
// bare tag name.
func (d *Document) QueryAll(selector string) []*Node {
	switch {
	case strings.HasPrefix(selector, "#"):
		if el := d.ElementByID(strings.TrimPrefix(selector, "#")); el != nil {
			return []*Node{el}
		}
		return nil
	case strings.HasPrefix(selector, "."):
		return findByClass(d.Root, strings.TrimPrefix(selector, "."))
	default:
		return findByTag(d.Root, strings.ToLower(selector))
	}
}

// Title returns the text of the head title element, if any.
func (d *Document) Title() string {
	for _, c := range d.Head.Children {
		if c.Kind == KindElement && c.Tag == "title" {
			return c.TextContent()
		}
	}
	return ""
}

// SetTitle creates or updates the head title element.
func (d *Document) SetTitle(title string) {
	for _, c := range d.Head.Children {
		if c.Kind == KindElement && c.Tag == "title" {
			c.RemoveChildren()
			c.AppendChild(d.CreateText(title))
			return
		}
	}
	el := &Node{Kind: KindElement, Tag: "title"}
	el.AppendChild(d.CreateText(title))
	d.Head.AppendChild(el)
}

func findByID(n *Node, id string) *Node {
	if n.Kind == KindElement && n.Attribute("id") == id {
		return n
	}
	for _, c := range n.Children {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func findByClass(n *Node, class string) []*Node {
	var result []*Node
	if n.Kind == KindElement && n.HasClass(class) {
		result = append(result, n)
	}
	for _, c := range n.Children {
		result = append(result, findByClass(c, class)...)
	}
	return result
}

func findByTag(n *Node, tag string) []*Node {
	var result []*Node
	if n.Kind == KindElement && n.Tag == tag {
		result = append(result, n)
	}
	for _, c := range n.Children {
		result = append(result, findByTag(c, tag)...)
	}
	return result
}

func validTag(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r == '-' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return true
}
