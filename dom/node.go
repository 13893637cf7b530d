package dom

import "strings"

// Kind discriminates element nodes from text nodes.
type Kind uint8

const (
	KindElement Kind = iota + 1
	KindText
)

// Node is a single node of the in-memory document tree. Element nodes
// carry a tag and attributes; text nodes carry only Text.
type Node struct {
	Kind       Kind
	Tag        string
	Text       string
	Attributes map[string]string
	Children   []*Node
	Parent     *Node
}

// Attribute returns the value of an attribute, or "" if unset.
func (n *Node) Attribute(name string) string {
	if n.Attributes == nil {
		return ""
	}
	return n.Attributes[name]
}

// SetAttribute sets an attribute value, replacing any previous value.
func (n *Node) SetAttribute(name, value string) {
	if n.Kind != KindElement {
		return
	}
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	n.Attributes[name] = value
}

// RemoveAttribute deletes an attribute if present.
func (n *Node) RemoveAttribute(name string) {
	delete(n.Attributes, name)
}

// ID returns the node's id attribute.
func (n *Node) ID() string {
	return n.Attribute("id")
}

// AddClass appends a class to the class attribute unless already present.
func (n *Node) AddClass(name string) {
	if name == "" {
		return
	}
	if n.HasClass(name) {
		return
	}
	current := n.Attribute("class")
	if current == "" {
		n.SetAttribute("class", name)
		return
	}
	n.SetAttribute("class", current+" "+name)
}

// HasClass reports whether the class attribute contains name as a
// whole token.
func (n *Node) HasClass(name string) bool {
	for _, c := range strings.Fields(n.Attribute("class")) {
		if c == name {
			return true
		}
	}
	return false
}

// SetStyle sets a single inline style property, preserving the order
// of properties already present in the style attribute.
func (n *Node) SetStyle(property, value string) {
	property = strings.TrimSpace(property)
	if property == "" {
		return
	}
	decls := parseStyle(n.Attribute("style"))
	replaced := false
	for i, d := range decls {
		if d.property == property {
			decls[i].value = value
			replaced = true
			break
		}
	}
	if !replaced {
		decls = append(decls, styleDecl{property: property, value: value})
	}
	n.SetAttribute("style", formatStyle(decls))
}

// StyleValue returns the value of one inline style property.
func (n *Node) StyleValue(property string) string {
	for _, d := range parseStyle(n.Attribute("style")) {
		if d.property == property {
			return d.value
		}
	}
	return ""
}

type styleDecl struct {
	property string
	value    string
}

func parseStyle(raw string) []styleDecl {
	var decls []styleDecl
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		property, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		decls = append(decls, styleDecl{
			property: strings.TrimSpace(property),
			value:    strings.TrimSpace(value),
		})
	}
	return decls
}

func formatStyle(decls []styleDecl) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.property+": "+d.value)
	}
	return strings.Join(parts, "; ")
}

// AppendChild attaches child as the last child of n, detaching it
// from any previous parent first.
func (n *Node) AppendChild(child *Node) {
	if child == nil || child == n {
		return
	}
	child.Detach()
	child.Parent = n
	n.Children = append(n.Children, child)
}

// InsertBefore inserts child immediately before ref among n's
// children. A nil or foreign ref appends instead.
func (n *Node) InsertBefore(child, ref *Node) {
	if child == nil || child == n {
		return
	}
	idx := n.childIndex(ref)
	if idx < 0 {
		n.AppendChild(child)
		return
	}
	child.Detach()
	child.Parent = n
	n.Children = append(n.Children, nil)
	copy(n.Children[idx+1:], n.Children[idx:])
	n.Children[idx] = child
}

// ReplaceChild swaps oldChild for newChild at the same position.
// Returns false if oldChild is not a child of n.
func (n *Node) ReplaceChild(newChild, oldChild *Node) bool {
	idx := n.childIndex(oldChild)
	if idx < 0 || newChild == nil {
		return false
	}
	newChild.Detach()
	newChild.Parent = n
	oldChild.Parent = nil
	n.Children[idx] = newChild
	return true
}

// RemoveChildren detaches every child of n.
func (n *Node) RemoveChildren() {
	for _, c := range n.Children {
		c.Parent = nil
	}
	n.Children = nil
}

// Detach removes n from its parent, if any.
func (n *Node) Detach() {
	p := n.Parent
	if p == nil {
		return
	}
	idx := p.childIndex(n)
	if idx >= 0 {
		p.Children = append(p.Children[:idx], p.Children[idx+1:]...)
	}
	n.Parent = nil
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	if n.Kind == KindText {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

func (n *Node) childIndex(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}
